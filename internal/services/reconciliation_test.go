package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monetrix/monetrix-server/internal/models"
)

func TestReconciliationService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	driftedID := uuid.New()
	healthyID := uuid.New()
	roundingID := uuid.New()

	reports := NewMockLedgerBalanceReader(ctrl)
	accounts := NewMockAccountBalanceLister(ctrl)
	audit := NewMockAuditWriter(ctrl)
	svc := NewReconciliationService(reports, accounts, audit)

	reports.EXPECT().LedgerBalances(ctx, userID).Return(map[uuid.UUID]float64{
		driftedID:  950.0,
		healthyID:  300.0,
		roundingID: 100.0,
	}, nil)
	accounts.EXPECT().ListByUserID(ctx, userID, true).Return([]models.AccountDB{
		{AccountID: driftedID, Balance: 1000.0},  // an adjustment was lost
		{AccountID: healthyID, Balance: 300.0},   // matches exactly
		{AccountID: roundingID, Balance: 100.004}, // inside tolerance
	}, nil)

	// only the drifted account is audited
	audit.EXPECT().
		Save(ctx, userID, "account", driftedID, models.AuditBalanceDrift, gomock.Any()).
		Return(nil)

	drifts, err := svc.Check(ctx, userID)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, driftedID.String(), drifts[0].AccountID)
	assert.InDelta(t, 1000.0, drifts[0].StoredBalance, 1e-9)
	assert.InDelta(t, 950.0, drifts[0].LedgerBalance, 1e-9)
	assert.InDelta(t, 50.0, drifts[0].Drift, 1e-9)
}

func TestReconciliationService_Check_NoDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	reports := NewMockLedgerBalanceReader(ctrl)
	accounts := NewMockAccountBalanceLister(ctrl)
	svc := NewReconciliationService(reports, accounts, NewMockAuditWriter(ctrl))

	reports.EXPECT().LedgerBalances(ctx, userID).
		Return(map[uuid.UUID]float64{accountID: 42.0}, nil)
	accounts.EXPECT().ListByUserID(ctx, userID, true).
		Return([]models.AccountDB{{AccountID: accountID, Balance: 42.0}}, nil)

	drifts, err := svc.Check(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestReconciliationService_Check_AccountWithNoTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	reports := NewMockLedgerBalanceReader(ctrl)
	accounts := NewMockAccountBalanceLister(ctrl)
	audit := NewMockAuditWriter(ctrl)
	svc := NewReconciliationService(reports, accounts, audit)

	// a missing ledger entry counts as zero, so the stored balance
	// reports as drift
	reports.EXPECT().LedgerBalances(ctx, userID).Return(map[uuid.UUID]float64{}, nil)
	accounts.EXPECT().ListByUserID(ctx, userID, true).
		Return([]models.AccountDB{{AccountID: accountID, Balance: 10.0}}, nil)
	audit.EXPECT().
		Save(ctx, userID, "account", accountID, models.AuditBalanceDrift, gomock.Any()).
		Return(nil)

	drifts, err := svc.Check(ctx, userID)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.InDelta(t, 10.0, drifts[0].Drift, 1e-9)
}

func TestReconciliationService_Check_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	reports := NewMockLedgerBalanceReader(ctrl)
	svc := NewReconciliationService(reports, NewMockAccountBalanceLister(ctrl), NewMockAuditWriter(ctrl))

	reports.EXPECT().LedgerBalances(ctx, userID).Return(nil, errors.New("db down"))

	_, err := svc.Check(ctx, userID)
	assert.EqualError(t, err, "db down")
}
