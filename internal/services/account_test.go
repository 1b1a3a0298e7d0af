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

func TestAccountService_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	tests := []struct {
		name           string
		accountName    string
		accountType    string
		currency       string
		openingBalance string
		mockSetup      func(writer *MockAccountWriter)
		wantErr        error
	}{
		{
			name:           "success_with_opening_balance",
			accountName:    "Nubank",
			accountType:    models.AccountChecking,
			currency:       "BRL",
			openingBalance: "1.234,56",
			mockSetup: func(writer *MockAccountWriter) {
				writer.EXPECT().
					Save(ctx, userID, "Nubank", models.AccountChecking, "BRL", 1234.56).
					Return(accountID, nil)
			},
		},
		{
			name:        "success_zero_opening",
			accountName: "Savings",
			accountType: models.AccountSavings,
			currency:    "BRL",
			mockSetup: func(writer *MockAccountWriter) {
				writer.EXPECT().
					Save(ctx, userID, "Savings", models.AccountSavings, "BRL", 0.0).
					Return(accountID, nil)
			},
		},
		{
			name:        "missing_name",
			accountType: models.AccountChecking,
			currency:    "BRL",
			mockSetup:   func(writer *MockAccountWriter) {},
			wantErr:     ErrValidation,
		},
		{
			name:        "bad_type",
			accountName: "Wallet",
			accountType: "cash",
			currency:    "BRL",
			mockSetup:   func(writer *MockAccountWriter) {},
			wantErr:     ErrValidation,
		},
		{
			name:        "bad_currency",
			accountName: "Wallet",
			accountType: models.AccountChecking,
			currency:    "REAL",
			mockSetup:   func(writer *MockAccountWriter) {},
			wantErr:     ErrValidation,
		},
		{
			name:           "bad_opening_balance",
			accountName:    "Wallet",
			accountType:    models.AccountChecking,
			currency:       "BRL",
			openingBalance: "lots",
			mockSetup:      func(writer *MockAccountWriter) {},
			wantErr:        ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewMockAccountWriter(ctrl)
			tt.mockSetup(writer)

			svc := NewAccountService(NewMockAccountLister(ctrl), writer)
			got, err := svc.CreateAccount(ctx, userID, tt.accountName, tt.accountType, tt.currency, tt.openingBalance)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, accountID, got)
			}
		})
	}
}

func TestAccountService_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	reader := NewMockAccountLister(ctrl)
	svc := NewAccountService(reader, NewMockAccountWriter(ctrl))

	t.Run("found", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, userID, accountID).
			Return(&models.AccountDB{AccountID: accountID, Name: "Nubank"}, nil)

		got, err := svc.GetAccount(ctx, userID, accountID)
		require.NoError(t, err)
		assert.Equal(t, "Nubank", got.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		reader.EXPECT().GetByID(ctx, userID, accountID).Return(nil, nil)

		_, err := svc.GetAccount(ctx, userID, accountID)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	writer := NewMockAccountWriter(ctrl)
	svc := NewAccountService(NewMockAccountLister(ctrl), writer)

	t.Run("success", func(t *testing.T) {
		writer.EXPECT().Update(ctx, userID, accountID, "Renamed", models.AccountSavings, "BRL").Return(nil)
		assert.NoError(t, svc.UpdateAccount(ctx, userID, accountID, "Renamed", models.AccountSavings, "BRL"))
	})

	t.Run("validation", func(t *testing.T) {
		err := svc.UpdateAccount(ctx, userID, accountID, "", models.AccountSavings, "BRL")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing_row", func(t *testing.T) {
		writer.EXPECT().Update(ctx, userID, accountID, "Renamed", models.AccountSavings, "BRL").
			Return(errors.New("no rows affected"))
		err := svc.UpdateAccount(ctx, userID, accountID, "Renamed", models.AccountSavings, "BRL")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_ArchiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	writer := NewMockAccountWriter(ctrl)
	svc := NewAccountService(NewMockAccountLister(ctrl), writer)

	t.Run("success", func(t *testing.T) {
		writer.EXPECT().Archive(ctx, userID, accountID).Return(nil)
		assert.NoError(t, svc.ArchiveAccount(ctx, userID, accountID))
	})

	t.Run("missing_row", func(t *testing.T) {
		writer.EXPECT().Archive(ctx, userID, accountID).Return(errors.New("no rows affected"))
		assert.ErrorIs(t, svc.ArchiveAccount(ctx, userID, accountID), ErrAccountNotFound)
	})
}
