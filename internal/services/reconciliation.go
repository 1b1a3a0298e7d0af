package services

import (
	"context"
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// driftTolerance absorbs NUMERIC(20,2) rounding when comparing stored
// balances against recomputed ledger sums.
const driftTolerance = 0.005

// LedgerBalanceReader recomputes account balances from confirmed transactions.
type LedgerBalanceReader interface {
	LedgerBalances(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]float64, error)
	ActiveBalances(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}

// AccountBalanceLister reads stored account balances.
type AccountBalanceLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]models.AccountDB, error)
}

// ReconciliationService detects accounts whose stored balance has drifted
// from the signed sum of their confirmed transactions. Drift appears when a
// balance adjustment fails after its row write committed; the adjustment
// error is swallowed by the ledger, so only this check makes it visible.
type ReconciliationService struct {
	reports  LedgerBalanceReader
	accounts AccountBalanceLister
	audit    AuditWriter
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reports LedgerBalanceReader, accounts AccountBalanceLister, audit AuditWriter) *ReconciliationService {
	return &ReconciliationService{
		reports:  reports,
		accounts: accounts,
		audit:    audit,
	}
}

// Check compares stored and recomputed balances for every account of the
// user, audits each drifting account and returns the drift report.
func (s *ReconciliationService) Check(ctx context.Context, userID uuid.UUID) ([]models.AccountDrift, error) {
	ledgers, err := s.reports.LedgerBalances(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to recompute ledger balances", "userID", userID, "error", err)
		return nil, err
	}

	accounts, err := s.accounts.ListByUserID(ctx, userID, true)
	if err != nil {
		logger.Log.Errorw("failed to list accounts for reconciliation", "userID", userID, "error", err)
		return nil, err
	}

	var drifts []models.AccountDrift
	for _, account := range accounts {
		ledger := ledgers[account.AccountID]
		drift := account.Balance - ledger
		if math.Abs(drift) <= driftTolerance {
			continue
		}

		report := models.AccountDrift{
			AccountID:     account.AccountID.String(),
			StoredBalance: account.Balance,
			LedgerBalance: ledger,
			Drift:         drift,
		}
		drifts = append(drifts, report)

		detail, _ := json.Marshal(report)
		if err := s.audit.Save(ctx, userID, "account", account.AccountID, models.AuditBalanceDrift, string(detail)); err != nil {
			logger.Log.Errorw("failed to audit balance drift", "accountID", account.AccountID, "error", err)
		}
	}

	if len(drifts) > 0 {
		logger.Log.Warnw("balance drift detected", "userID", userID, "accounts", len(drifts))
	}
	return drifts, nil
}
