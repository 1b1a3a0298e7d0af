package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// ReportReadRepository runs the group-by-and-sum aggregations behind the
// dashboard. Everything is recomputed from transaction rows on demand.
type ReportReadRepository struct {
	db *sqlx.DB
}

func NewReportReadRepository(db *sqlx.DB) *ReportReadRepository {
	return &ReportReadRepository{db: db}
}

// MonthlyTotals returns the confirmed income and expense sums for a month.
func (r *ReportReadRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, month time.Time) (income, expense float64, err error) {
	const query = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)  AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
		FROM transactions
		WHERE user_id = $1
		  AND status = 'confirmed'
		  AND occurred_on >= $2
		  AND occurred_on < $2::DATE + INTERVAL '1 month'
	`

	var totals struct {
		Income  float64 `db:"income"`
		Expense float64 `db:"expense"`
	}
	err = r.db.GetContext(ctx, &totals, query, userID, month)

	logger.Log.Debugw("report monthly totals",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, month},
		"error", err,
	)

	return totals.Income, totals.Expense, err
}

// ExpenseByCategory returns the confirmed expense distribution for a month.
// Uncategorized spending is reported under an empty category id.
func (r *ReportReadRepository) ExpenseByCategory(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.CategoryAmount, error) {
	const query = `
		SELECT COALESCE(t.category_id::TEXT, '') AS category_id,
		       COALESCE(c.name, 'uncategorized') AS name,
		       SUM(t.amount) AS amount
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1
		  AND t.status = 'confirmed'
		  AND t.type = 'expense'
		  AND t.occurred_on >= $2
		  AND t.occurred_on < $2::DATE + INTERVAL '1 month'
		GROUP BY t.category_id, c.name
		ORDER BY amount DESC
	`

	var rows []models.CategoryAmount
	err := r.db.SelectContext(ctx, &rows, query, userID, month)

	logger.Log.Debugw("report expense by category",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, month},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// ActiveBalances returns the summed active-account balances per currency.
func (r *ReportReadRepository) ActiveBalances(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	const query = `
		SELECT currency, SUM(balance) AS balance
		FROM accounts
		WHERE user_id = $1 AND active
		GROUP BY currency
	`

	var rows []struct {
		Currency string  `db:"currency"`
		Balance  float64 `db:"balance"`
	}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Debugw("report active balances",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]float64, len(rows))
	for _, row := range rows {
		balances[row.Currency] = row.Balance
	}
	return balances, nil
}

// LedgerBalances recomputes each account's balance as its opening balance
// plus the signed sum of its confirmed transactions: incoming transfers and
// income add, expenses and outgoing transfers subtract. Used only by the
// reconciliation check; the stored balance column remains authoritative for
// serving reads.
func (r *ReportReadRepository) LedgerBalances(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]float64, error) {
	const query = `
		SELECT a.account_id,
		       a.balance AS stored,
		       a.opening_balance + COALESCE(SUM(
		           CASE
		               WHEN t.transaction_id IS NULL THEN 0
		               WHEN t.type = 'transfer' AND t.to_account_id = a.account_id THEN t.amount
		               WHEN t.type = 'income' THEN t.amount
		               ELSE -t.amount
		           END
		       ), 0) AS ledger
		FROM accounts a
		LEFT JOIN transactions t
		  ON t.status = 'confirmed'
		 AND (t.account_id = a.account_id
		      OR (t.type = 'transfer' AND t.to_account_id = a.account_id))
		WHERE a.user_id = $1
		GROUP BY a.account_id
	`

	var rows []struct {
		AccountID uuid.UUID `db:"account_id"`
		Stored    float64   `db:"stored"`
		Ledger    float64   `db:"ledger"`
	}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Debugw("report ledger balances",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	ledgers := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		ledgers[row.AccountID] = row.Ledger
	}
	return ledgers, nil
}
