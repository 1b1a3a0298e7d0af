package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// BudgetRepository handles budget reads and writes
type BudgetRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBudgetRepository(db *sqlx.DB, txGetter TxGetter) *BudgetRepository {
	return &BudgetRepository{db: db, txGetter: txGetter}
}

// ListByMonth returns the user's budgets for a month together with the
// confirmed expense total accumulated against each.
func (r *BudgetRepository) ListByMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.BudgetProgress, error) {
	const query = `
		SELECT b.budget_id, b.user_id, b.category_id, b.month, b.limit_amount,
		       b.created_at, b.updated_at,
		       COALESCE(SUM(t.amount) FILTER (
		           WHERE t.status = 'confirmed' AND t.type = 'expense'
		             AND t.occurred_on >= b.month
		             AND t.occurred_on < b.month + INTERVAL '1 month'
		       ), 0) AS spent
		FROM budgets b
		LEFT JOIN transactions t
		  ON t.user_id = b.user_id AND t.category_id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2
		GROUP BY b.budget_id
		ORDER BY b.created_at
	`

	var rows []struct {
		models.BudgetDB
		Spent float64 `db:"spent"`
	}
	err := r.db.SelectContext(ctx, &rows, query, userID, month)

	logger.Log.Debugw("budget list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, month},
		"result", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	progress := make([]models.BudgetProgress, len(rows))
	for i, row := range rows {
		progress[i] = models.BudgetProgress{Budget: row.BudgetDB, Spent: row.Spent}
	}
	return progress, nil
}

// Save upserts the budget for (user, category, month) and returns its identifier.
func (r *BudgetRepository) Save(ctx context.Context, userID, categoryID uuid.UUID, month time.Time, limitAmount float64) (uuid.UUID, error) {
	query := `
		INSERT INTO budgets (budget_id, user_id, category_id, month, limit_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, category_id, month)
		DO UPDATE SET limit_amount = EXCLUDED.limit_amount, updated_at = NOW()
		RETURNING budget_id
	`

	budgetID := uuid.New()
	var returned uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &returned, query,
		budgetID, userID, categoryID, month, limitAmount)

	logger.Log.Debugw("budget save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{budgetID, userID, categoryID, month, limitAmount},
		"error", err,
	)

	return returned, err
}

// Delete removes a budget row.
func (r *BudgetRepository) Delete(ctx context.Context, userID, budgetID uuid.UUID) error {
	query := `
		DELETE FROM budgets
		WHERE budget_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, budgetID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("budget delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{budgetID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
