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

// GoalRepository handles savings-goal reads and writes
type GoalRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGoalRepository(db *sqlx.DB, txGetter TxGetter) *GoalRepository {
	return &GoalRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's goals, unachieved first.
func (r *GoalRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.GoalDB, error) {
	const query = `
		SELECT goal_id, user_id, name, target_amount, saved_amount, due_date, achieved, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY achieved, due_date NULLS LAST, created_at
	`

	var goals []models.GoalDB
	err := r.db.SelectContext(ctx, &goals, query, userID)

	logger.Log.Debugw("goal list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(goals),
		"error", err,
	)

	return goals, err
}

// Save inserts a goal and returns its generated identifier.
func (r *GoalRepository) Save(ctx context.Context, userID uuid.UUID, name string, targetAmount float64, dueDate *time.Time) (uuid.UUID, error) {
	query := `
		INSERT INTO goals (goal_id, user_id, name, target_amount, saved_amount, due_date, achieved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, FALSE, NOW(), NOW())
		RETURNING goal_id
	`

	goalID := uuid.New()
	var returned uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &returned, query,
		goalID, userID, name, targetAmount, dueDate)

	logger.Log.Debugw("goal save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{goalID, userID, name, targetAmount, dueDate},
		"error", err,
	)

	return returned, err
}

// Contribute increments saved_amount in SQL and flips the achieved flag
// once the target is reached. Returns the updated row.
func (r *GoalRepository) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount float64) (*models.GoalDB, error) {
	query := `
		UPDATE goals
		SET saved_amount = saved_amount + $3,
		    achieved = (saved_amount + $3 >= target_amount),
		    updated_at = NOW()
		WHERE goal_id = $1 AND user_id = $2
		RETURNING goal_id, user_id, name, target_amount, saved_amount, due_date, achieved, created_at, updated_at
	`

	var goal models.GoalDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &goal, query, goalID, userID, amount)

	logger.Log.Debugw("goal contribute",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{goalID, userID, amount},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Delete removes a goal row.
func (r *GoalRepository) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	query := `
		DELETE FROM goals
		WHERE goal_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, goalID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("goal delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{goalID, userID},
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
