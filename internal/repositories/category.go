package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// CategoryRepository handles category reads and writes
type CategoryRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryRepository(db *sqlx.DB, txGetter TxGetter) *CategoryRepository {
	return &CategoryRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's categories ordered by name.
func (r *CategoryRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, user_id, name, kind, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query, userID)

	logger.Log.Debugw("category list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

// Save inserts a category and returns its generated identifier.
func (r *CategoryRepository) Save(ctx context.Context, userID uuid.UUID, name, kind string) (uuid.UUID, error) {
	query := `
		INSERT INTO categories (category_id, user_id, name, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING category_id
	`

	categoryID := uuid.New()
	var returned uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &returned, query, categoryID, userID, name, kind)

	logger.Log.Debugw("category save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID, userID, name, kind},
		"error", err,
	)

	return returned, err
}

// Delete removes a category. Transactions referencing it keep a NULL
// category through the ON DELETE SET NULL constraint.
func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	query := `
		DELETE FROM categories
		WHERE category_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, categoryID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("category delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID, userID},
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
