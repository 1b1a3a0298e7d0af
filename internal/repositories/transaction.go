package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// ErrVersionConflict is returned when an update or delete carries a stale
// optimistic-lock version, meaning a concurrent edit won.
var ErrVersionConflict = errors.New("transaction was modified concurrently")

// TransactionFilter narrows ListByUserID results. Nil fields are ignored.
type TransactionFilter struct {
	AccountID *uuid.UUID // Only transactions touching this account
	Type      *string    // income, expense or transfer
	Status    *string    // confirmed or pending
	Month     *time.Time // First day of a month to restrict occurred_on
	Limit     int        // Page size, defaulted by the repository
	Offset    int        // Page offset
}

const defaultTransactionLimit = 50

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

const transactionColumns = `
	transaction_id, user_id, account_id, to_account_id, category_id,
	type, status, amount, description, tags, occurred_on, version,
	created_at, updated_at
`

// GetByID fetches a transaction owned by the given user.
// Returns (nil, nil) when no such transaction exists.
func (r *TransactionReadRepository) GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, transactionID, userID)

	logger.Log.Debugw("transaction query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByUserID returns the user's transactions newest first, narrowed by filter.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		  AND ($2::UUID IS NULL OR account_id = $2 OR to_account_id = $2)
		  AND ($3::VARCHAR IS NULL OR type = $3)
		  AND ($4::VARCHAR IS NULL OR status = $4)
		  AND ($5::DATE IS NULL OR (occurred_on >= $5 AND occurred_on < $5::DATE + INTERVAL '1 month'))
		ORDER BY occurred_on DESC, created_at DESC
		LIMIT $6 OFFSET $7
	`

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query,
		userID, filter.AccountID, filter.Type, filter.Status, filter.Month, limit, filter.Offset)

	logger.Log.Debugw("transaction list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, filter.AccountID, filter.Type, filter.Status, filter.Month, limit, filter.Offset},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction row and returns its generated identifier.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) (uuid.UUID, error) {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, account_id, to_account_id, category_id,
			type, status, amount, description, tags, occurred_on, version,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, NOW(), NOW())
		RETURNING transaction_id
	`

	transactionID := uuid.New()
	var returned uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &returned, query,
		transactionID, txn.UserID, txn.AccountID, txn.ToAccountID, txn.CategoryID,
		txn.Type, txn.Status, txn.Amount, txn.Description, txn.Tags, txn.OccurredOn)

	logger.Log.Debugw("transaction save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, txn.UserID, txn.AccountID, txn.Type, txn.Status, txn.Amount},
		"error", err,
	)

	return returned, err
}

// Update rewrites the mutable fields of a transaction, guarded by the
// optimistic version. A zero row count with no error means the row either
// vanished or moved past the expected version.
func (r *TransactionWriteRepository) Update(ctx context.Context, txn models.TransactionDB, expectedVersion int64) error {
	query := `
		UPDATE transactions
		SET account_id = $3, to_account_id = $4, category_id = $5,
		    type = $6, status = $7, amount = $8, description = $9,
		    tags = $10, occurred_on = $11, version = version + 1, updated_at = NOW()
		WHERE transaction_id = $1 AND user_id = $2 AND version = $12
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		txn.TransactionID, txn.UserID, txn.AccountID, txn.ToAccountID, txn.CategoryID,
		txn.Type, txn.Status, txn.Amount, txn.Description, txn.Tags, txn.OccurredOn,
		expectedVersion)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("transaction update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.UserID, txn.Type, txn.Status, txn.Amount, expectedVersion},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// Delete removes a transaction row, guarded by the optimistic version.
func (r *TransactionWriteRepository) Delete(ctx context.Context, userID, transactionID uuid.UUID, expectedVersion int64) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2 AND version = $3
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, transactionID, userID, expectedVersion)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("transaction delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, userID, expectedVersion},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
