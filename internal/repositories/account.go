package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByID fetches an account owned by the given user.
// Returns (nil, nil) when no such account exists.
func (r *AccountReadRepository) GetByID(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, name, type, currency, balance, opening_balance, active, created_at, updated_at
		FROM accounts
		WHERE account_id = $1 AND user_id = $2
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID, userID)

	logger.Log.Debugw("account query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListByUserID returns the user's accounts, active only unless includeArchived.
func (r *AccountReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, name, type, currency, balance, opening_balance, active, created_at, updated_at
		FROM accounts
		WHERE user_id = $1 AND (active OR $2)
		ORDER BY created_at
	`

	var accounts []models.AccountDB
	err := r.db.SelectContext(ctx, &accounts, query, userID, includeArchived)

	logger.Log.Debugw("account list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, includeArchived},
		"result", len(accounts),
		"error", err,
	)

	return accounts, err
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an account and returns its generated identifier. The
// balance column starts at the opening balance; every later change goes
// through AdjustBalance.
func (r *AccountWriteRepository) Save(ctx context.Context, userID uuid.UUID, name, accountType, currency string, openingBalance float64) (uuid.UUID, error) {
	query := `
		INSERT INTO accounts (account_id, user_id, name, type, currency, balance, opening_balance, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, TRUE, NOW(), NOW())
		RETURNING account_id
	`

	accountID := uuid.New()
	var returned uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &returned, query, accountID, userID, name, accountType, currency, openingBalance)

	logger.Log.Debugw("account save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, userID, name, accountType, currency, openingBalance},
		"error", err,
	)

	return returned, err
}

// Update changes the mutable account fields. Returns sql.ErrNoRows when the
// account does not exist or belongs to another user.
func (r *AccountWriteRepository) Update(ctx context.Context, userID, accountID uuid.UUID, name, accountType, currency string) error {
	query := `
		UPDATE accounts
		SET name = $3, type = $4, currency = $5, updated_at = NOW()
		WHERE account_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, accountID, userID, name, accountType, currency)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("account update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, userID, name, accountType, currency},
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

// Archive soft-deletes an account by clearing its active flag.
func (r *AccountWriteRepository) Archive(ctx context.Context, userID, accountID uuid.UUID) error {
	query := `
		UPDATE accounts
		SET active = FALSE, updated_at = NOW()
		WHERE account_id = $1 AND user_id = $2 AND active
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, accountID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("account archive",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, userID},
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

// AdjustBalance applies a signed delta to the stored balance through the
// update_account_balance procedure. The procedure is the only writer of the
// balance column; Go code never reads, modifies and writes it back.
func (r *AccountWriteRepository) AdjustBalance(ctx context.Context, accountID uuid.UUID, delta float64) error {
	query := `SELECT update_account_balance($1, $2)`

	var err error
	if tx, ok := executor(ctx, r.db, r.txGetter).(*sqlx.Tx); ok {
		err = adjustInSavepoint(ctx, tx, accountID, delta)
	} else {
		_, err = r.db.ExecContext(ctx, query, accountID, delta)
	}

	logger.Log.Debugw("balance adjust",
		"query", query,
		"args", []any{accountID, delta},
		"error", err,
	)

	return err
}

// adjustInSavepoint runs the procedure under a savepoint. A raised exception
// otherwise puts the whole request transaction into an aborted state and the
// final commit would take the already-written transaction row down with it;
// rolling back to the savepoint confines the failure to this one call.
func adjustInSavepoint(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, delta float64) error {
	if _, err := tx.ExecContext(ctx, `SAVEPOINT balance_adjust`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `SELECT update_account_balance($1, $2)`, accountID, delta); err != nil {
		if _, rbErr := tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT balance_adjust`); rbErr != nil {
			logger.Log.Errorw("failed to roll back balance adjust savepoint",
				"accountID", accountID, "error", rbErr)
		}
		return err
	}
	_, err := tx.ExecContext(ctx, `RELEASE SAVEPOINT balance_adjust`)
	return err
}
