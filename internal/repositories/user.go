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

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail finds a user by username and/or email.
// Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, base_currency, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user by primary key. Returns (nil, nil) when missing.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, base_currency, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user. Conflicting usernames update the stored hash,
// keeping registration idempotent for retried requests.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email, baseCurrency string) error {
	query := `
		INSERT INTO users (username, email, password_hash, base_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    email = EXCLUDED.email,
		    updated_at = NOW()
	`
	args := []any{username, email, passwordHash, baseCurrency}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("user save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, baseCurrency},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
