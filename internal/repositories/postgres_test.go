package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/monetrix/monetrix-server/internal/logger"
)

// setupPostgres starts a disposable Postgres container and applies the
// schema the migrations would, including the balance procedure.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
		`CREATE TABLE users (
			user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			base_currency TEXT NOT NULL DEFAULT 'BRL',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE accounts (
			account_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('checking', 'savings', 'credit_card', 'investment')),
			currency TEXT NOT NULL,
			balance NUMERIC(14, 2) NOT NULL DEFAULT 0,
			opening_balance NUMERIC(14, 2) NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE categories (
			category_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			kind TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, name)
		);`,
		`CREATE TABLE transactions (
			transaction_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			account_id UUID NOT NULL REFERENCES accounts (account_id),
			to_account_id UUID REFERENCES accounts (account_id),
			category_id UUID REFERENCES categories (category_id) ON DELETE SET NULL,
			type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'transfer')),
			status TEXT NOT NULL CHECK (status IN ('confirmed', 'pending')),
			amount NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
			description TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			occurred_on DATE NOT NULL,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE audit_log (
			audit_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
			entity TEXT NOT NULL,
			entity_id UUID NOT NULL,
			action TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE OR REPLACE FUNCTION update_account_balance(p_account_id UUID, p_amount_change NUMERIC)
		RETURNS VOID AS $$
		BEGIN
			UPDATE accounts
			SET balance = balance + p_amount_change,
			    updated_at = NOW()
			WHERE account_id = p_account_id;

			IF NOT FOUND THEN
				RAISE EXCEPTION 'account % not found', p_account_id;
			END IF;
		END;
		$$ LANGUAGE plpgsql;`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		require.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func insertUser(t *testing.T, db *sqlx.DB) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, "user-"+userID.String()[:8], userID.String()[:8]+"@example.com", "hash")
	require.NoError(t, err)
	return userID
}

func storedBalance(t *testing.T, db *sqlx.DB, accountID uuid.UUID) float64 {
	var balance float64
	err := db.Get(&balance, `SELECT balance FROM accounts WHERE account_id = $1`, accountID)
	assert.NoError(t, err)
	return balance
}
