package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter resolves the request-scoped transaction from the context,
// returning nil when the call runs outside one.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
