package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// AuditWriteRepository appends audit log rows. Writes deliberately bypass
// the request transaction: an audit row recording a failed balance
// adjustment must survive even if the surrounding request rolls back.
type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

// Save appends one audit entry.
func (r *AuditWriteRepository) Save(ctx context.Context, userID uuid.UUID, entity string, entityID uuid.UUID, action, detail string) error {
	query := `
		INSERT INTO audit_log (audit_id, user_id, entity, entity_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, entity, entityID, action, detail)

	logger.Log.Debugw("audit save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, entity, entityID, action},
		"error", err,
	)

	return err
}

// AuditReadRepository lists audit log rows.
type AuditReadRepository struct {
	db *sqlx.DB
}

func NewAuditReadRepository(db *sqlx.DB) *AuditReadRepository {
	return &AuditReadRepository{db: db}
}

// ListByUserID returns the newest audit entries for a user.
func (r *AuditReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEntryDB, error) {
	const query = `
		SELECT audit_id, user_id, entity, entity_id, action, detail, created_at
		FROM audit_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	if limit <= 0 {
		limit = 100
	}

	var entries []models.AuditEntryDB
	err := r.db.SelectContext(ctx, &entries, query, userID, limit)

	logger.Log.Debugw("audit list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
