package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditBalanceAdjustFailed = "balance_adjust_failed"
	AuditBalanceDrift        = "balance_drift"
)

// AuditEntryDB represents an audit log row in the database
type AuditEntryDB struct {
	AuditID   uuid.UUID `json:"audit_id" db:"audit_id"`     // Unique audit entry identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // User whose data was affected
	Entity    string    `json:"entity" db:"entity"`         // Affected entity kind, e.g. "account"
	EntityID  uuid.UUID `json:"entity_id" db:"entity_id"`   // Affected entity identifier
	Action    string    `json:"action" db:"action"`         // What happened
	Detail    string    `json:"detail" db:"detail"`         // JSON-encoded context
	CreatedAt time.Time `json:"created_at" db:"created_at"` // When it happened
}
