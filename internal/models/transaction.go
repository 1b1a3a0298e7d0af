package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"
)

// Transaction statuses
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
)

// ValidTransactionType reports whether t is a supported transaction type.
func ValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense || t == TypeTransfer
}

// ValidTransactionStatus reports whether s is a supported status.
func ValidTransactionStatus(s string) bool {
	return s == StatusConfirmed || s == StatusPending
}

// TransactionDB represents a transaction row in the database.
// Version is an optimistic-lock counter bumped on every update.
type TransactionDB struct {
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`               // Owner of the transaction
	AccountID     uuid.UUID  `json:"account_id" db:"account_id"`         // Primary account
	ToAccountID   *uuid.UUID `json:"to_account_id" db:"to_account_id"`   // Transfer counterparty, nil for income/expense
	CategoryID    *uuid.UUID `json:"category_id" db:"category_id"`       // Optional category
	Type          string     `json:"type" db:"type"`                     // income, expense or transfer
	Status        string     `json:"status" db:"status"`                 // confirmed or pending
	Amount        float64    `json:"amount" db:"amount"`                 // Always positive
	Description   string     `json:"description" db:"description"`       // Free-form description
	Tags          string     `json:"tags" db:"tags"`                     // Comma-separated normalized tags
	OccurredOn    time.Time  `json:"occurred_on" db:"occurred_on"`       // Calendar day of the transaction
	Version       int64      `json:"version" db:"version"`               // Optimistic concurrency token
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`         // Row creation timestamp
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`         // Last row update timestamp
}

// TransactionEvent is published to Kafka after every committed ledger mutation.
type TransactionEvent struct {
	EventID       string  `json:"event_id"`       // Unique event identifier
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp of the mutation
	TransactionID string  `json:"transaction_id"` // Affected transaction
	UserID        string  `json:"user_id"`        // Owner
	Operation     string  `json:"operation"`      // create, update or delete
	Amount        float64 `json:"amount"`         // Transaction amount
	Type          string  `json:"type"`           // Transaction type
}

// ReconciliationEntry is queued when a balance adjustment fails so the
// stored balance can be repaired later instead of silently drifting.
type ReconciliationEntry struct {
	EntryID       string  `json:"entry_id"`       // Unique entry identifier
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp of the failure
	AccountID     string  `json:"account_id"`     // Account whose balance is stale
	TransactionID string  `json:"transaction_id"` // Transaction whose effect was lost
	Delta         float64 `json:"delta"`          // Signed amount that still needs applying
	Reason        string  `json:"reason"`         // Error message from the failed adjustment
}
