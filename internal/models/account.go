package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported account types
const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountCreditCard = "credit_card"
	AccountInvestment = "investment"
)

// Supported currency codes
const (
	BRL = "BRL"
	USD = "USD"
	EUR = "EUR"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t string) bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCreditCard, AccountInvestment:
		return true
	}
	return false
}

// AccountDB represents an account row in the database.
// Balance is a running total mutated only by the update_account_balance
// procedure, never recomputed by replaying transactions.
type AccountDB struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"` // Unique account identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the account's owner
	Name      string    `json:"name" db:"name"`             // Display name
	Type      string    `json:"type" db:"type"`             // Account type (checking, savings, credit_card, investment)
	Currency  string    `json:"currency" db:"currency"`     // ISO 4217 currency code
	Balance   float64   `json:"balance" db:"balance"`       // Current stored balance
	Opening   float64   `json:"opening_balance" db:"opening_balance"` // Balance at account creation
	Active    bool      `json:"active" db:"active"`         // False once the account is archived
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the account was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last account update
}
