package models

import "time"

// CategoryAmount is one slice of the per-category expense distribution.
type CategoryAmount struct {
	CategoryID string  `json:"category_id" db:"category_id"` // Category identifier, empty for uncategorized
	Name       string  `json:"name" db:"name"`               // Category name
	Amount     float64 `json:"amount" db:"amount"`           // Confirmed expense total
}

// MonthlySummary holds the dashboard KPIs for one calendar month.
type MonthlySummary struct {
	Month        time.Time        `json:"month"`         // First day of the summarized month
	Income       float64          `json:"income"`        // Confirmed income total
	Expense      float64          `json:"expense"`       // Confirmed expense total
	Net          float64          `json:"net"`           // Income minus expense
	TotalBalance float64          `json:"total_balance"` // Active-account balances converted to the base currency
	BaseCurrency string           `json:"base_currency"` // Currency of TotalBalance
	ByCategory   []CategoryAmount `json:"by_category"`   // Expense distribution by category
}

// AccountDrift reports an account whose stored balance disagrees with the
// signed sum of its confirmed transactions.
type AccountDrift struct {
	AccountID     string  `json:"account_id"`     // Drifting account
	StoredBalance float64 `json:"stored_balance"` // Balance column value
	LedgerBalance float64 `json:"ledger_balance"` // Recomputed from confirmed transactions
	Drift         float64 `json:"drift"`          // Stored minus ledger
}
