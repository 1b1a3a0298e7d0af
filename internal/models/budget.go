package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetDB represents a monthly spending limit for a category.
// Month is always the first day of the month.
type BudgetDB struct {
	BudgetID    uuid.UUID `json:"budget_id" db:"budget_id"`       // Unique budget identifier
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner of the budget
	CategoryID  uuid.UUID `json:"category_id" db:"category_id"`   // Budgeted category
	Month       time.Time `json:"month" db:"month"`               // First day of the budgeted month
	LimitAmount float64   `json:"limit_amount" db:"limit_amount"` // Spending limit for the month
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// BudgetProgress pairs a budget with the confirmed expense total
// accumulated against it in its month.
type BudgetProgress struct {
	Budget BudgetDB `json:"budget"` // The budget row
	Spent  float64  `json:"spent"`  // Confirmed expense total in the budget's month and category
}
