package models

import (
	"time"

	"github.com/google/uuid"
)

// Category kinds
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// CategoryDB represents a category row in the database
type CategoryDB struct {
	CategoryID uuid.UUID `json:"category_id" db:"category_id"` // Unique category identifier
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owner of the category
	Name       string    `json:"name" db:"name"`               // Display name
	Kind       string    `json:"kind" db:"kind"`               // income or expense
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
