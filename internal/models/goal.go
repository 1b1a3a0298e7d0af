package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalDB represents a savings goal row in the database.
// SavedAmount is incremented in SQL by contributions.
type GoalDB struct {
	GoalID       uuid.UUID  `json:"goal_id" db:"goal_id"`             // Unique goal identifier
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`             // Owner of the goal
	Name         string     `json:"name" db:"name"`                   // Display name
	TargetAmount float64    `json:"target_amount" db:"target_amount"` // Amount to reach
	SavedAmount  float64    `json:"saved_amount" db:"saved_amount"`   // Amount saved so far
	DueDate      *time.Time `json:"due_date" db:"due_date"`           // Optional deadline
	Achieved     bool       `json:"achieved" db:"achieved"`           // True once saved >= target
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
