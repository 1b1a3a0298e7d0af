package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/normalize"
)

// ErrGoalNotFound is returned when the goal does not exist or belongs to
// another user.
var ErrGoalNotFound = errors.New("goal not found")

// GoalStore defines goal persistence used by the service.
type GoalStore interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.GoalDB, error)
	Save(ctx context.Context, userID uuid.UUID, name string, targetAmount float64, dueDate *time.Time) (uuid.UUID, error)
	Contribute(ctx context.Context, userID, goalID uuid.UUID, amount float64) (*models.GoalDB, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
}

// GoalService manages savings goals.
type GoalService struct {
	store GoalStore
}

// NewGoalService creates a new GoalService.
func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// CreateGoal creates a goal. dueDate is "2006-01-02" or empty.
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, name, targetAmount, dueDate string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	target, err := normalize.Amount(targetAmount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var due *time.Time
	if dueDate != "" {
		parsed, err := time.Parse("2006-01-02", dueDate)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: invalid due date %q", ErrValidation, dueDate)
		}
		day := normalize.Day(parsed)
		due = &day
	}

	goalID, err := s.store.Save(ctx, userID, name, target, due)
	if err != nil {
		logger.Log.Errorw("failed to save goal", "userID", userID, "error", err)
		return uuid.Nil, err
	}
	return goalID, nil
}

// ListGoals returns the user's goals.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.GoalDB, error) {
	return s.store.ListByUserID(ctx, userID)
}

// Contribute adds to a goal's saved amount and returns the updated goal.
func (s *GoalService) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount string) (*models.GoalDB, error) {
	parsed, err := normalize.Amount(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	goal, err := s.store.Contribute(ctx, userID, goalID, parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		logger.Log.Errorw("failed to contribute to goal", "goalID", goalID, "error", err)
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, goalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGoalNotFound
		}
		logger.Log.Errorw("failed to delete goal", "goalID", goalID, "error", err)
		return err
	}
	return nil
}
