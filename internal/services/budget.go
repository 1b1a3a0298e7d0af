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

// ErrBudgetNotFound is returned when the budget does not exist or belongs
// to another user.
var ErrBudgetNotFound = errors.New("budget not found")

// BudgetStore defines budget persistence used by the service.
type BudgetStore interface {
	ListByMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.BudgetProgress, error)
	Save(ctx context.Context, userID, categoryID uuid.UUID, month time.Time, limitAmount float64) (uuid.UUID, error)
	Delete(ctx context.Context, userID, budgetID uuid.UUID) error
}

// BudgetService manages monthly category budgets.
type BudgetService struct {
	store BudgetStore
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store BudgetStore) *BudgetService {
	return &BudgetService{store: store}
}

// SetBudget upserts the limit for a category and month. The month argument
// may be any day inside the month; it is normalized to the first.
func (s *BudgetService) SetBudget(ctx context.Context, userID uuid.UUID, categoryID, limitAmount, month string) (uuid.UUID, error) {
	catID, err := uuid.Parse(categoryID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid category reference %q", ErrValidation, categoryID)
	}

	limit, err := normalize.Amount(limitAmount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	parsedMonth, err := parseMonth(month)
	if err != nil {
		return uuid.Nil, err
	}

	budgetID, err := s.store.Save(ctx, userID, catID, parsedMonth, limit)
	if err != nil {
		logger.Log.Errorw("failed to save budget", "userID", userID, "categoryID", catID, "error", err)
		return uuid.Nil, err
	}
	return budgetID, nil
}

// ListBudgets returns the month's budgets with spent totals.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, month string) ([]models.BudgetProgress, error) {
	parsedMonth, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.store.ListByMonth(ctx, userID, parsedMonth)
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, budgetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBudgetNotFound
		}
		logger.Log.Errorw("failed to delete budget", "budgetID", budgetID, "error", err)
		return err
	}
	return nil
}

// parseMonth accepts "2006-01" or "2006-01-02" and returns the month start.
// An empty value means the current month.
func parseMonth(month string) (time.Time, error) {
	if month == "" {
		return normalize.MonthStart(time.Now().UTC()), nil
	}
	if parsed, err := time.Parse("2006-01", month); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid month %q", ErrValidation, month)
	}
	return normalize.MonthStart(parsed), nil
}
