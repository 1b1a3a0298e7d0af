package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// ErrCategoryNotFound is returned when the category does not exist or
// belongs to another user.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryStore defines category persistence used by the service.
type CategoryStore interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
	Save(ctx context.Context, userID uuid.UUID, name, kind string) (uuid.UUID, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

// CategoryService manages transaction categories.
type CategoryService struct {
	store CategoryStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategory creates a category of kind income or expense.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name, kind string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if kind != models.CategoryIncome && kind != models.CategoryExpense {
		return uuid.Nil, fmt.Errorf("%w: invalid kind %q", ErrValidation, kind)
	}

	categoryID, err := s.store.Save(ctx, userID, name, kind)
	if err != nil {
		logger.Log.Errorw("failed to save category", "userID", userID, "error", err)
		return uuid.Nil, err
	}
	return categoryID, nil
}

// ListCategories returns the user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	return s.store.ListByUserID(ctx, userID)
}

// DeleteCategory removes a category. Transactions referencing it keep
// their rows and become uncategorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCategoryNotFound
		}
		logger.Log.Errorw("failed to delete category", "categoryID", categoryID, "error", err)
		return err
	}
	return nil
}
