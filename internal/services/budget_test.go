package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monetrix/monetrix-server/internal/models"
)

func TestBudgetService_SetBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	budgetID := uuid.New()

	store := NewMockBudgetStore(ctrl)
	svc := NewBudgetService(store)

	t.Run("upsert", func(t *testing.T) {
		march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		store.EXPECT().Save(ctx, userID, categoryID, march, 800.0).Return(budgetID, nil)

		got, err := svc.SetBudget(ctx, userID, categoryID.String(), "800,00", "2026-03")
		require.NoError(t, err)
		assert.Equal(t, budgetID, got)
	})

	t.Run("mid_month_date_normalized", func(t *testing.T) {
		march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		store.EXPECT().Save(ctx, userID, categoryID, march, 800.0).Return(budgetID, nil)

		_, err := svc.SetBudget(ctx, userID, categoryID.String(), "800.00", "2026-03-18")
		require.NoError(t, err)
	})

	t.Run("bad_category", func(t *testing.T) {
		_, err := svc.SetBudget(ctx, userID, "nope", "800.00", "2026-03")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad_limit", func(t *testing.T) {
		_, err := svc.SetBudget(ctx, userID, categoryID.String(), "-5", "2026-03")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad_month", func(t *testing.T) {
		_, err := svc.SetBudget(ctx, userID, categoryID.String(), "800.00", "March 2026")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestBudgetService_ListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	store := NewMockBudgetStore(ctrl)
	svc := NewBudgetService(store)

	t.Run("explicit_month", func(t *testing.T) {
		march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		store.EXPECT().ListByMonth(ctx, userID, march).
			Return([]models.BudgetProgress{{Spent: 120.5}}, nil)

		got, err := svc.ListBudgets(ctx, userID, "2026-03")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty_month_defaults_to_current", func(t *testing.T) {
		store.EXPECT().ListByMonth(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, month time.Time) ([]models.BudgetProgress, error) {
				now := time.Now().UTC()
				assert.Equal(t, now.Year(), month.Year())
				assert.Equal(t, now.Month(), month.Month())
				assert.Equal(t, 1, month.Day())
				return nil, nil
			})

		_, err := svc.ListBudgets(ctx, userID, "")
		require.NoError(t, err)
	})
}

func TestBudgetService_DeleteBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	budgetID := uuid.New()

	store := NewMockBudgetStore(ctrl)
	svc := NewBudgetService(store)

	t.Run("success", func(t *testing.T) {
		store.EXPECT().Delete(ctx, userID, budgetID).Return(nil)
		assert.NoError(t, svc.DeleteBudget(ctx, userID, budgetID))
	})

	t.Run("not_found", func(t *testing.T) {
		store.EXPECT().Delete(ctx, userID, budgetID).Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.DeleteBudget(ctx, userID, budgetID), ErrBudgetNotFound)
	})
}
