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

func TestGoalService_CreateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	store := NewMockGoalStore(ctrl)
	svc := NewGoalService(store)

	t.Run("with_due_date", func(t *testing.T) {
		due := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
		store.EXPECT().Save(ctx, userID, "Trip to Lisbon", 12000.0, &due).Return(goalID, nil)

		got, err := svc.CreateGoal(ctx, userID, "Trip to Lisbon", "12.000,00", "2026-12-31")
		require.NoError(t, err)
		assert.Equal(t, goalID, got)
	})

	t.Run("without_due_date", func(t *testing.T) {
		store.EXPECT().Save(ctx, userID, "Emergency fund", 5000.0, nil).Return(goalID, nil)

		_, err := svc.CreateGoal(ctx, userID, "Emergency fund", "5000", "")
		require.NoError(t, err)
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := svc.CreateGoal(ctx, userID, "", "5000", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad_target", func(t *testing.T) {
		_, err := svc.CreateGoal(ctx, userID, "Trip", "free", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad_due_date", func(t *testing.T) {
		_, err := svc.CreateGoal(ctx, userID, "Trip", "5000", "someday")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestGoalService_Contribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	store := NewMockGoalStore(ctrl)
	svc := NewGoalService(store)

	t.Run("success", func(t *testing.T) {
		store.EXPECT().Contribute(ctx, userID, goalID, 250.0).
			Return(&models.GoalDB{GoalID: goalID, SavedAmount: 1250.0}, nil)

		got, err := svc.Contribute(ctx, userID, goalID, "250.00")
		require.NoError(t, err)
		assert.InDelta(t, 1250.0, got.SavedAmount, 1e-9)
	})

	t.Run("bad_amount", func(t *testing.T) {
		_, err := svc.Contribute(ctx, userID, goalID, "0")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("not_found", func(t *testing.T) {
		store.EXPECT().Contribute(ctx, userID, goalID, 250.0).Return(nil, sql.ErrNoRows)

		_, err := svc.Contribute(ctx, userID, goalID, "250.00")
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestGoalService_DeleteGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	store := NewMockGoalStore(ctrl)
	svc := NewGoalService(store)

	t.Run("success", func(t *testing.T) {
		store.EXPECT().Delete(ctx, userID, goalID).Return(nil)
		assert.NoError(t, svc.DeleteGoal(ctx, userID, goalID))
	})

	t.Run("not_found", func(t *testing.T) {
		store.EXPECT().Delete(ctx, userID, goalID).Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.DeleteGoal(ctx, userID, goalID), ErrGoalNotFound)
	})
}
