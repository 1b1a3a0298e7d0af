package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monetrix/monetrix-server/internal/models"
)

type dashboardMocks struct {
	reports   *MockReportReader
	users     *MockUserGetter
	cache     *MockSummaryCache
	rateRepo  *MockExchangeRateReader
	rateCache *MockExchangeRateCacheReader
}

func newDashboardMocks(ctrl *gomock.Controller) (*DashboardService, *dashboardMocks) {
	m := &dashboardMocks{
		reports:   NewMockReportReader(ctrl),
		users:     NewMockUserGetter(ctrl),
		cache:     NewMockSummaryCache(ctrl),
		rateRepo:  NewMockExchangeRateReader(ctrl),
		rateCache: NewMockExchangeRateCacheReader(ctrl),
	}
	svc := NewDashboardService(m.reports, m.users, m.cache, m.rateRepo, m.rateCache)
	return svc, m
}

func TestDashboardService_GetSummary_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	svc, m := newDashboardMocks(ctrl)

	cached := &models.MonthlySummary{Month: march, Income: 3200, Expense: 1800}
	m.cache.EXPECT().Get(ctx, userID, march).Return(cached, nil)

	got, err := svc.GetSummary(ctx, userID, "2026-03")
	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestDashboardService_GetSummary_Recompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	svc, m := newDashboardMocks(ctrl)

	m.cache.EXPECT().Get(ctx, userID, march).Return(nil, errors.New("cache miss"))
	m.users.EXPECT().GetByID(ctx, userID).
		Return(&models.UserDB{UserID: userID, BaseCurrency: "BRL"}, nil)

	m.reports.EXPECT().MonthlyTotals(gomock.Any(), userID, march).Return(3200.0, 1800.0, nil)
	m.reports.EXPECT().ExpenseByCategory(gomock.Any(), userID, march).
		Return([]models.CategoryAmount{{Name: "Groceries", Amount: 900}}, nil)
	m.reports.EXPECT().ActiveBalances(gomock.Any(), userID).
		Return(map[string]float64{"BRL": 5000, "USD": 100}, nil)

	// USD balance goes through the rate cache first
	m.rateCache.EXPECT().GetExchangeRateForCurrency(ctx, "USD", "BRL").Return(float32(5.0), nil)

	m.cache.EXPECT().Set(ctx, userID, march, gomock.Any()).Return(nil)

	got, err := svc.GetSummary(ctx, userID, "2026-03")
	require.NoError(t, err)
	assert.InDelta(t, 3200.0, got.Income, 1e-9)
	assert.InDelta(t, 1800.0, got.Expense, 1e-9)
	assert.InDelta(t, 1400.0, got.Net, 1e-9)
	assert.InDelta(t, 5500.0, got.TotalBalance, 1e-6)
	assert.Equal(t, "BRL", got.BaseCurrency)
	assert.Len(t, got.ByCategory, 1)
}

func TestDashboardService_GetSummary_RateCacheFallthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	svc, m := newDashboardMocks(ctrl)

	m.cache.EXPECT().Get(ctx, userID, march).Return(nil, errors.New("cache miss"))
	m.users.EXPECT().GetByID(ctx, userID).
		Return(&models.UserDB{UserID: userID, BaseCurrency: "BRL"}, nil)

	m.reports.EXPECT().MonthlyTotals(gomock.Any(), userID, march).Return(0.0, 0.0, nil)
	m.reports.EXPECT().ExpenseByCategory(gomock.Any(), userID, march).Return(nil, nil)
	m.reports.EXPECT().ActiveBalances(gomock.Any(), userID).
		Return(map[string]float64{"EUR": 200}, nil)

	// rate cache misses, the provider answers and the rate is cached back
	m.rateCache.EXPECT().GetExchangeRateForCurrency(ctx, "EUR", "BRL").
		Return(float32(0), errors.New("not cached"))
	m.rateRepo.EXPECT().GetExchangeRateForCurrency(ctx, "EUR", "BRL").Return(float32(6.2), nil)
	m.rateCache.EXPECT().SetExchangeRateForCurrency(ctx, "EUR", "BRL", float32(6.2)).Return(nil)

	m.cache.EXPECT().Set(ctx, userID, march, gomock.Any()).Return(nil)

	got, err := svc.GetSummary(ctx, userID, "2026-03")
	require.NoError(t, err)
	assert.InDelta(t, 1240.0, got.TotalBalance, 0.01)
}

func TestDashboardService_GetSummary_AggregateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	svc, m := newDashboardMocks(ctrl)

	m.cache.EXPECT().Get(ctx, userID, march).Return(nil, errors.New("cache miss"))
	m.users.EXPECT().GetByID(ctx, userID).
		Return(&models.UserDB{UserID: userID, BaseCurrency: "BRL"}, nil)

	m.reports.EXPECT().MonthlyTotals(gomock.Any(), userID, march).
		Return(0.0, 0.0, errors.New("query timeout"))
	m.reports.EXPECT().ExpenseByCategory(gomock.Any(), userID, march).Return(nil, nil).AnyTimes()
	m.reports.EXPECT().ActiveBalances(gomock.Any(), userID).Return(nil, nil).AnyTimes()

	_, err := svc.GetSummary(ctx, userID, "2026-03")
	assert.EqualError(t, err, "query timeout")
}

func TestDashboardService_GetSummary_BadMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newDashboardMocks(ctrl)

	_, err := svc.GetSummary(context.Background(), uuid.New(), "Q1-2026")
	assert.ErrorIs(t, err, ErrValidation)
}
