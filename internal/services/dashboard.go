package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"golang.org/x/sync/errgroup"
)

// ReportReader runs the dashboard aggregations.
type ReportReader interface {
	MonthlyTotals(ctx context.Context, userID uuid.UUID, month time.Time) (income, expense float64, err error)
	ExpenseByCategory(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.CategoryAmount, error)
	ActiveBalances(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}

// SummaryCache caches computed summaries.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID, month time.Time) (*models.MonthlySummary, error)
	Set(ctx context.Context, userID uuid.UUID, month time.Time, summary *models.MonthlySummary) error
}

// ExchangeRateReader retrieves exchange rates from the external provider.
type ExchangeRateReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
}

// ExchangeRateCacheReader caches exchange rates.
type ExchangeRateCacheReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
	SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float32) error
}

// UserGetter fetches the user row for base-currency resolution.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// DashboardService computes the monthly KPI summary: income/expense totals,
// category distribution and the active-account net balance converted to the
// user's base currency. The three aggregate queries are independent reads
// and run in parallel.
type DashboardService struct {
	reports   ReportReader
	users     UserGetter
	cache     SummaryCache
	rateRepo  ExchangeRateReader
	rateCache ExchangeRateCacheReader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	reports ReportReader,
	users UserGetter,
	cache SummaryCache,
	rateRepo ExchangeRateReader,
	rateCache ExchangeRateCacheReader,
) *DashboardService {
	return &DashboardService{
		reports:   reports,
		users:     users,
		cache:     cache,
		rateRepo:  rateRepo,
		rateCache: rateCache,
	}
}

// GetSummary returns the cached summary when fresh, otherwise recomputes it.
// month is "2006-01" or empty for the current month.
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlySummary, error) {
	parsedMonth, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, parsedMonth); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user for summary", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	var (
		income, expense float64
		byCategory      []models.CategoryAmount
		balances        map[string]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, expense, err = s.reports.MonthlyTotals(gctx, userID, parsedMonth)
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = s.reports.ExpenseByCategory(gctx, userID, parsedMonth)
		return err
	})
	g.Go(func() error {
		var err error
		balances, err = s.reports.ActiveBalances(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to compute summary", "userID", userID, "error", err)
		return nil, err
	}

	totalBalance, err := s.convertBalances(ctx, balances, user.BaseCurrency)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{
		Month:        parsedMonth,
		Income:       income,
		Expense:      expense,
		Net:          income - expense,
		TotalBalance: totalBalance,
		BaseCurrency: user.BaseCurrency,
		ByCategory:   byCategory,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, parsedMonth, summary); err != nil {
			logger.Log.Warnw("failed to cache summary", "userID", userID, "error", err)
		}
	}

	return summary, nil
}

// convertBalances folds per-currency balances into the base currency using
// the cached rate when available, falling back to the external provider.
func (s *DashboardService) convertBalances(ctx context.Context, balances map[string]float64, baseCurrency string) (float64, error) {
	var total float64
	for currency, balance := range balances {
		if currency == baseCurrency {
			total += balance
			continue
		}

		rate, err := s.lookupRate(ctx, currency, baseCurrency)
		if err != nil {
			logger.Log.Errorw("failed to get exchange rate",
				"from", currency, "to", baseCurrency, "error", err)
			return 0, err
		}
		total += balance * float64(rate)
	}
	return total, nil
}

func (s *DashboardService) lookupRate(ctx context.Context, fromCurrency, toCurrency string) (float32, error) {
	if s.rateCache != nil {
		if rate, err := s.rateCache.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency); err == nil {
			return rate, nil
		}
	}

	rate, err := s.rateRepo.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency)
	if err != nil {
		return 0, err
	}

	if s.rateCache != nil {
		if err := s.rateCache.SetExchangeRateForCurrency(ctx, fromCurrency, toCurrency, rate); err != nil {
			logger.Log.Warnw("failed to cache exchange rate",
				"from", fromCurrency, "to", toCurrency, "error", err)
		}
	}
	return rate, nil
}
