package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/services"
)

// Summarizer defines the dashboard aggregation used by this handler.
type Summarizer interface {
	GetSummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlySummary, error)
}

// NewDashboardHandler returns an HTTP handler serving the monthly summary.
// @Summary Monthly dashboard
// @Description Returns income and expense totals, expenses by category, per-currency balances and the net worth converted to the user's base currency. Results are cached until the next ledger mutation.
// @Tags dashboard
// @Produce json
// @Param month query string false "Month, format 2006-01; defaults to current"
// @Success 200 {object} models.MonthlySummary "Summary"
// @Failure 400 {object} handlers.ErrorResponse "Invalid month"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc Summarizer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		summary, err := svc.GetSummary(r.Context(), userID, r.URL.Query().Get("month"))
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to build dashboard summary", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
