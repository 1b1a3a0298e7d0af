package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/services"
)

// BudgetManager defines the budget operations used by these handlers.
type BudgetManager interface {
	SetBudget(ctx context.Context, userID uuid.UUID, categoryID, limitAmount, month string) (uuid.UUID, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, month string) ([]models.BudgetProgress, error)
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
}

// BudgetRequest represents the JSON body for setting a budget
// swagger:model BudgetRequest
type BudgetRequest struct {
	// Category the limit applies to
	// required: true
	CategoryID string `json:"category_id"`

	// Monthly limit as a decimal string
	// required: true
	// default: 500.00
	LimitAmount string `json:"limit_amount"`

	// Month, format 2006-01; empty means the current month
	Month string `json:"month"`
}

// BudgetResponse represents a created or updated budget
// swagger:model BudgetResponse
type BudgetResponse struct {
	// Identifier of the budget
	BudgetID string `json:"budget_id"`
}

// NewSetBudgetHandler returns an HTTP handler that upserts a monthly budget.
// @Summary Set budget
// @Description Creates or replaces the limit for a category and month.
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body handlers.BudgetRequest true "Budget"
// @Success 200 {object} handlers.BudgetResponse "Budget set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid budget data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /budgets [put]
// @Security BearerAuth
func NewSetBudgetHandler(svc BudgetManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		var req BudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		budgetID, err := svc.SetBudget(r.Context(), userID, req.CategoryID, req.LimitAmount, req.Month)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to set budget", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BudgetResponse{BudgetID: budgetID.String()})
	}
}

// NewListBudgetsHandler returns an HTTP handler listing a month's budgets.
// @Summary List budgets
// @Description Returns the month's budgets with the spent amount aggregated from confirmed expenses.
// @Tags budgets
// @Produce json
// @Param month query string false "Month, format 2006-01; defaults to current"
// @Success 200 {array} models.BudgetProgress "Budgets with progress"
// @Failure 400 {object} handlers.ErrorResponse "Invalid month"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /budgets [get]
// @Security BearerAuth
func NewListBudgetsHandler(svc BudgetManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		budgets, err := svc.ListBudgets(r.Context(), userID, r.URL.Query().Get("month"))
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to list budgets", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(budgets)
	}
}

// NewDeleteBudgetHandler returns an HTTP handler removing a budget.
// @Summary Delete budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 204 "Budget deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Budget not found"
// @Router /budgets/{id} [delete]
// @Security BearerAuth
func NewDeleteBudgetHandler(svc BudgetManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		budgetID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.DeleteBudget(r.Context(), userID, budgetID); err != nil {
			if errors.Is(err, services.ErrBudgetNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Budget not found"})
				return
			}
			logger.Log.Errorw("failed to delete budget", "budgetID", budgetID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
