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

// GoalManager defines the savings goal operations used by these handlers.
type GoalManager interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, name, targetAmount, dueDate string) (uuid.UUID, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.GoalDB, error)
	Contribute(ctx context.Context, userID, goalID uuid.UUID, amount string) (*models.GoalDB, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}

// GoalRequest represents the JSON body for creating a goal
// swagger:model GoalRequest
type GoalRequest struct {
	// Display name
	// required: true
	// default: Trip to Salvador
	Name string `json:"name"`

	// Target amount as a decimal string
	// required: true
	// default: 3000.00
	TargetAmount string `json:"target_amount"`

	// Optional due date, format 2006-01-02
	DueDate string `json:"due_date,omitempty"`
}

// GoalResponse represents a created goal
// swagger:model GoalResponse
type GoalResponse struct {
	// Identifier of the goal
	GoalID string `json:"goal_id"`
}

// ContributeRequest represents the JSON body for a goal contribution
// swagger:model ContributeRequest
type ContributeRequest struct {
	// Contribution amount as a decimal string
	// required: true
	// default: 100.00
	Amount string `json:"amount"`
}

// NewCreateGoalHandler returns an HTTP handler creating a savings goal.
// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body handlers.GoalRequest true "Goal"
// @Success 201 {object} handlers.GoalResponse "Goal created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid goal data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /goals [post]
// @Security BearerAuth
func NewCreateGoalHandler(svc GoalManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		var req GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		goalID, err := svc.CreateGoal(r.Context(), userID, req.Name, req.TargetAmount, req.DueDate)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create goal", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(GoalResponse{GoalID: goalID.String()})
	}
}

// NewListGoalsHandler returns an HTTP handler listing the user's goals.
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} models.GoalDB "Goals"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /goals [get]
// @Security BearerAuth
func NewListGoalsHandler(svc GoalManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		goals, err := svc.ListGoals(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list goals", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(goals)
	}
}

// NewContributeHandler returns an HTTP handler adding to a goal's saved amount.
// @Summary Contribute to goal
// @Description Adds the amount to the goal's saved total. The goal is marked achieved when the total reaches the target.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body handlers.ContributeRequest true "Contribution"
// @Success 200 {object} models.GoalDB "Updated goal"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Goal not found"
// @Router /goals/{id}/contribute [post]
// @Security BearerAuth
func NewContributeHandler(svc GoalManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		goalID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req ContributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		goal, err := svc.Contribute(r.Context(), userID, goalID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGoalNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Goal not found"})
			default:
				logger.Log.Errorw("failed to contribute to goal", "goalID", goalID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(goal)
	}
}

// NewDeleteGoalHandler returns an HTTP handler removing a goal.
// @Summary Delete goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 204 "Goal deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Goal not found"
// @Router /goals/{id} [delete]
// @Security BearerAuth
func NewDeleteGoalHandler(svc GoalManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		goalID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.DeleteGoal(r.Context(), userID, goalID); err != nil {
			if errors.Is(err, services.ErrGoalNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Goal not found"})
				return
			}
			logger.Log.Errorw("failed to delete goal", "goalID", goalID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
