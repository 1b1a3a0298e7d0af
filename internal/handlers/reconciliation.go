package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
)

// DriftChecker defines the balance verification used by this handler.
type DriftChecker interface {
	Check(ctx context.Context, userID uuid.UUID) ([]models.AccountDrift, error)
}

// AuditLister defines the audit log read used by this handler.
type AuditLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEntryDB, error)
}

// ReconciliationResponse represents the result of a balance check
// swagger:model ReconciliationResponse
type ReconciliationResponse struct {
	// Accounts whose stored balance disagrees with the transaction ledger
	Drifts []models.AccountDrift `json:"drifts"`
}

// NewReconciliationHandler returns an HTTP handler that compares each
// account's stored balance against the sum of its confirmed transactions.
// @Summary Check balances
// @Description Recomputes each active account's balance from its opening balance and confirmed transactions and reports any drift beyond tolerance.
// @Tags reconciliation
// @Produce json
// @Success 200 {object} handlers.ReconciliationResponse "Drift report, empty when consistent"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /reconciliation [post]
// @Security BearerAuth
func NewReconciliationHandler(svc DriftChecker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		drifts, err := svc.Check(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("balance check failed", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if drifts == nil {
			drifts = []models.AccountDrift{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReconciliationResponse{Drifts: drifts})
	}
}

// NewAuditLogHandler returns an HTTP handler listing recent audit entries.
// @Summary List audit log
// @Description Returns the user's most recent audit entries, including failed balance adjustments and detected drifts.
// @Tags reconciliation
// @Produce json
// @Param limit query int false "Page size, default 100"
// @Success 200 {array} models.AuditEntryDB "Audit entries"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /audit [get]
// @Security BearerAuth
func NewAuditLogHandler(repo AuditLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		limit := 100
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid limit"})
				return
			}
			limit = parsed
		}

		entries, err := repo.ListByUserID(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list audit entries", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}
