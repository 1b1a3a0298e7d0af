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

// AccountManager defines the account operations used by these handlers.
type AccountManager interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, name, accountType, currency, openingBalance string) (uuid.UUID, error)
	GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountDB, error)
	ListAccounts(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]models.AccountDB, error)
	UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, name, accountType, currency string) error
	ArchiveAccount(ctx context.Context, userID, accountID uuid.UUID) error
}

// AccountRequest represents the JSON body for creating or updating an account
// swagger:model AccountRequest
type AccountRequest struct {
	// Display name
	// required: true
	// default: Main checking
	Name string `json:"name"`

	// Account type
	// required: true
	// default: checking
	Type string `json:"type"`

	// ISO 4217 currency code
	// required: true
	// default: BRL
	Currency string `json:"currency"`

	// Opening balance, accepted as a decimal string; only used on create
	// default: 1000.00
	OpeningBalance string `json:"opening_balance"`
}

// AccountResponse represents a created account
// swagger:model AccountResponse
type AccountResponse struct {
	// Identifier of the account
	AccountID string `json:"account_id"`
}

// NewCreateAccountHandler returns an HTTP handler for creating an account.
// @Summary Create account
// @Description Creates an account for the calling user, optionally seeded with an opening balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.AccountRequest true "Account"
// @Success 201 {object} handlers.AccountResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid account data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /accounts [post]
// @Security BearerAuth
func NewCreateAccountHandler(svc AccountManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		var req AccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		accountID, err := svc.CreateAccount(r.Context(), userID, req.Name, req.Type, req.Currency, req.OpeningBalance)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create account", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AccountResponse{AccountID: accountID.String()})
	}
}

// NewListAccountsHandler returns an HTTP handler listing the user's accounts.
// @Summary List accounts
// @Description Returns the calling user's accounts, active only unless include_archived=true.
// @Tags accounts
// @Produce json
// @Param include_archived query bool false "Include archived accounts"
// @Success 200 {array} models.AccountDB "Accounts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /accounts [get]
// @Security BearerAuth
func NewListAccountsHandler(svc AccountManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		includeArchived := r.URL.Query().Get("include_archived") == "true"

		accounts, err := svc.ListAccounts(r.Context(), userID, includeArchived)
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(accounts)
	}
}

// NewGetAccountHandler returns an HTTP handler fetching one account.
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.AccountDB "Account"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id} [get]
// @Security BearerAuth
func NewGetAccountHandler(svc AccountManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		accountID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		account, err := svc.GetAccount(r.Context(), userID, accountID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to get account", "accountID", accountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(account)
	}
}

// NewUpdateAccountHandler returns an HTTP handler updating account fields.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body handlers.AccountRequest true "Account"
// @Success 200 {object} handlers.AccountResponse "Account updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid account data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id} [put]
// @Security BearerAuth
func NewUpdateAccountHandler(svc AccountManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		accountID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req AccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.UpdateAccount(r.Context(), userID, accountID, req.Name, req.Type, req.Currency)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to update account", "accountID", accountID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountResponse{AccountID: accountID.String()})
	}
}

// NewArchiveAccountHandler returns an HTTP handler archiving an account.
// @Summary Archive account
// @Description Soft-deletes an account. Its transactions and balance are kept for reporting.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 204 "Account archived"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id} [delete]
// @Security BearerAuth
func NewArchiveAccountHandler(svc AccountManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		accountID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.ArchiveAccount(r.Context(), userID, accountID); err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to archive account", "accountID", accountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
