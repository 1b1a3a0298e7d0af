package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/repositories"
	"github.com/monetrix/monetrix-server/internal/services"
)

// Ledger defines the transaction operations used by these handlers.
type Ledger interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, input services.TransactionInput) (uuid.UUID, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, input services.TransactionInput) error
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter repositories.TransactionFilter) ([]models.TransactionDB, error)
}

// TransactionRequest represents the JSON body for creating or updating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Primary account identifier
	// required: true
	AccountID string `json:"account_id"`

	// Counterparty account, transfers only
	ToAccountID string `json:"to_account_id,omitempty"`

	// Category identifier, optional
	CategoryID string `json:"category_id,omitempty"`

	// Transaction type: income, expense or transfer
	// required: true
	// default: expense
	Type string `json:"type"`

	// Transaction status: confirmed or pending
	// required: true
	// default: confirmed
	Status string `json:"status"`

	// Amount as a decimal string, locale separators accepted
	// required: true
	// default: 50.00
	Amount string `json:"amount"`

	// Free-form description
	Description string `json:"description"`

	// Tags, lowercased and deduplicated on write
	Tags []string `json:"tags,omitempty"`

	// Date of occurrence, "2006-01-02" or RFC 3339
	// required: true
	OccurredOn string `json:"occurred_on"`
}

// TransactionResponse represents a created or updated transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Identifier of the transaction
	TransactionID string `json:"transaction_id"`
}

func transactionInput(req TransactionRequest) services.TransactionInput {
	return services.TransactionInput{
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Status:      req.Status,
		Amount:      req.Amount,
		Description: req.Description,
		Tags:        req.Tags,
		OccurredOn:  req.OccurredOn,
	}
}

// writeLedgerError maps ledger service errors to HTTP responses.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAccountNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Account not found"})
	case errors.Is(err, services.ErrTransactionNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Transaction not found"})
	case errors.Is(err, services.ErrVersionConflict):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Transaction was modified concurrently, retry with fresh data"})
	default:
		logger.Log.Errorw("transaction operation failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}

// NewCreateTransactionHandler returns an HTTP handler that records a transaction.
// @Summary Create transaction
// @Description Records a transaction. A confirmed transaction immediately adjusts the account balance; a confirmed transfer also credits the counterparty account.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 201 {object} handlers.TransactionResponse "Transaction created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc Ledger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		transactionID, err := svc.CreateTransaction(r.Context(), userID, transactionInput(req))
		if err != nil {
			writeLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TransactionResponse{TransactionID: transactionID.String()})
	}
}

// NewListTransactionsHandler returns an HTTP handler listing transactions.
// @Summary List transactions
// @Description Returns the user's transactions, newest first, narrowed by optional filters.
// @Tags transactions
// @Produce json
// @Param account_id query string false "Filter by account"
// @Param type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Param month query string false "Filter by month, format 2006-01"
// @Param limit query int false "Page size, default 50"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.TransactionDB "Transactions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc Ledger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		filter, err := parseTransactionFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		transactions, err := svc.ListTransactions(r.Context(), userID, filter)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(transactions)
	}
}

func parseTransactionFilter(r *http.Request) (repositories.TransactionFilter, error) {
	var filter repositories.TransactionFilter
	q := r.URL.Query()

	if raw := q.Get("account_id"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid account_id filter")
		}
		filter.AccountID = &accountID
	}
	if raw := q.Get("type"); raw != "" {
		if !models.ValidTransactionType(raw) {
			return filter, errors.New("invalid type filter")
		}
		filter.Type = &raw
	}
	if raw := q.Get("status"); raw != "" {
		if !models.ValidTransactionStatus(raw) {
			return filter, errors.New("invalid status filter")
		}
		filter.Status = &raw
	}
	if raw := q.Get("month"); raw != "" {
		month, err := time.Parse("2006-01", raw)
		if err != nil {
			return filter, errors.New("invalid month filter, expected 2006-01")
		}
		filter.Month = &month
	}

	filter.Limit = 50
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, errors.New("invalid offset")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// NewGetTransactionHandler returns an HTTP handler fetching one transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.TransactionDB "Transaction"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc Ledger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		transactionID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		transaction, err := svc.GetTransaction(r.Context(), userID, transactionID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(transaction)
	}
}

// NewUpdateTransactionHandler returns an HTTP handler editing a transaction.
// @Summary Update transaction
// @Description Edits a transaction. If the stored transaction was confirmed its old balance effect is reversed before the new one is applied, so the account ends with the net difference.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 200 {object} handlers.TransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Concurrent modification"
// @Router /transactions/{id} [put]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc Ledger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		transactionID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.UpdateTransaction(r.Context(), userID, transactionID, transactionInput(req)); err != nil {
			writeLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionResponse{TransactionID: transactionID.String()})
	}
}

// NewDeleteTransactionHandler returns an HTTP handler removing a transaction.
// @Summary Delete transaction
// @Description Deletes a transaction and reverses its balance effect exactly once if it was confirmed.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "Transaction deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Concurrent modification"
// @Router /transactions/{id} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc Ledger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		transactionID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
			writeLedgerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
