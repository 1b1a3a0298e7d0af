package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/normalize"
	"github.com/monetrix/monetrix-server/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrValidation is returned for malformed or missing required fields,
	// before any database call is made.
	ErrValidation = errors.New("validation failed")

	// ErrTransactionNotFound is returned when the transaction does not
	// exist or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountNotFound is returned when the referenced account does not
	// exist, is archived, or belongs to another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrVersionConflict is returned when a concurrent edit to the same
	// transaction won the race.
	ErrVersionConflict = errors.New("transaction was modified concurrently")
)

// TransactionInput carries the raw fields of a create or update request.
// Amount arrives as a string because clients send locale-formatted
// decimals; OccurredOn accepts "2006-01-02" or RFC 3339.
type TransactionInput struct {
	AccountID   string
	ToAccountID string // transfer counterparty, empty otherwise
	CategoryID  string // optional
	Type        string
	Status      string
	Amount      string
	Description string
	Tags        []string
	OccurredOn  string
}

// BalanceAdjuster invokes the update_account_balance procedure.
type BalanceAdjuster interface {
	AdjustBalance(ctx context.Context, accountID uuid.UUID, delta float64) error
}

// AccountReader fetches accounts for reference validation.
type AccountReader interface {
	GetByID(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountDB, error)
}

// TransactionReader defines transaction read operations used by the ledger.
type TransactionReader interface {
	GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, filter repositories.TransactionFilter) ([]models.TransactionDB, error)
}

// TransactionWriter defines transaction write operations used by the ledger.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) (uuid.UUID, error)
	Update(ctx context.Context, txn models.TransactionDB, expectedVersion int64) error
	Delete(ctx context.Context, userID, transactionID uuid.UUID, expectedVersion int64) error
}

// AuditWriter appends audit log rows.
type AuditWriter interface {
	Save(ctx context.Context, userID uuid.UUID, entity string, entityID uuid.UUID, action, detail string) error
}

// SummaryInvalidator drops cached dashboard summaries after a mutation.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService keeps account balances synchronized with the net effect of
// confirmed transactions: creating applies the effect, editing reverts the
// old effect and applies the new one, deleting reverts once. Balance
// adjustments never fail the request; a failed adjustment is audited and
// queued on the reconciliation topic instead.
type LedgerService struct {
	accounts    AccountReader
	adjuster    BalanceAdjuster
	reader      TransactionReader
	writer      TransactionWriter
	audit       AuditWriter
	cache       SummaryInvalidator
	eventWriter KafkaWriter
	reconWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	accounts AccountReader,
	adjuster BalanceAdjuster,
	reader TransactionReader,
	writer TransactionWriter,
	audit AuditWriter,
	cache SummaryInvalidator,
	eventWriter KafkaWriter,
	reconWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		accounts:    accounts,
		adjuster:    adjuster,
		reader:      reader,
		writer:      writer,
		audit:       audit,
		cache:       cache,
		eventWriter: eventWriter,
		reconWriter: reconWriter,
	}
}

// effectDelta is the signed effect of a transaction on its primary account:
// income adds, expense and transfer subtract.
func effectDelta(txnType string, amount float64) float64 {
	if txnType == models.TypeIncome {
		return amount
	}
	return -amount
}

// applyEffect applies the signed effect of a transaction to an account.
// Failures are logged, audited and queued for reconciliation but never
// returned: the primary row write must not be blocked by the side-effect.
func (s *LedgerService) applyEffect(ctx context.Context, userID, accountID, transactionID uuid.UUID, amount float64, txnType string) {
	s.adjust(ctx, userID, accountID, transactionID, effectDelta(txnType, amount))
}

// revertEffect applies the negated effect, used on edit and delete.
func (s *LedgerService) revertEffect(ctx context.Context, userID, accountID, transactionID uuid.UUID, amount float64, txnType string) {
	s.adjust(ctx, userID, accountID, transactionID, -effectDelta(txnType, amount))
}

func (s *LedgerService) adjust(ctx context.Context, userID, accountID, transactionID uuid.UUID, delta float64) {
	err := s.adjuster.AdjustBalance(ctx, accountID, delta)
	if err == nil {
		return
	}

	logger.Log.Warnw("balance adjustment failed, queueing for reconciliation",
		"accountID", accountID, "transactionID", transactionID, "delta", delta, "error", err)

	entry := models.ReconciliationEntry{
		EntryID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		AccountID:     accountID.String(),
		TransactionID: transactionID.String(),
		Delta:         delta,
		Reason:        err.Error(),
	}

	detail, _ := json.Marshal(entry)
	if auditErr := s.audit.Save(ctx, userID, "account", accountID, models.AuditBalanceAdjustFailed, string(detail)); auditErr != nil {
		logger.Log.Errorw("failed to audit balance adjustment failure",
			"accountID", accountID, "error", auditErr)
	}

	s.publish(ctx, s.reconWriter, entry.EntryID, detail)
}

// publish writes one message to Kafka, logging failures only.
func (s *LedgerService) publish(ctx context.Context, writer KafkaWriter, key string, value []byte) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "key", key)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish to Kafka", "key", key, "error", err)
	}
}

// publishEvent announces a committed ledger mutation.
func (s *LedgerService) publishEvent(ctx context.Context, userID uuid.UUID, txn models.TransactionDB, operation string) {
	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		TransactionID: txn.TransactionID.String(),
		UserID:        userID.String(),
		Operation:     operation,
		Amount:        txn.Amount,
		Type:          txn.Type,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transactionID", txn.TransactionID, "error", err)
		return
	}
	s.publish(ctx, s.eventWriter, event.EventID, data)
}

// invalidateSummaries drops cached dashboard data after a mutation.
func (s *LedgerService) invalidateSummaries(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate summary cache", "userID", userID, "error", err)
	}
}

// buildRow validates and normalizes raw input into a transaction row.
func buildRow(userID uuid.UUID, input TransactionInput) (models.TransactionDB, error) {
	var row models.TransactionDB

	accountID, err := uuid.Parse(input.AccountID)
	if err != nil {
		return row, fmt.Errorf("%w: invalid account reference %q", ErrValidation, input.AccountID)
	}

	if !models.ValidTransactionType(input.Type) {
		return row, fmt.Errorf("%w: invalid type %q", ErrValidation, input.Type)
	}
	if !models.ValidTransactionStatus(input.Status) {
		return row, fmt.Errorf("%w: invalid status %q", ErrValidation, input.Status)
	}

	amount, err := normalize.Amount(input.Amount)
	if err != nil {
		return row, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if input.OccurredOn == "" {
		return row, fmt.Errorf("%w: date is required", ErrValidation)
	}
	occurredOn, err := time.Parse("2006-01-02", input.OccurredOn)
	if err != nil {
		occurredOn, err = time.Parse(time.RFC3339, input.OccurredOn)
		if err != nil {
			return row, fmt.Errorf("%w: invalid date %q", ErrValidation, input.OccurredOn)
		}
	}

	var toAccountID *uuid.UUID
	if input.ToAccountID != "" {
		// only transfers carry a counterparty; a stray counterparty on an
		// income or expense would double-count in the ledger recomputation
		if input.Type != models.TypeTransfer {
			return row, fmt.Errorf("%w: counterparty account is only valid for transfers", ErrValidation)
		}
		parsed, err := uuid.Parse(input.ToAccountID)
		if err != nil {
			return row, fmt.Errorf("%w: invalid counterparty account reference %q", ErrValidation, input.ToAccountID)
		}
		if parsed == accountID {
			return row, fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
		}
		toAccountID = &parsed
	}

	var categoryID *uuid.UUID
	if input.CategoryID != "" {
		parsed, err := uuid.Parse(input.CategoryID)
		if err != nil {
			return row, fmt.Errorf("%w: invalid category reference %q", ErrValidation, input.CategoryID)
		}
		categoryID = &parsed
	}

	return models.TransactionDB{
		UserID:      userID,
		AccountID:   accountID,
		ToAccountID: toAccountID,
		CategoryID:  categoryID,
		Type:        input.Type,
		Status:      input.Status,
		Amount:      amount,
		Description: input.Description,
		Tags:        normalize.JoinTags(input.Tags),
		OccurredOn:  normalize.Day(occurredOn),
	}, nil
}

// checkAccount verifies the referenced account exists, is active and is
// owned by the user.
func (s *LedgerService) checkAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if account == nil || !account.Active {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return nil
}

// CreateTransaction validates, normalizes and inserts a transaction. A
// confirmed transaction immediately applies its effect to the primary
// account; a confirmed transfer additionally credits the counterparty with
// the same amount.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID uuid.UUID, input TransactionInput) (uuid.UUID, error) {
	row, err := buildRow(userID, input)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.checkAccount(ctx, userID, row.AccountID); err != nil {
		return uuid.Nil, err
	}
	if row.ToAccountID != nil {
		if err := s.checkAccount(ctx, userID, *row.ToAccountID); err != nil {
			return uuid.Nil, err
		}
	}

	transactionID, err := s.writer.Save(ctx, row)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "error", err)
		return uuid.Nil, err
	}
	row.TransactionID = transactionID

	if row.Status == models.StatusConfirmed {
		s.applyEffect(ctx, userID, row.AccountID, transactionID, row.Amount, row.Type)
		if row.Type == models.TypeTransfer && row.ToAccountID != nil {
			s.applyEffect(ctx, userID, *row.ToAccountID, transactionID, row.Amount, models.TypeIncome)
		}
	}

	s.publishEvent(ctx, userID, row, "create")
	s.invalidateSummaries(ctx, userID)

	return transactionID, nil
}

// UpdateTransaction edits a transaction as revert-then-reapply. The row is
// rewritten first, under an optimistic version check, and only then is the
// old effect reversed on the old account(s) and the new effect applied on
// the new account(s) — up to four adjustment calls in the worst case. A
// lost version race aborts before any adjustment, so a conflict response
// leaves every balance untouched.
func (s *LedgerService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, input TransactionInput) error {
	stored, err := s.reader.GetByID(ctx, userID, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to fetch transaction for update", "transactionID", transactionID, "error", err)
		return err
	}
	if stored == nil {
		return ErrTransactionNotFound
	}

	row, err := buildRow(userID, input)
	if err != nil {
		return err
	}
	row.TransactionID = transactionID

	if err := s.checkAccount(ctx, userID, row.AccountID); err != nil {
		return err
	}
	if row.ToAccountID != nil {
		if err := s.checkAccount(ctx, userID, *row.ToAccountID); err != nil {
			return err
		}
	}

	if err := s.writer.Update(ctx, row, stored.Version); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return ErrVersionConflict
		}
		logger.Log.Errorw("failed to update transaction", "transactionID", transactionID, "error", err)
		return err
	}

	if stored.Status == models.StatusConfirmed {
		s.revertEffect(ctx, userID, stored.AccountID, transactionID, stored.Amount, stored.Type)
		if stored.Type == models.TypeTransfer && stored.ToAccountID != nil {
			s.revertEffect(ctx, userID, *stored.ToAccountID, transactionID, stored.Amount, models.TypeIncome)
		}
	}

	if row.Status == models.StatusConfirmed {
		s.applyEffect(ctx, userID, row.AccountID, transactionID, row.Amount, row.Type)
		if row.Type == models.TypeTransfer && row.ToAccountID != nil {
			s.applyEffect(ctx, userID, *row.ToAccountID, transactionID, row.Amount, models.TypeIncome)
		}
	}

	s.publishEvent(ctx, userID, row, "update")
	s.invalidateSummaries(ctx, userID)

	return nil
}

// DeleteTransaction removes the row, then reverses its effect exactly once
// if it was confirmed. Deleting a pending transaction touches no balance.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	stored, err := s.reader.GetByID(ctx, userID, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to fetch transaction for delete", "transactionID", transactionID, "error", err)
		return err
	}
	if stored == nil {
		return ErrTransactionNotFound
	}

	if err := s.writer.Delete(ctx, userID, transactionID, stored.Version); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return ErrVersionConflict
		}
		logger.Log.Errorw("failed to delete transaction", "transactionID", transactionID, "error", err)
		return err
	}

	if stored.Status == models.StatusConfirmed {
		s.revertEffect(ctx, userID, stored.AccountID, transactionID, stored.Amount, stored.Type)
		if stored.Type == models.TypeTransfer && stored.ToAccountID != nil {
			s.revertEffect(ctx, userID, *stored.ToAccountID, transactionID, stored.Amount, models.TypeIncome)
		}
	}

	s.publishEvent(ctx, userID, *stored, "delete")
	s.invalidateSummaries(ctx, userID)

	return nil
}

// GetTransaction fetches one transaction.
func (s *LedgerService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error) {
	stored, err := s.reader.GetByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrTransactionNotFound
	}
	return stored, nil
}

// ListTransactions returns the user's transactions narrowed by filter.
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID, filter repositories.TransactionFilter) ([]models.TransactionDB, error) {
	return s.reader.ListByUserID(ctx, userID, filter)
}
