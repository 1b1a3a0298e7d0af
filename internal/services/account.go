package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/normalize"
)

// AccountWriter defines account write operations used by the service.
type AccountWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name, accountType, currency string, openingBalance float64) (uuid.UUID, error)
	Update(ctx context.Context, userID, accountID uuid.UUID, name, accountType, currency string) error
	Archive(ctx context.Context, userID, accountID uuid.UUID) error
}

// AccountLister defines account read operations used by the service.
type AccountLister interface {
	GetByID(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]models.AccountDB, error)
}

// AccountService manages account lifecycle. The balance column is seeded
// once at insert and afterwards written only by the
// update_account_balance procedure.
type AccountService struct {
	reader AccountLister
	writer AccountWriter
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader AccountLister, writer AccountWriter) *AccountService {
	return &AccountService{reader: reader, writer: writer}
}

// CreateAccount creates an account, optionally seeding an opening balance.
// openingBalance is a raw amount string, empty for zero.
func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID, name, accountType, currency, openingBalance string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !models.ValidAccountType(accountType) {
		return uuid.Nil, fmt.Errorf("%w: invalid account type %q", ErrValidation, accountType)
	}
	if len(currency) != 3 {
		return uuid.Nil, fmt.Errorf("%w: invalid currency %q", ErrValidation, currency)
	}

	var opening float64
	if openingBalance != "" {
		parsed, err := normalize.Amount(openingBalance)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		opening = parsed
	}

	accountID, err := s.writer.Save(ctx, userID, name, accountType, currency, opening)
	if err != nil {
		logger.Log.Errorw("failed to save account", "userID", userID, "error", err)
		return uuid.Nil, err
	}

	return accountID, nil
}

// GetAccount fetches one account.
func (s *AccountService) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountDB, error) {
	account, err := s.reader.GetByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return account, nil
}

// ListAccounts returns the user's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]models.AccountDB, error) {
	return s.reader.ListByUserID(ctx, userID, includeArchived)
}

// UpdateAccount changes the mutable account fields.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, name, accountType, currency string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !models.ValidAccountType(accountType) {
		return fmt.Errorf("%w: invalid account type %q", ErrValidation, accountType)
	}
	if len(currency) != 3 {
		return fmt.Errorf("%w: invalid currency %q", ErrValidation, currency)
	}

	if err := s.writer.Update(ctx, userID, accountID, name, accountType, currency); err != nil {
		logger.Log.Errorw("failed to update account", "accountID", accountID, "error", err)
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return nil
}

// ArchiveAccount soft-deletes an account. Its transactions and stored
// balance are kept for reporting.
func (s *AccountService) ArchiveAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	if err := s.writer.Archive(ctx, userID, accountID); err != nil {
		logger.Log.Errorw("failed to archive account", "accountID", accountID, "error", err)
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return nil
}
