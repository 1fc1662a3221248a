package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/validation"
)

// AccountService derives account snapshots from the ledger.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetBalance returns the signed balance of accountID. Accounts without
// history have a zero balance in the default currency.
func (s *AccountService) GetBalance(ctx context.Context, accountID string) (*Balance, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}

	balance, err := s.storage.Accounts.Balance(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("derive balance: %w", err)
	}
	return balanceFromStorage(balance), nil
}

// GetSummary returns deposit and withdrawal totals, the transaction count,
// and the most recent transaction time of accountID.
func (s *AccountService) GetSummary(ctx context.Context, accountID string) (*Summary, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}

	summary, err := s.storage.Accounts.Summary(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("derive summary: %w", err)
	}
	return summaryFromStorage(summary), nil
}

func validateAccountID(accountID string) error {
	if validation.IsAccountID(accountID) {
		return nil
	}
	return newValidationError(FieldError{
		Field:   "accountId",
		Message: validation.AccountFormatMessage,
		Value:   accountID,
	})
}
