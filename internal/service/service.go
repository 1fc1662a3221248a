package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service with the given storage. Ledger writes go
// through processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store),
	}
}
