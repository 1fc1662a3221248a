package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionService is a mock for the transaction handler interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input service.CreateTransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) GetAllTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetTransactionByID(ctx context.Context, id string) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func sampleTransaction() service.Transaction {
	return service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		FromAccount: "ACC-12345",
		ToAccount:   "ACC-67890",
		Amount:      decimal.RequireFromString("100.50"),
		Currency:    "USD",
		Type:        service.TransactionTypeTransfer,
		Timestamp:   time.Date(2025, 6, 1, 12, 30, 15, 123_000_000, time.UTC),
		Status:      service.TransactionStatusCompleted,
	}
}
