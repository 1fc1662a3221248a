package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// TransactionStatus represents a transaction status in the service layer.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a read-only snapshot of a ledger transaction.
type Transaction struct {
	ID          uuid.UUID
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
	Timestamp   time.Time
	Status      TransactionStatus
}

// CreateTransactionInput carries the caller-supplied fields of a new transaction.
type CreateTransactionInput struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
}

// TransactionFilter holds optional list criteria. Empty strings are ignored.
// From and To accept RFC 3339 timestamps or YYYY-MM-DD dates.
type TransactionFilter struct {
	AccountID string
	Type      TransactionType
	From      string
	To        string
}

func (f *TransactionFilter) isEmpty() bool {
	return f == nil || (f.AccountID == "" && f.Type == "" && f.From == "" && f.To == "")
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		FromAccount: row.FromAccount,
		ToAccount:   row.ToAccount,
		Amount:      row.Amount,
		Currency:    row.Currency,
		Type:        TransactionType(row.Type),
		Timestamp:   row.Timestamp,
		Status:      TransactionStatus(row.Status),
	}
}
