package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction exists for the requested ID.
var ErrNotFound = errors.New("transaction not found")

// TransactionType is the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionStatus is the processing state of a transaction.
// Only TransactionStatusCompleted is assigned today.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction represents a ledger record. Records are never mutated once inserted.
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

// Involves reports whether accountID is the source or the destination of t.
func (t *Transaction) Involves(accountID string) bool {
	return t.FromAccount == accountID || t.ToAccount == accountID
}

// TransactionFilter specifies filters for listing transactions.
// Nil fields are ignored; set fields are combined with AND.
type TransactionFilter struct {
	AccountID *string
	Type      *TransactionType
	From      *time.Time // inclusive
	To        *time.Time // inclusive
}

// IsEmpty reports whether no criteria are set.
func (f *TransactionFilter) IsEmpty() bool {
	return f == nil || (f.AccountID == nil && f.Type == nil && f.From == nil && f.To == nil)
}

// Matches reports whether t satisfies every criterion set on f.
func (f *TransactionFilter) Matches(t *Transaction) bool {
	if f == nil {
		return true
	}
	if f.AccountID != nil && !t.Involves(*f.AccountID) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.From != nil && t.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Timestamp.After(*f.To) {
		return false
	}
	return true
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, rows []*Transaction) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	ListByAccount(ctx context.Context, accountID string) ([]*Transaction, error)
}
