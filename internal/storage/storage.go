package storage

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Storage struct {
	Transactions transaction.ITransactionTable
	Accounts     *account.Reader
}

// NewStorage creates a Storage backed by an empty in-memory ledger.
func NewStorage() *Storage {
	return NewStorageWithTable(transaction.NewMemoryTable())
}

func NewStorageWithTable(table transaction.ITransactionTable) *Storage {
	return &Storage{
		Transactions: table,
		Accounts:     account.NewReader(table),
	}
}

// Write opens a staged writer against the ledger.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := NewWriter(ctx, s.Transactions)
	return &w, nil
}

// Reset empties the ledger when the backing table supports it. Test use only.
func (s *Storage) Reset() {
	if r, ok := s.Transactions.(interface{ Reset() }); ok {
		r.Reset()
	}
}
