package account

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Reader derives account state from the transaction table on every call.
type Reader struct {
	transactions transaction.ITransactionTable
}

func NewReader(transactions transaction.ITransactionTable) *Reader {
	return &Reader{transactions: transactions}
}

func (r *Reader) Balance(ctx context.Context, accountID string) (*Balance, error) {
	rows, err := r.transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return DeriveBalance(accountID, rows), nil
}

func (r *Reader) Summary(ctx context.Context, accountID string) (*Summary, error) {
	rows, err := r.transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return DeriveSummary(accountID, rows), nil
}
