package storage

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Writer struct {
	ctx         context.Context
	Transaction *transaction.Writer
}

func NewWriter(ctx context.Context, table transaction.ITransactionTable) Writer {
	return Writer{
		ctx:         ctx,
		Transaction: transaction.NewWriter(table),
	}
}

func (w *Writer) Commit() error {
	return w.Transaction.Flush(w.ctx)
}

func (w *Writer) Rollback() error {
	w.Transaction.Discard()
	return nil
}
