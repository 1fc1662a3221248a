package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type AppendTransaction struct {
	Transaction *transaction.Transaction

	IAction
}

func (a *AppendTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Transaction == nil {
		return errors.New("append transaction: nil transaction")
	}
	return writer.Transaction.Insert(ctx, a.Transaction)
}
