package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is a unit of work performed against a staged storage writer.
// The operator commits the writer when Perform succeeds and rolls it back otherwise.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
