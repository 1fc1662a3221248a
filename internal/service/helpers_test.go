package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// mockProcessor is a mock for ActionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newLedgerService wires a Service to an in-memory ledger and a running operator.
func newLedgerService(t *testing.T) (*Service, *storage.Storage) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, logger, 1, 0)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return NewService(store, delegator), store
}
