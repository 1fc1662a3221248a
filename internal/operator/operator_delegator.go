package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// ErrStopped is returned by Process once Stop has been called.
var ErrStopped = errors.New("operator stopped")

const defaultQueueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    *storage.Storage
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	stateMu sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, logger *logrus.Logger, numWorkers int, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop closes the queue, lets workers drain it, and waits for them to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMu.Unlock()

		d.wg.Wait()
		d.logger.Info("OperatorDelegator.Stop")
	})
}

// Process enqueues action and blocks until a worker has committed or rejected it.
// If ctx is done before a worker picks the item up, the item is abandoned and
// ctx.Err() is returned. Once a worker holds the item, Process always reports
// the worker's outcome.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
		state:    new(atomic.Int32),
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		if item.abandon() {
			return ctx.Err()
		}
		return (<-respCh).err
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stateMu.RLock()
	defer d.stateMu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
