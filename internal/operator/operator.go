package operator

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up while the item was queued.
	if !item.claim() {
		return
	}
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		o.logger.WithError(err).Warn("Operator.processItem.perform")
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Nothing is visible yet, so a caller that gave up during Perform gets a clean failure.
	if err = item.ctx.Err(); err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		o.logger.WithError(err).Error("Operator.processItem.commit")
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

const (
	itemQueued int32 = iota
	itemClaimed
	itemAbandoned
)

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	state    *atomic.Int32
}

// claim marks the item as taken by a worker. It fails if the caller abandoned it.
func (i ActionItem) claim() bool {
	return i.state.CompareAndSwap(itemQueued, itemClaimed)
}

// abandon marks a still-queued item as dropped. It fails once a worker holds it.
func (i ActionItem) abandon() bool {
	return i.state.CompareAndSwap(itemQueued, itemAbandoned)
}

type ActionItemResponse struct {
	err error
}
