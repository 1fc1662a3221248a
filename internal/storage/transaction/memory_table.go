package transaction

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"
)

var _ ITransactionTable = (*MemoryTable)(nil)

// MemoryTable is an append-only, process-local transaction table.
// A single RWMutex covers inserts and every read traversal, so readers never
// observe a partially applied batch.
type MemoryTable struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]Transaction
	order []uuid.UUID
}

// NewMemoryTable creates an empty MemoryTable.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{
		rows: make(map[uuid.UUID]Transaction),
	}
}

// FindByID retrieves a transaction by primary key.
func (t *MemoryTable) FindByID(_ context.Context, id uuid.UUID) (*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// Insert stores rows keyed by ID. A row whose ID already exists replaces the
// stored value but keeps its original position.
func (t *MemoryTable) Insert(_ context.Context, rows []*Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range rows {
		if _, exists := t.rows[row.ID]; !exists {
			t.order = append(t.order, row.ID)
		}
		t.rows[row.ID] = *row
	}
	return nil
}

// List returns transactions matching the filter in insertion order. Nil filter returns all.
func (t *MemoryTable) List(_ context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.collect(filter.Matches), nil
}

// ListByAccount returns every transaction where accountID is the source or the destination.
func (t *MemoryTable) ListByAccount(_ context.Context, accountID string) ([]*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.collect(func(row *Transaction) bool {
		return row.Involves(accountID)
	}), nil
}

// Len returns the number of stored transactions.
func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Reset drops every stored transaction. Intended for test isolation only.
func (t *MemoryTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = make(map[uuid.UUID]Transaction)
	t.order = nil
}

// collect must be called with t.mu held.
func (t *MemoryTable) collect(keep func(*Transaction) bool) []*Transaction {
	result := make([]*Transaction, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep(&row) {
			result = append(result, &row)
		}
	}
	return result
}
