package transaction

import (
	"context"
	"errors"
)

// ErrWriterClosed is returned when a Writer is used after Flush or Discard.
var ErrWriterClosed = errors.New("transaction writer closed")

// Writer stages inserts and applies them to the table in a single batch.
type Writer struct {
	table  ITransactionTable
	staged []*Transaction
	closed bool
}

func NewWriter(table ITransactionTable) *Writer {
	return &Writer{table: table}
}

// Insert stages a copy of row. Nothing is visible to readers until Flush.
func (w *Writer) Insert(_ context.Context, row *Transaction) error {
	if w.closed {
		return ErrWriterClosed
	}
	staged := *row
	w.staged = append(w.staged, &staged)
	return nil
}

// Flush applies every staged insert and closes the writer.
func (w *Writer) Flush(ctx context.Context) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	if len(w.staged) == 0 {
		return nil
	}
	err := w.table.Insert(ctx, w.staged)
	w.staged = nil
	return err
}

// Discard drops every staged insert and closes the writer.
func (w *Writer) Discard() {
	w.closed = true
	w.staged = nil
}
