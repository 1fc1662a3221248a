package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/metrics"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/validation"
)

// dateOnlyLayout matches bare calendar dates, interpreted as UTC midnight.
const dateOnlyLayout = "2006-01-02"

// zonedDateLayouts are ISO 8601 timestamps carrying an offset or Z.
var zonedDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"}

// localDateLayouts are ISO 8601 timestamps without an offset, interpreted as UTC.
var localDateLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04"}

// ActionProcessor serialises ledger writes. Satisfied by operator.OperatorDelegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{
		storage:   store,
		processor: processor,
		now:       time.Now,
	}
}

// CreateTransaction validates input, assigns ID, timestamp and status, and appends
// the transaction to the ledger.
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	currency, err := validateCreateInput(input)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate transaction id: %w", err)
	}

	row := &transaction.Transaction{
		ID:          id,
		FromAccount: input.FromAccount,
		ToAccount:   input.ToAccount,
		Amount:      input.Amount,
		Currency:    currency,
		Type:        transaction.TransactionType(input.Type),
		Timestamp:   s.now().UTC().Truncate(time.Millisecond),
		Status:      transaction.TransactionStatusCompleted,
	}

	if err := s.processor.Process(ctx, &actions.AppendTransaction{Transaction: row}); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	metrics.TransactionsCreated.WithLabelValues(string(row.Type), row.Currency).Inc()

	created := transactionFromStorage(row)
	return &created, nil
}

func validateCreateInput(input CreateTransactionInput) (string, error) {
	var details []FieldError
	if !validation.IsAccountID(input.FromAccount) {
		details = append(details, FieldError{Field: "fromAccount", Message: validation.AccountFormatMessage, Value: input.FromAccount})
	}
	if !validation.IsAccountID(input.ToAccount) {
		details = append(details, FieldError{Field: "toAccount", Message: validation.AccountFormatMessage, Value: input.ToAccount})
	}
	if !validation.IsAmount(input.Amount) {
		details = append(details, FieldError{Field: "amount", Message: validation.AmountMessage, Value: input.Amount.String()})
	}
	currency, ok := validation.NormalizeCurrency(input.Currency)
	if !ok {
		details = append(details, FieldError{Field: "currency", Message: validation.CurrencyMessage, Value: input.Currency})
	}
	if !transaction.TransactionType(input.Type).IsValid() {
		details = append(details, FieldError{Field: "type", Message: typeMessage, Value: string(input.Type)})
	}

	if len(details) > 0 {
		return "", newValidationError(details...)
	}
	return currency, nil
}

const typeMessage = "Type must be one of deposit, withdrawal, transfer"

// GetAllTransactions returns every transaction, or only those matching filter when
// any criterion is set. Order is the ledger's insertion order.
func (s *TransactionService) GetAllTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	var storageFilter *transaction.TransactionFilter
	if !filter.isEmpty() {
		var err error
		storageFilter, err = filterToStorage(filter)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	result := make([]Transaction, len(rows))
	for i, row := range rows {
		result[i] = transactionFromStorage(row)
	}
	return result, nil
}

func filterToStorage(filter *TransactionFilter) (*transaction.TransactionFilter, error) {
	result := &transaction.TransactionFilter{}
	var details []FieldError

	if filter.AccountID != "" {
		accountID := filter.AccountID
		result.AccountID = &accountID
	}
	if filter.Type != "" {
		txType := transaction.TransactionType(filter.Type)
		if !txType.IsValid() {
			details = append(details, FieldError{Field: "type", Message: typeMessage, Value: string(filter.Type)})
		}
		result.Type = &txType
	}
	if filter.From != "" {
		from, err := parseDateBound(filter.From)
		if err != nil {
			details = append(details, FieldError{Field: "from", Message: dateMessage, Value: filter.From})
		}
		result.From = &from
	}
	if filter.To != "" {
		to, err := parseDateBound(filter.To)
		if err != nil {
			details = append(details, FieldError{Field: "to", Message: dateMessage, Value: filter.To})
		}
		result.To = &to
	}

	if len(details) > 0 {
		return nil, newValidationError(details...)
	}
	return result, nil
}

const dateMessage = "Date must be an ISO 8601 date or timestamp"

func parseDateBound(raw string) (time.Time, error) {
	for _, layout := range zonedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.ParseInLocation(dateOnlyLayout, raw, time.UTC)
}

// GetTransactionByID returns the transaction with the given ID.
// An unknown or malformed ID yields a NotFoundError.
func (s *TransactionService) GetTransactionByID(ctx context.Context, id string) (*Transaction, error) {
	notFound := &NotFoundError{Resource: "Transaction", ID: id}

	txID, err := uuid.FromString(id)
	if err != nil {
		return nil, notFound
	}

	row, err := s.storage.Transactions.FindByID(ctx, txID)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	found := transactionFromStorage(row)
	return &found, nil
}
