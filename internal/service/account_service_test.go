package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/validation"
)

func movement(from, to string, txType TransactionType, amount string) CreateTransactionInput {
	return CreateTransactionInput{
		FromAccount: from,
		ToAccount:   to,
		Amount:      decimal.RequireFromString(amount),
		Currency:    "USD",
		Type:        txType,
	}
}

func seedScenario(t *testing.T, svc *Service) time.Time {
	t.Helper()
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	inputs := []CreateTransactionInput{
		movement("ACC-EXT01", "ACC-AAAAA", TransactionTypeDeposit, "1000"),
		movement("ACC-EXT01", "ACC-AAAAA", TransactionTypeDeposit, "500"),
		movement("ACC-AAAAA", "ACC-EXT01", TransactionTypeWithdrawal, "200"),
		movement("ACC-AAAAA", "ACC-EXT01", TransactionTypeWithdrawal, "100"),
		movement("ACC-BBBBB", "ACC-AAAAA", TransactionTypeTransfer, "300"),
	}
	var last time.Time
	for i, input := range inputs {
		last = start.Add(time.Duration(i) * time.Hour)
		seed(t, svc.Transaction, last, input)
	}
	return last
}

// -- GetBalance tests --

func TestGetBalance_Scenario(t *testing.T) {
	svc, _ := newLedgerService(t)
	seedScenario(t, svc)

	balance, err := svc.Account.GetBalance(context.Background(), "ACC-AAAAA")

	require.NoError(t, err)
	assert.Equal(t, "ACC-AAAAA", balance.AccountID)
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString("1500")), balance.Balance.String())
	assert.Equal(t, "USD", balance.Currency)
}

func TestGetBalance_NoHistory(t *testing.T) {
	svc, _ := newLedgerService(t)

	balance, err := svc.Account.GetBalance(context.Background(), "ACC-99999")

	require.NoError(t, err)
	assert.True(t, balance.Balance.IsZero())
	assert.Equal(t, "USD", balance.Currency)
}

func TestGetBalance_InvalidAccount(t *testing.T) {
	svc, _ := newLedgerService(t)

	balance, err := svc.Account.GetBalance(context.Background(), "INVALID")

	assert.Nil(t, balance)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "accountId", validationErr.Details[0].Field)
	assert.Equal(t, validation.AccountFormatMessage, validationErr.Details[0].Message)
}

func TestGetBalance_StorageError(t *testing.T) {
	table := transaction.NewMockITransactionTable(t)
	table.EXPECT().ListByAccount(mock.Anything, "ACC-AAAAA").Return(nil, errors.New("database unavailable"))

	svc := NewAccountService(storage.NewStorageWithTable(table))

	balance, err := svc.GetBalance(context.Background(), "ACC-AAAAA")

	assert.Nil(t, balance)
	assert.EqualError(t, err, "derive balance: database unavailable")
}

// -- GetSummary tests --

func TestGetSummary_Scenario(t *testing.T) {
	svc, _ := newLedgerService(t)
	last := seedScenario(t, svc)

	summary, err := svc.Account.GetSummary(context.Background(), "ACC-AAAAA")

	require.NoError(t, err)
	assert.True(t, summary.TotalDeposits.Equal(decimal.RequireFromString("1500")))
	assert.True(t, summary.TotalWithdrawals.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, 5, summary.TransactionCount)
	require.NotNil(t, summary.MostRecentDate)
	assert.True(t, summary.MostRecentDate.Equal(last))
}

func TestGetSummary_NoHistory(t *testing.T) {
	svc, _ := newLedgerService(t)

	summary, err := svc.Account.GetSummary(context.Background(), "ACC-99999")

	require.NoError(t, err)
	assert.Equal(t, "ACC-99999", summary.AccountID)
	assert.True(t, summary.TotalDeposits.IsZero())
	assert.True(t, summary.TotalWithdrawals.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Nil(t, summary.MostRecentDate)
}

func TestGetSummary_InvalidAccount(t *testing.T) {
	svc, _ := newLedgerService(t)

	summary, err := svc.Account.GetSummary(context.Background(), "ACC-123456")

	assert.Nil(t, summary)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetSummary_StorageError(t *testing.T) {
	table := transaction.NewMockITransactionTable(t)
	table.EXPECT().ListByAccount(mock.Anything, "ACC-AAAAA").Return(nil, errors.New("database unavailable"))

	svc := NewAccountService(storage.NewStorageWithTable(table))

	summary, err := svc.GetSummary(context.Background(), "ACC-AAAAA")

	assert.Nil(t, summary)
	assert.EqualError(t, err, "derive summary: database unavailable")
}
