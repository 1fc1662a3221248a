package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Balance is the derived balance snapshot of an account.
type Balance struct {
	AccountID string
	Balance   decimal.Decimal
	Currency  string
}

// Summary is the derived activity snapshot of an account.
type Summary struct {
	AccountID        string
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TransactionCount int
	MostRecentDate   *time.Time
}

func balanceFromStorage(b *account.Balance) *Balance {
	return &Balance{
		AccountID: b.AccountID,
		Balance:   b.Balance,
		Currency:  b.Currency,
	}
}

func summaryFromStorage(s *account.Summary) *Summary {
	return &Summary{
		AccountID:        s.AccountID,
		TotalDeposits:    s.TotalDeposits,
		TotalWithdrawals: s.TotalWithdrawals,
		TransactionCount: s.TransactionCount,
		MostRecentDate:   s.MostRecentDate,
	}
}
