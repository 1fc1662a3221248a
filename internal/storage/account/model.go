package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is reported for accounts with no transaction history.
const DefaultCurrency = "USD"

// Balance is the derived balance of an account.
type Balance struct {
	AccountID string
	Balance   decimal.Decimal
	Currency  string
}

// Summary is the derived activity summary of an account.
type Summary struct {
	AccountID        string
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TransactionCount int
	MostRecentDate   *time.Time // nil when the account has no transactions
}
