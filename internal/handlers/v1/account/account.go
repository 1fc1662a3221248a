package account

import (
	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Balance is the API response model for an account balance.
type Balance struct {
	AccountID string  `json:"accountId" doc:"Account identifier" example:"ACC-12345"`
	Balance   float64 `json:"balance" doc:"Signed sum of completed movements"`
	Currency  string  `json:"currency" doc:"Currency of the account's first transaction, USD when none"`
}

// Summary is the API response model for account activity.
type Summary struct {
	AccountID        string  `json:"accountId" doc:"Account identifier" example:"ACC-12345"`
	TotalDeposits    float64 `json:"totalDeposits" doc:"Sum of deposits into the account"`
	TotalWithdrawals float64 `json:"totalWithdrawals" doc:"Sum of withdrawals out of the account"`
	TransactionCount int     `json:"transactionCount" doc:"Transactions touching the account"`
	MostRecentDate   *string `json:"mostRecentDate" required:"true" nullable:"true" doc:"Latest transaction timestamp, null when none"`
}

func balanceFromService(b *service.Balance) Balance {
	return Balance{
		AccountID: b.AccountID,
		Balance:   b.Balance.InexactFloat64(),
		Currency:  b.Currency,
	}
}

func summaryFromService(s *service.Summary) Summary {
	summary := Summary{
		AccountID:        s.AccountID,
		TotalDeposits:    s.TotalDeposits.InexactFloat64(),
		TotalWithdrawals: s.TotalWithdrawals.InexactFloat64(),
		TransactionCount: s.TransactionCount,
	}
	if s.MostRecentDate != nil {
		formatted := response.FormatTimestamp(*s.MostRecentDate)
		summary.MostRecentDate = &formatted
	}
	return summary
}
