package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// DeriveBalance computes the balance of accountID from rows.
// Rows that do not involve accountID are ignored.
//
// The currency is taken from the first involved row; amounts in other
// currencies are summed as-is.
func DeriveBalance(accountID string, rows []*transaction.Transaction) *Balance {
	result := &Balance{
		AccountID: accountID,
		Balance:   decimal.Zero,
		Currency:  DefaultCurrency,
	}

	seen := false
	for _, row := range rows {
		if !row.Involves(accountID) {
			continue
		}
		if !seen {
			result.Currency = row.Currency
			seen = true
		}
		result.Balance = result.Balance.Add(signedAmount(accountID, row))
	}
	return result
}

// signedAmount is the effect of row on the balance of accountID.
func signedAmount(accountID string, row *transaction.Transaction) decimal.Decimal {
	switch row.Type {
	case transaction.TransactionTypeDeposit:
		if row.ToAccount == accountID {
			return row.Amount
		}
	case transaction.TransactionTypeWithdrawal:
		if row.FromAccount == accountID {
			return row.Amount.Neg()
		}
	case transaction.TransactionTypeTransfer:
		// A self transfer hits the credit branch only.
		if row.ToAccount == accountID {
			return row.Amount
		}
		if row.FromAccount == accountID {
			return row.Amount.Neg()
		}
	}
	return decimal.Zero
}

// DeriveSummary computes the activity summary of accountID from rows.
// Transfers count towards TransactionCount but not towards either total.
func DeriveSummary(accountID string, rows []*transaction.Transaction) *Summary {
	result := &Summary{
		AccountID:        accountID,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}

	var mostRecent time.Time
	for _, row := range rows {
		if !row.Involves(accountID) {
			continue
		}
		result.TransactionCount++

		switch {
		case row.Type == transaction.TransactionTypeDeposit && row.ToAccount == accountID:
			result.TotalDeposits = result.TotalDeposits.Add(row.Amount)
		case row.Type == transaction.TransactionTypeWithdrawal && row.FromAccount == accountID:
			result.TotalWithdrawals = result.TotalWithdrawals.Add(row.Amount)
		}

		if result.MostRecentDate == nil || row.Timestamp.After(mostRecent) {
			mostRecent = row.Timestamp
			result.MostRecentDate = &mostRecent
		}
	}
	return result
}
