package transaction

import (
	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	FromAccount string  `json:"fromAccount" doc:"Source account" example:"ACC-12345"`
	ToAccount   string  `json:"toAccount" doc:"Destination account" example:"ACC-67890"`
	Amount      float64 `json:"amount" doc:"Transaction amount" example:"100.5"`
	Currency    string  `json:"currency" doc:"ISO 4217 currency code" example:"USD"`
	Type        string  `json:"type" enum:"deposit,withdrawal,transfer" doc:"Transaction type"`
	Timestamp   string  `json:"timestamp" format:"date-time" doc:"ISO 8601 creation time"`
	Status      string  `json:"status" enum:"pending,completed,failed" doc:"Transaction status"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Amount:      tx.Amount.InexactFloat64(),
		Currency:    tx.Currency,
		Type:        string(tx.Type),
		Timestamp:   response.FormatTimestamp(tx.Timestamp),
		Status:      string(tx.Status),
	}
}
