package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	AccountID string `query:"accountId" doc:"Matches fromAccount or toAccount" example:"ACC-12345"`
	Type      string `query:"type" enum:"deposit,withdrawal,transfer" doc:"Filter by transaction type"`
	From      string `query:"from" doc:"Inclusive lower bound (ISO 8601 date or timestamp)" example:"2024-01-01"`
	To        string `query:"to" doc:"Inclusive upper bound (ISO 8601 date or timestamp)" example:"2024-01-31"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	GetAllTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns all transactions, optionally filtered by account, type and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns nil when no filter was supplied.
func parseListTransactionsInput(input *ListTransactionsInput) *service.TransactionFilter {
	if input.AccountID == "" && input.Type == "" && input.From == "" && input.To == "" {
		return nil
	}
	return &service.TransactionFilter{
		AccountID: input.AccountID,
		Type:      service.TransactionType(input.Type),
		From:      input.From,
		To:        input.To,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.GetAllTransactions(ctx, parseListTransactionsInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, response.FromServiceError(ctx, err, "query", "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		resp[i] = transactionFromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
