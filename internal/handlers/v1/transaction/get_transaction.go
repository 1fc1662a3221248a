package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransactionByID(ctx context.Context, id string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns a single transaction by ID.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", input.ID)
	}

	tx, err := h.TransactionService.GetTransactionByID(ctx, input.ID)
	if err != nil {
		return nil, response.FromServiceError(ctx, err, "path", "failed to get transaction")
	}

	return &GetTransactionOutput{Body: transactionFromService(*tx)}, nil
}
