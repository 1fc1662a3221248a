package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	FromAccount string  `json:"fromAccount" required:"true" doc:"Source account identifier (ACC-XXXXX)" example:"ACC-12345"`
	ToAccount   string  `json:"toAccount" required:"true" doc:"Destination account identifier (ACC-XXXXX)" example:"ACC-67890"`
	Amount      float64 `json:"amount" required:"true" doc:"Positive amount with at most 2 decimal places" example:"100.5"`
	Currency    string  `json:"currency" required:"true" doc:"ISO 4217 currency code, case-insensitive" example:"USD"`
	Type        string  `json:"type" required:"true" enum:"deposit,withdrawal,transfer" doc:"Transaction type"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, input service.CreateTransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Appends a new transaction to the ledger.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the API body into service input.
// Format checks are left to the service so every field is reported together.
func parseCreateTransactionInput(input *CreateTransactionInput) service.CreateTransactionInput {
	return service.CreateTransactionInput{
		FromAccount: input.Body.FromAccount,
		ToAccount:   input.Body.ToAccount,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Currency:    input.Body.Currency,
		Type:        service.TransactionType(input.Body.Type),
	}
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	created, err := h.TransactionService.CreateTransaction(ctx, parseCreateTransactionInput(input))
	if err != nil {
		return nil, response.FromServiceError(ctx, err, "body", "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{Body: transactionFromService(*created)}, nil
}
