package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AccountPathInput is the Huma input shared by the per-account endpoints.
type AccountPathInput struct {
	AccountID string `path:"accountId" doc:"Account identifier (ACC-XXXXX)" example:"ACC-12345"`
}

// GetBalanceOutput is the Huma output for an account balance.
type GetBalanceOutput struct {
	Body Balance
}

type balanceGetter interface {
	GetBalance(ctx context.Context, accountID string) (*service.Balance, error)
}

// GetBalanceHandler handles GET /v1/accounts/{accountId}/balance.
type GetBalanceHandler struct {
	AccountService balanceGetter
}

func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{AccountService: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-balance",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{accountId}/balance",
		Summary:     "Get account balance",
		Description: "Derives the current balance of an account from the ledger.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *AccountPathInput) (*GetBalanceOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	balance, err := h.AccountService.GetBalance(ctx, input.AccountID)
	if err != nil {
		return nil, response.FromServiceError(ctx, err, "path", "failed to get balance")
	}

	return &GetBalanceOutput{Body: balanceFromService(balance)}, nil
}
