package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetSummaryOutput is the Huma output for an account summary.
type GetSummaryOutput struct {
	Body Summary
}

type summaryGetter interface {
	GetSummary(ctx context.Context, accountID string) (*service.Summary, error)
}

// GetSummaryHandler handles GET /v1/accounts/{accountId}/summary.
type GetSummaryHandler struct {
	AccountService summaryGetter
}

func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{AccountService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-summary",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{accountId}/summary",
		Summary:     "Get account summary",
		Description: "Derives deposit and withdrawal totals for an account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *AccountPathInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.AccountID)
	}

	summary, err := h.AccountService.GetSummary(ctx, input.AccountID)
	if err != nil {
		return nil, response.FromServiceError(ctx, err, "path", "failed to get summary")
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.TransactionCount)
	}

	return &GetSummaryOutput{Body: summaryFromService(summary)}, nil
}
