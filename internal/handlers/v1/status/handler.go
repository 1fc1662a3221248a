package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/response"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// Health is the body written by the health endpoint.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() Handler {
	return Handler{now: time.Now}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := Health{
		Status:    "ok",
		Timestamp: response.FormatTimestamp(h.now()),
	}
	logData.AddData("healthStatus", body.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}
