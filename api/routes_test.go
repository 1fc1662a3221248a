package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/validation"
)

type testServer struct {
	handler http.Handler
	ledger  *storage.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ledger := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(ledger, logger, 1, 0)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	rest := Rest{
		Logger:         logger,
		Port:           "0",
		Service:        service.NewService(ledger, delegator),
		AllowedOrigins: []string{"*"},
	}
	return &testServer{handler: rest.Router(), ledger: ledger}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) create(t *testing.T, from, to string, amount float64, txType string) map[string]any {
	t.Helper()
	w := s.do(t, http.MethodPost, "/v1/transactions", map[string]any{
		"fromAccount": from,
		"toAccount":   to,
		"amount":      amount,
		"currency":    "usd",
		"type":        txType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRoutes_LedgerScenario(t *testing.T) {
	srv := newTestServer(t)

	first := srv.create(t, "ACC-EXT01", "ACC-AAAAA", 1000, "deposit")
	srv.create(t, "ACC-EXT01", "ACC-AAAAA", 500, "deposit")
	srv.create(t, "ACC-AAAAA", "ACC-EXT01", 200, "withdrawal")
	srv.create(t, "ACC-AAAAA", "ACC-EXT01", 100, "withdrawal")
	srv.create(t, "ACC-BBBBB", "ACC-AAAAA", 300, "transfer")

	assert.Equal(t, "USD", first["currency"])
	assert.Equal(t, "completed", first["status"])

	balance := decode[map[string]any](t, srv.do(t, http.MethodGet, "/v1/accounts/ACC-AAAAA/balance", nil))
	assert.Equal(t, 1500.0, balance["balance"])
	assert.Equal(t, "USD", balance["currency"])

	summary := decode[map[string]any](t, srv.do(t, http.MethodGet, "/v1/accounts/ACC-AAAAA/summary", nil))
	assert.Equal(t, 1500.0, summary["totalDeposits"])
	assert.Equal(t, 300.0, summary["totalWithdrawals"])
	assert.Equal(t, 5.0, summary["transactionCount"])
	assert.NotNil(t, summary["mostRecentDate"])

	all := decode[[]map[string]any](t, srv.do(t, http.MethodGet, "/v1/transactions", nil))
	assert.Len(t, all, 5)

	deposits := decode[[]map[string]any](t, srv.do(t, http.MethodGet, "/v1/transactions?accountId=ACC-AAAAA&type=deposit", nil))
	assert.Len(t, deposits, 2)

	fetched := decode[map[string]any](t, srv.do(t, http.MethodGet, "/v1/transactions/"+first["id"].(string), nil))
	assert.Equal(t, first["id"], fetched["id"])
	assert.Equal(t, first["timestamp"], fetched["timestamp"])
}

func TestRoutes_CreateValidationReportsEveryField(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/v1/transactions", map[string]any{
		"fromAccount": "ACC-1",
		"toAccount":   "acc-67890",
		"amount":      10.555,
		"currency":    "XXX",
		"type":        "deposit",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	for _, location := range []string{"body.fromAccount", "body.toAccount", "body.amount", "body.currency"} {
		assert.Contains(t, body, location)
	}
	for _, message := range []string{validation.AccountFormatMessage, validation.AmountMessage, validation.CurrencyMessage} {
		assert.Contains(t, body, message)
	}

	all := decode[[]map[string]any](t, srv.do(t, http.MethodGet, "/v1/transactions", nil))
	assert.Empty(t, all, "rejected input never reaches the ledger")
}

func TestRoutes_NotFoundAndInvalidAccount(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/v1/transactions/not-a-uuid", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/v1/transactions/6ba7b810-9dad-41d1-80b4-00c04fd430c8", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/v1/accounts/ACC-123/balance", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/v1/accounts/ACC-123/summary", nil).Code)
}

func TestRoutes_UnknownAccountHasEmptyHistory(t *testing.T) {
	srv := newTestServer(t)

	balance := decode[map[string]any](t, srv.do(t, http.MethodGet, "/v1/accounts/ACC-ZZZZZ/balance", nil))
	assert.Equal(t, 0.0, balance["balance"])
	assert.Equal(t, "USD", balance["currency"])

	summary := decode[map[string]any](t, srv.do(t, http.MethodGet, "/v1/accounts/ACC-ZZZZZ/summary", nil))
	assert.Nil(t, summary["mostRecentDate"])
}

func TestRoutes_ResetClearsLedger(t *testing.T) {
	srv := newTestServer(t)
	srv.create(t, "ACC-EXT01", "ACC-AAAAA", 10, "deposit")

	srv.ledger.Reset()

	all := decode[[]map[string]any](t, srv.do(t, http.MethodGet, "/v1/transactions", nil))
	assert.Empty(t, all)
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)
	srv.create(t, "ACC-EXT01", "ACC-AAAAA", 10, "deposit")

	health := srv.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, health)["status"])

	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodPost, "/health", nil).Code)

	metricsResp := srv.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, metricsResp.Code)
	assert.Contains(t, metricsResp.Body.String(), "ledger_transactions_created_total")
	assert.Contains(t, metricsResp.Body.String(), "ledger_http_request_duration_seconds")
}

func TestRest_ServeStopsOnCancel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	rest := Rest{
		Logger:  logger,
		Port:    "0",
		Service: service.NewService(storage.NewStorage(), nil),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, rest.Serve(ctx))
}
