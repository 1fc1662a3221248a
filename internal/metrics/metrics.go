package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_created_total",
			Help: "Total number of transactions appended to the ledger",
		},
		[]string{"type", "currency"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "Duration of API operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"operation", "status"},
	)
)

// HumaMiddleware records RequestDuration for every API operation.
func HumaMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operation := "unknown"
		if op := ctx.Operation(); op != nil {
			operation = op.OperationID
		}

		start := time.Now()
		next(ctx)
		RequestDuration.
			WithLabelValues(operation, strconv.Itoa(ctx.Status())).
			Observe(time.Since(start).Seconds())
	}
}
