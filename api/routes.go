package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/metrics"
	"github.com/carson-networks/ledger-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	AllowedOrigins []string
}

// Router builds the HTTP handler serving the ledger API, health and metrics.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	api := humachi.New(router, huma.DefaultConfig("Ledger API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(metrics.HumaMiddleware())

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	account.NewGetBalanceHandler(r.Service.Account).Register(api)
	account.NewGetSummaryHandler(r.Service.Account).Register(api)

	statusHandler := status.NewHandler()
	router.HandleFunc("/health", logging.LoggingWrapper("Health", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
