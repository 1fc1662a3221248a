package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("ledger-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ledger := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(ledger, logger, envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(ledger, delegator)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.Port,
			Service:        svc,
			AllowedOrigins: envConfig.CORSAllowedOrigins,
		}
		return httpRest.Serve(groupCtx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("ledger-server stopped with error")
		return
	}
	logger.Info("ledger-server stopped")
}
