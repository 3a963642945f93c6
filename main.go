package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/notify"
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

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	identity, err := auth.NewJWTProvider(envConfig.AuthJWTSecret, dbStorage.Users,
		auth.WithIssuer(envConfig.AuthIssuer),
		auth.WithAudience(envConfig.AuthAudience),
	)
	if err != nil {
		logger.WithError(err).Fatal("auth.NewJWTProvider")
		return
	}

	notifiers := notify.Multi{notify.NewLogNotifier(logger)}
	if envConfig.RedisAddress != "" {
		rdb := notify.NewRedisClient(envConfig.RedisAddress, envConfig.RedisPassword)
		defer rdb.Close()
		notifiers = append(notifiers, notify.NewRedisNotifier(rdb, envConfig.RedisChannel))
	}
	if len(envConfig.KafkaBrokers) > 0 {
		writer := notify.NewKafkaWriter(envConfig.KafkaBrokers, envConfig.KafkaTopic, logger)
		defer writer.Close()
		notifiers = append(notifiers, notify.NewKafkaNotifier(writer))
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, envConfig.UnitTimeout, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(delegator, dbStorage.Reader, notifiers, logger)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Database: dbStorage,
		Identity: identity,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	logger.Info("ledger-server stopped")
}
