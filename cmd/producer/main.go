package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/libraryevents/api"
	"github.com/dmitrymomot/libraryevents/core/broker"
	"github.com/dmitrymomot/libraryevents/core/config"
	"github.com/dmitrymomot/libraryevents/core/logger"
	"github.com/dmitrymomot/libraryevents/core/producer"
	"github.com/dmitrymomot/libraryevents/core/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(logger.WithProduction(cfg.AppName))
	if cfg.Env == "development" {
		log = logger.New(logger.WithDevelopment(cfg.AppName))
	}

	kafka, err := broker.NewKafka(cfg.Kafka)
	if err != nil {
		log.Error("failed to create kafka client", logger.Component("broker"), logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := kafka.Close(); err != nil {
			log.Error("failed to close kafka client", logger.Component("broker"), logger.Error(err))
		}
	}()

	p, err := producer.New(kafka, cfg.Kafka.Topic, producer.WithLogger(log.With(logger.Component("producer"))))
	if err != nil {
		log.Error("failed to create producer", logger.Component("producer"), logger.Error(err))
		os.Exit(1)
	}

	r := api.NewRouter(p, log.With(logger.Component("api")))

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
