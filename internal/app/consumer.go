package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/complaints-backend/internal/adapter/kafka"
	"github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/complaints-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/internal/service/history"
)

// RunHistoryConsumer records every complaint status event from the status
// topic into the history table until ctx is cancelled.
func RunHistoryConsumer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log).With("process", "history-consumer")

	if !cfg.Kafka.Enabled {
		return errors.New("app: history consumer requires kafka.enabled")
	}

	logger.Info("starting history consumer",
		slog.String("version", BuildVersion()),
		slog.String("topic", cfg.Kafka.TopicStatusEvents),
		slog.String("group_id", cfg.Kafka.ConsumerGroupID),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, "complaints-history-consumer")
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	svc := history.NewService(logger, historyrepo.New(pool))

	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.TopicStatusEvents, logger)
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("close kafka consumer", slog.String("error", err.Error()))
		}
	}()

	if err := consumer.Run(ctx, kafka.StatusHistoryHandler(svc)); err != nil {
		return fmt.Errorf("app: history consumer: %w", err)
	}

	logger.Info("history consumer stopped")
	return nil
}
