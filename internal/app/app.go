// Package app wires configuration, adapters, services and transports into
// the runnable processes.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/complaints-backend/internal/adapter/authsvc"
	"github.com/heartmarshall/complaints-backend/internal/adapter/kafka"
	"github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/complaints-backend/internal/adapter/postgres/comment"
	complaintrepo "github.com/heartmarshall/complaints-backend/internal/adapter/postgres/complaint"
	entityrepo "github.com/heartmarshall/complaints-backend/internal/adapter/postgres/entity"
	historyrepo "github.com/heartmarshall/complaints-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/internal/service/complaint"
	"github.com/heartmarshall/complaints-backend/internal/service/history"
	"github.com/heartmarshall/complaints-backend/internal/transport/middleware"
	"github.com/heartmarshall/complaints-backend/internal/transport/rest"
	"github.com/heartmarshall/complaints-backend/pkg/detach"
)

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts
// down in order: HTTP server, detached tasks, Kafka producer, database pool.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("kafka_enabled", cfg.Kafka.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, "complaints-api")
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka, logger)
	openCtx, cancelOpen := context.WithTimeout(ctx, cfg.Kafka.DialTimeout)
	if err := producer.Open(openCtx); err != nil {
		logger.Warn("continuing without kafka", slog.String("error", err.Error()))
	}
	cancelOpen()
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error("close kafka producer", slog.String("error", err.Error()))
		}
	}()

	tasks := detach.NewRunner(logger)

	complaintSvc := complaint.NewService(
		logger,
		complaintrepo.New(pool),
		entityrepo.New(pool),
		commentrepo.New(pool),
		authsvc.NewClient(cfg.Auth, logger),
		kafka.NewStatusEventPublisher(producer, cfg.Kafka.TopicStatusEvents, logger),
		kafka.NewEmailPublisher(producer, cfg.Kafka.TopicEmails, cfg.Email, logger),
		tasks,
	)
	historySvc := history.NewService(logger, historyrepo.New(pool))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.TrustForwardedFor)
	defer limiter.Stop()

	mux := http.NewServeMux()
	rest.Routes{
		Complaints:  rest.NewComplaintHandler(complaintSvc, logger),
		History:     rest.NewHistoryHandler(historySvc, logger),
		Health:      rest.NewHealthHandler(pool, producer, BuildVersion()),
		Metrics:     promhttp.Handler(),
		IntakeLimit: limiter.Limit(cfg.RateLimit.IntakePerMinute),
	}.Register(mux)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.CorrelationID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, tasks, cfg.Server.ShutdownTimeout, logger)
	})

	return g.Wait()
}

// shutdown drains HTTP requests, then waits for detached side effects that
// were started by those requests. Both share one deadline.
func shutdown(srv *http.Server, tasks *detach.Runner, timeout time.Duration, logger *slog.Logger) error {
	logger.Info("shutting down", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("app: http shutdown: %w", err))
	}
	if err := tasks.Wait(ctx); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		logger.Info("shutdown complete")
	}
	return errors.Join(errs...)
}
