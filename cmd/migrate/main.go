// Command migrate applies the embedded SQL migrations to the configured
// database.
//
// Usage:
//
//	migrate [up|down|status]
//
// "up" (the default) applies all pending migrations, "down" rolls back the
// latest one and "status" lists every migration with its state.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/complaints-backend/internal/app"
	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, cfg.Database.DSN, command); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dsn, command string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.String("file", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
		)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}

	return nil
}
