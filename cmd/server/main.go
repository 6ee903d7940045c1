// Command server runs the complaints HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./complaints.yaml) and the
// environment. SIGINT and SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/complaints-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
