// Command history-consumer reads complaint status events from Kafka and
// stores them in historical.complaint_status_history. Messages are committed
// only after they were stored or found to be undecodable.
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

	if err := app.RunHistoryConsumer(ctx); err != nil {
		log.Fatalf("history-consumer: %v", err)
	}
}
