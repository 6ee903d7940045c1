package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/pkg/ctxutil"
)

// ErrPoison marks a message that can never be processed. Poison messages are
// logged and committed so they do not block the partition.
var ErrPoison = errors.New("kafka: poison message")

var consumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kafka_messages_consumed_total",
	Help: "Messages processed by the Kafka consumer by topic and result.",
}, []string{"topic", "result"})

type poisonError struct{ err error }

func (e *poisonError) Error() string   { return e.err.Error() }
func (e *poisonError) Unwrap() []error { return []error{ErrPoison, e.err} }

// Poison wraps err so the consumer commits the message instead of retrying.
func Poison(err error) error {
	if err == nil {
		return nil
	}
	return &poisonError{err: err}
}

// Reader is the subset of kafka.Reader the consumer needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Handler processes one message. Returning an error wrapped with Poison
// commits the message; any other error retries it after a backoff.
type Handler func(ctx context.Context, msg kafka.Message) error

// Consumer reads a topic within a consumer group and commits each message
// only after it was handled.
type Consumer struct {
	reader  Reader
	topic   string
	backoff time.Duration
	log     *slog.Logger
}

// NewConsumer creates a Consumer for topic using the group from KafkaConfig.
func NewConsumer(cfg config.KafkaConfig, topic string, logger *slog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  cfg.ConsumerGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		Dialer:   &kafka.Dialer{ClientID: cfg.ClientID, Timeout: cfg.DialTimeout},
	})
	return NewConsumerWithReader(reader, topic, cfg.ConsumerRetryBackoff, logger)
}

// NewConsumerWithReader creates a Consumer around r (for testing).
func NewConsumerWithReader(r Reader, topic string, backoff time.Duration, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader:  r,
		topic:   topic,
		backoff: backoff,
		log:     logger.With("adapter", "kafka", "topic", topic),
	}
}

// Run fetches and handles messages until ctx is cancelled. It returns nil on
// cancellation.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	c.log.InfoContext(ctx, "kafka consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.WarnContext(ctx, "fetch message failed", slog.String("error", err.Error()))
			if !c.sleep(ctx) {
				return nil
			}
			continue
		}

		if !c.process(ctx, msg, handle) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.ErrorContext(ctx, "commit message failed",
				slog.Int64("offset", msg.Offset),
				slog.String("error", err.Error()),
			)
		}
	}
}

// process handles msg until it succeeds or turns out to be poison. It reports
// false when ctx was cancelled first, leaving msg uncommitted.
func (c *Consumer) process(ctx context.Context, msg kafka.Message, handle Handler) bool {
	msgCtx := ctx
	if id := CorrelationID(msg); id != "" {
		msgCtx = ctxutil.WithCorrelationID(ctx, id)
	}

	for attempt := 1; ; attempt++ {
		err := handle(msgCtx, msg)
		switch {
		case err == nil:
			consumedTotal.WithLabelValues(c.topic, "ok").Inc()
			c.log.DebugContext(msgCtx, "kafka.consumed",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
			)
			return true
		case errors.Is(err, ErrPoison):
			consumedTotal.WithLabelValues(c.topic, "poison").Inc()
			c.log.WarnContext(msgCtx, "poison message skipped",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.String("error", err.Error()),
			)
			return true
		}

		consumedTotal.WithLabelValues(c.topic, "retry").Inc()
		c.log.ErrorContext(msgCtx, "message processing failed, retrying",
			slog.Int64("offset", msg.Offset),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if !c.sleep(ctx) {
			return false
		}
	}
}

func (c *Consumer) sleep(ctx context.Context) bool {
	t := time.NewTimer(c.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return fmt.Errorf("kafka: close reader: %w", err)
	}
	return nil
}
