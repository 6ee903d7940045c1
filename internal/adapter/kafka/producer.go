// Package kafka publishes complaint status events and email notifications
// and consumes status events for the history log.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/complaints-backend/internal/config"
)

var (
	// ErrDisabled is returned by Publish when the broker is turned off in config.
	ErrDisabled = errors.New("kafka: producer disabled")
	// ErrUnavailable is returned by Publish when no broker could be reached at startup.
	ErrUnavailable = errors.New("kafka: producer unavailable")
	// ErrClosed is returned by Publish after Close.
	ErrClosed = errors.New("kafka: producer closed")
)

var publishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kafka_messages_published_total",
	Help: "Messages handed to the Kafka producer by topic and result.",
}, []string{"topic", "result"})

// State is the connection state of a Producer.
type State int

const (
	StateDisabled State = iota
	StateUnavailable
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateUnavailable:
		return "unavailable"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Writer is the subset of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer owns the process-wide Kafka writer. It is created once at startup,
// opened with Open and closed from the shutdown path.
type Producer struct {
	writer Writer
	dial   func(ctx context.Context) error
	log    *slog.Logger

	mu    sync.RWMutex
	state State
}

// NewProducer builds a Producer from KafkaConfig. A disabled config yields a
// producer that never touches the network. An enabled one stays unavailable
// until Open succeeds.
func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) *Producer {
	log := logger.With("adapter", "kafka")
	if !cfg.Enabled {
		return &Producer{state: StateDisabled, log: log}
	}

	dialer := &kafka.Dialer{ClientID: cfg.ClientID, Timeout: cfg.DialTimeout}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			MaxAttempts:            cfg.MaxAttempts,
			BatchTimeout:           cfg.BatchTimeout,
			WriteTimeout:           cfg.WriteTimeout,
			RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
			Compression:            compressionCodec(cfg.Compression),
			AllowAutoTopicCreation: cfg.AllowAutoTopicCreation,
			Transport: &kafka.Transport{
				ClientID:    cfg.ClientID,
				DialTimeout: cfg.DialTimeout,
			},
		},
		dial:  dialAny(dialer, cfg.Brokers),
		state: StateUnavailable,
		log:   log,
	}
}

// NewProducerWithWriter creates a connected Producer around w (for testing).
func NewProducerWithWriter(w Writer, logger *slog.Logger) *Producer {
	return &Producer{
		writer: w,
		state:  StateConnected,
		log:    logger.With("adapter", "kafka"),
	}
}

func dialAny(dialer *kafka.Dialer, brokers []string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		var errs []error
		for _, broker := range brokers {
			conn, err := dialer.DialContext(ctx, "tcp", broker)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", broker, err))
				continue
			}
			return conn.Close()
		}
		return errors.Join(errs...)
	}
}

func compressionCodec(name string) kafka.Compression {
	switch strings.ToLower(name) {
	case "gzip":
		return kafka.Gzip
	case "snappy":
		return kafka.Snappy
	case "lz4":
		return kafka.Lz4
	case "zstd":
		return kafka.Zstd
	}
	return 0
}

// Open checks that at least one broker is reachable. On failure the producer
// stays unavailable and every Publish returns ErrUnavailable; the error is
// returned so the caller can log it and keep serving.
func (p *Producer) Open(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateUnavailable || p.dial == nil {
		return nil
	}

	if err := p.dial(ctx); err != nil {
		p.log.WarnContext(ctx, "kafka brokers unreachable, publishing disabled", slog.String("error", err.Error()))
		return fmt.Errorf("kafka: open: %w", err)
	}

	p.state = StateConnected
	p.log.InfoContext(ctx, "kafka producer connected")
	return nil
}

// State returns the current connection state.
func (p *Producer) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Publish writes msgs to topic. It fails fast with ErrDisabled, ErrUnavailable
// or ErrClosed when the producer is not connected. Close waits for in-flight
// writes.
func (p *Producer) Publish(ctx context.Context, topic string, msgs ...kafka.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.state {
	case StateDisabled:
		publishedTotal.WithLabelValues(topic, "skipped").Add(float64(len(msgs)))
		return ErrDisabled
	case StateUnavailable:
		publishedTotal.WithLabelValues(topic, "skipped").Add(float64(len(msgs)))
		return ErrUnavailable
	case StateClosed:
		publishedTotal.WithLabelValues(topic, "skipped").Add(float64(len(msgs)))
		return ErrClosed
	}

	for i := range msgs {
		msgs[i].Topic = topic
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		publishedTotal.WithLabelValues(topic, "error").Add(float64(len(msgs)))
		return fmt.Errorf("kafka: write to %s: %w", topic, err)
	}

	publishedTotal.WithLabelValues(topic, "ok").Add(float64(len(msgs)))
	return nil
}

// Close flushes and closes the writer. It is safe to call more than once.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateClosed {
		return nil
	}
	p.state = StateClosed

	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("kafka: close writer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}

// skipped reports whether err means the message was intentionally not sent.
func skipped(err error) bool {
	return errors.Is(err, ErrDisabled) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrClosed)
}
