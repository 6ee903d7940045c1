package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/pkg/ctxutil"
)

const (
	eventTypeEmailNotification = "email.notification"
	headerSource               = "source"
	headerPriority             = "priority"
)

type emailMetadata struct {
	EventType string `json:"eventType"`
	Source    string `json:"source"`
}

// emailMessage is the wire format consumed by the email sender service.
type emailMessage struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	To            []string      `json:"to"`
	CC            []string      `json:"cc"`
	Subject       string        `json:"subject"`
	Title         string        `json:"title"`
	Priority      string        `json:"priority"`
	Retries       int           `json:"retries"`
	Metadata      emailMetadata `json:"metadata"`
	ComplaintID   int64         `json:"complaintId"`
	Description   string        `json:"description"`
	Status        string        `json:"status"`
	EntityName    string        `json:"entityName"`
	CreatedAt     time.Time     `json:"createdAt"`
	Action        string        `json:"action"`
	CorrelationID *string       `json:"correlationId"`
}

// EmailPublisher turns complaint notifications into email requests for the
// email sender service. Recipients come from configuration.
type EmailPublisher struct {
	producer      messagePublisher
	topic         string
	to            []string
	cc            []string
	source        string
	unknownEntity string
	log           *slog.Logger
	now           func() time.Time
}

// NewEmailPublisher creates a publisher writing to topic.
func NewEmailPublisher(producer messagePublisher, topic string, cfg config.EmailConfig, logger *slog.Logger) *EmailPublisher {
	return &EmailPublisher{
		producer:      producer,
		topic:         topic,
		to:            cfg.Recipients,
		cc:            cfg.CCRecipients,
		source:        cfg.Source,
		unknownEntity: cfg.UnknownEntityName,
		log:           logger.With("adapter", "kafka", "publisher", "email"),
		now:           time.Now,
	}
}

// PublishEmail sends n to the email topic. Without configured recipients, or
// with a disabled or unavailable producer, the email is skipped and nil is
// returned.
func (p *EmailPublisher) PublishEmail(ctx context.Context, n domain.EmailNotification) error {
	if len(p.to) == 0 {
		p.log.DebugContext(ctx, "email skipped: no recipients configured", slog.Int64("id_complaint", n.ComplaintID))
		return nil
	}

	msg, id, err := p.buildMessage(ctx, n)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, p.topic, msg); err != nil {
		if skipped(err) {
			p.log.DebugContext(ctx, "email skipped",
				slog.String("email_id", id),
				slog.String("reason", err.Error()),
			)
			return nil
		}
		return fmt.Errorf("publish email %s: %w", id, err)
	}

	p.log.InfoContext(ctx, "kafka.produced",
		slog.String("topic", p.topic),
		slog.String("email_id", id),
		slog.Int64("id_complaint", n.ComplaintID),
		slog.String("subject", n.Subject),
	)
	return nil
}

func (p *EmailPublisher) buildMessage(ctx context.Context, n domain.EmailNotification) (kafka.Message, string, error) {
	now := p.now().UTC()

	prefix := "email-complaint"
	if n.Kind == domain.EmailKindComplaintUpdated {
		prefix = "email-update"
	}
	id := fmt.Sprintf("%s-%d-%d", prefix, n.ComplaintID, now.UnixMilli())

	entityName := n.EntityName
	if entityName == "" {
		entityName = p.unknownEntity
	}

	cc := p.cc
	if cc == nil {
		cc = []string{}
	}

	body := emailMessage{
		ID:          id,
		Timestamp:   now,
		To:          p.to,
		CC:          cc,
		Subject:     n.Subject,
		Title:       n.Title,
		Priority:    n.Priority.String(),
		Metadata:    emailMetadata{EventType: n.Kind.String(), Source: p.source},
		ComplaintID: n.ComplaintID,
		Description: n.Description,
		Status:      n.Status.String(),
		EntityName:  entityName,
		CreatedAt:   n.CreatedAt,
		Action:      n.Action,
	}

	headers := []kafka.Header{
		{Key: headerEventType, Value: []byte(eventTypeEmailNotification)},
		{Key: headerSource, Value: []byte(p.source)},
		{Key: headerPriority, Value: []byte(n.Priority.String())},
	}
	if cid := ctxutil.CorrelationIDFromCtx(ctx); cid != "" {
		body.CorrelationID = &cid
		headers = append(headers, kafka.Header{Key: headerCorrelationID, Value: []byte(cid)})
	}

	value, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, "", fmt.Errorf("encode email %s: %w", id, err)
	}

	return kafka.Message{
		Key:     []byte(id),
		Value:   value,
		Headers: headers,
		Time:    now,
	}, id, nil
}
