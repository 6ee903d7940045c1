package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/pkg/ctxutil"
)

const (
	eventTypeStatusChanged = "complaint.status.changed"

	headerEventType     = "event-type"
	headerComplaintID   = "complaint-id"
	headerNewStatus     = "new-status"
	headerTimestamp     = "timestamp"
	headerCorrelationID = "x-correlation-id"
)

type messagePublisher interface {
	Publish(ctx context.Context, topic string, msgs ...kafka.Message) error
}

// statusEventMessage is the wire format of a status change event.
type statusEventMessage struct {
	ComplaintID       int64     `json:"id_complaint"`
	PreviousStatus    *string   `json:"previous_status"`
	NewStatus         string    `json:"new_status"`
	ChangedBy         string    `json:"changed_by"`
	ChangeDescription *string   `json:"change_description"`
	EventTimestamp    time.Time `json:"event_timestamp"`
}

// StatusEventPublisher publishes complaint status changes.
type StatusEventPublisher struct {
	producer messagePublisher
	topic    string
	log      *slog.Logger
	now      func() time.Time
}

// NewStatusEventPublisher creates a publisher writing to topic.
func NewStatusEventPublisher(producer messagePublisher, topic string, logger *slog.Logger) *StatusEventPublisher {
	return &StatusEventPublisher{
		producer: producer,
		topic:    topic,
		log:      logger.With("adapter", "kafka", "publisher", "status_event"),
		now:      time.Now,
	}
}

// PublishStatusChange sends event keyed by complaint. A producer that is
// disabled or unavailable skips the event and returns nil.
func (p *StatusEventPublisher) PublishStatusChange(ctx context.Context, event domain.StatusChangeEvent) error {
	msg, err := p.buildMessage(ctx, event)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, p.topic, msg); err != nil {
		if skipped(err) {
			p.log.DebugContext(ctx, "status event skipped",
				slog.Int64("id_complaint", event.ComplaintID),
				slog.String("reason", err.Error()),
			)
			return nil
		}
		return fmt.Errorf("publish status event for complaint %d: %w", event.ComplaintID, err)
	}

	previous := "N/A"
	if event.PreviousStatus != nil {
		previous = event.PreviousStatus.String()
	}
	p.log.InfoContext(ctx, "kafka.produced",
		slog.String("topic", p.topic),
		slog.Int64("id_complaint", event.ComplaintID),
		slog.String("previous_status", previous),
		slog.String("new_status", event.NewStatus.String()),
	)
	return nil
}

func (p *StatusEventPublisher) buildMessage(ctx context.Context, event domain.StatusChangeEvent) (kafka.Message, error) {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = p.now()
	}
	ts = ts.UTC()

	changedBy := event.ChangedBy
	if changedBy == "" {
		changedBy = domain.DefaultChangedBy
	}

	body := statusEventMessage{
		ComplaintID:    event.ComplaintID,
		NewStatus:      event.NewStatus.String(),
		ChangedBy:      changedBy,
		EventTimestamp: ts,
	}
	if event.PreviousStatus != nil {
		prev := event.PreviousStatus.String()
		body.PreviousStatus = &prev
	}
	if event.ChangeDescription != "" {
		desc := event.ChangeDescription
		body.ChangeDescription = &desc
	}

	value, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode status event: %w", err)
	}

	headers := []kafka.Header{
		{Key: headerEventType, Value: []byte(eventTypeStatusChanged)},
		{Key: headerComplaintID, Value: []byte(strconv.FormatInt(event.ComplaintID, 10))},
		{Key: headerNewStatus, Value: []byte(event.NewStatus.String())},
		{Key: headerTimestamp, Value: []byte(ts.Format(time.RFC3339Nano))},
	}
	if id := ctxutil.CorrelationIDFromCtx(ctx); id != "" {
		headers = append(headers, kafka.Header{Key: headerCorrelationID, Value: []byte(id)})
	}

	return kafka.Message{
		Key:     []byte(fmt.Sprintf("complaint-%d-%d", event.ComplaintID, p.now().UnixMilli())),
		Value:   value,
		Headers: headers,
		Time:    ts,
	}, nil
}

// DecodeStatusEvent parses a status change event. Undecodable payloads and
// unknown statuses are reported as poison messages.
func DecodeStatusEvent(msg kafka.Message) (domain.StatusChangeEvent, error) {
	var body statusEventMessage
	if err := json.Unmarshal(msg.Value, &body); err != nil {
		return domain.StatusChangeEvent{}, Poison(fmt.Errorf("decode status event: %w", err))
	}

	event := domain.StatusChangeEvent{
		ComplaintID: body.ComplaintID,
		NewStatus:   domain.ComplaintStatus(body.NewStatus),
		ChangedBy:   body.ChangedBy,
		Timestamp:   body.EventTimestamp,
	}
	if !event.NewStatus.IsValid() {
		return domain.StatusChangeEvent{}, Poison(fmt.Errorf("status event: invalid new_status %q", body.NewStatus))
	}
	if body.PreviousStatus != nil {
		prev := domain.ComplaintStatus(*body.PreviousStatus)
		if !prev.IsValid() {
			return domain.StatusChangeEvent{}, Poison(fmt.Errorf("status event: invalid previous_status %q", prev))
		}
		event.PreviousStatus = &prev
	}
	if body.ChangeDescription != nil {
		event.ChangeDescription = *body.ChangeDescription
	}
	if event.ChangedBy == "" {
		event.ChangedBy = domain.DefaultChangedBy
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = msg.Time
	}

	return event, nil
}

// CorrelationID returns the correlation id header of msg, if any.
func CorrelationID(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == headerCorrelationID {
			return string(h.Value)
		}
	}
	return ""
}
