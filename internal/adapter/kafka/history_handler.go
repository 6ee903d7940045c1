package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

type statusRecorder interface {
	Record(ctx context.Context, event domain.StatusChangeEvent) error
}

// StatusHistoryHandler decodes status events and hands them to rec.
// Events rec rejects as invalid are treated as poison.
func StatusHistoryHandler(rec statusRecorder) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		event, err := DecodeStatusEvent(msg)
		if err != nil {
			return err
		}
		if err := rec.Record(ctx, event); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return Poison(err)
			}
			return err
		}
		return nil
	}
}
