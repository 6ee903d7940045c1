// Package history records complaint status changes and serves them back in
// event order.
package history

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

type historyRepo interface {
	Record(ctx context.Context, event domain.StatusChangeEvent) (int64, error)
	ListByComplaint(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error)
}

// Service provides status history operations.
type Service struct {
	repo historyRepo
	log  *slog.Logger
}

// NewService creates a new history Service.
func NewService(log *slog.Logger, repo historyRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "history"),
	}
}

// Record stores one status change.
func (s *Service) Record(ctx context.Context, event domain.StatusChangeEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	id, err := s.repo.Record(ctx, event)
	if err != nil {
		s.log.ErrorContext(ctx, "record status history failed",
			slog.Int64("id_complaint", event.ComplaintID),
			slog.String("error", err.Error()),
		)
		return domain.NewDependencyError("record status history", err)
	}

	s.log.InfoContext(ctx, "history.recorded",
		slog.Int64("id_history", id),
		slog.Int64("id_complaint", event.ComplaintID),
		slog.String("new_status", event.NewStatus.String()),
	)
	return nil
}

// List returns the status history of a complaint, oldest first. A complaint
// without history yields an empty slice.
func (s *Service) List(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error) {
	entries, err := s.repo.ListByComplaint(ctx, complaintID)
	if err != nil {
		s.log.ErrorContext(ctx, "list status history failed", slog.String("error", err.Error()))
		return nil, domain.NewDependencyError("list status history", err)
	}
	if entries == nil {
		entries = []domain.StatusHistoryEntry{}
	}
	return entries, nil
}

func validateEvent(event domain.StatusChangeEvent) error {
	var errs []domain.FieldError

	if event.ComplaintID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id_complaint", Message: "must be positive"})
	}
	if !event.NewStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "new_status", Message: "invalid status"})
	}
	if event.PreviousStatus != nil && !event.PreviousStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "previous_status", Message: "invalid status"})
	}
	if len([]rune(event.ChangedBy)) > 100 {
		errs = append(errs, domain.FieldError{Field: "changed_by", Message: "must not exceed 100 characters"})
	}
	if event.Timestamp.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_timestamp", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
