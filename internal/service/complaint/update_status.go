package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// UpdateStatus moves a complaint to a new status on behalf of a staff user
// with an active session. Any status may follow any other. Concurrent
// updates are last-writer-wins.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Complaint, error) {
	id, err := ValidateComplaintID(input.ComplaintID)
	if err != nil {
		return nil, err
	}
	status, err := ValidateStatus(input.Status)
	if err != nil {
		return nil, err
	}

	user := strings.TrimSpace(input.ActingUser)
	if user == "" {
		return nil, domain.NewValidationError("username", "a user with an active session is required")
	}

	if err := s.requireActiveSession(ctx, user); err != nil {
		return nil, err
	}

	current, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, complaintNotFound(id)
		}
		return nil, s.dependencyFailure(ctx, "load complaint", err)
	}

	updated, err := s.complaints.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, s.dependencyFailure(ctx, "update complaint status", err)
	}
	if !updated {
		return nil, complaintNotFound(id)
	}

	previous := current.Status
	result := *current
	result.Status = status
	result.UpdatedAt = s.now().UTC()

	s.log.InfoContext(ctx, "complaint.status_updated",
		slog.Int64("id_complaint", id),
		slog.String("previous_status", previous.String()),
		slog.String("new_status", status.String()),
		slog.String("changed_by", user),
	)

	s.publishStatusChange(ctx, domain.StatusChangeEvent{
		ComplaintID:       id,
		PreviousStatus:    &previous,
		NewStatus:         status,
		ChangedBy:         user,
		ChangeDescription: fmt.Sprintf("Status changed from %s to %s", previous, status),
		Timestamp:         result.UpdatedAt,
	})
	s.publishEmail(ctx, updatedEmail(&result, previous))

	return &result, nil
}
