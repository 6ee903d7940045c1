package complaint

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// DeleteComplaint soft-deletes a complaint on behalf of a staff user with an
// active session. Deletion publishes no event and no email.
func (s *Service) DeleteComplaint(ctx context.Context, input DeleteComplaintInput) error {
	id, err := ValidateComplaintID(input.ComplaintID)
	if err != nil {
		return err
	}

	user := strings.TrimSpace(input.ActingUser)
	if user == "" {
		return domain.NewValidationError("username", "a user with an active session is required")
	}

	if err := s.requireActiveSession(ctx, user); err != nil {
		return err
	}

	deleted, err := s.complaints.SoftDelete(ctx, id)
	if err != nil {
		return s.dependencyFailure(ctx, "delete complaint", err)
	}
	if !deleted {
		return complaintNotFound(id)
	}

	s.log.InfoContext(ctx, "complaint.deleted",
		slog.Int64("id_complaint", id),
		slog.String("deleted_by", user),
	)

	return nil
}
