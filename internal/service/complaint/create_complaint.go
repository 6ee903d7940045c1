package complaint

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// CreateComplaint files an anonymous complaint and returns its id.
// The complaint starts in status open.
func (s *Service) CreateComplaint(ctx context.Context, input CreateComplaintInput) (int64, error) {
	valid, err := ValidateComplaintInput(input.Entity, input.Description)
	if err != nil {
		return 0, err
	}

	exists, err := s.entities.Exists(ctx, valid.EntityID)
	if err != nil {
		return 0, s.dependencyFailure(ctx, "check public entity", err)
	}
	if !exists {
		return 0, domain.NewValidationError("entity", "public entity does not exist")
	}

	id, err := s.complaints.Create(ctx, valid.EntityID, valid.Description)
	if err != nil {
		return 0, s.dependencyFailure(ctx, "create complaint", err)
	}

	s.log.InfoContext(ctx, "complaint.created",
		slog.Int64("id_complaint", id),
		slog.Int64("entity_id", valid.EntityID),
	)

	created, reloadErr := s.complaints.GetByID(ctx, id)

	s.publishStatusChange(ctx, domain.StatusChangeEvent{
		ComplaintID:       id,
		PreviousStatus:    nil,
		NewStatus:         domain.ComplaintStatusOpen,
		ChangedBy:         domain.DefaultChangedBy,
		ChangeDescription: "Complaint created",
		Timestamp:         s.now().UTC(),
	})

	if reloadErr != nil {
		s.log.WarnContext(ctx, "reload created complaint failed, email skipped",
			slog.Int64("id_complaint", id),
			slog.String("error", reloadErr.Error()),
		)
		return id, nil
	}
	s.publishEmail(ctx, createdEmail(created))

	return id, nil
}
