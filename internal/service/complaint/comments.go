package complaint

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// AddComment attaches an anonymous comment to an active complaint and
// returns the comment id. Comments trigger no notifications.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (int64, error) {
	valid, err := ValidateCommentInput(input.ComplaintID, input.Text)
	if err != nil {
		return 0, err
	}

	if _, err := s.complaints.GetByID(ctx, valid.ComplaintID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, complaintNotFound(valid.ComplaintID)
		}
		return 0, s.dependencyFailure(ctx, "load complaint", err)
	}

	id, err := s.comments.Create(ctx, valid.ComplaintID, valid.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, complaintNotFound(valid.ComplaintID)
		}
		return 0, s.dependencyFailure(ctx, "create comment", err)
	}

	s.log.InfoContext(ctx, "comment.created",
		slog.Int64("id_comment", id),
		slog.Int64("id_complaint", valid.ComplaintID),
	)

	return id, nil
}

// GetComments returns the active comments of an active complaint, newest first.
func (s *Service) GetComments(ctx context.Context, complaintID string) ([]domain.Comment, error) {
	details, err := s.GetComplaintDetails(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	return details.Comments, nil
}
