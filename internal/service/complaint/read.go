package complaint

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// ComplaintDetails is a complaint together with its comments.
type ComplaintDetails struct {
	Complaint domain.Complaint
	Comments  []domain.Comment
}

// ListComplaints returns active complaints, newest first.
func (s *Service) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	complaints, err := s.complaints.ListActive(ctx)
	if err != nil {
		return nil, s.dependencyFailure(ctx, "list complaints", err)
	}
	return complaints, nil
}

// ListEntities returns every public entity ordered by name.
func (s *Service) ListEntities(ctx context.Context) ([]domain.PublicEntity, error) {
	entities, err := s.entities.List(ctx)
	if err != nil {
		return nil, s.dependencyFailure(ctx, "list public entities", err)
	}
	return entities, nil
}

// GetComplaintDetails loads an active complaint and its comments concurrently.
func (s *Service) GetComplaintDetails(ctx context.Context, complaintID string) (*ComplaintDetails, error) {
	id, err := ValidateComplaintID(complaintID)
	if err != nil {
		return nil, err
	}

	var (
		complaint *domain.Complaint
		comments  []domain.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complaint, err = s.complaints.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByComplaint(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, complaintNotFound(id)
		}
		return nil, s.dependencyFailure(ctx, "load complaint details", err)
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	return &ComplaintDetails{Complaint: *complaint, Comments: comments}, nil
}

// GetStats counts active complaints by entity and by status concurrently.
func (s *Service) GetStats(ctx context.Context) (*domain.ComplaintStats, error) {
	var stats domain.ComplaintStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.ByEntity, err = s.complaints.CountByEntity(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ByStatus, err = s.complaints.CountByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.dependencyFailure(ctx, "load complaint stats", err)
	}

	return &stats, nil
}
