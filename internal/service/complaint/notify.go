package complaint

import (
	"context"
	"fmt"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

const (
	taskStatusEvent = "publish-status-event"
	taskEmail       = "publish-email"
)

// publishStatusChange hands the event to the publisher without waiting.
func (s *Service) publishStatusChange(ctx context.Context, event domain.StatusChangeEvent) {
	s.tasks.Go(ctx, taskStatusEvent, func(ctx context.Context) error {
		return s.events.PublishStatusChange(ctx, event)
	})
}

// publishEmail hands the notification to the publisher without waiting.
func (s *Service) publishEmail(ctx context.Context, n domain.EmailNotification) {
	s.tasks.Go(ctx, taskEmail, func(ctx context.Context) error {
		return s.emails.PublishEmail(ctx, n)
	})
}

func createdEmail(c *domain.Complaint) domain.EmailNotification {
	return domain.EmailNotification{
		Kind:        domain.EmailKindComplaintCreated,
		Subject:     fmt.Sprintf("Complaint #%d registered", c.ID),
		Title:       "New complaint registered",
		Action:      "A new complaint was filed",
		Priority:    domain.EmailPriorityHigh,
		ComplaintID: c.ID,
		EntityName:  c.EntityName,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

func updatedEmail(c *domain.Complaint, previous domain.ComplaintStatus) domain.EmailNotification {
	return domain.EmailNotification{
		Kind:        domain.EmailKindComplaintUpdated,
		Subject:     fmt.Sprintf("Complaint #%d updated", c.ID),
		Title:       "Complaint status updated",
		Action:      fmt.Sprintf("Status changed from %s to %s", previous, c.Status),
		Priority:    domain.EmailPriorityNormal,
		ComplaintID: c.ID,
		EntityName:  c.EntityName,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}
