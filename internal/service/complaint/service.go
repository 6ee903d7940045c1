// Package complaint implements the complaint lifecycle: anonymous intake,
// staff status changes and deletion gated by an active session, anonymous
// comments, and read models. Status events and emails are published as
// detached tasks and never affect the result of the operation.
package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/pkg/detach"
)

type complaintRepo interface {
	Create(ctx context.Context, entityID int64, description string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	ListActive(ctx context.Context) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
	CountByEntity(ctx context.Context) ([]domain.EntityCount, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

type entityRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.PublicEntity, error)
}

type commentRepo interface {
	Create(ctx context.Context, complaintID int64, text string) (int64, error)
	ListByComplaint(ctx context.Context, complaintID int64) ([]domain.Comment, error)
}

type sessionChecker interface {
	IsSessionActive(ctx context.Context, username string) (bool, error)
}

type statusEventPublisher interface {
	PublishStatusChange(ctx context.Context, event domain.StatusChangeEvent) error
}

type emailPublisher interface {
	PublishEmail(ctx context.Context, n domain.EmailNotification) error
}

type taskRunner interface {
	Go(ctx context.Context, name string, fn detach.Func)
}

// Service provides complaint lifecycle operations.
type Service struct {
	complaints complaintRepo
	entities   entityRepo
	comments   commentRepo
	sessions   sessionChecker
	events     statusEventPublisher
	emails     emailPublisher
	tasks      taskRunner
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new complaint Service.
func NewService(
	log *slog.Logger,
	complaints complaintRepo,
	entities entityRepo,
	comments commentRepo,
	sessions sessionChecker,
	events statusEventPublisher,
	emails emailPublisher,
	tasks taskRunner,
) *Service {
	return &Service{
		complaints: complaints,
		entities:   entities,
		comments:   comments,
		sessions:   sessions,
		events:     events,
		emails:     emails,
		tasks:      tasks,
		log:        log.With("service", "complaint"),
		now:        time.Now,
	}
}

// requireActiveSession blocks the caller until the auth service confirms the
// user's session. An unreachable auth service counts as an inactive session.
func (s *Service) requireActiveSession(ctx context.Context, username string) error {
	active, err := s.sessions.IsSessionActive(ctx, username)
	if err != nil {
		s.log.WarnContext(ctx, "session check failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return &domain.SessionError{Username: username, Cause: err}
	}
	if !active {
		s.log.InfoContext(ctx, "session inactive", slog.String("username", username))
		return &domain.SessionError{Username: username}
	}
	return nil
}

// dependencyFailure logs err and hides it behind a DependencyError.
func (s *Service) dependencyFailure(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, op+" failed", slog.String("error", err.Error()))
	return domain.NewDependencyError(op, err)
}

func complaintNotFound(id int64) error {
	return fmt.Errorf("complaint %d: %w", id, domain.ErrNotFound)
}
