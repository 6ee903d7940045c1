package complaint

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/pkg/detach"
)

var fixedNow = time.Date(2025, 11, 14, 10, 30, 0, 0, time.UTC)

type testDeps struct {
	complaints *complaintRepoMock
	entities   *entityRepoMock
	comments   *commentRepoMock
	sessions   *sessionCheckerMock
	events     *statusEventPublisherMock
	emails     *emailPublisherMock
	runner     *detach.Runner
}

// newTestService wires the given mocks; nil mocks are replaced with empty
// ones that panic when called.
func newTestService(t *testing.T, d *testDeps) *Service {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	if d.complaints == nil {
		d.complaints = &complaintRepoMock{}
	}
	if d.entities == nil {
		d.entities = &entityRepoMock{}
	}
	if d.comments == nil {
		d.comments = &commentRepoMock{}
	}
	if d.sessions == nil {
		d.sessions = &sessionCheckerMock{}
	}
	if d.events == nil {
		d.events = &statusEventPublisherMock{
			PublishStatusChangeFunc: func(ctx context.Context, event domain.StatusChangeEvent) error { return nil },
		}
	}
	if d.emails == nil {
		d.emails = &emailPublisherMock{
			PublishEmailFunc: func(ctx context.Context, n domain.EmailNotification) error { return nil },
		}
	}
	d.runner = detach.NewRunner(log)

	svc := NewService(log, d.complaints, d.entities, d.comments, d.sessions, d.events, d.emails, d.runner)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// waitDetached blocks until every side effect started by the service is done.
func waitDetached(t *testing.T, d *testDeps) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.runner.Wait(ctx); err != nil {
		t.Fatalf("detached tasks did not finish: %v", err)
	}
}

func activeSession() *sessionCheckerMock {
	return &sessionCheckerMock{
		IsSessionActiveFunc: func(ctx context.Context, username string) (bool, error) { return true, nil },
	}
}

func sampleComplaint(id int64, status domain.ComplaintStatus) *domain.Complaint {
	return &domain.Complaint{
		ID:          id,
		EntityID:    5,
		EntityName:  "Ministry of Health",
		Description: "The clinic was closed during opening hours",
		Status:      status,
		Active:      true,
		CreatedAt:   fixedNow.Add(-time.Hour),
		UpdatedAt:   fixedNow.Add(-time.Hour),
	}
}
