// Package history implements the complaint status history repository.
// Rows live in the historical schema and are append-only.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	"github.com/heartmarshall/complaints-backend/internal/domain"
)

const table = "historical.complaint_status_history"

// Repo provides status history persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new status history repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type historyRow struct {
	ID                int64     `db:"id"`
	ComplaintID       int64     `db:"complaint_id"`
	PreviousStatus    *string   `db:"previous_status"`
	NewStatus         string    `db:"new_status"`
	ChangedBy         *string   `db:"changed_by"`
	ChangeDescription *string   `db:"change_description"`
	EventTimestamp    time.Time `db:"event_timestamp"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r historyRow) toDomain() domain.StatusHistoryEntry {
	e := domain.StatusHistoryEntry{
		ID:             r.ID,
		ComplaintID:    r.ComplaintID,
		NewStatus:      domain.ComplaintStatus(r.NewStatus),
		EventTimestamp: r.EventTimestamp,
		CreatedAt:      r.CreatedAt,
	}
	if r.PreviousStatus != nil {
		prev := domain.ComplaintStatus(*r.PreviousStatus)
		e.PreviousStatus = &prev
	}
	if r.ChangedBy != nil {
		e.ChangedBy = *r.ChangedBy
	}
	if r.ChangeDescription != nil {
		e.ChangeDescription = *r.ChangeDescription
	}
	return e
}

// Record appends a status change and returns the history row id.
func (r *Repo) Record(ctx context.Context, event domain.StatusChangeEvent) (int64, error) {
	var previous *string
	if event.PreviousStatus != nil {
		s := event.PreviousStatus.String()
		previous = &s
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("complaint_id", "previous_status", "new_status", "changed_by", "change_description", "event_timestamp").
		Values(event.ComplaintID, previous, event.NewStatus.String(), event.ChangedBy, event.ChangeDescription, event.Timestamp).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert status history: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "complaint_status_history", event.ComplaintID)
	}
	return id, nil
}

// ListByComplaint returns the status history of a complaint in event order.
func (r *Repo) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error) {
	sql, args, err := postgres.Builder().
		Select(
			"id",
			"complaint_id",
			"previous_status",
			"new_status",
			"changed_by",
			"change_description",
			"event_timestamp",
			"created_at",
		).
		From(table).
		Where(squirrel.Eq{"complaint_id": complaintID}).
		OrderBy("event_timestamp ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list status history: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list status history of complaint %d: %w", complaintID, err)
	}

	entries := make([]domain.StatusHistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}
