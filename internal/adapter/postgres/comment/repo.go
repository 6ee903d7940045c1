// Package comment implements the anonymous comment repository using
// PostgreSQL. The table has no author columns, so nothing here can record
// who wrote a comment.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new comment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type commentRow struct {
	ID          int64     `db:"id"`
	ComplaintID int64     `db:"complaint_id"`
	Text        string    `db:"comment_text"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

// Create stores a comment and returns its id. A complaint id that does not
// exist maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, complaintID int64, text string) (int64, error) {
	sql, args, err := postgres.Builder().
		Insert("complaint_comments").
		Columns("complaint_id", "comment_text").
		Values(complaintID, text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert comment: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "complaint", complaintID)
	}
	return id, nil
}

// ListByComplaint returns the active comments of a complaint, newest first.
func (r *Repo) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Select("id", "complaint_id", "comment_text", "active", "created_at").
		From("complaint_comments").
		Where(squirrel.Eq{"complaint_id": complaintID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list comments of complaint %d: %w", complaintID, err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = domain.Comment{
			ID:          row.ID,
			ComplaintID: row.ComplaintID,
			Text:        row.Text,
			Active:      row.Active,
			CreatedAt:   row.CreatedAt,
		}
	}
	return comments, nil
}
