// Package complaint implements the Complaint repository using PostgreSQL.
// Soft-deleted complaints (active = false) are invisible to every read and
// write except the soft delete itself.
package complaint

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// Repo provides complaint persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new complaint repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type complaintRow struct {
	ID          int64     `db:"id"`
	EntityID    int64     `db:"public_entity_id"`
	EntityName  string    `db:"entity_name"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r complaintRow) toDomain() domain.Complaint {
	return domain.Complaint{
		ID:          r.ID,
		EntityID:    r.EntityID,
		EntityName:  r.EntityName,
		Description: r.Description,
		Status:      domain.ComplaintStatus(r.Status),
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type entityCountRow struct {
	EntityName string `db:"entity_name"`
	Total      int64  `db:"total"`
}

type statusCountRow struct {
	Status string `db:"status"`
	Total  int64  `db:"total"`
}

func selectActive() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"c.id",
			"c.public_entity_id",
			"e.name AS entity_name",
			"c.description",
			"c.status",
			"c.active",
			"c.created_at",
			"c.updated_at",
		).
		From("complaints c").
		Join("public_entities e ON e.id = c.public_entity_id").
		Where(squirrel.Eq{"c.active": true})
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an open, active complaint and returns its id.
func (r *Repo) Create(ctx context.Context, entityID int64, description string) (int64, error) {
	sql, args, err := postgres.Builder().
		Insert("complaints").
		Columns("public_entity_id", "description", "status").
		Values(entityID, description, string(domain.ComplaintStatusOpen)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert complaint: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "public_entity", entityID)
	}
	return id, nil
}

// UpdateStatus sets the status of an active complaint and bumps updated_at.
// It reports false when no active complaint has that id.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ComplaintStatus) (bool, error) {
	sql, args, err := postgres.Builder().
		Update("complaints").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update complaint status: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "complaint", id)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete clears the active flag. Deleting an already deleted complaint
// reports false.
func (r *Repo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := postgres.Builder().
		Update("complaints").
		Set("active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build soft delete complaint: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "complaint", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active complaint with its entity name.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	sql, args, err := selectActive().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get complaint: %w", err)
	}

	var row complaintRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("complaint %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "complaint", id)
	}

	c := row.toDomain()
	return &c, nil
}

// ListActive returns active complaints, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Complaint, error) {
	sql, args, err := selectActive().OrderBy("c.created_at DESC", "c.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list complaints: %w", err)
	}

	var rows []complaintRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}

	complaints := make([]domain.Complaint, len(rows))
	for i, row := range rows {
		complaints[i] = row.toDomain()
	}
	return complaints, nil
}

// CountByEntity counts active complaints per entity, largest first.
// Entities without active complaints are omitted.
func (r *Repo) CountByEntity(ctx context.Context) ([]domain.EntityCount, error) {
	sql, args, err := postgres.Builder().
		Select("e.name AS entity_name", "COUNT(c.id) AS total").
		From("complaints c").
		Join("public_entities e ON e.id = c.public_entity_id").
		Where(squirrel.Eq{"c.active": true}).
		GroupBy("e.id", "e.name").
		OrderBy("total DESC", "e.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by entity: %w", err)
	}

	var rows []entityCountRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("count complaints by entity: %w", err)
	}

	counts := make([]domain.EntityCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.EntityCount{EntityName: row.EntityName, Total: row.Total}
	}
	return counts, nil
}

// CountByStatus counts active complaints per status.
// Statuses without active complaints are omitted.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	sql, args, err := postgres.Builder().
		Select("status", "COUNT(*) AS total").
		From("complaints").
		Where(squirrel.Eq{"active": true}).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by status: %w", err)
	}

	var rows []statusCountRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("count complaints by status: %w", err)
	}

	counts := make([]domain.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.StatusCount{Status: domain.ComplaintStatus(row.Status), Total: row.Total}
	}
	return counts, nil
}
