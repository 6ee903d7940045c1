// Package entity implements read access to public entities. Entities are
// reference data seeded by migrations; nothing in the service writes them.
package entity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/complaints-backend/internal/adapter/postgres"
	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// Repo provides public entity lookups backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new public entity repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type entityRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Exists reports whether a public entity with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		From("public_entities").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build entity exists: %w", err)
	}

	var exists bool
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "public_entity", id)
	}
	return exists, nil
}

// List returns every public entity ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.PublicEntity, error) {
	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("public_entities").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entities: %w", err)
	}

	var rows []entityRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list public entities: %w", err)
	}

	entities := make([]domain.PublicEntity, len(rows))
	for i, row := range rows {
		entities[i] = domain.PublicEntity{ID: row.ID, Name: row.Name}
	}
	return entities, nil
}
