package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntity creates a public entity with a unique name.
func SeedEntity(t *testing.T, pool *pgxpool.Pool) domain.PublicEntity {
	t.Helper()

	entity := domain.PublicEntity{Name: "Test Entity " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO public_entities (name) VALUES ($1) RETURNING id`,
		entity.Name,
	).Scan(&entity.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity: %v", err)
	}
	return entity
}

// SeedComplaint creates an active open complaint for the given entity.
func SeedComplaint(t *testing.T, pool *pgxpool.Pool, entity domain.PublicEntity) domain.Complaint {
	t.Helper()

	c := domain.Complaint{
		EntityID:    entity.ID,
		EntityName:  entity.Name,
		Description: "Seeded complaint " + uniqueSuffix(),
		Status:      domain.ComplaintStatusOpen,
		Active:      true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO complaints (public_entity_id, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		c.EntityID, c.Description,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComplaint: %v", err)
	}
	return c
}

// SeedComment attaches an active comment to a complaint.
func SeedComment(t *testing.T, pool *pgxpool.Pool, complaintID int64, text string) domain.Comment {
	t.Helper()

	c := domain.Comment{ComplaintID: complaintID, Text: text, Active: true}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO complaint_comments (complaint_id, comment_text)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		complaintID, text,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// DeactivateComplaint soft-deletes a complaint directly in storage.
func DeactivateComplaint(t *testing.T, pool *pgxpool.Pool, id int64) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `UPDATE complaints SET active = FALSE WHERE id = $1`, id); err != nil {
		t.Fatalf("testhelper: DeactivateComplaint: %v", err)
	}
}
