package domain

import "time"

// PublicEntity is a public institution complaints can be filed against.
type PublicEntity struct {
	ID   int64
	Name string
}

// Complaint is an anonymous report about a public entity.
// Deleting a complaint only clears Active; the row is kept.
type Complaint struct {
	ID          int64
	EntityID    int64
	EntityName  string
	Description string
	Status      ComplaintStatus
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment is an anonymous remark attached to a complaint.
// It must never carry author identity.
type Comment struct {
	ID          int64
	ComplaintID int64
	Text        string
	Active      bool
	CreatedAt   time.Time
}

// EntityCount is the number of active complaints filed against one entity.
type EntityCount struct {
	EntityName string
	Total      int64
}

// StatusCount is the number of active complaints in one status.
type StatusCount struct {
	Status ComplaintStatus
	Total  int64
}

// ComplaintStats aggregates active complaints by entity and by status.
type ComplaintStats struct {
	ByEntity []EntityCount
	ByStatus []StatusCount
}
