package domain

import "time"

// DefaultChangedBy is recorded when a status change has no acting user.
const DefaultChangedBy = "system"

// StatusChangeEvent records a complaint entering a new status.
// PreviousStatus is nil when the complaint is created.
type StatusChangeEvent struct {
	ComplaintID       int64
	PreviousStatus    *ComplaintStatus
	NewStatus         ComplaintStatus
	ChangedBy         string
	ChangeDescription string
	Timestamp         time.Time
}

// StatusHistoryEntry is a persisted StatusChangeEvent.
type StatusHistoryEntry struct {
	ID                int64
	ComplaintID       int64
	PreviousStatus    *ComplaintStatus
	NewStatus         ComplaintStatus
	ChangedBy         string
	ChangeDescription string
	EventTimestamp    time.Time
	CreatedAt         time.Time
}

// EmailNotification is the content of an email about a complaint.
// Recipients and delivery metadata are added by the publisher.
type EmailNotification struct {
	Kind        EmailKind
	Subject     string
	Title       string
	Action      string
	Priority    EmailPriority
	ComplaintID int64
	EntityName  string
	Description string
	Status      ComplaintStatus
	CreatedAt   time.Time
}
