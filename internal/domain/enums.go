package domain

// ComplaintStatus is the review state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "open"
	ComplaintStatusInReview ComplaintStatus = "in_review"
	ComplaintStatusClosed   ComplaintStatus = "closed"
)

func (s ComplaintStatus) String() string { return string(s) }

// IsValid is case-sensitive: "OPEN" is not a valid status.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInReview, ComplaintStatusClosed:
		return true
	}
	return false
}

// ComplaintStatuses lists every valid status in workflow order.
func ComplaintStatuses() []ComplaintStatus {
	return []ComplaintStatus{ComplaintStatusOpen, ComplaintStatusInReview, ComplaintStatusClosed}
}

// EmailKind identifies the business event an email notification describes.
type EmailKind string

const (
	EmailKindComplaintCreated EmailKind = "complaint.created"
	EmailKindComplaintUpdated EmailKind = "complaint.updated"
)

func (k EmailKind) String() string { return string(k) }

// EmailPriority is a delivery hint for the email sender.
type EmailPriority string

const (
	EmailPriorityHigh   EmailPriority = "high"
	EmailPriorityNormal EmailPriority = "normal"
)

func (p EmailPriority) String() string { return string(p) }
