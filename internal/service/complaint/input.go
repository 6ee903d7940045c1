package complaint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

const (
	MinDescriptionLength = 10
	MaxDescriptionLength = 1000
	MinCommentLength     = 10
	MaxCommentLength     = 500
)

// ComplaintInput is a validated complaint submission.
type ComplaintInput struct {
	EntityID    int64
	Description string
}

// CommentInput is a validated anonymous comment. It has no author fields.
type CommentInput struct {
	ComplaintID int64
	Text        string
}

// ValidateComplaintInput checks raw form values for a new complaint and
// returns the normalized input. Lengths are counted in characters.
func ValidateComplaintInput(entityRaw, descriptionRaw string) (ComplaintInput, error) {
	var errs []domain.FieldError

	entityRaw = strings.TrimSpace(entityRaw)
	description := strings.TrimSpace(descriptionRaw)

	var entityID int64
	if entityRaw == "" {
		errs = append(errs, domain.FieldError{Field: "entity", Message: "required"})
	} else if id, ok := parseNumber(entityRaw); !ok {
		errs = append(errs, domain.FieldError{Field: "entity", Message: "must be a valid number"})
	} else {
		entityID = id
	}

	switch {
	case description == "":
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	case utf8.RuneCountInString(description) < MinDescriptionLength:
		errs = append(errs, domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be at least %d characters", MinDescriptionLength),
		})
	case utf8.RuneCountInString(descriptionRaw) > MaxDescriptionLength:
		errs = append(errs, domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must not exceed %d characters", MaxDescriptionLength),
		})
	}

	if len(errs) > 0 {
		return ComplaintInput{}, domain.NewValidationErrors(errs)
	}
	return ComplaintInput{EntityID: entityID, Description: description}, nil
}

// ValidateStatus accepts only the exact lowercase status names.
func ValidateStatus(raw string) (domain.ComplaintStatus, error) {
	if raw == "" {
		return "", domain.NewValidationError("complaint_status", "required")
	}

	status := domain.ComplaintStatus(raw)
	if !status.IsValid() {
		names := make([]string, 0, 3)
		for _, s := range domain.ComplaintStatuses() {
			names = append(names, s.String())
		}
		return "", domain.NewValidationError("complaint_status",
			"invalid status, must be one of: "+strings.Join(names, ", "))
	}
	return status, nil
}

// ValidateComplaintID parses a complaint id. Zero and negative values pass;
// whether the complaint exists is decided by storage.
func ValidateComplaintID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.NewValidationError("id_complaint", "required")
	}

	id, ok := parseNumber(raw)
	if !ok {
		return 0, domain.NewValidationError("id_complaint", "must be a valid number")
	}
	return id, nil
}

// ValidateCommentInput checks raw values for an anonymous comment.
func ValidateCommentInput(complaintIDRaw, textRaw string) (CommentInput, error) {
	var errs []domain.FieldError

	complaintIDRaw = strings.TrimSpace(complaintIDRaw)
	text := strings.TrimSpace(textRaw)

	var complaintID int64
	if complaintIDRaw == "" {
		errs = append(errs, domain.FieldError{Field: "id_complaint", Message: "required"})
	} else if id, ok := parseNumber(complaintIDRaw); !ok {
		errs = append(errs, domain.FieldError{Field: "id_complaint", Message: "must be a valid number"})
	} else {
		complaintID = id
	}

	switch {
	case text == "":
		errs = append(errs, domain.FieldError{Field: "comment_text", Message: "required"})
	case utf8.RuneCountInString(text) < MinCommentLength:
		errs = append(errs, domain.FieldError{
			Field:   "comment_text",
			Message: fmt.Sprintf("must be at least %d characters", MinCommentLength),
		})
	case utf8.RuneCountInString(textRaw) > MaxCommentLength:
		errs = append(errs, domain.FieldError{
			Field:   "comment_text",
			Message: fmt.Sprintf("must not exceed %d characters", MaxCommentLength),
		})
	}

	if len(errs) > 0 {
		return CommentInput{}, domain.NewValidationErrors(errs)
	}
	return CommentInput{ComplaintID: complaintID, Text: text}, nil
}

// parseNumber accepts any finite decimal number and truncates it toward zero,
// so "12.5" yields 12.
func parseNumber(s string) (int64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// CreateComplaintInput holds the raw values of a complaint submission.
type CreateComplaintInput struct {
	Entity      string
	Description string
}

// UpdateStatusInput holds the raw values of a status change request.
type UpdateStatusInput struct {
	ComplaintID string
	Status      string
	ActingUser  string
}

// DeleteComplaintInput holds the raw values of a delete request.
type DeleteComplaintInput struct {
	ComplaintID string
	ActingUser  string
}

// AddCommentInput holds the raw values of an anonymous comment.
type AddCommentInput struct {
	ComplaintID string
	Text        string
}
