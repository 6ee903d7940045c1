package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/internal/service/complaint"
)

type complaintService interface {
	CreateComplaint(ctx context.Context, input complaint.CreateComplaintInput) (int64, error)
	UpdateStatus(ctx context.Context, input complaint.UpdateStatusInput) (*domain.Complaint, error)
	DeleteComplaint(ctx context.Context, input complaint.DeleteComplaintInput) error
	AddComment(ctx context.Context, input complaint.AddCommentInput) (int64, error)
	GetComments(ctx context.Context, complaintID string) ([]domain.Comment, error)
	GetComplaintDetails(ctx context.Context, complaintID string) (*complaint.ComplaintDetails, error)
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	ListEntities(ctx context.Context) ([]domain.PublicEntity, error)
	GetStats(ctx context.Context) (*domain.ComplaintStats, error)
}

// ComplaintHandler serves the complaint intake, staff and read endpoints.
type ComplaintHandler struct {
	svc complaintService
	log *slog.Logger
}

// NewComplaintHandler creates a ComplaintHandler.
func NewComplaintHandler(svc complaintService, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, log: logger.With("handler", "complaint")}
}

type createComplaintRequest struct {
	Entity      flexString `json:"entity"`
	Description string     `json:"description"`
}

type updateStatusRequest struct {
	ComplaintID flexString `json:"id_complaint"`
	Status      string     `json:"complaint_status"`
	Username    string     `json:"username"`
}

type deleteComplaintRequest struct {
	ComplaintID flexString `json:"id_complaint"`
	Username    string     `json:"username"`
}

type addCommentRequest struct {
	ComplaintID flexString `json:"id_complaint"`
	Text        string     `json:"comment_text"`
}

type entityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type complaintResponse struct {
	ID           int64     `json:"id_complaint"`
	PublicEntity string    `json:"public_entity"`
	Description  string    `json:"description"`
	Status       string    `json:"complaint_status"`
	CreatedAt    time.Time `json:"created_at"`
}

type commentResponse struct {
	ID          int64     `json:"id_comment"`
	ComplaintID int64     `json:"id_complaint"`
	Text        string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

type entityStatResponse struct {
	PublicEntity string `json:"public_entity"`
	Total        int64  `json:"total"`
}

type statusStatResponse struct {
	Status string `json:"complaint_status"`
	Total  int64  `json:"total"`
}

// ListEntities handles GET /entities.
func (h *ComplaintHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.ListEntities(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data := make([]entityResponse, 0, len(entities))
	for _, e := range entities {
		data = append(data, entityResponse{ID: e.ID, Name: e.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

// Create handles POST /complaints.
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := h.svc.CreateComplaint(r.Context(), complaint.CreateComplaintInput{
		Entity:      req.Entity.String(),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Complaint registered successfully",
		"data":    map[string]int64{"id_complaint": id},
	})
}

// List handles GET /complaints.
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.svc.ListComplaints(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data := make([]complaintResponse, 0, len(complaints))
	for _, c := range complaints {
		data = append(data, toComplaintResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

// Stats handles GET /complaints/stats.
func (h *ComplaintHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byEntity := make([]entityStatResponse, 0, len(stats.ByEntity))
	for _, s := range stats.ByEntity {
		byEntity = append(byEntity, entityStatResponse{PublicEntity: s.EntityName, Total: s.Total})
	}
	byStatus := make([]statusStatResponse, 0, len(stats.ByStatus))
	for _, s := range stats.ByStatus {
		byStatus = append(byStatus, statusStatResponse{Status: s.Status.String(), Total: s.Total})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"entity_stats": byEntity,
			"status_stats": byStatus,
		},
	})
}

// UpdateStatus handles POST /complaints/update-status.
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), complaint.UpdateStatusInput{
		ComplaintID: req.ComplaintID.String(),
		Status:      req.Status,
		ActingUser:  req.Username,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Complaint status updated to " + updated.Status.String(),
	})
}

// Delete handles POST /complaints/delete.
func (h *ComplaintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteComplaintRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err := h.svc.DeleteComplaint(r.Context(), complaint.DeleteComplaintInput{
		ComplaintID: req.ComplaintID.String(),
		ActingUser:  req.Username,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Complaint deleted successfully",
	})
}

// AddComment handles POST /complaints/comments.
func (h *ComplaintHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := h.svc.AddComment(r.Context(), complaint.AddCommentInput{
		ComplaintID: req.ComplaintID.String(),
		Text:        req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Comment added successfully",
		"data":    map[string]int64{"id_comment": id},
	})
}

// Comments handles GET /complaints/{id_complaint}/comments.
func (h *ComplaintHandler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.GetComments(r.Context(), r.PathValue("id_complaint"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"comments": toCommentResponses(comments),
	})
}

// Details handles GET /complaints/{id_complaint}/details.
func (h *ComplaintHandler) Details(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.GetComplaintDetails(r.Context(), r.PathValue("id_complaint"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"complaint": toComplaintResponse(details.Complaint),
		"comments":  toCommentResponses(details.Comments),
	})
}

func toComplaintResponse(c domain.Complaint) complaintResponse {
	return complaintResponse{
		ID:           c.ID,
		PublicEntity: c.EntityName,
		Description:  c.Description,
		Status:       c.Status.String(),
		CreatedAt:    c.CreatedAt,
	}
}

func toCommentResponses(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentResponse{
			ID:          c.ID,
			ComplaintID: c.ComplaintID,
			Text:        c.Text,
			CreatedAt:   c.CreatedAt,
		})
	}
	return out
}
