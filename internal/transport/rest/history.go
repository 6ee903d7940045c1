package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/complaints-backend/internal/domain"
	"github.com/heartmarshall/complaints-backend/internal/service/complaint"
)

type historyService interface {
	List(ctx context.Context, complaintID int64) ([]domain.StatusHistoryEntry, error)
}

// HistoryHandler serves the status history recorded by the history consumer.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyEntryResponse struct {
	ID                int64     `json:"id"`
	ComplaintID       int64     `json:"id_complaint"`
	PreviousStatus    *string   `json:"previous_status"`
	NewStatus         string    `json:"new_status"`
	ChangedBy         string    `json:"changed_by"`
	ChangeDescription *string   `json:"change_description"`
	EventTimestamp    time.Time `json:"event_timestamp"`
}

// List handles GET /complaints/{id_complaint}/history. A complaint without
// recorded events yields an empty list rather than 404.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := complaint.ValidateComplaintID(r.PathValue("id_complaint"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	history := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := historyEntryResponse{
			ID:             e.ID,
			ComplaintID:    e.ComplaintID,
			NewStatus:      e.NewStatus.String(),
			ChangedBy:      e.ChangedBy,
			EventTimestamp: e.EventTimestamp,
		}
		if e.PreviousStatus != nil {
			prev := e.PreviousStatus.String()
			resp.PreviousStatus = &prev
		}
		if e.ChangeDescription != "" {
			desc := e.ChangeDescription
			resp.ChangeDescription = &desc
		}
		history = append(history, resp)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "history": history})
}
