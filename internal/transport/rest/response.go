package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/complaints-backend/internal/domain"
)

const maxBodyBytes = 64 << 10

// fieldErrorResponse is one entry of the "errors" list of a 400 response.
type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// decodeJSON reads a size-limited JSON body into v. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is required")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// handleError maps domain errors to HTTP responses. Dependency failures are
// checked before not-found because a DependencyError may wrap ErrNotFound.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		serr *domain.SessionError
	)

	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.As(err, &serr):
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success":         false,
			"message":         "session is not active, please log in again",
			"redirectToLogin": serr.RedirectToLogin(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success":         false,
			"message":         "unauthorized",
			"redirectToLogin": true,
		})
	case errors.Is(err, domain.ErrDependency):
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage(err))
	default:
		log.ErrorContext(r.Context(), "unexpected error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	fields := make([]fieldErrorResponse, 0, len(verr.Errors))
	messages := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		messages = append(messages, fe.Field+": "+fe.Message)
	}

	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": strings.Join(messages, "; "),
		"errors":  fields,
	})
}

// notFoundMessage turns "complaint 7: not found" into "complaint 7 not found".
func notFoundMessage(err error) string {
	msg := strings.Replace(err.Error(), ": "+domain.ErrNotFound.Error(), " "+domain.ErrNotFound.Error(), 1)
	if msg == domain.ErrNotFound.Error() {
		return "resource not found"
	}
	return msg
}
