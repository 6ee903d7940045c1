package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/complaints-backend/pkg/ctxutil"
)

// CorrelationIDHeader carries the id that ties together the logs, broker
// messages and auth calls of one request.
const CorrelationIDHeader = "X-Correlation-Id"

const maxCorrelationIDLength = 128

// CorrelationID reuses the caller's X-Correlation-Id or generates a UUID,
// stores it in the request context and echoes it on the response.
func CorrelationID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(CorrelationIDHeader))
			if id == "" || len(id) > maxCorrelationIDLength {
				id = uuid.NewString()
			}

			w.Header().Set(CorrelationIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithCorrelationID(r.Context(), id)))
		})
	}
}
