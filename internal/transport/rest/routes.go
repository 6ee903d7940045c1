package rest

import (
	"net/http"

	"github.com/heartmarshall/complaints-backend/internal/transport/middleware"
)

// Routes groups the handlers mounted on the API mux.
type Routes struct {
	Complaints *ComplaintHandler
	History    *HistoryHandler
	Health     *HealthHandler
	Metrics    http.Handler
	// IntakeLimit guards the anonymous write endpoints. Nil disables it.
	IntakeLimit middleware.Middleware
}

// Register mounts every route on mux.
func (rt Routes) Register(mux *http.ServeMux) {
	limited := func(h http.HandlerFunc) http.Handler {
		if rt.IntakeLimit == nil {
			return h
		}
		return rt.IntakeLimit(h)
	}

	if rt.Health != nil {
		mux.HandleFunc("GET /live", rt.Health.Live)
		mux.HandleFunc("GET /ready", rt.Health.Ready)
		mux.HandleFunc("GET /health", rt.Health.Health)
	}
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	c := rt.Complaints
	mux.HandleFunc("GET /entities", c.ListEntities)
	mux.Handle("POST /complaints", limited(c.Create))
	mux.HandleFunc("GET /complaints", c.List)
	mux.HandleFunc("GET /complaints/stats", c.Stats)
	mux.HandleFunc("POST /complaints/update-status", c.UpdateStatus)
	mux.HandleFunc("POST /complaints/delete", c.Delete)
	mux.Handle("POST /complaints/comments", limited(c.AddComment))
	mux.HandleFunc("GET /complaints/{id_complaint}/comments", c.Comments)
	mux.HandleFunc("GET /complaints/{id_complaint}/details", c.Details)

	if rt.History != nil {
		mux.HandleFunc("GET /complaints/{id_complaint}/history", rt.History.List)
	}
}
