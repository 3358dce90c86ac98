package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
)

// healthCheckTimeout bounds each component check in /health.
const healthCheckTimeout = 3 * time.Second

// buildRouter creates the HTTP router with all routes and middleware.
//
// Middleware order matters: the request id is assigned first so the logging
// and recovery middleware can attach it to their entries.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Sample ingest is the only write endpoint
		r.Post("/samples", s.handleIngestSamples)

		// Node model (read-only views of the built maps)

		r.Route("/nodes", func(r chi.Router) {
			r.Get("/", s.handleDumpNodes)
			r.Get("/counts", s.handleNodeCounts)
			r.Get("/{id}/path", s.handleNodePath)
		})

		r.Route("/paths", func(r chi.Router) {
			r.Get("/", s.handleListPaths)
			r.Get("/lookup", s.handleLookupPath)
		})

		// Stored inventory snapshots
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/latest", s.handleLatestSnapshot)
			r.Get("/{id}/nodes", s.handleSnapshotNodes)
		})
	})

	return r
}

// componentHealth is the per-component entry in the health response.
type componentHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// handleHealth runs every registered component check. Any failure turns
// the overall status to degraded and the response to 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	// Check components in a stable order so responses are reproducible.
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	components := make(map[string]componentHealth, len(names))
	for _, name := range names {
		// Each check gets its own deadline so one slow component
		// cannot consume the budget of the others.
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := s.checks[name].HealthCheck(ctx)
		cancel()
		if err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
			components[name] = componentHealth{Status: "error", Error: err.Error()}
			continue
		}
		components[name] = componentHealth{Status: "ok"}
	}

	writeJSON(w, code, map[string]any{
		"status":     status,
		"version":    s.version,
		"device_id":  s.device.ID(),
		"components": components,
	})
}
