package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/nclink-core/internal/inventory"
)

// pathEntry is the response body of the id and path lookups.
type pathEntry struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// handleDumpNodes returns the DumpAllNodes report as plain text.
//
// The body is the operator-facing inventory: one tab-separated id/path line
// per node followed by the per-kind counts.
func (s *Server) handleDumpNodes(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, s.device.DumpAllNodes())
}

// handleNodeCounts returns the per-kind node tally as JSON.
func (s *Server) handleNodeCounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.device.Counts())
}

// handleNodePath resolves a node id to its path through the built maps.
// Unknown ids return 404.
func (s *Server) handleNodePath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	path, err := s.device.IDToPath(id)
	if err != nil {
		writeNotFound(w, "no node with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, pathEntry{ID: id, Path: path})
}

// handleListPaths returns the config and data item paths, in dictionary
// order. These are the points an acquisition layer polls.
func (s *Server) handleListPaths(w http.ResponseWriter, _ *http.Request) {
	paths := s.device.ConfigAndDataItemPaths()
	// Encode an empty device as [] rather than null.
	if paths == nil {
		paths = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"paths": paths,
		"count": len(paths),
	})
}

// handleLookupPath resolves ?path= to a node id.
// A missing parameter returns 400 and an unknown path 404.
func (s *Server) handleLookupPath(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeBadRequest(w, "path query parameter is required")
		return
	}
	id, err := s.device.PathToID(path)
	if err != nil {
		writeNotFound(w, "no node at path "+path)
		return
	}
	writeJSON(w, http.StatusOK, pathEntry{ID: id, Path: path})
}

// handleLatestSnapshot returns the newest stored inventory snapshot of the
// served device.
func (s *Server) handleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	// The store is optional; without it there is nothing to serve.
	if s.inventory == nil {
		writeNotFound(w, "inventory store not configured")
		return
	}
	snap, err := s.inventory.LatestSnapshot(r.Context(), s.device.ID())
	if err != nil {
		s.writeInventoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleSnapshotNodes returns the node rows of one snapshot in their
// stored order.
func (s *Server) handleSnapshotNodes(w http.ResponseWriter, r *http.Request) {
	// The store is optional; without it there is nothing to serve.
	if s.inventory == nil {
		writeNotFound(w, "inventory store not configured")
		return
	}
	nodes, err := s.inventory.ListNodes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeInventoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes": nodes,
		"count": len(nodes),
	})
}

// writeInventoryError maps repository errors to responses. Only a missing
// snapshot is a client error; anything else is logged and reported as 500.
func (s *Server) writeInventoryError(w http.ResponseWriter, err error) {
	if errors.Is(err, inventory.ErrSnapshotNotFound) {
		writeNotFound(w, err.Error())
		return
	}
	s.logger.Error("inventory query failed", "error", err)
	writeInternalError(w, "inventory query failed")
}
