package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nerrad567/nclink-core/internal/nclink"
	"github.com/nerrad567/nclink-core/internal/uploader"
)

// maxSampleBody bounds the ingest request body (1 MB).
const maxSampleBody = 1 << 20

// sampleRequest carries either one value (ID) or one read of a sample
// channel (Channel with Values in member order). TS defaults to now.
type sampleRequest struct {
	ID      string     `json:"id,omitempty"`
	Value   any        `json:"value,omitempty"`
	Channel string     `json:"channel,omitempty"`
	Values  []any      `json:"values,omitempty"`
	TS      *time.Time `json:"ts,omitempty"`
}

// handleIngestSamples routes posted values through the sample router.
//
// Status codes:
//   - 202: every sample reached every sink
//   - 400: bad body, value count mismatch, or an id that is not a config or data item
//   - 404: unknown id or channel; nothing was written
//   - 502: at least one sink failed; the response still names the samples
func (s *Server) handleIngestSamples(w http.ResponseWriter, r *http.Request) {
	// Routing is optional; without sinks there is nowhere to send samples.
	if s.router == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "sample routing not configured")
		return
	}

	var req sampleRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSampleBody)).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}
	// Default the timestamp to receipt time.
	ts := time.Now().UTC()
	if req.TS != nil {
		ts = *req.TS
	}

	var (
		samples []uploader.Sample
		err     error
	)
	// Exactly one of id or channel selects the routing mode.
	switch {
	case req.Channel != "" && req.ID == "":
		sc, ok := s.device.SampleChannels().Get(req.Channel)
		if !ok {
			writeNotFound(w, "no sample channel "+req.Channel)
			return
		}
		samples, err = s.router.RouteChannel(r.Context(), sc, req.Values, ts)
	case req.ID != "" && req.Channel == "":
		var sample uploader.Sample
		sample, err = s.router.Route(r.Context(), req.ID, req.Value, ts)
		// A sink failure still produced a routed sample worth reporting.
		if err == nil || errors.Is(err, uploader.ErrSinkFailed) {
			samples = []uploader.Sample{sample}
		}
	default:
		writeBadRequest(w, "exactly one of id or channel is required")
		return
	}

	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, map[string]any{"samples": samples, "count": len(samples)})
	case errors.Is(err, uploader.ErrValueCount), errors.Is(err, nclink.ErrInvalidMember):
		writeBadRequest(w, err.Error())
	case errors.Is(err, uploader.ErrSinkFailed):
		s.logger.Warn("sample sink failure", "error", err)
		writeError(w, http.StatusBadGateway, ErrCodeSinkFailed, err.Error())
	case errors.Is(err, nclink.ErrUnknownID):
		writeNotFound(w, err.Error())
	default:
		writeInternalError(w, "routing failed")
	}
}
