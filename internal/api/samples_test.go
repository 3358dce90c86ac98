package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nerrad567/nclink-core/internal/infrastructure/config"
	"github.com/nerrad567/nclink-core/internal/infrastructure/logging"
	"github.com/nerrad567/nclink-core/internal/nclink"
	"github.com/nerrad567/nclink-core/internal/uploader"
)

type recordingSink struct {
	err     error
	samples []uploader.Sample
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Write(_ context.Context, s uploader.Sample) error {
	r.samples = append(r.samples, s)
	return r.err
}

// ingestServer builds a server whose device has a two-member sample channel
// (sc-1) and a channel with a member missing from the maps (sc-2).
func ingestServer(t *testing.T, sink *recordingSink) *Server {
	t.Helper()

	dev := testDevice(t)
	sc := nclink.NewSampleChannel("sc-1", "SAMPLE", "Fast")
	sc.SampleInterval, sc.UploadInterval = 100, 1000
	sc.SetParent(dev)
	for _, id := range []string{"cfg-1", "di-1"} {
		if err := sc.AddSamplePointID(id); err != nil {
			t.Fatalf("AddSamplePointID() error = %v", err)
		}
	}
	if err := dev.AddSampleChannel(sc); err != nil {
		t.Fatalf("AddSampleChannel() error = %v", err)
	}

	partial := nclink.NewSampleChannel("sc-2", "SAMPLE_SLOW", "Slow")
	partial.SampleInterval, partial.UploadInterval = 1000, 1000
	partial.SetParent(dev)
	for _, id := range []string{"di-1", "ghost"} {
		if err := partial.AddSamplePointID(id); err != nil {
			t.Fatalf("AddSamplePointID() error = %v", err)
		}
	}
	if err := dev.AddSampleChannel(partial); err != nil {
		t.Fatalf("AddSampleChannel() error = %v", err)
	}

	router := uploader.NewRouter(dev)
	router.AddSink(sink)

	srv, err := New(Deps{
		Logger: logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stderr"}, "test"),
		Device: dev,
		Router: router,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func doPost(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/samples", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.buildRouter().ServeHTTP(rec, req)
	return rec
}

func TestIngestSamples(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		sinkErr     error
		wantCode    int
		wantSamples int
	}{
		{"single value", `{"id":"di-1","value":12.5}`, nil, http.StatusAccepted, 1},
		{"with timestamp", `{"id":"di-1","value":1,"ts":"2026-05-01T08:00:00Z"}`, nil, http.StatusAccepted, 1},
		{"channel read", `{"channel":"sc-1","values":["lathe",3]}`, nil, http.StatusAccepted, 2},
		{"unknown id", `{"id":"nope","value":1}`, nil, http.StatusNotFound, 0},
		{"unknown channel", `{"channel":"sc-9","values":[1]}`, nil, http.StatusNotFound, 0},
		{"channel with unknown member", `{"channel":"sc-2","values":[1,2]}`, nil, http.StatusNotFound, 0},
		{"device id", `{"id":"dev-1","value":42}`, nil, http.StatusBadRequest, 0},
		{"component id", `{"id":"cp-1","value":42}`, nil, http.StatusBadRequest, 0},
		{"value count mismatch", `{"channel":"sc-1","values":[1]}`, nil, http.StatusBadRequest, 0},
		{"both id and channel", `{"id":"di-1","channel":"sc-1"}`, nil, http.StatusBadRequest, 0},
		{"neither", `{}`, nil, http.StatusBadRequest, 0},
		{"malformed", `{"id":`, nil, http.StatusBadRequest, 0},
		{"sink failure", `{"id":"di-1","value":1}`, errors.New("down"), http.StatusBadGateway, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{err: tt.sinkErr}
			rec := doPost(t, ingestServer(t, sink), tt.body)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if len(sink.samples) != tt.wantSamples {
				t.Errorf("sink received %d samples, want %d", len(sink.samples), tt.wantSamples)
			}
		})
	}
}

func TestIngestSamples_ResponseCarriesPaths(t *testing.T) {
	sink := &recordingSink{}
	rec := doPost(t, ingestServer(t, sink), `{"channel":"sc-1","values":["lathe",3]}`)

	var body struct {
		Samples []uploader.Sample `json:"samples"`
		Count   int               `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2", body.Count)
	}
	if body.Samples[0].Path != "NC_LINK_ROOT/CNC1/MACHINE_TYPE" || body.Samples[1].Path != "NC_LINK_ROOT/CNC1/AXIS@0/POSITION" {
		t.Errorf("paths = %q, %q", body.Samples[0].Path, body.Samples[1].Path)
	}
}

func TestIngestSamples_NoRouter(t *testing.T) {
	rec := doPost(t, testServer(t, nil, nil), `{"id":"di-1","value":1}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
