package influxdb_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nerrad567/nclink-core/internal/infrastructure/config"
	"github.com/nerrad567/nclink-core/internal/infrastructure/influxdb"
)

// testConfig returns a configuration for a local development InfluxDB.
func testConfig() config.InfluxDBConfig {
	return config.InfluxDBConfig{
		Enabled:       true,
		URL:           "http://127.0.0.1:8086",
		Token:         "nclink-dev-token",
		Org:           "nclink",
		Bucket:        "samples",
		BatchSize:     100,
		FlushInterval: 1,
	}
}

// connectOrSkip connects to the local InfluxDB or skips the test.
func connectOrSkip(t *testing.T) *influxdb.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping InfluxDB test in short mode")
	}
	client, err := influxdb.Connect(testConfig())
	if err != nil {
		t.Skipf("InfluxDB not available: %v", err)
	}
	t.Cleanup(func() { client.Close() }) //nolint:errcheck // Test cleanup
	return client
}

func TestConnect_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_InvalidURL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection test in short mode")
	}
	cfg := testConfig()
	cfg.URL = "http://127.0.0.1:59999"

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestSamplePoint(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		devGUID  string
		value    any
		wantTags map[string]string
	}{
		{
			name:    "with guid",
			devGUID: "guid-1",
			value:   int64(1200),
			wantTags: map[string]string{
				"dev_guid": "guid-1",
				"path":     "NC_LINK_ROOT/CNC1/STATUS",
				"id":       "di-1",
			},
		},
		{
			name:  "without guid",
			value: "RUN",
			wantTags: map[string]string{
				"path": "NC_LINK_ROOT/CNC1/STATUS",
				"id":   "di-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := influxdb.SamplePoint(tt.devGUID, "NC_LINK_ROOT/CNC1/STATUS", "di-1", tt.value, ts)

			if p.Name() != "nclink_sample" {
				t.Errorf("Name() = %q, want nclink_sample", p.Name())
			}
			if !p.Time().Equal(ts) {
				t.Errorf("Time() = %v, want %v", p.Time(), ts)
			}

			tags := make(map[string]string)
			for _, tag := range p.TagList() {
				tags[tag.Key] = tag.Value
			}
			if len(tags) != len(tt.wantTags) {
				t.Errorf("tags = %v, want %v", tags, tt.wantTags)
			}
			for k, v := range tt.wantTags {
				if tags[k] != v {
					t.Errorf("tag %s = %q, want %q", k, tags[k], v)
				}
			}

			fields := p.FieldList()
			if len(fields) != 1 || fields[0].Key != "value" {
				t.Fatalf("fields = %v, want single value field", fields)
			}
		})
	}
}

func TestClose_Nil(t *testing.T) {
	var client *influxdb.Client
	if err := client.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v", err)
	}
}

func TestWriteSample_Broker(t *testing.T) {
	client := connectOrSkip(t)

	var (
		mu       sync.Mutex
		writeErr error
	)
	client.SetOnError(func(err error) {
		mu.Lock()
		writeErr = err
		mu.Unlock()
	})

	client.WriteSample("test-guid", "NC_LINK_ROOT/CNC1/STATUS", "di-1", int64(3), time.Now())
	client.Flush()

	mu.Lock()
	defer mu.Unlock()
	if writeErr != nil {
		t.Errorf("async write error = %v", writeErr)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestWriteSample_AfterClose(t *testing.T) {
	client := connectOrSkip(t)

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if client.IsConnected() {
		t.Error("IsConnected() = true after Close")
	}
	if err := client.HealthCheck(context.Background()); !errors.Is(err, influxdb.ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}

	client.WriteSample("g", "p", "i", 1, time.Now())
	client.Flush()
}
