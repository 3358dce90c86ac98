package uploader

import (
	"context"
	"time"
)

// SampleWriter is the write side of the InfluxDB client.
type SampleWriter interface {
	WriteSample(devGUID, path, id string, value any, ts time.Time)
}

// InfluxSink stores samples in InfluxDB. Writes are batched by the client,
// so failures surface through its error callback rather than here.
type InfluxSink struct {
	w SampleWriter
}

// NewInfluxSink creates a sink over an InfluxDB client.
func NewInfluxSink(w SampleWriter) *InfluxSink {
	return &InfluxSink{w: w}
}

// Name implements Sink.
func (*InfluxSink) Name() string { return "influxdb" }

// Write implements Sink.
func (s *InfluxSink) Write(ctx context.Context, sample Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.w.WriteSample(sample.DevGUID, sample.Path, sample.ID, sample.Value, sample.Timestamp)
	return nil
}
