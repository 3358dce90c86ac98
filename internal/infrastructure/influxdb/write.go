package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement and tag names used for sample points.
//
// Queries select one data point with a path filter:
//
//	from(bucket: "nclink") |> filter(fn: (r) => r._measurement == "nclink_sample" and r.path == "...")
const (
	SampleMeasurement = "nclink_sample"
	TagDevGUID        = "dev_guid"
	TagPath           = "path"
	TagID             = "id"
	FieldValue        = "value"
)

// WriteSample queues one routed sample value.
//
// This is the write path of the sample sink. The write is non-blocking;
// points are batched and sent asynchronously, and failures surface through
// the SetOnError callback. It is a no-op when disconnected.
//
// Parameters:
//   - devGUID: Device instance identifier (tag omitted when empty)
//   - path: Node path the value was routed to (e.g., "NC_LINK_ROOT/CNC1/AXIS@0/POSITION")
//   - id: Node id inside the device schema
//   - value: Sampled value as read from the machine
//   - ts: Sample timestamp
//
// Example:
//
//	client.WriteSample("9b2f4c1e", "NC_LINK_ROOT/CNC1/STATUS", "di-1", "RUN", time.Now())
func (c *Client) WriteSample(devGUID, path, id string, value any, ts time.Time) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(SamplePoint(devGUID, path, id, value, ts))
}

// SamplePoint builds the point written for a sample. An empty devGUID leaves
// the dev_guid tag out.
func SamplePoint(devGUID, path, id string, value any, ts time.Time) *write.Point {
	tags := map[string]string{
		TagPath: path,
		TagID:   id,
	}
	if devGUID != "" {
		tags[TagDevGUID] = devGUID
	}
	return write.NewPoint(SampleMeasurement, tags, map[string]any{FieldValue: value}, ts)
}
