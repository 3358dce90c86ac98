// Package uploader routes sampled values to their NC-Link paths and hands
// them to storage and messaging sinks.
//
// A Router resolves each value's node id through the device's built
// id->path map and fans the resulting Sample out to every registered Sink.
// InfluxSink stores samples in InfluxDB; MQTTPublisher publishes them, and
// the device inventory, to the broker.
//
// The package does no scheduling. Callers read a sample channel and call
// Route or RouteChannel with the values.
package uploader
