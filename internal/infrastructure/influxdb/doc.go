// Package influxdb stores routed NC-Link sample values in InfluxDB.
//
// It wraps influxdb-client-go v2 with connection management, a non-blocking
// batched write API and health checks. Every sample becomes one point in the
// nclink_sample measurement, tagged with the device GUID, node path and node
// id, and carrying the value in the "value" field.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteSample(dev.DevGUID(), path, id, 1200, time.Now())
//
// Writes are asynchronous; failures are reported through SetOnError.
package influxdb
