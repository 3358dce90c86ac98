// Package mqtt provides the MQTT client used to publish NC-Link inventories
// and samples.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS validation
//   - Last Will and Testament (LWT) on the status topic
//
// # Topics
//
// All topics live under a configurable prefix (default "nclink"):
//
//	{prefix}/{devGuid}/inventory   retained node inventory
//	{prefix}/{devGuid}/sample      routed sample values
//	{prefix}/system/status         client online/offline (LWT)
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := client.Topics().Inventory(dev.DevGUID())
//	err = client.PublishRetained(topic, payload)
package mqtt
