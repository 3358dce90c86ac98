package mqtt

import "fmt"

// DefaultTopicPrefix is used when no prefix is configured.
const DefaultTopicPrefix = "nclink"

// Topics builds NC-Link MQTT topics under a common prefix.
//
//	topics := mqtt.Topics{Prefix: "nclink"}
//	topics.Sample("a1b2c3")
//	// Returns: "nclink/a1b2c3/sample"
type Topics struct {
	Prefix string
}

func (t Topics) prefix() string {
	if t.Prefix == "" {
		return DefaultTopicPrefix
	}
	return t.Prefix
}

// Inventory returns the retained inventory topic for a device.
//
// Example: nclink/a1b2c3/inventory
func (t Topics) Inventory(devGUID string) string {
	return fmt.Sprintf("%s/%s/inventory", t.prefix(), devGUID)
}

// Sample returns the topic carrying routed sample values for a device.
//
// Example: nclink/a1b2c3/sample
func (t Topics) Sample(devGUID string) string {
	return fmt.Sprintf("%s/%s/sample", t.prefix(), devGUID)
}

// SystemStatus returns the client status topic used for the LWT.
//
// Example: nclink/system/status
func (t Topics) SystemStatus() string {
	return fmt.Sprintf("%s/system/status", t.prefix())
}
