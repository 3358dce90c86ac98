// Package config loads and validates the NC-Link client configuration.
//
// Configuration comes from three layers, later layers winning:
//   - built-in defaults
//   - a YAML file
//   - NCLINK_* environment variables
//
// Credentials (MQTT password, InfluxDB token) should be supplied through the
// environment rather than the file.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Client.SchemaFile)
package config
