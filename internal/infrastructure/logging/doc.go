// Package logging provides structured logging for the NC-Link client.
//
// It wraps log/slog with the handler, level and default fields selected in
// the logging section of the configuration:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr, or a file path
//
// Every entry carries service=nclink and the build version.
//
// Usage:
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Info("schema loaded", "nodes", 42)
package logging
