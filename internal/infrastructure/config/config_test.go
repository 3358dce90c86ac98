package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
client:
  schema_file: "/etc/nclink/lathe.yaml"
  strict: true
database:
  path: "/tmp/nclink.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  enabled: true
  broker:
    host: "broker.local"
    port: 1883
    client_id: "lathe-01"
  qos: 1
  topic_prefix: "plant/nclink"
influxdb:
  enabled: true
  url: "http://influx:8086"
  bucket: "samples"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Client.SchemaFile != "/etc/nclink/lathe.yaml" {
		t.Errorf("Client.SchemaFile = %q, want %q", cfg.Client.SchemaFile, "/etc/nclink/lathe.yaml")
	}
	if !cfg.Client.Strict {
		t.Error("Client.Strict = false, want true")
	}
	if cfg.MQTT.Broker.Host != "broker.local" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "broker.local")
	}
	if cfg.MQTT.TopicPrefix != "plant/nclink" {
		t.Errorf("MQTT.TopicPrefix = %q, want %q", cfg.MQTT.TopicPrefix, "plant/nclink")
	}
	// Defaults survive for keys the file leaves out.
	if cfg.InfluxDB.BatchSize != 100 {
		t.Errorf("InfluxDB.BatchSize = %d, want default 100", cfg.InfluxDB.BatchSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: [yaml: content")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
client:
  schema_file: ""
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() expected validation error for empty client.schema_file, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Client:   ClientConfig{SchemaFile: "device.yaml"},
			Database: DatabaseConfig{Path: "/data/nclink.db"},
			MQTT:     MQTTConfig{QoS: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(*Config) {}, false},
		{"missing schema file", func(c *Config) { c.Client.SchemaFile = "" }, true},
		{"missing database path", func(c *Config) { c.Database.Path = "" }, true},
		{"invalid QoS", func(c *Config) { c.MQTT.QoS = 3 }, true},
		{"mqtt enabled without prefix", func(c *Config) { c.MQTT.Enabled = true }, true},
		{"mqtt enabled with prefix", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.TopicPrefix = "nclink"
		}, false},
		{"influxdb enabled without url", func(c *Config) {
			c.InfluxDB.Enabled = true
			c.InfluxDB.Bucket = "samples"
		}, true},
		{"influxdb enabled without bucket", func(c *Config) {
			c.InfluxDB.Enabled = true
			c.InfluxDB.URL = "http://influx:8086"
		}, true},
		{"api port ignored when disabled", func(c *Config) { c.API.Port = 0 }, false},
		{"api port low", func(c *Config) {
			c.API.Enabled = true
			c.API.Port = 0
		}, true},
		{"api port high", func(c *Config) {
			c.API.Enabled = true
			c.API.Port = 70000
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeouts(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{Read: 30, Write: 45, Idle: 60},
		},
	}

	if got := cfg.API.GetReadTimeout().Seconds(); got != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30", got)
	}
	if got := cfg.API.GetWriteTimeout().Seconds(); got != 45 {
		t.Errorf("GetWriteTimeout() = %v, want 45", got)
	}
	if got := cfg.API.GetIdleTimeout().Seconds(); got != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("NCLINK_CLIENT_SCHEMA_FILE", "/custom/device.json")
	t.Setenv("NCLINK_CLIENT_STRICT", "true")
	t.Setenv("NCLINK_DATABASE_PATH", "/custom/path.db")
	t.Setenv("NCLINK_MQTT_HOST", "mqtt.example.com")
	t.Setenv("NCLINK_MQTT_USERNAME", "testuser")
	t.Setenv("NCLINK_MQTT_PASSWORD", "testpass")
	t.Setenv("NCLINK_INFLUXDB_URL", "http://tsdb:8086")
	t.Setenv("NCLINK_INFLUXDB_TOKEN", "secret-token")
	t.Setenv("NCLINK_API_HOST", "0.0.0.0")

	applyEnvOverrides(cfg)

	checks := []struct {
		field, got, want string
	}{
		{"Client.SchemaFile", cfg.Client.SchemaFile, "/custom/device.json"},
		{"Database.Path", cfg.Database.Path, "/custom/path.db"},
		{"MQTT.Broker.Host", cfg.MQTT.Broker.Host, "mqtt.example.com"},
		{"MQTT.Auth.Username", cfg.MQTT.Auth.Username, "testuser"},
		{"MQTT.Auth.Password", cfg.MQTT.Auth.Password, "testpass"},
		{"InfluxDB.URL", cfg.InfluxDB.URL, "http://tsdb:8086"},
		{"InfluxDB.Token", cfg.InfluxDB.Token, "secret-token"},
		{"API.Host", cfg.API.Host, "0.0.0.0"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if !cfg.Client.Strict {
		t.Error("Client.Strict = false, want true")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig should validate, got %v", err)
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.MQTT.TopicPrefix != "nclink" {
		t.Errorf("defaultConfig MQTT.TopicPrefix = %q, want nclink", cfg.MQTT.TopicPrefix)
	}
}
