// nclinkd loads an NC-Link device description, snapshots its node inventory
// and routes sampled values to the configured sinks.
//
// Startup order: config, logger, schema, database (migrate and snapshot),
// then the optional MQTT, InfluxDB and diagnostics API components.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/nclink-core/migrations"

	"github.com/nerrad567/nclink-core/internal/api"
	"github.com/nerrad567/nclink-core/internal/infrastructure/config"
	"github.com/nerrad567/nclink-core/internal/infrastructure/database"
	"github.com/nerrad567/nclink-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/nclink-core/internal/infrastructure/logging"
	"github.com/nerrad567/nclink-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/nclink-core/internal/inventory"
	"github.com/nerrad567/nclink-core/internal/schema"
	"github.com/nerrad567/nclink-core/internal/uploader"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic.
//
// Separated from main() to allow proper cleanup via defers: every component
// opened here is closed in reverse order when run returns.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting nclinkd",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath, "level", cfg.Logging.Level)

	// Assemble the device tree from its description; strict mode makes
	// tree validation and global id uniqueness fatal
	loader := schema.NewLoader(schema.Options{
		Strict:         cfg.Client.Strict,
		ResolveMembers: cfg.Client.ResolveMembers,
	})
	loader.SetLogger(log)
	dev, err := loader.LoadFile(cfg.Client.SchemaFile)
	if err != nil {
		return fmt.Errorf("loading device schema: %w", err)
	}
	counts := dev.Counts()
	log.Info("device schema assembled",
		"device_id", dev.ID(),
		"dev_guid", dev.DevGUID(),
		"version", dev.Version(),
		"nodes", counts.Total,
		"sample_channels", counts.SampleChannels,
	)
	log.Debug("node inventory", "dump", dev.DumpAllNodes())

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}

	// Record the node inventory this process serves
	repo := inventory.NewSQLiteRepository(db.DB)
	snap, err := repo.SaveSnapshot(ctx, dev)
	if err != nil {
		return fmt.Errorf("saving inventory snapshot: %w", err)
	}
	log.Info("inventory snapshot saved", "snapshot_id", snap.ID, "nodes", snap.NodeCount)

	checks := map[string]api.HealthChecker{"database": db}

	// Sample router; sinks are added as their connections come up
	router := uploader.NewRouter(dev)
	router.SetLogger(log)

	// Connect to MQTT broker (optional)
	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := mqtt.Connect(cfg.MQTT)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		// Publish the retained inventory now and after every reconnect,
		// since a broker restart may drop retained messages
		publisher := uploader.NewMQTTPublisher(mqttClient)
		if pubErr := publisher.PublishInventory(dev); pubErr != nil {
			return fmt.Errorf("publishing inventory: %w", pubErr)
		}
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected, republishing inventory")
			if pubErr := publisher.PublishInventory(dev); pubErr != nil {
				log.Warn("inventory republish failed", "error", pubErr)
			}
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})

		router.AddSink(publisher)
		checks["mqtt"] = mqttClient
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	if cfg.InfluxDB.Enabled {
		influxClient, influxErr := influxdb.Connect(cfg.InfluxDB)
		if influxErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", influxErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)

		router.AddSink(uploader.NewInfluxSink(influxClient))
		checks["influxdb"] = influxClient
	} else {
		log.Info("InfluxDB disabled")
	}

	// Verify every connected component before serving
	if err := healthCheck(ctx, checks); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	// Start diagnostics API (optional)
	if cfg.API.Enabled {
		server, apiErr := api.New(api.Deps{
			Config:    cfg.API,
			Logger:    log,
			Device:    dev,
			Inventory: repo,
			Router:    router,
			Checks:    checks,
			Version:   version,
		})
		if apiErr != nil {
			return fmt.Errorf("creating API server: %w", apiErr)
		}
		if startErr := server.Start(ctx); startErr != nil {
			return fmt.Errorf("starting API server: %w", startErr)
		}
		defer func() {
			if closeErr := server.Close(); closeErr != nil {
				log.Error("error closing API server", "error", closeErr)
			}
		}()
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	// Block until shutdown signal
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	log.Info("nclinkd stopped")
	return nil
}

// getConfigPath returns NCLINK_CONFIG if set, otherwise the default path.
func getConfigPath() string {
	if path := os.Getenv("NCLINK_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck runs each component check and returns the first failure.
//
// Parameters:
//   - ctx: Context for the checks
//   - checks: Component health checkers keyed by name
//
// Returns:
//   - error: nil if all healthy, or the first failure prefixed with its component name
func healthCheck(ctx context.Context, checks map[string]api.HealthChecker) error {
	for name, c := range checks {
		if err := c.HealthCheck(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
