// Package api provides the read-only diagnostics HTTP API for an NC-Link
// client.
//
// It exposes the assembled node tree (dump, id/path lookups, per-kind
// counts), the stored inventory snapshots and the health of the
// infrastructure connections. The only write endpoint accepts sampled
// values and hands them to the sample router.
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/nclink-core/internal/infrastructure/config"
	"github.com/nerrad567/nclink-core/internal/infrastructure/logging"
	"github.com/nerrad567/nclink-core/internal/inventory"
	"github.com/nerrad567/nclink-core/internal/nclink"
	"github.com/nerrad567/nclink-core/internal/uploader"
)

// gracefulShutdownTimeout bounds the wait for in-flight requests on Close.
const gracefulShutdownTimeout = 10 * time.Second

// HealthChecker is implemented by the infrastructure clients.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config    config.APIConfig
	Logger    *logging.Logger
	Device    *nclink.Device
	Inventory inventory.Repository     // optional
	Router    *uploader.Router         // optional, enables sample ingest
	Checks    map[string]HealthChecker // optional, keyed by component name
	Version   string
}

// Server is the diagnostics HTTP server.
type Server struct {
	cfg       config.APIConfig
	logger    *logging.Logger
	device    *nclink.Device
	inventory inventory.Repository
	router    *uploader.Router
	checks    map[string]HealthChecker
	version   string
	server    *http.Server
}

// New creates a server. It is not listening until Start is called.
//
// Parameters:
//   - deps: Logger and Device are required; the rest are optional
//
// Returns:
//   - *Server: Configured server
//   - error: If a required dependency is missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Device == nil {
		return nil, fmt.Errorf("device is required")
	}

	return &Server{
		cfg:       deps.Config,
		logger:    deps.Logger,
		device:    deps.Device,
		inventory: deps.Inventory,
		router:    deps.Router,
		checks:    deps.Checks,
		version:   deps.Version,
	}, nil
}

// Start launches the HTTP listener in a background goroutine.
//
// Listen errors after startup are logged, not returned; use HealthCheck
// to confirm the server is up.
func (s *Server) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       s.cfg.GetReadTimeout(),
		ReadHeaderTimeout: s.cfg.GetReadTimeout(),
		WriteTimeout:      s.cfg.GetWriteTimeout(),
		IdleTimeout:       s.cfg.GetIdleTimeout(),
	}

	// Serve in the background; ErrServerClosed is the normal Close path.
	go func() {
		s.logger.Info("API server starting", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close waits up to gracefulShutdownTimeout for in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck reports whether the server has been started.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}
	return nil
}
