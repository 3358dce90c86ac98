package uploader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

// Logger is the logging interface used by the router.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// Sample is one value addressed by its node path.
type Sample struct {
	DevGUID   string    `json:"dev_guid,omitempty"`
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Value     any       `json:"value"`
	Timestamp time.Time `json:"ts"`
}

// Sink receives routed samples.
type Sink interface {
	Name() string
	Write(ctx context.Context, s Sample) error
}

// PathResolver maps node ids to paths and nodes. *nclink.Device implements
// it once BuildMaps has run.
type PathResolver interface {
	IDToPath(id string) (string, error)
	Lookup(id string) (nclink.Node, bool)
	DevGUID() string
}

// Router resolves sampled node ids and fans samples out to sinks.
//
// It is safe for concurrent use; sinks are called sequentially per sample.
type Router struct {
	resolver PathResolver

	mu     sync.RWMutex
	sinks  []Sink
	logger Logger
}

// NewRouter creates a router over a resolver with no sinks.
func NewRouter(resolver PathResolver) *Router {
	return &Router{resolver: resolver, logger: noopLogger{}}
}

// SetLogger sets the logger used for sink failures.
func (r *Router) SetLogger(logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger == nil {
		logger = noopLogger{}
	}
	r.logger = logger
}

// AddSink registers a sink. Sinks receive samples in registration order.
func (r *Router) AddSink(s Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, s)
}

// Route resolves id to its path and writes the sample to every sink.
//
// An id missing from the maps returns nclink.ErrUnknownID, and an id that
// names a node other than a Config or DataItem returns
// nclink.ErrInvalidMember; neither reaches a sink. Sink failures do not stop
// the fan-out; they are joined and wrapped in ErrSinkFailed, and the sample
// is still returned.
func (r *Router) Route(ctx context.Context, id string, value any, ts time.Time) (Sample, error) {
	s, err := r.resolve(id, value, ts)
	if err != nil {
		return Sample{}, err
	}
	return s, r.fanOut(ctx, s)
}

// RouteChannel routes one read of a sample channel. values must hold one
// entry per member id, in member order.
//
// Every member is resolved before anything is written: if any member id is
// unknown or not a data point, the joined resolution errors are returned and
// no sink is called. Sink failures are handled as in Route, and every
// resolved sample is returned alongside them.
func (r *Router) RouteChannel(ctx context.Context, sc *nclink.SampleChannel, values []any, ts time.Time) ([]Sample, error) {
	ids := sc.IDs()
	if len(values) != len(ids) {
		return nil, fmt.Errorf("%w: channel %q has %d members, got %d values", ErrValueCount, sc.ID(), len(ids), len(values))
	}

	// Resolve all members first so a bad member leaves every sink untouched.
	samples := make([]Sample, 0, len(ids))
	var errs []error
	for i, id := range ids {
		s, err := r.resolve(id, values[i], ts)
		if err != nil {
			errs = append(errs, fmt.Errorf("channel %q: %w", sc.ID(), err))
			continue
		}
		samples = append(samples, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, s := range samples {
		if err := r.fanOut(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return samples, errors.Join(errs...)
}

// resolve builds the sample for id without touching any sink.
func (r *Router) resolve(id string, value any, ts time.Time) (Sample, error) {
	path, err := r.resolver.IDToPath(id)
	if err != nil {
		return Sample{}, err
	}
	n, ok := r.resolver.Lookup(id)
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q", nclink.ErrUnknownID, id)
	}
	if k := n.Kind(); k != nclink.KindConfig && k != nclink.KindDataItem {
		return Sample{}, fmt.Errorf("%w: %s %q is not a data point", nclink.ErrInvalidMember, k, id)
	}

	return Sample{
		DevGUID:   r.resolver.DevGUID(),
		ID:        id,
		Path:      path,
		Value:     value,
		Timestamp: ts,
	}, nil
}

// fanOut writes s to every sink in registration order.
func (r *Router) fanOut(ctx context.Context, s Sample) error {
	r.mu.RLock()
	sinks := r.sinks
	logger := r.logger
	r.mu.RUnlock()

	var errs []error
	for _, sink := range sinks {
		if err := sink.Write(ctx, s); err != nil {
			logger.Warn("sample sink failed", "sink", sink.Name(), "id", s.ID, "path", s.Path, "error", err)
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrSinkFailed, sink.Name(), err))
		}
	}
	logger.Debug("sample routed", "id", s.ID, "path", s.Path, "sinks", len(sinks))

	return errors.Join(errs...)
}
