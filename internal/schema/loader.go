package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

// Logger is the logging interface used by the loader.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Options control decoding and post-assembly checks.
type Options struct {
	// Strict rejects unknown document keys and requires the assembled tree
	// to pass ValidateTree and CheckGlobalUniqueness.
	Strict bool

	// ResolveMembers materialises each sample channel's resolved member
	// nodes from its id list.
	ResolveMembers bool
}

// Loader turns device descriptions into assembled node trees.
type Loader struct {
	opts   Options
	logger Logger
}

// NewLoader creates a loader with the given options.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts, logger: noopLogger{}}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (l *Loader) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	l.logger = logger
}

// LoadFile reads and assembles the description at path.
func (l *Loader) LoadFile(path string) (*nclink.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	dev, err := l.Parse(data)
	if err != nil {
		return nil, err
	}
	l.logger.Info("device schema loaded", "file", path, "device_id", dev.ID(), "nodes", len(dev.Nodes()))
	return dev, nil
}

// Parse decodes a YAML or JSON description and assembles it.
func (l *Loader) Parse(data []byte) (*nclink.Device, error) {
	doc, err := l.decode(data)
	if err != nil {
		return nil, err
	}
	return l.Build(doc)
}

func (l *Loader) decode(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(l.opts.Strict)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return &doc, nil
}

// Build assembles a device from a decoded document, registers every node,
// and builds the lookup maps.
func (l *Loader) Build(doc *Document) (*nclink.Device, error) {
	dev := nclink.NewDevice(doc.ID, doc.Type, doc.Name, doc.Version)
	dev.SetDevGUID(doc.GUID)
	dev.SetDescription(doc.Description)
	dev.RegisterNode(dev)

	a := assembler{dev: dev}
	for _, scd := range doc.SampleChannels {
		a.sampleChannel(scd)
	}
	for _, cd := range doc.Configs {
		a.config(dev, dev.AddConfig, cd)
	}
	for _, dd := range doc.DataItems {
		a.dataItem(dev, dev.AddDataItem, dd)
	}
	for _, cpd := range doc.Components {
		a.component(dev, dev.AddComponent, cpd)
	}
	if a.err != nil {
		return nil, a.err
	}

	dev.BuildMaps()

	var resolveErr error
	if l.opts.ResolveMembers {
		resolveErr = dev.ResolveSamplePoints()
	}

	if err := l.check(dev, resolveErr); err != nil {
		return nil, err
	}
	return dev, nil
}

// check runs tree validation and joins it with any member resolution
// failure. Failures are fatal in strict mode and logged otherwise.
func (l *Loader) check(dev *nclink.Device, resolveErr error) error {
	err := errors.Join(dev.ValidateTree(), dev.CheckGlobalUniqueness(), resolveErr)
	if err == nil {
		return nil
	}
	if l.opts.Strict {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	l.logger.Warn("device schema has invalid nodes", "device_id", dev.ID(), "error", err)
	return nil
}

// assembler keeps the first error and stops adding nodes after it.
type assembler struct {
	dev *nclink.Device
	err error
}

func (a *assembler) fail(kind, id string, err error) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: %s %q: %w", ErrInvalidSchema, kind, id, err)
	}
}

func (a *assembler) sampleChannel(d SampleChannelDoc) {
	if a.err != nil {
		return
	}
	sc := nclink.NewSampleChannel(d.ID, d.Type, d.Name)
	sc.SetDescription(d.Description)
	sc.SampleInterval = d.SampleInterval
	sc.UploadInterval = d.UploadInterval
	sc.SetParent(a.dev)
	for _, id := range d.IDs {
		if err := sc.AddSamplePointID(id); err != nil {
			a.fail("sample channel", d.ID, err)
			return
		}
	}
	if err := a.dev.AddSampleChannel(sc); err != nil {
		a.fail("sample channel", d.ID, err)
		return
	}
	a.dev.RegisterNode(sc)
}

func (a *assembler) config(parent nclink.Node, add func(*nclink.Config) error, d ConfigDoc) {
	if a.err != nil {
		return
	}
	cfg := nclink.NewConfig(d.ID, d.Type, d.Name)
	cfg.SetDescription(d.Description)
	cfg.DataType = d.DataType
	cfg.Settable = d.Settable
	cfg.ValueType = nclink.ParseValueType(d.ValueType)
	if err := assignValue(cfg, d.Value); err != nil {
		a.fail("config", d.ID, err)
		return
	}
	cfg.SetParent(parent)
	if err := add(cfg); err != nil {
		a.fail("config", d.ID, err)
		return
	}
	a.dev.RegisterNode(cfg)
}

func (a *assembler) dataItem(parent nclink.Node, add func(*nclink.DataItem) error, d DataItemDoc) {
	if a.err != nil {
		return
	}
	di := nclink.NewDataItem(d.ID, d.Type, d.Name)
	di.SetDescription(d.Description)
	di.DataType = d.DataType
	di.Settable = d.Settable
	di.SetNumber(d.Number)
	di.SetParent(parent)
	if err := add(di); err != nil {
		a.fail("data item", d.ID, err)
		return
	}
	a.dev.RegisterNode(di)
}

func (a *assembler) component(parent nclink.Node, add func(*nclink.Component) error, d ComponentDoc) {
	if a.err != nil {
		return
	}
	cp := nclink.NewComponent(d.ID, d.Type, d.Name)
	cp.SetDescription(d.Description)
	cp.SetNumber(d.Number)
	cp.SetParent(parent)
	if err := add(cp); err != nil {
		a.fail("component", d.ID, err)
		return
	}
	a.dev.RegisterNode(cp)

	for _, cd := range d.Configs {
		a.config(cp, cp.AddConfig, cd)
	}
	for _, dd := range d.DataItems {
		a.dataItem(cp, cp.AddDataItem, dd)
	}
	for _, sub := range d.Components {
		a.component(cp, cp.AddComponent, sub)
	}
}
