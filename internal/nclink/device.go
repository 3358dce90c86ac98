package nclink

import "fmt"

// Device is the root of an NC-Link schema tree.
type Device struct {
	base

	version string
	devGUID string

	sampleChannels Registry[*SampleChannel]
	configs        Registry[*Config]
	dataItems      Registry[*DataItem]
	components     Registry[*Component]

	// Derived state, rebuilt by CollectNodes/RegisterNode and BuildMaps.
	dictionary map[string]Node
	dictOrder  []string
	idToPath   map[string]string
	pathToID   map[string]string
}

// NewDevice creates a device. Its path is NC_LINK_ROOT/{type}.
func NewDevice(id, typ, name, version string) *Device {
	d := &Device{
		base:           newBase(id, typ, name, KindDevice),
		version:        version,
		sampleChannels: newRegistry[*SampleChannel](),
		configs:        newRegistry[*Config](),
		dataItems:      newRegistry[*DataItem](),
		components:     newRegistry[*Component](),
		dictionary:     make(map[string]Node),
		idToPath:       make(map[string]string),
		pathToID:       make(map[string]string),
	}
	d.parent = ParentRef{Kind: KindRoot, Path: RootPath}
	d.path = RootPath + "/" + typ
	return d
}

// Version returns the schema version.
func (d *Device) Version() string { return d.version }

// DevGUID returns the device instance identifier.
func (d *Device) DevGUID() string { return d.devGUID }

// SetDevGUID sets the device instance identifier.
func (d *Device) SetDevGUID(guid string) { d.devGUID = guid }

// Validate checks identity, path and version. The device's parent is the
// implicit root, so no parent-kind rule applies.
func (d *Device) Validate() error {
	if err := d.validateIdentity(); err != nil {
		return err
	}
	if d.version == "" {
		return fmt.Errorf("%w: device %q: version is required", ErrInvalidNode, d.id)
	}
	if d.path == "" {
		return fmt.Errorf("%w: device %q: path is empty", ErrInvalidNode, d.id)
	}
	return nil
}

// AddSampleChannel registers a sample channel. Returns ErrDuplicateID if the id is taken.
func (d *Device) AddSampleChannel(sc *SampleChannel) error { return d.sampleChannels.Add(sc) }

// AddConfig registers a device-level config. Returns ErrDuplicateID if the id is taken.
func (d *Device) AddConfig(c *Config) error { return d.configs.Add(c) }

// AddDataItem registers a device-level data item. Returns ErrDuplicateID if the id is taken.
func (d *Device) AddDataItem(di *DataItem) error { return d.dataItems.Add(di) }

// AddComponent registers a top-level component. Returns ErrDuplicateID if the id is taken.
func (d *Device) AddComponent(c *Component) error { return d.components.Add(c) }

// SampleChannels returns the sample channel registry.
func (d *Device) SampleChannels() *Registry[*SampleChannel] { return &d.sampleChannels }

// Configs returns the device-level config registry.
func (d *Device) Configs() *Registry[*Config] { return &d.configs }

// DataItems returns the device-level data item registry.
func (d *Device) DataItems() *Registry[*DataItem] { return &d.dataItems }

// Components returns the top-level component registry.
func (d *Device) Components() *Registry[*Component] { return &d.components }

// Walk calls fn for the device and every node below it, depth first:
// device, sample channels, configs, data items, then each component
// followed by its own subtree.
func (d *Device) Walk(fn func(Node)) {
	fn(d)
	for _, sc := range d.sampleChannels.All() {
		fn(sc)
	}
	for _, c := range d.configs.All() {
		fn(c)
	}
	for _, di := range d.dataItems.All() {
		fn(di)
	}
	for _, cp := range d.components.All() {
		walkComponent(cp, fn)
	}
}

func walkComponent(c *Component, fn func(Node)) {
	fn(c)
	for _, cfg := range c.configs.All() {
		fn(cfg)
	}
	for _, di := range c.dataItems.All() {
		fn(di)
	}
	for _, sub := range c.components.All() {
		walkComponent(sub, fn)
	}
}
