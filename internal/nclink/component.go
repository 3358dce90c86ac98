package nclink

// Component is a functional unit of a device. Components own configs,
// data items and nested components.
type Component struct {
	base

	number     string
	configs    Registry[*Config]
	dataItems  Registry[*DataItem]
	components Registry[*Component]
}

// NewComponent creates a component node with empty registries.
func NewComponent(id, typ, name string) *Component {
	return &Component{
		base:       newBase(id, typ, name, KindComponent),
		configs:    newRegistry[*Config](),
		dataItems:  newRegistry[*DataItem](),
		components: newRegistry[*Component](),
	}
}

// Number returns the instance number used in the path, if any.
func (c *Component) Number() string { return c.number }

// SetNumber sets the instance number. It takes effect on the next SetParent.
func (c *Component) SetNumber(number string) { c.number = number }

// SetParent assigns the parent and recomputes the path as
// {parent}/{type}[@{number}]. Passing nil clears both.
//
// Children already attached keep the path they were given; callers that
// reparent a populated component must reparent its children as well.
func (c *Component) SetParent(parent Node) {
	c.parent = refOf(parent)
	if isNil(parent) || c.typ == "" {
		c.path = ""
		return
	}
	c.path = childPath(parent.Path(), c.typ, c.number)
}

// Validate checks identity and placement.
func (c *Component) Validate() error {
	if err := c.validateIdentity(); err != nil {
		return err
	}
	return c.validatePlacement()
}

// AddConfig registers a config. Returns ErrDuplicateID if the id is taken.
func (c *Component) AddConfig(cfg *Config) error { return c.configs.Add(cfg) }

// AddDataItem registers a data item. Returns ErrDuplicateID if the id is taken.
func (c *Component) AddDataItem(di *DataItem) error { return c.dataItems.Add(di) }

// AddComponent registers a nested component. Returns ErrDuplicateID if the id is taken.
func (c *Component) AddComponent(cp *Component) error { return c.components.Add(cp) }

// Configs returns the config registry.
func (c *Component) Configs() *Registry[*Config] { return &c.configs }

// DataItems returns the data item registry.
func (c *Component) DataItems() *Registry[*DataItem] { return &c.dataItems }

// Components returns the nested component registry.
func (c *Component) Components() *Registry[*Component] { return &c.components }
