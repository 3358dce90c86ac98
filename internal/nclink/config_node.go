package nclink

import "fmt"

// Config is a configuration parameter of a device or component.
type Config struct {
	base

	// DataType is the schema data type tag (e.g. "INT", "STRING").
	DataType string

	// Settable reports whether the parameter may be written remotely.
	Settable bool

	// ValueType selects which value slot carries the current value.
	ValueType ValueType
	IntValue  int64
	StrValue  string
}

// NewConfig creates a config node.
func NewConfig(id, typ, name string) *Config {
	return &Config{base: newBase(id, typ, name, KindConfig)}
}

// SetParent assigns the parent and recomputes the path as {parent}/{type}.
// Passing nil clears both.
func (c *Config) SetParent(parent Node) {
	c.parent = refOf(parent)
	if isNil(parent) {
		c.path = ""
		return
	}
	c.path = childPath(parent.Path(), c.typ, "")
}

// Value returns the current value from the slot selected by ValueType.
func (c *Config) Value() any {
	switch {
	case c.ValueType == ValueBool:
		return c.IntValue != 0
	case c.ValueType.IsInteger():
		return c.IntValue
	case c.ValueType == ValueUnknown:
		return nil
	default:
		return c.StrValue
	}
}

// Validate checks identity, placement, and that the parent is a Device or Component.
func (c *Config) Validate() error {
	if err := c.validateIdentity(); err != nil {
		return err
	}
	if err := c.validatePlacement(); err != nil {
		return err
	}
	if c.parent.Kind != KindDevice && c.parent.Kind != KindComponent {
		return fmt.Errorf("%w: config %q: parent kind %s not allowed", ErrInvalidNode, c.id, c.parent.Kind)
	}
	return nil
}
