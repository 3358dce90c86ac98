package nclink

// DataItem is a readable data point of a device or component.
type DataItem struct {
	base

	number string

	// DataType is the schema data type tag.
	DataType string

	// Settable reports whether the item may be written remotely.
	Settable bool
}

// NewDataItem creates a data item node.
func NewDataItem(id, typ, name string) *DataItem {
	return &DataItem{base: newBase(id, typ, name, KindDataItem)}
}

// Number returns the instance number used in the path, if any.
func (d *DataItem) Number() string { return d.number }

// SetNumber sets the instance number. It takes effect on the next SetParent.
func (d *DataItem) SetNumber(number string) { d.number = number }

// SetParent assigns the parent and recomputes the path as
// {parent}/{type}[@{number}]. Passing nil clears both.
func (d *DataItem) SetParent(parent Node) {
	d.parent = refOf(parent)
	if isNil(parent) || d.typ == "" {
		d.path = ""
		return
	}
	d.path = childPath(parent.Path(), d.typ, d.number)
}

// Validate checks identity and placement.
func (d *DataItem) Validate() error {
	if err := d.validateIdentity(); err != nil {
		return err
	}
	return d.validatePlacement()
}
