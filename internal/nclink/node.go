package nclink

import "fmt"

// RootPath is the path prefix shared by every device tree.
const RootPath = "NC_LINK_ROOT"

// Node is implemented by every element of the device tree.
//
// The set of implementations is closed: *Device, *Component, *Config,
// *DataItem and *SampleChannel. Consumers that switch on Kind or on the
// concrete type must handle each of them.
type Node interface {
	ID() string
	Type() string
	Name() string
	Kind() Kind
	Path() string
	Description() string
	Parent() ParentRef
	Validate() error

	node()
}

// ParentRef is the weak relation from a node to its parent.
// It records the parent's identity and kind; it does not own the parent.
type ParentRef struct {
	ID   string
	Kind Kind
	Path string
}

// IsSet reports whether a parent has been assigned.
func (p ParentRef) IsSet() bool {
	return p.Kind != KindInvalid
}

// isNil reports whether n is nil or a nil pointer of one of the node types.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Device:
		return v == nil
	case *Component:
		return v == nil
	case *Config:
		return v == nil
	case *DataItem:
		return v == nil
	case *SampleChannel:
		return v == nil
	}
	return false
}

// refOf builds the relation to the given parent node.
func refOf(parent Node) ParentRef {
	if isNil(parent) {
		return ParentRef{}
	}
	return ParentRef{ID: parent.ID(), Kind: parent.Kind(), Path: parent.Path()}
}

// IsValid is the boolean view of n.Validate().
func IsValid(n Node) bool {
	return !isNil(n) && n.Validate() == nil
}

// base holds the identity shared by every node kind.
type base struct {
	id          string
	typ         string
	name        string
	kind        Kind
	path        string
	description string
	parent      ParentRef
}

func newBase(id, typ, name string, kind Kind) base {
	return base{id: id, typ: typ, name: name, kind: kind}
}

// ID returns the node identifier.
func (b *base) ID() string { return b.id }

// Type returns the schema category of the node.
func (b *base) Type() string { return b.typ }

// Name returns the human-readable label.
func (b *base) Name() string { return b.name }

// Kind returns the node variant.
func (b *base) Kind() Kind { return b.kind }

// Path returns the derived address of the node.
func (b *base) Path() string { return b.path }

// Description returns the free-text description.
func (b *base) Description() string { return b.description }

// SetDescription sets the free-text description.
func (b *base) SetDescription(desc string) { b.description = desc }

// Parent returns the relation to the parent node.
func (b *base) Parent() ParentRef { return b.parent }

func (b *base) node() {}

// validateIdentity checks the fields every node must carry.
func (b *base) validateIdentity() error {
	switch {
	case b.id == "":
		return fmt.Errorf("%w: %s: id is required", ErrInvalidNode, b.kind)
	case b.typ == "":
		return fmt.Errorf("%w: %s %q: type is required", ErrInvalidNode, b.kind, b.id)
	case b.name == "":
		return fmt.Errorf("%w: %s %q: name is required", ErrInvalidNode, b.kind, b.id)
	}
	return nil
}

// validatePlacement checks that a parent was assigned and a path derived.
func (b *base) validatePlacement() error {
	if !b.parent.IsSet() {
		return fmt.Errorf("%w: %s %q: parent not assigned", ErrInvalidNode, b.kind, b.id)
	}
	if b.path == "" {
		return fmt.Errorf("%w: %s %q: path is empty", ErrInvalidNode, b.kind, b.id)
	}
	return nil
}

// childPath joins a parent path with the node type and optional number.
func childPath(parentPath, typ, number string) string {
	if number != "" {
		return parentPath + "/" + typ + "@" + number
	}
	return parentPath + "/" + typ
}
