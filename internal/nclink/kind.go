package nclink

import "strings"

// Kind identifies the concrete variant of a node.
type Kind uint8

// Node kinds.
const (
	KindInvalid Kind = iota
	KindRoot
	KindDevice
	KindConfig
	KindDataItem
	KindComponent
	KindSampleChannel
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindDevice:
		return "device"
	case KindConfig:
		return "config"
	case KindDataItem:
		return "data_item"
	case KindComponent:
		return "component"
	case KindSampleChannel:
		return "sample_channel"
	default:
		return "invalid"
	}
}

// ValueType is the type tag of a Config value slot.
type ValueType uint8

// Config value types.
const (
	ValueUnknown ValueType = iota
	ValueBool
	ValueChar
	ValueShort
	ValueInt
	ValueFloat
	ValueString
	ValueJSONObjString
)

var valueTypeNames = []string{
	"unknown", "bool", "char", "short", "int", "float", "string", "json_obj_string",
}

// String returns the value type name.
func (v ValueType) String() string {
	if int(v) < len(valueTypeNames) {
		return valueTypeNames[v]
	}
	return "unknown"
}

// IsInteger reports whether values of this type live in the integer slot.
func (v ValueType) IsInteger() bool {
	switch v {
	case ValueBool, ValueChar, ValueShort, ValueInt:
		return true
	default:
		return false
	}
}

// ParseValueType converts a value type name to a ValueType.
// Matching is case-insensitive; unrecognised names map to ValueUnknown.
func ParseValueType(s string) ValueType {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "jsonobjstring", "json":
		return ValueJSONObjString
	case "integer":
		return ValueInt
	case "boolean":
		return ValueBool
	case "double":
		return ValueFloat
	}
	for i, n := range valueTypeNames {
		if n == name {
			return ValueType(i)
		}
	}
	return ValueUnknown
}
