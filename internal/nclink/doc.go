// Package nclink provides the typed node tree that describes an NC-Link
// device's data schema.
//
// A client builds the tree once from a device description, validates it,
// and then derives the lookup maps that route sampled values to their
// canonical paths.
//
// # Hierarchy
//
//	Device (root)
//	├── Component* (components nest)
//	│   ├── Config*
//	│   ├── DataItem*
//	│   └── Component*
//	├── Config*
//	├── DataItem*
//	└── SampleChannel* (members reference Config/DataItem ids)
//
// # Paths
//
// Every node carries a slash-delimited path derived from its parent:
//
//	Device                 NC_LINK_ROOT/{type}
//	Component, DataItem    {parent}/{type}[@{number}]
//	Config, SampleChannel  {parent}/{type}
//
// The parent relation is a ParentRef (id, kind and path of the parent), not a
// pointer. SetParent is the only operation that recomputes a node's path.
//
// # Lifecycle
//
// The tree is assembled by a single writer (typically the schema loader):
//
//	dev := nclink.NewDevice("dev-1", "CNC", "Lathe", "1.0")
//	axes := nclink.NewComponent("cp-1", "AXES", "Axes")
//	axes.SetNumber("1")
//	axes.SetParent(dev)
//	if err := dev.AddComponent(axes); err != nil {
//	    return err
//	}
//	dev.CollectNodes()
//	dev.BuildMaps()
//
// Registries reject duplicate ids per registry only. The node dictionary and
// the id/path maps are derived state; BuildMaps must be called again after
// any later mutation.
//
// # Thread Safety
//
// None. The tree is built by one goroutine and treated as read-only afterwards.
package nclink
