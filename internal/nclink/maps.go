package nclink

import (
	"fmt"
	"strings"
)

// DumpEmpty is returned by DumpAllNodes when the node dictionary is empty.
const DumpEmpty = "Node set is empty"

// RegisterNode adds n to the flat node dictionary.
//
// The dictionary is keyed by id. Registering a second node with an id that
// is already present replaces the earlier node but keeps its position.
// Use CheckGlobalUniqueness to detect such collisions. A nil node is ignored.
func (d *Device) RegisterNode(n Node) {
	if isNil(n) {
		return
	}
	id := n.ID()
	if _, exists := d.dictionary[id]; !exists {
		d.dictOrder = append(d.dictOrder, id)
	}
	d.dictionary[id] = n
}

// CollectNodes registers every node of the assembled tree in the dictionary,
// in Walk order.
func (d *Device) CollectNodes() {
	d.Walk(d.RegisterNode)
}

// Nodes returns the dictionary contents in registration order.
func (d *Device) Nodes() []Node {
	out := make([]Node, 0, len(d.dictOrder))
	for _, id := range d.dictOrder {
		out = append(out, d.dictionary[id])
	}
	return out
}

// Lookup returns the dictionary node registered under id.
func (d *Device) Lookup(id string) (Node, bool) {
	n, ok := d.dictionary[id]
	return n, ok
}

// BuildMaps derives the id->path and path->id maps from the node dictionary.
//
// The maps are replaced wholesale; registry changes made after the call are
// not visible until BuildMaps runs again.
func (d *Device) BuildMaps() {
	idToPath := make(map[string]string, len(d.dictionary))
	pathToID := make(map[string]string, len(d.dictionary))
	for _, n := range d.Nodes() {
		idToPath[n.ID()] = n.Path()
		pathToID[n.Path()] = n.ID()
	}
	d.idToPath = idToPath
	d.pathToID = pathToID
}

// IDToPath returns the path of the node with the given id.
func (d *Device) IDToPath(id string) (string, error) {
	p, ok := d.idToPath[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	return p, nil
}

// PathToID returns the id of the node at the given path.
func (d *Device) PathToID(path string) (string, error) {
	id, ok := d.pathToID[path]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return id, nil
}

// IDToPathMap returns a copy of the id->path map.
func (d *Device) IDToPathMap() map[string]string {
	return copyMap(d.idToPath)
}

// PathToIDMap returns a copy of the path->id map.
func (d *Device) PathToIDMap() map[string]string {
	return copyMap(d.pathToID)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ConfigAndDataItemPaths returns the path of every Config and DataItem in
// the node dictionary, in registration order.
func (d *Device) ConfigAndDataItemPaths() []string {
	var out []string
	for _, n := range d.Nodes() {
		switch n.(type) {
		case *Config, *DataItem:
			out = append(out, n.Path())
		}
	}
	return out
}

// NodeCounts tallies dictionary nodes per kind.
type NodeCounts struct {
	SampleChannels int `json:"sample_channels"`
	Configs        int `json:"configs"`
	DataItems      int `json:"data_items"`
	Components     int `json:"components"`
	Devices        int `json:"devices"`
	Unrecognized   int `json:"unrecognized"`
	Total          int `json:"total"`
}

// Counts returns the per-kind tally of the node dictionary.
func (d *Device) Counts() NodeCounts {
	var c NodeCounts
	for _, n := range d.Nodes() {
		c.add(n)
	}
	return c
}

func (c *NodeCounts) add(n Node) {
	c.Total++
	switch n.(type) {
	case *SampleChannel:
		c.SampleChannels++
	case *Config:
		c.Configs++
	case *DataItem:
		c.DataItems++
	case *Component:
		c.Components++
	case *Device:
		c.Devices++
	default:
		c.Unrecognized++
	}
}

// DumpAllNodes renders the node dictionary as an operator-facing report:
// one tab-separated id/path line per node followed by the per-kind counts.
// It returns DumpEmpty when the dictionary is empty.
func (d *Device) DumpAllNodes() string {
	nodes := d.Nodes()
	if len(nodes) == 0 {
		return DumpEmpty
	}

	var b strings.Builder
	var counts NodeCounts
	b.WriteString("Node inventory:\n")
	for _, n := range nodes {
		fmt.Fprintf(&b, "\tNode ID: %-10s\tNode PATH: %s\n", n.ID(), n.Path())
		counts.add(n)
	}
	fmt.Fprintf(&b, "---Sample channels: %d\n", counts.SampleChannels)
	fmt.Fprintf(&b, "---Configs:         %d\n", counts.Configs)
	fmt.Fprintf(&b, "---Data items:      %d\n", counts.DataItems)
	fmt.Fprintf(&b, "---Components:      %d\n", counts.Components)
	fmt.Fprintf(&b, "---Devices:         %d\n", counts.Devices)
	fmt.Fprintf(&b, "---Unrecognized:    %d\n", counts.Unrecognized)
	fmt.Fprintf(&b, "---Total:           %d\n", counts.Total)
	return b.String()
}
