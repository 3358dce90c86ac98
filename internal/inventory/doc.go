// Package inventory persists snapshots of assembled NC-Link device trees.
//
// Each snapshot records the device identity, the DumpAllNodes report and one
// row per dictionary node (id, kind, type, name, path, parent) in
// registration order. Snapshots are append-only; the latest one per device is
// what an operator compares against after a schema change.
package inventory
