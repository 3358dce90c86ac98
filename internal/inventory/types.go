package inventory

import "time"

// Snapshot is the stored header of one saved device tree.
type Snapshot struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	DevGUID   string    `json:"dev_guid,omitempty"`
	Version   string    `json:"version"`
	NodeCount int       `json:"node_count"`
	Dump      string    `json:"dump"`
	CreatedAt time.Time `json:"created_at"`
}

// NodeRecord is one dictionary node of a snapshot.
type NodeRecord struct {
	SnapshotID string `json:"snapshot_id"`
	Position   int    `json:"position"`
	NodeID     string `json:"node_id"`
	Kind       string `json:"kind"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	ParentID   string `json:"parent_id,omitempty"`
}
