package uploader

import (
	"time"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

// InventoryDocument is the retained description of a device's addressable
// nodes, published so that consumers can decode samples by path.
type InventoryDocument struct {
	DeviceID       string            `json:"device_id"`
	DevGUID        string            `json:"dev_guid,omitempty"`
	Type           string            `json:"type"`
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	Paths          map[string]string `json:"paths"`
	DataPaths      []string          `json:"data_paths"`
	SampleChannels []ChannelDocument `json:"sample_channels"`
	Counts         nclink.NodeCounts `json:"counts"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// ChannelDocument describes one sample channel. Intervals are milliseconds.
type ChannelDocument struct {
	ID             string   `json:"id"`
	Path           string   `json:"path"`
	SampleInterval int64    `json:"sample_interval"`
	UploadInterval int64    `json:"upload_interval"`
	IDs            []string `json:"ids"`
}

// NewInventoryDocument captures the device's built maps and channels.
func NewInventoryDocument(dev *nclink.Device, now time.Time) InventoryDocument {
	doc := InventoryDocument{
		DeviceID:       dev.ID(),
		DevGUID:        dev.DevGUID(),
		Type:           dev.Type(),
		Name:           dev.Name(),
		Version:        dev.Version(),
		Paths:          dev.IDToPathMap(),
		DataPaths:      dev.ConfigAndDataItemPaths(),
		SampleChannels: make([]ChannelDocument, 0, dev.SampleChannels().Len()),
		Counts:         dev.Counts(),
		GeneratedAt:    now.UTC(),
	}
	if doc.DataPaths == nil {
		doc.DataPaths = []string{}
	}
	for _, sc := range dev.SampleChannels().All() {
		doc.SampleChannels = append(doc.SampleChannels, ChannelDocument{
			ID:             sc.ID(),
			Path:           sc.Path(),
			SampleInterval: sc.SampleInterval,
			UploadInterval: sc.UploadInterval,
			IDs:            sc.IDs(),
		})
	}
	return doc
}
