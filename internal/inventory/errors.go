package inventory

import "errors"

var (
	// ErrSnapshotNotFound is returned when no snapshot matches the query.
	ErrSnapshotNotFound = errors.New("inventory: snapshot not found")

	// ErrNilDevice is returned when SaveSnapshot is called without a device.
	ErrNilDevice = errors.New("inventory: device is nil")
)
