package uploader

import "errors"

var (
	// ErrSinkFailed wraps failures reported by a sink during fan-out.
	ErrSinkFailed = errors.New("uploader: sink failed")

	// ErrValueCount is returned when a channel read does not match its member count.
	ErrValueCount = errors.New("uploader: value count does not match channel members")
)
