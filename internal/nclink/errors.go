package nclink

import "errors"

// Domain errors for the nclink package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, nclink.ErrDuplicateID) {
//	    // pick another id or skip the node
//	}
var (
	// ErrDuplicateID is returned when an id is already present in a registry.
	ErrDuplicateID = errors.New("nclink: duplicate id")

	// ErrInvalidNode is returned by Validate when a structural invariant fails.
	ErrInvalidNode = errors.New("nclink: invalid node")

	// ErrInvalidMember is returned when a sample point is not a Config or DataItem.
	ErrInvalidMember = errors.New("nclink: invalid sample member")

	// ErrUnknownID is returned when an id has no entry in the built maps.
	ErrUnknownID = errors.New("nclink: unknown id")

	// ErrUnknownPath is returned when a path has no entry in the built maps.
	ErrUnknownPath = errors.New("nclink: unknown path")
)
