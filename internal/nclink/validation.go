package nclink

import (
	"errors"
	"fmt"
)

// ValidateTree calls Validate on every node reachable from the device and
// joins the failures. It returns nil when every node is valid.
func (d *Device) ValidateTree() error {
	var errs []error
	d.Walk(func(n Node) {
		if err := n.Validate(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// CheckGlobalUniqueness reports ids that are registered more than once
// anywhere in the tree. Registries only enforce uniqueness locally, so two
// nodes in sibling registries may share an id; this check makes that
// visible before BuildMaps silently keeps only one of them.
func (d *Device) CheckGlobalUniqueness() error {
	seen := make(map[string]string)
	var errs []error
	d.Walk(func(n Node) {
		if first, dup := seen[n.ID()]; dup {
			errs = append(errs, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateID, n.ID(), first, n.Path()))
			return
		}
		seen[n.ID()] = n.Path()
	})
	return errors.Join(errs...)
}

// ResolveSamplePoints materialises the resolved member view of every sample
// channel from its id list, using the node dictionary. Ids missing from the
// dictionary yield ErrUnknownID; non Config/DataItem members yield
// ErrInvalidMember. Already-resolved members are skipped.
func (d *Device) ResolveSamplePoints() error {
	var errs []error
	for _, sc := range d.sampleChannels.All() {
		for _, id := range sc.IDs() {
			if sc.samplePoints.Has(id) {
				continue
			}
			n, ok := d.dictionary[id]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %q in channel %q", ErrUnknownID, id, sc.ID()))
				continue
			}
			if err := sc.AddSamplePoint(n); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
