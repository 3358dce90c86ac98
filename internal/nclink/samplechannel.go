package nclink

import (
	"fmt"
	"time"
)

// MaxIntervalMillis is the upper bound for sample and upload intervals (one day).
const MaxIntervalMillis int64 = 24 * 3600 * 1000

// SampleChannel groups config and data item nodes that are read together
// on a shared timer.
//
// Membership has two independent views: the ordered id list maintained by
// AddSamplePointID, and the resolved node map maintained by AddSamplePoint.
// They are not synchronised; a channel should be filled using one of them.
type SampleChannel struct {
	base

	ids          []string
	idSet        map[string]struct{}
	sampleCount  int
	samplePoints Registry[Node]

	// SampleInterval is the read period in milliseconds.
	SampleInterval int64

	// UploadInterval is the report period in milliseconds.
	UploadInterval int64
}

// NewSampleChannel creates a sample channel node.
func NewSampleChannel(id, typ, name string) *SampleChannel {
	return &SampleChannel{
		base:         newBase(id, typ, name, KindSampleChannel),
		idSet:        make(map[string]struct{}),
		samplePoints: newRegistry[Node](),
	}
}

// SetParent assigns the parent and recomputes the path as {parent}/{type}.
// Passing nil clears both.
func (s *SampleChannel) SetParent(parent Node) {
	s.parent = refOf(parent)
	if isNil(parent) {
		s.path = ""
		return
	}
	s.path = childPath(parent.Path(), s.typ, "")
}

// AddSamplePointID appends id to the member list and increments the sample count.
// Returns ErrDuplicateID if the id is already a member.
func (s *SampleChannel) AddSamplePointID(id string) error {
	if _, exists := s.idSet[id]; exists {
		return fmt.Errorf("%w: sample point %q in channel %q", ErrDuplicateID, id, s.id)
	}
	s.idSet[id] = struct{}{}
	s.ids = append(s.ids, id)
	s.sampleCount++
	return nil
}

// AddSamplePoint caches the resolved member node.
// Only Config and DataItem nodes are accepted.
func (s *SampleChannel) AddSamplePoint(n Node) error {
	if isNil(n) {
		return fmt.Errorf("%w: nil sample point in channel %q", ErrInvalidMember, s.id)
	}
	if s.samplePoints.Has(n.ID()) {
		return fmt.Errorf("%w: sample point %q in channel %q", ErrDuplicateID, n.ID(), s.id)
	}
	if k := n.Kind(); k != KindConfig && k != KindDataItem {
		return fmt.Errorf("%w: %s %q", ErrInvalidMember, k, n.ID())
	}
	return s.samplePoints.Add(n)
}

// IDs returns the member ids in insertion order.
func (s *SampleChannel) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// SampleCount returns the number of ids added with AddSamplePointID.
func (s *SampleChannel) SampleCount() int { return s.sampleCount }

// SamplePoints returns the resolved member registry.
func (s *SampleChannel) SamplePoints() *Registry[Node] { return &s.samplePoints }

// SampleEvery returns the sample interval as a Duration.
func (s *SampleChannel) SampleEvery() time.Duration {
	return time.Duration(s.SampleInterval) * time.Millisecond
}

// UploadEvery returns the upload interval as a Duration.
func (s *SampleChannel) UploadEvery() time.Duration {
	return time.Duration(s.UploadInterval) * time.Millisecond
}

// Validate checks identity, placement and the interval bounds:
// 0 < sample <= upload <= MaxIntervalMillis.
func (s *SampleChannel) Validate() error {
	if err := s.validateIdentity(); err != nil {
		return err
	}
	if err := s.validatePlacement(); err != nil {
		return err
	}
	if s.SampleInterval <= 0 || s.SampleInterval > MaxIntervalMillis {
		return fmt.Errorf("%w: sample channel %q: sample interval %d out of range", ErrInvalidNode, s.id, s.SampleInterval)
	}
	if s.UploadInterval <= 0 || s.UploadInterval > MaxIntervalMillis {
		return fmt.Errorf("%w: sample channel %q: upload interval %d out of range", ErrInvalidNode, s.id, s.UploadInterval)
	}
	if s.SampleInterval > s.UploadInterval {
		return fmt.Errorf("%w: sample channel %q: sample interval exceeds upload interval", ErrInvalidNode, s.id)
	}
	return nil
}
