package nclink

import "fmt"

// Registry is an id-keyed collection of nodes with at-most-once insertion.
// Iteration follows insertion order.
type Registry[T Node] struct {
	byID  map[string]T
	order []string
}

func newRegistry[T Node]() Registry[T] {
	return Registry[T]{byID: make(map[string]T)}
}

// Add inserts n. It returns ErrDuplicateID without modifying the registry
// when n's id is already present, and ErrInvalidNode when n is nil.
func (r *Registry[T]) Add(n T) error {
	if isNil(n) {
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	id := n.ID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: %s %q", ErrDuplicateID, n.Kind(), id)
	}
	if r.byID == nil {
		r.byID = make(map[string]T)
	}
	r.byID[id] = n
	r.order = append(r.order, id)
	return nil
}

// Get returns the node registered under id.
func (r *Registry[T]) Get(id string) (T, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered nodes.
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// IDs returns the registered ids in insertion order.
func (r *Registry[T]) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the registered nodes in insertion order.
func (r *Registry[T]) All() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
