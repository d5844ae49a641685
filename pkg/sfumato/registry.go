package sfumato

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a named catalog of reusable transitions. Registration and
// lookup are safe for concurrent use; readers never observe a partially
// inserted entry.
//
// Most applications use the process-wide default catalog through the
// package-level Register and Lookup functions. Construct a Registry
// directly when an isolated catalog is needed, such as in tests; the
// zero value is an empty catalog ready for use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Transition
}

// NewRegistry creates an empty transition catalog.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Transition),
	}
}

// Register stores a transition under the given name. Registering an
// existing name overwrites the previous entry.
func (r *Registry) Register(name string, t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Transition)
	}
	r.entries[name] = t
}

// Lookup returns the transition registered under the given name, or an
// error wrapping ErrNotFound if the name was never registered.
func (r *Registry) Lookup(name string) (Transition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.entries[name]
	if !ok {
		return Transition{}, fmt.Errorf("sfumato: lookup %q: %w", name, ErrNotFound)
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered transitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide transition catalog. Entries
// persist for the process lifetime.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register stores a transition in the process-wide catalog.
func Register(name string, t Transition) {
	defaultRegistry.Register(name, t)
}

// Lookup returns a transition from the process-wide catalog.
func Lookup(name string) (Transition, error) {
	return defaultRegistry.Lookup(name)
}
