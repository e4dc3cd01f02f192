package view

import (
	"context"
	"errors"
	"sync"
)

// Refresher is anything that can re-fetch the collection it displays
type Refresher interface {
	Collection() string
	Refresh(ctx context.Context, extra map[string]string) error
}

// Registry tracks the engines currently displaying each collection so writes
// made elsewhere can resynchronize them
type Registry struct {
	mu      sync.Mutex
	nextID  int
	entries map[string]map[int]Refresher
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]map[int]Refresher)}
}

// Register adds r under its collection and returns a function removing it again
func (r *Registry) Register(ref Refresher) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	name := ref.Collection()
	if r.entries[name] == nil {
		r.entries[name] = make(map[int]Refresher)
	}
	r.entries[name][id] = ref

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.entries[name], id)
		if len(r.entries[name]) == 0 {
			delete(r.entries, name)
		}
	}
}

// Count returns how many engines display a collection
func (r *Registry) Count(collection string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries[collection])
}

// Collections returns the names with at least one registered engine
func (r *Registry) Collections() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// RefreshCollection refreshes every engine displaying collection. All engines are
// refreshed even if some fail; the failures are joined.
func (r *Registry) RefreshCollection(ctx context.Context, collection string) error {
	r.mu.Lock()
	targets := make([]Refresher, 0, len(r.entries[collection]))
	for _, ref := range r.entries[collection] {
		targets = append(targets, ref)
	}
	r.mu.Unlock()

	var errs []error
	for _, ref := range targets {
		if err := ref.Refresh(ctx, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
