// Package registry provides a registry of named constructors.
// Components register themselves by name so that configuration can refer
// to them symbolically (for example, a level symbol bound to "coin").
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to constructors of type T.
// The zero value is not usable; create one with New.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
	titles  map[string]string
}

// Info contains metadata about a registered entry.
type Info struct {
	Name  string
	Title string
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
		titles:  make(map[string]string),
	}
}

// Register adds a named entry with a human-readable title.
// Panics if an entry with the same name is already registered.
func (r *Registry[T]) Register(name, title string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("registry: %q already registered", name))
	}

	r.entries[name] = v
	r.titles[name] = title
}

// List returns information about all entries, sorted by name.
func (r *Registry[T]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.entries))
	for name := range r.entries {
		result = append(result, Info{
			Name:  name,
			Title: r.titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the entry registered under name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown name %q", name)
	}

	return v, nil
}

// Exists checks if an entry with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}
