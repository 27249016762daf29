package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps base names to schemas.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates a registry holding the given schemas.
// It returns an error if two schemas share a base name.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a schema. Base names must be unique.
func (r *Registry) Register(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.BaseName()]; exists {
		return fmt.Errorf("schema already registered: %s", s.BaseName())
	}
	r.schemas[s.BaseName()] = s
	return nil
}

// Get returns a schema by base name.
func (r *Registry) Get(baseName string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[baseName]
	return s, ok
}

// All returns every registered schema sorted by base name.
func (r *Registry) All() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BaseName() < result[j].BaseName()
	})
	return result
}

// BaseNames returns the registered base names, sorted.
func (r *Registry) BaseNames() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.BaseName()
	}
	return names
}
