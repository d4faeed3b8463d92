package material

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Registry is an immutable name → Material table. It is built once at
// start-up and shared by reference between beam instances.
type Registry struct {
	byName map[string]Material
}

// NewRegistry builds a registry from the given materials. Every entry is
// validated and names must be unique.
func NewRegistry(materials ...Material) (*Registry, error) {
	r := &Registry{byName: make(map[string]Material, len(materials))}
	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMaterial, m.Name)
		}
		r.byName[m.Name] = m
	}
	return r, nil
}

// Default returns the built-in alloy table.
func Default() *Registry {
	return &Registry{byName: map[string]Material{
		AL7010.Name: AL7010,
		AL2198.Name: AL2198,
		TI64.Name:   TI64,
	}}
}

// LoadFile reads a JSON array of materials and overlays it on the built-in
// table. Entries in the file replace built-in entries of the same name.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var materials []Material
	if err := json.Unmarshal(data, &materials); err != nil {
		return nil, fmt.Errorf("material: parse %s: %w", path, err)
	}

	overlay, err := NewRegistry(materials...)
	if err != nil {
		return nil, fmt.Errorf("material: load %s: %w", path, err)
	}
	return Default().merge(overlay), nil
}

func (r *Registry) merge(other *Registry) *Registry {
	out := &Registry{byName: make(map[string]Material, len(r.byName)+len(other.byName))}
	for name, m := range r.byName {
		out.byName[name] = m
	}
	for name, m := range other.byName {
		out.byName[name] = m
	}
	return out
}

// Lookup returns the material registered under name.
func (r *Registry) Lookup(name string) (Material, error) {
	m, ok := r.byName[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Names returns the registered material names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered materials.
func (r *Registry) Len() int {
	return len(r.byName)
}
