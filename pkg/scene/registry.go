package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Constructor builds a fresh scene
type Constructor func(opts Options) *Scene

// Preset is a named scene constructor
type Preset struct {
	Name        string
	Description string
	New         Constructor
}

// SceneInfo describes a preset for listings
type SceneInfo struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry is an ordered list of scene presets
type Registry struct {
	presets []Preset
}

// NewRegistry creates a registry with the given presets in order
func NewRegistry(presets ...Preset) *Registry {
	r := &Registry{presets: make([]Preset, len(presets))}
	copy(r.presets, presets)
	return r
}

// DefaultRegistry returns a registry with the built-in presets
func DefaultRegistry() *Registry {
	return NewRegistry(
		Preset{Name: "default", Description: "Spheres over a checkered floor", New: NewDefaultScene},
		Preset{Name: "two-planes", Description: "Sphere in the corner of two checkered planes", New: NewTwoPlanesScene},
		Preset{Name: "discs", Description: "Discs and quads at different angles", New: NewDiscScene},
		Preset{Name: "mesh", Description: "Polygon mesh pyramid", New: NewMeshScene},
	)
}

// Len returns the number of presets
func (r *Registry) Len() int {
	return len(r.presets)
}

// Names returns the preset names in order
func (r *Registry) Names() []string {
	names := make([]string, len(r.presets))
	for i, p := range r.presets {
		names[i] = p.Name
	}
	return names
}

// Info returns a description of every preset in order
func (r *Registry) Info() []SceneInfo {
	info := make([]SceneInfo, len(r.presets))
	for i, p := range r.presets {
		info[i] = SceneInfo{Index: i, Name: p.Name, Description: p.Description}
	}
	return info
}

// Index returns the position of the named preset, or -1
func (r *Registry) Index(name string) int {
	for i, p := range r.presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// ByIndex builds the preset at index, wrapping around in both directions.
// It returns nil for an empty registry.
func (r *Registry) ByIndex(index int, opts Options) *Scene {
	if len(r.presets) == 0 {
		return nil
	}
	index %= len(r.presets)
	if index < 0 {
		index += len(r.presets)
	}
	return r.build(r.presets[index], opts)
}

// ByName builds the named preset
func (r *Registry) ByName(name string, opts Options) (*Scene, error) {
	i := r.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return r.build(r.presets[i], opts), nil
}

func (r *Registry) build(p Preset, opts Options) *Scene {
	s := p.New(opts)
	if s.Name == "" {
		s.Name = p.Name
	}
	return s
}
