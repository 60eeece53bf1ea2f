package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

func TestDefaultRegistry_ByName(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		name        string
		expectError bool
	}{
		{"default", false},
		{"two-planes", false},
		{"discs", false},
		{"mesh", false},
		{"cornell", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := registry.ByName(tt.name, Options{})

			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.name, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for %q", tt.name)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.name, err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected scene name %q, got %q", tt.name, s.Name)
			}
			if s.Camera == nil {
				t.Error("Scene should have a camera")
			}
			if s.ObjectCount() == 0 {
				t.Error("Scene should have objects")
			}
			if len(s.Lights) == 0 {
				t.Error("Scene should have lights")
			}
		})
	}
}

func TestRegistry_ByIndexWraps(t *testing.T) {
	registry := DefaultRegistry()
	n := registry.Len()

	tests := []struct {
		index    int
		expected string
	}{
		{0, "default"},
		{1, "two-planes"},
		{n, "default"},
		{n + 3, "mesh"},
		{-1, "mesh"},
		{-n - 1, "mesh"},
	}

	for _, tt := range tests {
		s := registry.ByIndex(tt.index, Options{})
		if s.Name != tt.expected {
			t.Errorf("ByIndex(%d): expected %q, got %q", tt.index, tt.expected, s.Name)
		}
	}
}

func TestRegistry_Empty(t *testing.T) {
	registry := NewRegistry()
	if s := registry.ByIndex(0, Options{}); s != nil {
		t.Errorf("Expected nil scene from empty registry, got %v", s.Name)
	}
	if registry.Index("default") != -1 {
		t.Error("Expected index -1 in empty registry")
	}
}

func TestRegistry_BuildsFreshScenes(t *testing.T) {
	registry := DefaultRegistry()
	first := registry.ByIndex(0, Options{})
	second := registry.ByIndex(0, Options{})

	first.Camera.SetReflectionDepth(9)
	if second.Camera.ReflectionDepth() == 9 {
		t.Error("Expected each build to have its own camera")
	}
}

func TestRegistry_Info(t *testing.T) {
	registry := DefaultRegistry()
	info := registry.Info()
	names := registry.Names()

	if len(info) != registry.Len() || len(names) != registry.Len() {
		t.Fatalf("Expected %d entries, got %d info and %d names", registry.Len(), len(info), len(names))
	}
	for i := range info {
		if info[i].Index != i || info[i].Name != names[i] {
			t.Errorf("Entry %d mismatch: %+v vs %q", i, info[i], names[i])
		}
		if info[i].Description == "" {
			t.Errorf("Entry %d has no description", i)
		}
	}
}

func TestOptions_FloorTexture(t *testing.T) {
	texture := material.NewCheckerboardTexture(4, 4, 2, core.Red, core.Red)
	s := NewDefaultScene(Options{FloorTexture: texture})

	floor := s.Objects[0]
	c := floor.Material().DiffuseAt(core.NewUV(0.3, 0.7))
	if c != core.Red {
		t.Errorf("Expected floor to use the supplied texture, got %v", c)
	}
}
