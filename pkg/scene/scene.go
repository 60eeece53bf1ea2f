package scene

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Camera     *geometry.Camera
	Objects    []geometry.Drawable // Objects in the scene, tested in order
	Lights     []lights.PointLight // Lights in the scene
	Background core.Color          // Color returned by rays that hit nothing
	Ambient    core.Color          // Light reaching every surface regardless of occlusion
}

// Options customizes preset construction
type Options struct {
	// FloorTexture replaces the procedural floor of presets that have one
	FloorTexture *material.Texture
}

// New creates an empty scene with the given camera
func New(name string, camera *geometry.Camera) *Scene {
	return &Scene{
		Name:       name,
		Camera:     camera,
		Objects:    make([]geometry.Drawable, 0),
		Lights:     make([]lights.PointLight, 0),
		Background: core.Sky,
		Ambient:    core.NewColor(0.15, 0.15, 0.15, 1),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Drawable) {
	s.Objects = append(s.Objects, objects...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.PointLight) {
	s.Lights = append(s.Lights, l...)
}

// ObjectCount returns the number of drawable objects in the scene
func (s *Scene) ObjectCount() int {
	return len(s.Objects)
}

// floorMaterial returns a material for the ground of a preset
func floorMaterial(opts Options, props material.Properties) material.Material {
	if opts.FloorTexture != nil {
		return material.NewTextureMaterial(opts.FloorTexture, props)
	}
	return material.NewCheckerMaterial(core.White, core.DarkGrey, 2, props)
}
