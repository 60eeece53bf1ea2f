package scene

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// NewDiscScene creates discs and quads facing in different directions
func NewDiscScene(opts Options) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:        core.NewVec3(0, 2, 7),
		LookAt:          core.NewVec3(0, 1, 0),
		Up:              core.UpVector,
		VFov:            50,
		ReflectionDepth: 2,
	})

	s := New("discs", camera)

	shiny := material.Properties{Reflectivity: 0.4, Opacity: 1, Glossiness: 0.9}
	tinted := material.Properties{Refractivity: 0.1, Opacity: 0.5, Glossiness: 0.6}

	s.Add(
		geometry.NewDisc(core.Vec3{}, core.UpVector, 4, 1, floorMaterial(opts, material.DefaultProperties())),
		geometry.NewDisc(core.NewVec3(-1.8, 1.2, 0), core.NewVec3(1, 0, 1), 1, 0.5, material.NewCheckerMaterial(core.Red, core.White, 4, shiny)),
		geometry.NewDisc(core.NewVec3(1.8, 1.2, 0), core.NewVec3(-1, 0, 1), 1, 0.5, material.NewSolidMaterial(core.Blue, shiny)),
		geometry.NewQuad(core.NewVec3(0, 1, 1), core.ForwardVector, 1.5, 1.5, 1.5, material.NewSolidMaterial(core.Green, tinted)),
		geometry.NewQuad(core.NewVec3(0, 2, -2), core.NewVec3(0, 0.3, 1), 5, 2, 1, material.NewCheckerMaterial(core.Grey, core.DarkGrey, 8, material.DefaultProperties())),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 6, 5), core.White, 1))

	return s
}
