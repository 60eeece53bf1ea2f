package scene

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// NewTwoPlanesScene creates a sphere resting in the corner of a floor and a back wall
func NewTwoPlanesScene(opts Options) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:        core.NewVec3(2, 2, 6),
		LookAt:          core.NewVec3(0, 1, 0),
		Up:              core.UpVector,
		VFov:            55,
		ReflectionDepth: 3,
	})

	s := New("two-planes", camera)
	s.Background = core.Black

	wallProps := material.Properties{Reflectivity: 0.3, Opacity: 1, Glossiness: 0.5}

	s.Add(
		geometry.NewPlane(core.Vec3{}, core.UpVector, 2, floorMaterial(opts, material.DefaultProperties())),
		geometry.NewPlane(core.NewVec3(0, 0, -2), core.ForwardVector, 1, material.NewCheckerMaterial(core.Blue, core.White, 2, wallProps)),
		geometry.NewSphere(core.NewVec3(0, 1, -0.5), 1, material.NewSolidMaterial(core.Yellow, material.Properties{Reflectivity: 0.5, Opacity: 1, Glossiness: 0.8})),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(3, 5, 4), core.White, 1))

	return s
}
