package scene

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, a floor and a textured panel
func NewDefaultScene(opts Options) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:        core.NewVec3(0, 1.5, 6),
		LookAt:          core.NewVec3(0, 0.75, 0),
		Up:              core.UpVector,
		VFov:            50,
		ReflectionDepth: 3,
	})

	s := New("default", camera)

	floorProps := material.DefaultProperties()
	floorProps.Reflectivity = 0.2
	floorProps.Glossiness = 0.3

	mirror := material.Properties{Reflectivity: 0.8, Opacity: 1, Glossiness: 1}
	glass := material.Properties{Reflectivity: 0.1, Refractivity: 0.5, Opacity: 0.2, Glossiness: 1}
	matte := material.Properties{Opacity: 1, Glossiness: 0.2}

	panel := material.NewGradientTexture(64, 64, core.Purple, core.Yellow)

	s.Add(
		geometry.NewPlane(core.Vec3{}, core.UpVector, 2, floorMaterial(opts, floorProps)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewSolidMaterial(core.Silver, mirror)),
		geometry.NewSphere(core.NewVec3(-2.2, 0.6, 0.8), 0.6, material.NewSolidMaterial(core.Red, material.DefaultProperties())),
		geometry.NewSphere(core.NewVec3(1.8, 0.7, 1.2), 0.7, material.NewSolidMaterial(core.White, glass)),
		geometry.NewSphere(core.NewVec3(0.9, 0.3, 2.2), 0.3, material.NewSolidMaterial(core.Green, matte)),
		geometry.NewQuad(core.NewVec3(0, 1.5, -3), core.ForwardVector, 4, 3, 4, material.NewTextureMaterial(panel, matte)),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(-4, 6, 4), core.White, 0.8),
		lights.NewPointLight(core.NewVec3(5, 4, 3), core.NewColor(1, 0.9, 0.8, 1), 0.4),
	)

	return s
}
