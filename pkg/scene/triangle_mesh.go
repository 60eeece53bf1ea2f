package scene

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// NewPyramid creates a square pyramid mesh with its base centered on position
func NewPyramid(position core.Vec3, size, height float64, mat material.Material) *geometry.Mesh {
	h := size / 2
	apex := core.NewVec3(0, height, 0)
	a := core.NewVec3(-h, 0, h)
	b := core.NewVec3(h, 0, h)
	c := core.NewVec3(h, 0, -h)
	d := core.NewVec3(-h, 0, -h)

	return geometry.NewMesh(position, []geometry.Polygon{
		geometry.NewPolygon(a, b, apex),
		geometry.NewPolygon(b, c, apex),
		geometry.NewPolygon(c, d, apex),
		geometry.NewPolygon(d, a, apex),
		geometry.NewPolygon(a, d, c, b),
	}, mat)
}

// NewMeshScene creates a scene with polygon meshes
func NewMeshScene(opts Options) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:        core.NewVec3(3, 3, 6),
		LookAt:          core.NewVec3(0, 0.8, 0),
		Up:              core.UpVector,
		VFov:            50,
		ReflectionDepth: 3,
	})

	s := New("mesh", camera)

	s.Add(
		geometry.NewPlane(core.Vec3{}, core.UpVector, 2, floorMaterial(opts, material.DefaultProperties())),
		NewPyramid(core.Vec3{}, 2, 2, material.NewCheckerMaterial(core.Yellow, core.Red, 4, material.Properties{Reflectivity: 0.2, Opacity: 1, Glossiness: 0.7})),
		NewPyramid(core.NewVec3(-2.5, 0, -1), 1, 1.5, material.NewSolidMaterial(core.Blue, material.Properties{Reflectivity: 0.6, Opacity: 1, Glossiness: 1})),
		geometry.NewSphere(core.NewVec3(2, 0.5, 0.5), 0.5, material.NewSolidMaterial(core.White, material.Properties{Reflectivity: 0.1, Refractivity: 0.4, Opacity: 0.3, Glossiness: 1})),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(-3, 6, 5), core.White, 0.9),
		lights.NewPointLight(core.NewVec3(4, 2, -3), core.Sky, 0.3),
	)

	return s
}
