package renderer

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/material"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

var testAmbient = core.NewColor(0.2, 0.2, 0.2, 1)

// newTestScene creates an unlit scene viewed from (0, 0, 5) toward the origin
func newTestScene(depth int, objects ...geometry.Drawable) *scene.Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:        core.NewVec3(0, 0, 5),
		LookAt:          core.Vec3{},
		Up:              core.UpVector,
		VFov:            60,
		ReflectionDepth: depth,
	})

	s := scene.New("test", camera)
	s.Background = core.Black
	s.Ambient = testAmbient
	s.Add(objects...)
	return s
}

func solid(c core.Color, props material.Properties) material.Material {
	return material.NewSolidMaterial(c, props)
}

func whiteSphere() *geometry.Sphere {
	return geometry.NewSphere(core.Vec3{}, 1, solid(core.White, material.DefaultProperties()))
}

func colorsClose(a, b core.Color, tol float32) bool {
	d := a.Subtract(b)
	return abs32(d.R) <= tol && abs32(d.G) <= tol && abs32(d.B) <= tol && abs32(d.A) <= tol
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
