package geometry

import (
	"math"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

const tolerance = 1e-9

func testMaterial() material.Material {
	return material.NewSolidMaterial(core.White, material.DefaultProperties())
}

func vecClose(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func materialChecker() material.Material {
	return material.NewCheckerMaterial(core.White, core.Black, 2, material.DefaultProperties())
}
