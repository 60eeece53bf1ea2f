package material

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// Material describes how a surface looks at a given UV coordinate
type Material interface {
	// Properties returns the scalar shading weights of the material
	Properties() Properties

	// DiffuseAt returns the diffuse color at the given surface coordinate
	DiffuseAt(uv core.UV) core.Color

	// SpecularAt returns the specular color at the given surface coordinate
	SpecularAt(uv core.UV) core.Color
}

// Properties holds the scalar shading weights shared by every material.
// Each value is expected in [0, 1] but is not range-checked.
type Properties struct {
	Reflectivity float32 // Fraction of the surface color taken from the reflected ray
	Refractivity float32 // Bending strength of transmitted rays (index of refraction - 1)
	Opacity      float32 // Fraction of light that does not pass through the surface
	Glossiness   float32 // Sharpness and strength of specular highlights
}

// DefaultProperties returns an opaque, non-reflective, glossy surface
func DefaultProperties() Properties {
	return Properties{
		Reflectivity: 0,
		Refractivity: 0,
		Opacity:      1,
		Glossiness:   1,
	}
}
