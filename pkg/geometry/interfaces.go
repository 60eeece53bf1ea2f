package geometry

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// Drawable is a scene object that can be hit by rays and textured
type Drawable interface {
	Position() core.Vec3
	SetPosition(position core.Vec3)
	Material() material.Material

	// Intersect returns the intersection of the ray with the object, if any
	Intersect(ray core.Ray) (Intersection, bool)

	// UVAt maps a world-space point on the surface to a texture coordinate
	UVAt(point core.Vec3) core.UV
}

// Base holds the state shared by all drawable objects: a world-space
// position and the one material the object owns
type Base struct {
	position core.Vec3
	material material.Material
}

// NewBase creates a new Base
func NewBase(position core.Vec3, mat material.Material) Base {
	return Base{position: position, material: mat}
}

// Position returns the world-space position of the object
func (b *Base) Position() core.Vec3 { return b.position }

// SetPosition moves the object. Objects must not be moved while a render is in flight.
func (b *Base) SetPosition(position core.Vec3) { b.position = position }

// Material returns the material of the object
func (b *Base) Material() material.Material { return b.material }
