package geometry

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// Disc is a plane limited to a radius around its center
type Disc struct {
	Plane
	Radius float64
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius, cellWidth float64, mat material.Material) *Disc {
	d := &Disc{Plane: Plane{Base: NewBase(center, mat)}, Radius: radius}
	d.init(normal, cellWidth)
	return d
}

// Intersect implements Drawable
func (d *Disc) Intersect(ray core.Ray) (Intersection, bool) {
	point, ok := d.intersectPlane(ray)
	if !ok || !d.contains(point) {
		return Intersection{}, false
	}
	return newIntersection(d, ray, point, d.normal), true
}

func (d *Disc) contains(point core.Vec3) bool {
	return d.position.Distance(point) <= d.Radius
}
