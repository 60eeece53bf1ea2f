package geometry

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// Quad is a plane limited to a width × height rectangle centered on its position.
// Width runs along the plane's u axis and height along its v axis.
type Quad struct {
	Plane
	Width  float64
	Height float64
}

// NewQuad creates a new quad
func NewQuad(center, normal core.Vec3, width, height, cellWidth float64, mat material.Material) *Quad {
	q := &Quad{Plane: Plane{Base: NewBase(center, mat)}, Width: width, Height: height}
	q.init(normal, cellWidth)
	return q
}

// Intersect implements Drawable
func (q *Quad) Intersect(ray core.Ray) (Intersection, bool) {
	point, ok := q.intersectPlane(ray)
	if !ok || !q.contains(point) {
		return Intersection{}, false
	}
	return newIntersection(q, ray, point, q.normal), true
}

func (q *Quad) contains(point core.Vec3) bool {
	offset := point.Subtract(q.position)
	uLength := offset.Project(q.u).Length()
	vLength := offset.Project(q.v).Length()
	return uLength <= q.Width/2 && vLength <= q.Height/2
}
