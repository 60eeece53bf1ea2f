package geometry

import (
	"math"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// parallelThreshold is the smallest |normal · direction| treated as a hit.
// Rays closer to parallel than this never intersect.
const parallelThreshold = 5e-4

// defaultCellWidth replaces non-positive or non-finite cell widths
const defaultCellWidth = 1.0

// Plane is a flat surface extending infinitely in every direction
type Plane struct {
	Base
	normal    core.Vec3
	u         core.Vec3 // Texture axes lying in the plane
	v         core.Vec3
	cellWidth float64 // World-space size of one UV tile
}

// NewPlane creates a plane through position with the given normal.
// cellWidth is the repeat period of the UV mapping; values that are not
// positive and finite fall back to 1.
func NewPlane(position, normal core.Vec3, cellWidth float64, mat material.Material) *Plane {
	p := &Plane{Base: NewBase(position, mat)}
	p.init(normal, cellWidth)
	return p
}

func (p *Plane) init(normal core.Vec3, cellWidth float64) {
	p.normal = normal.Normalize()

	switch {
	case p.normal.Equals(core.ForwardVector):
		p.u = core.RightVector.Negate()
	case p.normal.Equals(core.ForwardVector.Negate()):
		p.u = core.RightVector
	default:
		p.u = p.normal.Cross(core.ForwardVector).Normalize()
	}

	p.v = p.normal.Cross(p.u).Negate().Normalize()
	p.cellWidth = cellWidth
	if !(cellWidth > 0) || math.IsInf(cellWidth, 0) {
		p.cellWidth = defaultCellWidth
	}
}

// CellWidth returns the repeat period of the UV mapping
func (p *Plane) CellWidth() float64 { return p.cellWidth }

// Normal returns the unit normal of the plane
func (p *Plane) Normal() core.Vec3 { return p.normal }

// Axes returns the in-plane u and v texture axes
func (p *Plane) Axes() (u, v core.Vec3) { return p.u, p.v }

// Intersect implements Drawable
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	point, ok := p.intersectPlane(ray)
	if !ok {
		return Intersection{}, false
	}
	return newIntersection(p, ray, point, p.normal), true
}

// intersectPlane solves the plane equation along the ray
func (p *Plane) intersectPlane(ray core.Ray) (core.Vec3, bool) {
	return intersectPlaneAt(ray, p.position, p.normal)
}

func intersectPlaneAt(ray core.Ray, position, normal core.Vec3) (core.Vec3, bool) {
	d := normal.Dot(ray.Direction)
	n := -normal.Dot(ray.Origin.Subtract(position))

	if math.Abs(d) <= parallelThreshold {
		return core.Vec3{}, false
	}

	t := n / d
	if t < 0 || t > ray.Distance {
		return core.Vec3{}, false
	}

	return ray.At(t), true
}

// UVAt projects the point onto the plane's texture axes and tiles the result by the cell width.
// Negative projections are shifted by half a cell.
func (p *Plane) UVAt(point core.Vec3) core.UV {
	offset := point.Subtract(p.position)
	return core.NewUV(p.tile(offset.Dot(p.u)), p.tile(offset.Dot(p.v)))
}

func (p *Plane) tile(magnitude float64) float64 {
	c := math.Abs(magnitude)
	if magnitude < 0 {
		c += p.cellWidth / 2
	}
	return math.Mod(c, p.cellWidth) / p.cellWidth
}
