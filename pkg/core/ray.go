package core

import "math"

// Ray represents a ray with an origin, a unit direction and a maximum travel distance
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Distance  float64
}

// NewRay creates an unbounded ray. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return NewBoundedRay(origin, direction, math.Inf(1))
}

// NewBoundedRay creates a ray that travels at most distance units
func NewBoundedRay(origin, direction Vec3, distance float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Distance: distance}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
