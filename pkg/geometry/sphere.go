package geometry

import (
	"math"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Base
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Base: NewBase(center, mat), Radius: radius}
}

// Intersect tests the ray against the near side of the sphere.
// Only the near root is considered, so a ray starting inside the sphere never hits it.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	rayToSphere := ray.Origin.Subtract(s.position)
	b := rayToSphere.Dot(ray.Direction)
	c := rayToSphere.Dot(rayToSphere) - s.Radius*s.Radius
	discriminant := b*b - c

	if discriminant <= 0 {
		return Intersection{}, false
	}

	distance := -b - math.Sqrt(discriminant)
	if distance < 0 || distance > ray.Distance {
		return Intersection{}, false
	}

	point := ray.At(distance)
	normal := point.Subtract(s.position).Normalize()
	return newIntersection(s, ray, point, normal), true
}

// UVAt maps the point to spherical coordinates: u from azimuth, v from elevation
func (s *Sphere) UVAt(point core.Vec3) core.UV {
	toCenter := point.Subtract(s.position).Normalize()

	u := 0.5 + math.Atan2(toCenter.Z, toCenter.X)/(2*math.Pi)
	v := 0.5 - math.Asin(toCenter.Y)/math.Pi

	return core.NewUV(u, v)
}
