package geometry

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// Intersection describes where a ray hit a drawable object
type Intersection struct {
	Point    core.Vec3  // Point of intersection
	Normal   core.Vec3  // Unit surface normal at the intersection
	Incoming core.Vec3  // Direction of the ray that produced the hit
	Object   Drawable   // Object that was hit; not owned by the intersection
	Color    core.Color // Diffuse color sampled at the hit point
	Distance float64    // Distance from the ray origin to Point
}

// newIntersection builds an intersection record for obj, sampling its diffuse color
func newIntersection(obj Drawable, ray core.Ray, point, normal core.Vec3) Intersection {
	uv := obj.UVAt(point)
	return Intersection{
		Point:    point,
		Normal:   normal,
		Incoming: ray.Direction,
		Object:   obj,
		Color:    obj.Material().DiffuseAt(uv),
		Distance: ray.Origin.Distance(point),
	}
}
