package lights

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// PointLight is an infinitely small light that shines equally in every direction
type PointLight struct {
	Position  core.Vec3  // Light position in world space
	Color     core.Color // Light color
	Intensity float32    // Scale applied to the color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float32) PointLight {
	return PointLight{Position: position, Color: color, Intensity: intensity}
}

// Sample describes a light as seen from a shading point
type Sample struct {
	Direction core.Vec3  // Unit direction from the shading point to the light
	Distance  float64    // Distance to the light
	Radiance  core.Color // Color scaled by intensity
}

// SampleFrom returns the direction and distance to the light from point.
// ok is false when the point coincides with the light.
func (l PointLight) SampleFrom(point core.Vec3) (Sample, bool) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return Sample{}, false
	}

	return Sample{
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Radiance:  l.Radiance(),
	}, true
}

// Radiance returns the light color scaled by its intensity
func (l PointLight) Radiance() core.Color {
	return l.Color.Multiply(l.Intensity)
}

// ShadowRay returns a ray from point toward the light, bounded so that
// objects behind the light do not occlude it. offset moves the origin
// off the surface along normal.
func (l PointLight) ShadowRay(point, normal core.Vec3, offset float64) (core.Ray, bool) {
	origin := point.Add(normal.Multiply(offset))
	sample, ok := l.SampleFrom(origin)
	if !ok {
		return core.Ray{}, false
	}
	return core.NewBoundedRay(origin, sample.Direction, sample.Distance), true
}
