package renderer

import (
	"image"
	"math"

	"github.com/chewxy/math32"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// surfaceOffset moves secondary ray origins off the surface they leave
const surfaceOffset = 1e-4

// Raytracer traces rays through a scene. A Raytracer is not safe for
// concurrent use; each worker owns one.
type Raytracer struct {
	scene *scene.Scene
	rays  int64 // Rays cast since the last RenderBounds
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// Nearest returns the closest intersection along the ray.
// Objects are tested in scene order and ties keep the earlier object.
func (rt *Raytracer) Nearest(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	closestSoFar := math.Inf(1)
	hitAnything := false

	for _, obj := range rt.scene.Objects {
		if hit, isHit := obj.Intersect(ray); isHit && hit.Distance < closestSoFar {
			closest = hit
			closestSoFar = hit.Distance
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// occluded reports whether anything lies along the bounded shadow ray
func (rt *Raytracer) occluded(ray core.Ray) bool {
	rt.rays++
	for _, obj := range rt.scene.Objects {
		if _, isHit := obj.Intersect(ray); isHit {
			return true
		}
	}
	return false
}

// Trace returns the color seen along the ray, following up to depth
// reflection and transmission bounces
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Color {
	rt.rays++

	hit, isHit := rt.Nearest(ray)
	if !isHit {
		return rt.scene.Background
	}

	local := rt.Shade(hit)
	if depth <= 0 {
		return local
	}

	props := hit.Object.Material().Properties()
	normal := facing(hit.Normal, ray.Direction)

	surface := local
	if props.Reflectivity > 0 {
		reflected := core.NewRay(hit.Point.Add(normal.Multiply(surfaceOffset)), ray.Direction.Reflect(normal))
		surface = core.Lerp(local, rt.Trace(reflected, depth-1), props.Reflectivity)
	}

	if props.Opacity < 1 {
		direction := refract(ray.Direction, hit.Normal, props.Refractivity)
		transmitted := core.NewRay(hit.Point.Subtract(normal.Multiply(surfaceOffset)), direction)
		return core.Lerp(rt.Trace(transmitted, depth-1), surface, props.Opacity)
	}

	return surface
}

// Shade returns the local color at a hit: ambient light plus the diffuse and
// specular contribution of every light that is not shadowed
func (rt *Raytracer) Shade(hit geometry.Intersection) core.Color {
	mat := hit.Object.Material()
	props := mat.Properties()
	diffuse := hit.Color
	specular := mat.SpecularAt(hit.Object.UVAt(hit.Point))
	normal := facing(hit.Normal, hit.Incoming)
	view := hit.Incoming.Negate()

	color := rt.scene.Ambient.MultiplyColor(diffuse)

	for _, light := range rt.scene.Lights {
		shadow, ok := light.ShadowRay(hit.Point, normal, surfaceOffset)
		if !ok {
			continue
		}

		lambert := float32(normal.Dot(shadow.Direction))
		if lambert <= 0 || rt.occluded(shadow) {
			continue
		}

		radiance := light.Radiance()
		color = color.Add(diffuse.MultiplyColor(radiance).Multiply(lambert))

		if props.Glossiness > 0 {
			highlight := float32(shadow.Direction.Negate().Reflect(normal).Dot(view))
			if highlight > 0 {
				strength := props.Glossiness * math32.Pow(highlight, 2+62*props.Glossiness)
				color = color.Add(specular.MultiplyColor(radiance).Multiply(strength))
			}
		}
	}

	color.A = diffuse.A
	return color
}

// RenderBounds traces one primary ray per pixel inside bounds into frame
func (rt *Raytracer) RenderBounds(projection geometry.Projection, bounds image.Rectangle, frame *Frame, depth int) RenderStats {
	rt.rays = 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			frame.set(x, y, rt.Trace(projection.RayForPixel(x, y), depth))
		}
	}

	return RenderStats{
		Pixels: int64(bounds.Dx() * bounds.Dy()),
		Rays:   rt.rays,
		Tiles:  1,
	}
}

// facing returns the normal flipped, if needed, to point against direction
func facing(normal, direction core.Vec3) core.Vec3 {
	if normal.Dot(direction) > 0 {
		return normal.Negate()
	}
	return normal
}

// refract bends direction through a surface with index of refraction
// 1 + refractivity using Snell's law. Total internal reflection falls back
// to the mirrored direction.
func refract(direction, normal core.Vec3, refractivity float32) core.Vec3 {
	if refractivity == 0 {
		return direction
	}

	ior := 1 + float64(refractivity)
	cosI := -direction.Dot(normal)
	eta := 1 / ior
	if cosI < 0 {
		// Leaving the object
		normal = normal.Negate()
		cosI = -cosI
		eta = ior
	}

	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return direction.Reflect(normal)
	}

	return direction.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(k))).Normalize()
}
