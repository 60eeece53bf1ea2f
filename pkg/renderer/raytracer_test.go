package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/lights"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

func TestRaytracer_SphereSilhouette(t *testing.T) {
	s := newTestScene(0, whiteSphere())
	rt := NewRaytracer(s)
	projection := s.Camera.Projection(101, 101)

	if _, isHit := rt.Nearest(projection.RayForPixel(50, 50)); !isHit {
		t.Error("Expected the center ray to hit the sphere")
	}

	corners := [][2]int{{0, 0}, {100, 0}, {0, 100}, {100, 100}}
	for _, c := range corners {
		if _, isHit := rt.Nearest(projection.RayForPixel(c[0], c[1])); isHit {
			t.Errorf("Expected corner ray (%d, %d) to miss", c[0], c[1])
		}
	}
}

func TestRaytracer_RenderBounds(t *testing.T) {
	s := newTestScene(0, whiteSphere())
	buffer, err := NewRenderBuffer(21, 21)
	if err != nil {
		t.Fatalf("NewRenderBuffer: %v", err)
	}

	rt := NewRaytracer(s)
	stats := rt.RenderBounds(s.Camera.Projection(21, 21), image.Rect(0, 0, 21, 21), buffer.View(), 0)

	if stats.Pixels != 21*21 {
		t.Errorf("Expected %d pixels, got %d", 21*21, stats.Pixels)
	}
	if stats.Rays < stats.Pixels {
		t.Errorf("Expected at least one ray per pixel, got %d", stats.Rays)
	}
	if got := buffer.Pixel(10, 10); !colorsClose(got, testAmbient, 1e-6) {
		t.Errorf("Expected ambient-lit sphere at center, got %v", got)
	}
	if got := buffer.Pixel(0, 0); got != core.Black {
		t.Errorf("Expected background at corner, got %v", got)
	}
}

func TestRaytracer_NearestKeepsFirstOnTie(t *testing.T) {
	first := geometry.NewSphere(core.Vec3{}, 1, solid(core.Red, material.DefaultProperties()))
	second := geometry.NewSphere(core.Vec3{}, 1, solid(core.Blue, material.DefaultProperties()))
	rt := NewRaytracer(newTestScene(0, first, second))

	hit, isHit := rt.Nearest(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Object != first {
		t.Error("Expected the earlier object to win a tie")
	}
}

func TestRaytracer_NearestPicksClosest(t *testing.T) {
	far := geometry.NewPlane(core.NewVec3(0, 0, -3), core.ForwardVector, 1, solid(core.Red, material.DefaultProperties()))
	near := whiteSphere()
	rt := NewRaytracer(newTestScene(0, far, near))

	hit, _ := rt.Nearest(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if hit.Object != near {
		t.Errorf("Expected the sphere in front of the plane, got %T", hit.Object)
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
}

func TestRaytracer_DepthZeroIsLocalShading(t *testing.T) {
	mirror := geometry.NewSphere(core.Vec3{}, 1, solid(core.White, material.Properties{Reflectivity: 1, Opacity: 1, Glossiness: 1}))
	backdrop := geometry.NewPlane(core.NewVec3(0, 0, 10), core.ForwardVector, 1, solid(core.Red, material.DefaultProperties()))
	rt := NewRaytracer(newTestScene(0, mirror, backdrop))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := rt.Nearest(ray)
	if !isHit {
		t.Fatal("Expected hit on mirror")
	}

	local := rt.Shade(hit)
	if got := rt.Trace(ray, 0); got != local {
		t.Errorf("Expected depth 0 to return local shading %v, got %v", local, got)
	}

	// One bounce sees the red backdrop behind the camera
	reflected := rt.Trace(ray, 1)
	expected := testAmbient.MultiplyColor(core.Red)
	if !colorsClose(reflected, expected, 1e-6) {
		t.Errorf("Expected reflected backdrop %v, got %v", expected, reflected)
	}
}

func TestRaytracer_PartialReflection(t *testing.T) {
	props := material.Properties{Reflectivity: 0.25, Opacity: 1, Glossiness: 0}
	rt := NewRaytracer(newTestScene(0, geometry.NewSphere(core.Vec3{}, 1, solid(core.White, props))))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	local := rt.Trace(ray, 0)

	// The reflected ray escapes to the black background
	expected := core.Lerp(local, core.Black, 0.25)
	if got := rt.Trace(ray, 3); !colorsClose(got, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRaytracer_TransparentPassThrough(t *testing.T) {
	window := geometry.NewQuad(core.Vec3{}, core.ForwardVector, 2, 2, 1, solid(core.White, material.Properties{Opacity: 0}))
	backdrop := geometry.NewPlane(core.NewVec3(0, 0, -5), core.ForwardVector, 1, solid(core.Green, material.DefaultProperties()))
	rt := NewRaytracer(newTestScene(0, window, backdrop))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	expected := testAmbient.MultiplyColor(core.Green)

	if got := rt.Trace(ray, 1); !colorsClose(got, expected, 1e-6) {
		t.Errorf("Expected backdrop seen through the window %v, got %v", expected, got)
	}
	if got := rt.Trace(ray, 0); !colorsClose(got, testAmbient, 1e-6) {
		t.Errorf("Expected window local color at depth 0, got %v", got)
	}
}

func TestRaytracer_ShadowsAndLighting(t *testing.T) {
	floor := geometry.NewPlane(core.Vec3{}, core.UpVector, 1, solid(core.White, material.Properties{Opacity: 1}))
	blocker := geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, solid(core.White, material.DefaultProperties()))
	s := newTestScene(0, floor, blocker)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 0), core.White, 1))
	rt := NewRaytracer(s)

	down := core.NewVec3(0, -1, 0)

	shadowed, _ := rt.Nearest(core.NewRay(core.NewVec3(0, 1, 0), down))
	if got := rt.Shade(shadowed); !colorsClose(got, testAmbient, 1e-6) {
		t.Errorf("Expected only ambient light under the blocker, got %v", got)
	}

	lit, _ := rt.Nearest(core.NewRay(core.NewVec3(3, 1, 0), down))
	got := rt.Shade(lit)
	if got.R <= testAmbient.R {
		t.Errorf("Expected lit floor brighter than ambient, got %v", got)
	}

	// Lambert term: cos of the angle between the normal and the light
	cos := float32(5 / math.Sqrt(34))
	if !colorsClose(got, testAmbient.Add(core.NewColor(cos, cos, cos, 0)), 1e-5) {
		t.Errorf("Expected ambient plus lambert %f, got %v", cos, got)
	}
}

func TestRaytracer_LightBehindObjectDoesNotShadow(t *testing.T) {
	floor := geometry.NewPlane(core.Vec3{}, core.UpVector, 1, solid(core.White, material.Properties{Opacity: 1}))
	above := geometry.NewSphere(core.NewVec3(0, 8, 0), 0.5, solid(core.White, material.DefaultProperties()))
	s := newTestScene(0, floor, above)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 0), core.White, 1))
	rt := NewRaytracer(s)

	hit, _ := rt.Nearest(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)))
	if got := rt.Shade(hit); !colorsClose(got, testAmbient.Add(core.NewColor(1, 1, 1, 0)), 1e-5) {
		t.Errorf("Expected full light with the sphere past the light, got %v", got)
	}
}

func TestRefract(t *testing.T) {
	normal := core.UpVector

	tests := []struct {
		name         string
		direction    core.Vec3
		refractivity float32
		expected     core.Vec3
	}{
		{"pass through", core.NewVec3(1, -1, 0).Normalize(), 0, core.NewVec3(1, -1, 0).Normalize()},
		{"normal incidence", core.NewVec3(0, -1, 0), 0.5, core.NewVec3(0, -1, 0)},
		{"total internal reflection", core.NewVec3(math.Sin(1.2), math.Cos(1.2), 0), 0.5, core.NewVec3(math.Sin(1.2), -math.Cos(1.2), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refract(tt.direction, normal, tt.refractivity)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	normal := core.UpVector
	incoming := core.NewVec3(math.Sin(0.5), -math.Cos(0.5), 0)

	got := refract(incoming, normal, 0.5)

	sinOut := math.Sqrt(got.X*got.X + got.Z*got.Z)
	if math.Abs(sinOut-math.Sin(0.5)/1.5) > 1e-9 {
		t.Errorf("Expected sin %f, got %f", math.Sin(0.5)/1.5, sinOut)
	}
	if got.Y >= 0 {
		t.Errorf("Expected the refracted ray to continue downward, got %v", got)
	}
}
