package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-preview-raytracer/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Intersect(ray)
	if isHit {
		t.Errorf("Expected miss, but got hit at distance=%f", hit.Distance)
	}
}

func TestSphere_Intersect_Cases(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		maxDistance  float64
		expectHit    bool
		expectedDist float64
		expectedNorm core.Vec3
	}{
		{
			name:         "front hit",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			maxDistance:  math.Inf(1),
			expectHit:    true,
			expectedDist: 2,
			expectedNorm: core.NewVec3(0, 0, 1),
		},
		{
			name:         "unnormalized direction",
			rayOrigin:    core.NewVec3(3, 0, 0),
			rayDirection: core.NewVec3(-10, 0, 0),
			maxDistance:  math.Inf(1),
			expectHit:    true,
			expectedDist: 2,
			expectedNorm: core.NewVec3(1, 0, 0),
		},
		{
			name:         "sphere behind origin",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, 1),
			maxDistance:  math.Inf(1),
			expectHit:    false,
		},
		{
			name:         "origin inside sphere",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			maxDistance:  math.Inf(1),
			expectHit:    false,
		},
		{
			name:         "beyond max distance",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			maxDistance:  1.5,
			expectHit:    false,
		},
		{
			name:         "tangent ray has zero discriminant",
			rayOrigin:    core.NewVec3(1, 0, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			maxDistance:  math.Inf(1),
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewBoundedRay(tt.rayOrigin, tt.rayDirection, tt.maxDistance)
			hit, isHit := sphere.Intersect(ray)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.Distance-tt.expectedDist) > tolerance {
				t.Errorf("Expected distance=%f, got %f", tt.expectedDist, hit.Distance)
			}
			if !vecClose(hit.Normal, tt.expectedNorm, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNorm, hit.Normal)
			}
			if hit.Object != sphere {
				t.Error("Expected intersection to reference the sphere")
			}
		})
	}
}

// TestSphere_Intersect_MatchesDiscriminant checks random rays against the analytic hit condition
func TestSphere_Intersect_MatchesDiscriminant(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	center := core.NewVec3(0.5, -0.25, -2)
	sphere := NewSphere(center, 1.25, testMaterial())

	randomVec := func(scale float64) core.Vec3 {
		return core.NewVec3(
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
		)
	}

	for i := 0; i < 2000; i++ {
		ray := core.NewBoundedRay(randomVec(5), randomVec(1), random.Float64()*10)

		oc := ray.Origin.Subtract(center)
		b := oc.Dot(ray.Direction)
		c := oc.Dot(oc) - sphere.Radius*sphere.Radius
		d := b*b - c
		near := -b - math.Sqrt(d)
		expected := d > 0 && near >= 0 && near <= ray.Distance

		hit, isHit := sphere.Intersect(ray)
		if isHit != expected {
			t.Fatalf("Ray %d: expected hit=%t, got %t (d=%f near=%f max=%f)", i, expected, isHit, d, near, ray.Distance)
		}
		if !isHit {
			continue
		}
		if measured := hit.Point.Distance(ray.Origin); math.Abs(measured-hit.Distance) > 1e-9 {
			t.Errorf("Ray %d: distance %f does not match |hit-origin| %f", i, hit.Distance, measured)
		}
		if hit.Distance < 0 || hit.Distance > ray.Distance {
			t.Errorf("Ray %d: distance %f outside [0, %f]", i, hit.Distance, ray.Distance)
		}
	}
}

func TestSphere_UVAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2.0, testMaterial())

	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"+x equator", core.NewVec3(3, 1, 1), 0.5, 0.5},
		{"north pole", core.NewVec3(1, 3, 1), 0.5, 0.0},
		{"south pole", core.NewVec3(1, -1, 1), 0.5, 1.0},
		{"+z equator", core.NewVec3(1, 1, 3), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphere.UVAt(tt.point)
			if math.Abs(uv.U-tt.u) > tolerance || math.Abs(uv.V-tt.v) > tolerance {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, uv.U, uv.V)
			}
		})
	}
}

func TestSphere_SetPosition(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	sphere.SetPosition(core.NewVec3(10, 0, 0))

	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := sphere.Intersect(ray); !isHit {
		t.Error("Expected hit after moving the sphere")
	}
}
