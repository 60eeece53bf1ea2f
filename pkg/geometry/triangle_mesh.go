package geometry

import (
	"math"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/material"
)

// polygonEpsilon tolerates points lying exactly on a polygon edge
const polygonEpsilon = 1e-9

// Polygon is a flat convex polygon with a precomputed normal.
// Vertices are relative to the owning mesh's position.
type Polygon struct {
	Vertices []core.Vec3
	Normal   core.Vec3
}

// NewPolygon creates a polygon from at least three coplanar vertices in counter-clockwise order
func NewPolygon(vertices ...core.Vec3) Polygon {
	if len(vertices) < 3 {
		panic("polygon needs at least 3 vertices")
	}

	points := make([]core.Vec3, len(vertices))
	copy(points, vertices)

	edge1 := points[1].Subtract(points[0])
	edge2 := points[2].Subtract(points[0])

	return Polygon{
		Vertices: points,
		Normal:   edge1.Cross(edge2).Normalize(),
	}
}

// intersect tests the ray against the polygon placed at origin
func (p Polygon) intersect(ray core.Ray, origin core.Vec3) (core.Vec3, bool) {
	point, ok := intersectPlaneAt(ray, origin.Add(p.Vertices[0]), p.Normal)
	if !ok {
		return core.Vec3{}, false
	}

	local := point.Subtract(origin)
	for i, v := range p.Vertices {
		next := p.Vertices[(i+1)%len(p.Vertices)]
		edge := next.Subtract(v)
		if edge.Cross(local.Subtract(v)).Dot(p.Normal) < -polygonEpsilon {
			return core.Vec3{}, false
		}
	}

	return point, true
}

// Mesh is a fixed set of polygons sharing one material
type Mesh struct {
	Base
	polygons []Polygon
	min, max core.Vec3 // Local bounds of all vertices
	uAxis    int       // Bounds axes used for planar UV mapping
	vAxis    int
}

// NewMesh creates a mesh at position from the given polygons
func NewMesh(position core.Vec3, polygons []Polygon, mat material.Material) *Mesh {
	m := &Mesh{Base: NewBase(position, mat)}
	m.polygons = make([]Polygon, len(polygons))
	copy(m.polygons, polygons)
	m.computeBounds()
	return m
}

// Polygons returns the number of polygons in the mesh
func (m *Mesh) Polygons() int {
	return len(m.polygons)
}

func (m *Mesh) computeBounds() {
	inf := math.Inf(1)
	m.min = core.NewVec3(inf, inf, inf)
	m.max = m.min.Negate()

	for _, p := range m.polygons {
		for _, v := range p.Vertices {
			m.min = core.NewVec3(math.Min(m.min.X, v.X), math.Min(m.min.Y, v.Y), math.Min(m.min.Z, v.Z))
			m.max = core.NewVec3(math.Max(m.max.X, v.X), math.Max(m.max.Y, v.Y), math.Max(m.max.Z, v.Z))
		}
	}

	// Map UV over the two largest extents
	extent := axes(m.max.Subtract(m.min))
	switch {
	case extent[1] < extent[0] && extent[1] < extent[2]:
		m.uAxis, m.vAxis = 0, 2
	case extent[0] <= extent[1] && extent[0] <= extent[2]:
		m.uAxis, m.vAxis = 2, 1
	default:
		m.uAxis, m.vAxis = 0, 1
	}
}

// Intersect returns the nearest polygon hit
func (m *Mesh) Intersect(ray core.Ray) (Intersection, bool) {
	var (
		closest     core.Vec3
		normal      core.Vec3
		closestDist = math.Inf(1)
		hitAnything bool
	)

	for _, p := range m.polygons {
		point, ok := p.intersect(ray, m.position)
		if !ok {
			continue
		}
		if d := ray.Origin.Distance(point); d < closestDist {
			closest, normal, closestDist = point, p.Normal, d
			hitAnything = true
		}
	}

	if !hitAnything {
		return Intersection{}, false
	}
	return newIntersection(m, ray, closest, normal), true
}

// UVAt maps the point linearly over the mesh bounds
func (m *Mesh) UVAt(point core.Vec3) core.UV {
	local := axes(point.Subtract(m.position))
	lo, hi := axes(m.min), axes(m.max)

	span := func(axis int) float64 {
		size := hi[axis] - lo[axis]
		if size <= 0 {
			return 0
		}
		return (local[axis] - lo[axis]) / size
	}

	return core.NewUV(span(m.uAxis), span(m.vAxis))
}

func axes(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
