package geometry

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-preview-raytracer/pkg/core"
)

const (
	nearClip = 0.1
	farClip  = 100.0
)

// CameraConfig contains the parameters of a pinhole camera
type CameraConfig struct {
	Position        core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Up direction
	VFov            float64   // Vertical field of view in degrees
	ReflectionDepth int       // Maximum number of recursive bounces per primary ray
}

// DefaultCameraConfig returns a camera at (0, 1, 5) looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:        core.NewVec3(0, 1, 5),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.UpVector,
		VFov:            60,
		ReflectionDepth: 3,
	}
}

// Camera generates primary rays and holds the reflection depth bound.
// The reflection depth may be changed while a render is running; renders
// read it once when they start.
type Camera struct {
	config          CameraConfig
	reflectionDepth atomic.Int32
}

// NewCamera creates a camera from config
func NewCamera(config CameraConfig) *Camera {
	if config.Up.LengthSquared() == 0 {
		config.Up = core.UpVector
	}
	c := &Camera{config: config}
	c.SetReflectionDepth(config.ReflectionDepth)
	return c
}

// Config returns the camera configuration with the current reflection depth
func (c *Camera) Config() CameraConfig {
	config := c.config
	config.ReflectionDepth = c.ReflectionDepth()
	return config
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 {
	return c.config.Position
}

// ReflectionDepth returns the current reflection depth bound
func (c *Camera) ReflectionDepth() int {
	return int(c.reflectionDepth.Load())
}

// SetReflectionDepth sets the reflection depth bound. Negative values are stored as 0.
func (c *Camera) SetReflectionDepth(depth int) {
	c.reflectionDepth.Store(int32(max(depth, 0)))
}

// IncreaseReflectionDepth raises the bound by one and returns the new value
func (c *Camera) IncreaseReflectionDepth() int {
	return int(c.reflectionDepth.Add(1))
}

// DecreaseReflectionDepth lowers the bound by one, stopping at 0, and returns the new value
func (c *Camera) DecreaseReflectionDepth() int {
	for {
		current := c.reflectionDepth.Load()
		if current == 0 {
			return 0
		}
		if c.reflectionDepth.CompareAndSwap(current, current-1) {
			return int(current - 1)
		}
	}
}

// Projection maps pixels of a width × height image to primary rays
type Projection struct {
	origin  core.Vec3
	inverse mgl32.Mat4
	width   float64
	height  float64
}

// Projection builds the pixel-to-ray mapping for the given image size
func (c *Camera) Projection(width, height int) Projection {
	aspect := float32(width) / float32(max(height, 1))

	view := mgl32.LookAtV(toGL(c.config.Position), toGL(c.config.LookAt), toGL(c.config.Up))
	proj := mgl32.Perspective(mgl32.DegToRad(float32(c.config.VFov)), aspect, nearClip, farClip)

	return Projection{
		origin:  c.config.Position,
		inverse: proj.Mul4(view).Inv(),
		width:   float64(width),
		height:  float64(height),
	}
}

// RayForPixel returns the primary ray through the center of pixel x, y.
// Pixel (0, 0) is the top-left corner of the image.
func (p Projection) RayForPixel(x, y int) core.Ray {
	ndcX := 2*(float64(x)+0.5)/p.width - 1
	ndcY := 1 - 2*(float64(y)+0.5)/p.height

	near := p.unproject(ndcX, ndcY, -1)
	far := p.unproject(ndcX, ndcY, 1)

	return core.NewRay(p.origin, far.Subtract(near))
}

func (p Projection) unproject(x, y, z float64) core.Vec3 {
	v := p.inverse.Mul4x1(mgl32.Vec4{float32(x), float32(y), float32(z), 1})
	w := float64(v.W())
	return core.NewVec3(float64(v.X())/w, float64(v.Y())/w, float64(v.Z())/w)
}

func toGL(v core.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
