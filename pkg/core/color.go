package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color is an RGBA color whose components are nominally in [0, 1].
// The range is only enforced by Limited.
type Color struct {
	R, G, B, A float32
}

// Named colors used by scene presets
var (
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Purple   = Color{1, 0, 1, 1}
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Grey     = Color{.6, .6, .6, 1}
	DarkGrey = Color{.23, .23, .18, 1}
	Clear    = Color{1, 1, 1, 0}
	Sky      = Color{102.0 / 255.0, 152.0 / 255.0, 1, 1}
	Zero     = Color{0, 0, 0, 0}
	Silver   = Color{.2, .2, .28, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// Multiply scales every component, alpha included
func (c Color) Multiply(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor, c.A * factor}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Limited returns the color with every component clamped to [0, 1]
func (c Color) Limited() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// ToBGRA32 packs the limited color into a uint32 whose little-endian byte
// order is B, G, R, A.
func (c Color) ToBGRA32() uint32 {
	l := c.Limited()
	return uint32(toByte(l.B)) |
		uint32(toByte(l.G))<<8 |
		uint32(toByte(l.R))<<16 |
		uint32(toByte(l.A))<<24
}

// Bytes returns the limited color as 8-bit R, G, B, A channels
func (c Color) Bytes() (r, g, b, a uint8) {
	l := c.Limited()
	return toByte(l.R), toByte(l.G), toByte(l.B), toByte(l.A)
}

func (c Color) String() string {
	return fmt.Sprintf("Color: [%g, %g, %g, %g]", c.R, c.G, c.B, c.A)
}

// Average returns the component-wise mean of two colors
func Average(first, second Color) Color {
	return first.Add(second).Multiply(.5)
}

// Lerp interpolates from one color to another. t is clamped to [0, 1];
// t = 0 returns from and t = 1 returns to.
func Lerp(from, to Color, t float32) Color {
	t = clamp01(t)
	return from.Multiply(1 - t).Add(to.Multiply(t))
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

func toByte(v float32) uint8 {
	return uint8(math32.Round(255 * v))
}
