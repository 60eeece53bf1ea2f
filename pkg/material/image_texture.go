package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-preview-raytracer/pkg/core"
)

// ErrInvalidPixelData is returned when decoded pixel data does not describe a texture
var ErrInvalidPixelData = errors.New("invalid pixel data")

// PixelData is decoded image data: Pix holds interleaved RGBA floats, row-major,
// four values per pixel.
type PixelData struct {
	Width  int
	Height int
	Pix    []float32
}

// Texture is an immutable grid of colors sampled by UV coordinate
type Texture struct {
	width  int
	height int
	pixels []core.Color // Row-major: pixels[y*width + x]
}

// NewTexture copies decoded pixel data into a new texture
func NewTexture(data PixelData) (*Texture, error) {
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidPixelData, data.Width, data.Height)
	}
	if len(data.Pix) != data.Width*data.Height*4 {
		return nil, fmt.Errorf("%w: expected %d values for %dx%d, got %d",
			ErrInvalidPixelData, data.Width*data.Height*4, data.Width, data.Height, len(data.Pix))
	}

	pixels := make([]core.Color, data.Width*data.Height)
	for i := range pixels {
		p := data.Pix[i*4 : i*4+4]
		pixels[i] = core.NewColor(p[0], p[1], p[2], p[3])
	}

	return &Texture{width: data.Width, height: data.Height, pixels: pixels}, nil
}

// Width returns the texture width in texels
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels
func (t *Texture) Height() int { return t.height }

// At returns the texel at x, y
func (t *Texture) At(x, y int) core.Color {
	return t.pixels[y*t.width+x]
}

// Sample returns the texel at the given UV using nearest-neighbor lookup.
// Coordinates outside [0, 1) wrap around; NaN and infinite coordinates sample the first texel.
func (t *Texture) Sample(u, v float64) core.Color {
	x := min(int(wrap(u)*float64(t.width)), t.width-1)
	y := min(int(wrap(v)*float64(t.height)), t.height-1)
	return t.At(x, y)
}

// wrap maps a coordinate into [0, 1). NaN and infinities map to 0.
func wrap(c float64) float64 {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	c -= math.Floor(c)
	if c >= 1 {
		// Tiny negative inputs round up to 1
		return 0
	}
	return c
}
