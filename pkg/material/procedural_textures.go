package material

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return &Texture{width: width, height: height, pixels: pixels}
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := float32(y) / float32(max(height-1, 1))
		color := core.Lerp(color1, color2, t)
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return &Texture{width: width, height: height, pixels: pixels}
}

// CheckerMaterial alternates two colors over UV space without a backing texture
type CheckerMaterial struct {
	props  Properties
	cells  int
	color1 core.Color
	color2 core.Color
}

// NewCheckerMaterial creates a checkerboard with cells squares along each UV axis
func NewCheckerMaterial(color1, color2 core.Color, cells int, props Properties) *CheckerMaterial {
	return &CheckerMaterial{props: props, cells: max(cells, 1), color1: color1, color2: color2}
}

// Properties implements Material
func (m *CheckerMaterial) Properties() Properties { return m.props }

// DiffuseAt implements Material
func (m *CheckerMaterial) DiffuseAt(uv core.UV) core.Color {
	x := int(wrap(uv.U) * float64(m.cells))
	y := int(wrap(uv.V) * float64(m.cells))
	if (x+y)%2 == 0 {
		return m.color1
	}
	return m.color2
}

// SpecularAt implements Material
func (m *CheckerMaterial) SpecularAt(uv core.UV) core.Color {
	return core.White
}
