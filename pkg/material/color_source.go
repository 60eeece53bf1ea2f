package material

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// SolidMaterial has the same diffuse and specular color everywhere
type SolidMaterial struct {
	props    Properties
	diffuse  core.Color
	specular core.Color
}

// NewSolidMaterial creates a uniform material whose specular color is white
func NewSolidMaterial(diffuse core.Color, props Properties) *SolidMaterial {
	return &SolidMaterial{props: props, diffuse: diffuse, specular: core.White}
}

// Properties implements Material
func (m *SolidMaterial) Properties() Properties { return m.props }

// DiffuseAt implements Material
func (m *SolidMaterial) DiffuseAt(uv core.UV) core.Color { return m.diffuse }

// SpecularAt implements Material
func (m *SolidMaterial) SpecularAt(uv core.UV) core.Color { return m.specular }
