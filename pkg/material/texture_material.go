package material

import (
	"github.com/df07/go-preview-raytracer/pkg/core"
)

// TextureMaterial is an image-based material with an optional separate specular map
type TextureMaterial struct {
	props    Properties
	diffuse  *Texture
	specular *Texture
}

// NewTextureMaterial creates a material that samples diffuse and specular color from one texture
func NewTextureMaterial(diffuse *Texture, props Properties) *TextureMaterial {
	return &TextureMaterial{props: props, diffuse: diffuse}
}

// NewTextureMaterialWithSpecular creates a material with separate diffuse and specular textures
func NewTextureMaterialWithSpecular(diffuse, specular *Texture, props Properties) *TextureMaterial {
	return &TextureMaterial{props: props, diffuse: diffuse, specular: specular}
}

// Properties implements Material
func (m *TextureMaterial) Properties() Properties {
	return m.props
}

// DiffuseAt implements Material
func (m *TextureMaterial) DiffuseAt(uv core.UV) core.Color {
	return m.diffuse.Sample(uv.U, uv.V)
}

// SpecularAt implements Material, falling back to the diffuse texture
func (m *TextureMaterial) SpecularAt(uv core.UV) core.Color {
	if m.specular == nil {
		return m.DiffuseAt(uv)
	}
	return m.specular.Sample(uv.U, uv.V)
}
