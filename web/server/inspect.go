package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/material"
	"github.com/df07/go-preview-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes a material and its shading weights
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	props := mat.Properties()
	properties := map[string]interface{}{
		"reflectivity": props.Reflectivity,
		"refractivity": props.Refractivity,
		"opacity":      props.Opacity,
		"glossiness":   props.Glossiness,
	}

	switch m := mat.(type) {
	case *material.SolidMaterial:
		properties["diffuse"] = hexColor(m.DiffuseAt(core.UV{}))
		return "solid", properties
	case *material.TextureMaterial:
		return "texture", properties
	case *material.CheckerMaterial:
		return "checker", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes the shape of a drawable
func extractGeometryInfo(obj geometry.Drawable) (string, map[string]interface{}) {
	p := obj.Position()
	properties := map[string]interface{}{
		"position": [3]float64{p.X, p.Y, p.Z},
	}

	switch o := obj.(type) {
	case *geometry.Sphere:
		properties["radius"] = o.Radius
		return "sphere", properties
	case *geometry.Disc:
		properties["radius"] = o.Radius
		properties["normal"] = vecArray(o.Normal())
		return "disc", properties
	case *geometry.Quad:
		properties["width"] = o.Width
		properties["height"] = o.Height
		properties["normal"] = vecArray(o.Normal())
		return "quad", properties
	case *geometry.Plane:
		properties["normal"] = vecArray(o.Normal())
		return "plane", properties
	case *geometry.Mesh:
		properties["polygons"] = o.Polygons()
		return "mesh", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray through pixel x, y of the current frame
func (s *Server) inspectPixel(x, y int) InspectResponse {
	current := s.controller.Scene()
	frame := s.controller.Buffer().View()

	ray := current.Camera.Projection(frame.Width, frame.Height).RayForPixel(x, y)
	hit, isHit := renderer.NewRaytracer(current).Nearest(ray)
	if !isHit {
		return InspectResponse{Hit: false}
	}

	materialType, materialProps := extractMaterialInfo(hit.Object.Material())
	geometryType, geometryProps := extractGeometryInfo(hit.Object)

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.Distance,
		Color:        hexColor(hit.Color),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

func (s *Server) handleInspect(c echo.Context) error {
	frame := s.controller.Buffer().View()

	x, err := parseIntParam(c, "x", 0, frame.Width-1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	y, err := parseIntParam(c, "y", 0, frame.Height-1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, s.inspectPixel(x, y))
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
