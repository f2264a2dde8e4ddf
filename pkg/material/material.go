// Package material defines the Phong material model shared by every
// primitive shape (spec.md §3 "Material").
package material

import (
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/pattern"
)

// Material holds the Phong coefficients and optional pattern for a shape.
type Material struct {
	Color           math3d.Color
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	CastsShadow     bool
}

// Default returns the spec.md §3 default material.
func Default() Material {
	return Material{
		Color:           math3d.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
		CastsShadow:     true,
	}
}

// ColorAt resolves the base color at a world point: if a pattern is set,
// the point is mapped into the owning shape's object space (via
// shapeInverse) and evaluated there; otherwise the flat Color is used.
func (m Material) ColorAt(shapeInverse math3d.Mat4, worldPoint math3d.Tuple) math3d.Color {
	if m.Pattern == nil {
		return m.Color
	}
	objectPoint := shapeInverse.MulTuple(worldPoint)
	return m.Pattern.ColorAt(objectPoint)
}
