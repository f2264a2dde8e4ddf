package shading

import (
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/light"
	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/rng"
	"github.com/richard-dennehy/raytracer-go/pkg/scene"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

// Lighting computes the Phong contribution of a single light at point,
// given the fraction of the light visible from that point (visibility,
// from IntensityAt). Ambient and diffuse scale the material's own color;
// only specular is tinted by the light's color (spec.md §4.F).
func Lighting(m material.Material, shapeInverse math3d.Mat4, l light.Light, point, eye, normal math3d.Tuple, visibility float64) math3d.Color {
	baseColor := m.ColorAt(shapeInverse, point)
	ambient := baseColor.Scale(m.Ambient)
	if visibility <= 0 {
		return ambient
	}

	lightv := l.RepresentativePosition().Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normal)

	diffuse := math3d.Black
	specular := math3d.Black
	if lightDotNormal > 0 {
		diffuse = baseColor.Scale(m.Diffuse * lightDotNormal * visibility)

		reflectv := math3d.Reflect(lightv.Negate(), normal)
		reflectDotEye := reflectv.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = l.Intensity.Scale(m.Specular * factor * visibility)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}

// IsShadowed reports whether target is occluded from point by any
// shadow-casting shape, testing the segment between them.
func IsShadowed(w scene.World, point, target math3d.Tuple) bool {
	v := target.Sub(point)
	distance := v.Magnitude()
	direction := v.Normalize()

	r := math3d.NewRay(point, direction)
	xs := shape.Intersect(w.Root, r)
	for _, x := range xs {
		if x.T > 0 && x.T < distance && x.Object.CastsShadow() {
			return true
		}
	}
	return false
}

// IntensityAt returns the fraction of l visible from point: 1 or 0 for a
// point light, or the averaged visibility across all usteps*vsteps
// jittered samples for an area light (spec.md §4.F, §3 "Light").
func IntensityAt(w scene.World, l light.Light, point math3d.Tuple, source *rng.Source) float64 {
	if l.Kind == light.KindPoint {
		if IsShadowed(w, point, l.Position) {
			return 0
		}
		return 1
	}

	visible := 0
	for v := 0; v < l.VSteps; v++ {
		for u := 0; u < l.USteps; u++ {
			sample := l.SamplePoint(u, v, source.Float64(), source.Float64())
			if !IsShadowed(w, point, sample) {
				visible++
			}
		}
	}
	return float64(visible) / float64(l.SampleCount())
}
