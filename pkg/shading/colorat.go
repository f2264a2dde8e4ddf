package shading

import (
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/rng"
	"github.com/richard-dennehy/raytracer-go/pkg/scene"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

// DefaultDepth is the default ray-recursion budget (spec.md §4.G).
const DefaultDepth = 5

// ColorAt traces ray through world, returning the shaded color of the
// first hit with t>0, or black if nothing is hit. remaining bounds
// reflection/refraction recursion.
func ColorAt(w scene.World, r math3d.Ray, remaining int, source *rng.Source) math3d.Color {
	xs := shape.Intersect(w.Root, r)
	hit, ok := shape.Hit(xs)
	if !ok {
		return math3d.Black
	}
	comps := PrepareComputations(hit, r, xs)
	return ShadeHit(w, comps, remaining, source)
}

// ShadeHit combines the Phong surface contribution of every light with
// recursive reflection and refraction, weighted by Schlick reflectance when
// a surface is both reflective and transparent (spec.md §4.G).
func ShadeHit(w scene.World, comps Computations, remaining int, source *rng.Source) math3d.Color {
	shapeInverse := comps.Object.WorldInverse()
	m := comps.Object.Material()

	surface := math3d.Black
	for _, l := range w.Lights {
		visibility := IntensityAt(w, l, comps.OverPoint, source)
		surface = surface.Add(Lighting(m, shapeInverse, l, comps.OverPoint, comps.Eye, comps.Normal, visibility))
	}

	reflected := ReflectedColor(w, comps, remaining, source)
	refracted := RefractedColor(w, comps, remaining, source)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflected ray, or returns black if the depth
// budget is exhausted or the surface is non-reflective.
func ReflectedColor(w scene.World, comps Computations, remaining int, source *rng.Source) math3d.Color {
	m := comps.Object.Material()
	if remaining <= 0 || m.Reflective == 0 {
		return math3d.Black
	}
	reflectRay := math3d.NewRay(comps.OverPoint, comps.ReflectV)
	return ColorAt(w, reflectRay, remaining-1, source).Scale(m.Reflective)
}

// RefractedColor traces the refracted ray, or returns black on total
// internal reflection, a non-transparent surface, or exhausted depth.
func RefractedColor(w scene.World, comps Computations, remaining int, source *rng.Source) math3d.Color {
	m := comps.Object.Material()
	if remaining <= 0 || m.Transparency == 0 {
		return math3d.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return math3d.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normal.Scale(nRatio*cosI - cosT).Sub(comps.Eye.Scale(nRatio))
	refractRay := math3d.NewRay(comps.UnderPoint, direction)
	return ColorAt(w, refractRay, remaining-1, source).Scale(m.Transparency)
}

// Schlick approximates Fresnel reflectance at the hit, used to blend
// reflection and refraction on surfaces that are both reflective and
// transparent.
func Schlick(comps Computations) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := math.Pow((comps.N1-comps.N2)/(comps.N1+comps.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
