package shading

import (
	"math"
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/light"
	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/rng"
	"github.com/richard-dennehy/raytracer-go/pkg/scene"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

func TestLightingEyeBetweenLightAndSurface(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, 0, -1)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 0, -10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 1)
	want := math3d.NewColor(1.9, 1.9, 1.9)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingEyeOffset45Degrees(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, math.Sqrt2/2, -math.Sqrt2/2)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 0, -10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 1)
	want := math3d.NewColor(1.0, 1.0, 1.0)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingLightOffset45Degrees(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, 0, -1)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 10, -10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 1)
	want := math3d.NewColor(0.7364, 0.7364, 0.7364)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingEyeInPathOfReflection(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, -math.Sqrt2/2, -math.Sqrt2/2)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 10, -10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 1)
	want := math3d.NewColor(1.6364, 1.6364, 1.6364)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingLightBehindSurface(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, 0, -1)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 0, 10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 1)
	want := math3d.NewColor(0.1, 0.1, 0.1)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting = %v, want %v", got, want)
	}
}

func TestLightingZeroVisibilityIsAmbientOnly(t *testing.T) {
	m := material.Default()
	point := math3d.Point(0, 0, 0)
	eye := math3d.Vector(0, 0, -1)
	normal := math3d.Vector(0, 0, -1)
	l := light.NewPointLight(math3d.Point(0, 0, -10), math3d.White)

	got := Lighting(m, math3d.Identity(), l, point, eye, normal, 0)
	want := m.Color.Scale(m.Ambient)
	if !closeColor(got, want, 1e-4) {
		t.Errorf("Lighting at visibility=0 = %v, want ambient-only %v", got, want)
	}
}

func TestIsShadowedNoOcclusion(t *testing.T) {
	w := defaultWorld()
	p := math3d.Point(0, 10, 0)
	if IsShadowed(w, p, w.Lights[0].Position) {
		t.Error("expected no shadow between point and light")
	}
}

func TestIsShadowedObjectBetweenPointAndLight(t *testing.T) {
	w := defaultWorld()
	p := math3d.Point(10, -10, 10)
	if !IsShadowed(w, p, w.Lights[0].Position) {
		t.Error("expected a shadow between point and light")
	}
}

func TestIsShadowedObjectBehindLight(t *testing.T) {
	w := defaultWorld()
	l := light.NewPointLight(math3d.Point(0, 0, -10), math3d.White)
	w.Lights[0] = l
	p := math3d.Point(-20, 20, -20)
	if IsShadowed(w, p, l.Position) {
		t.Error("expected no shadow when occluder is behind the light")
	}
}

func TestIsShadowedObjectBehindPoint(t *testing.T) {
	w := defaultWorld()
	l := light.NewPointLight(math3d.Point(0, 0, -10), math3d.White)
	w.Lights[0] = l
	p := math3d.Point(-2, 2, -2)
	if IsShadowed(w, p, l.Position) {
		t.Error("expected no shadow when occluder is behind the point")
	}
}

func TestIntensityAtPointLightIsBinary(t *testing.T) {
	w := defaultWorld()
	source := rng.New(1)

	unoccluded := IntensityAt(w, w.Lights[0], math3d.Point(0, 10, 0), source)
	if unoccluded != 1 {
		t.Errorf("unoccluded IntensityAt = %v, want 1", unoccluded)
	}

	occluded := IntensityAt(w, w.Lights[0], math3d.Point(10, -10, 10), source)
	if occluded != 0 {
		t.Errorf("occluded IntensityAt = %v, want 0", occluded)
	}
}

func TestIntensityAtAreaLightFullyUnoccluded(t *testing.T) {
	plane := shape.NewPlane()
	_ = plane.SetTransform(math3d.Translate(0, -10, 0))
	root := shape.NewGroup(plane)

	al, err := light.NewAreaLight(math3d.Point(-0.5, -0.5, -5), math3d.Vector(1, 0, 0), math3d.Vector(0, 1, 0), 2, 2, math3d.White, 1)
	if err != nil {
		t.Fatalf("NewAreaLight: %v", err)
	}
	w := scene.New(root, al)
	source := rng.New(1)

	got := IntensityAt(w, al, math3d.Point(0, 0, 2), source)
	if got != 1 {
		t.Errorf("IntensityAt = %v, want 1 (fully visible)", got)
	}
}

func TestIntensityAtAreaLightFullyOccluded(t *testing.T) {
	occluder := shape.NewPlane()
	_ = occluder.SetTransform(math3d.RotateX(math.Pi / 2))
	root := shape.NewGroup(occluder)

	al, err := light.NewAreaLight(math3d.Point(-0.5, -0.5, -5), math3d.Vector(1, 0, 0), math3d.Vector(0, 1, 0), 2, 2, math3d.White, 1)
	if err != nil {
		t.Fatalf("NewAreaLight: %v", err)
	}
	w := scene.New(root, al)
	source := rng.New(1)

	got := IntensityAt(w, al, math3d.Point(0, 0, 2), source)
	if got != 0 {
		t.Errorf("IntensityAt = %v, want 0 (fully blocked by intervening plane)", got)
	}
}
