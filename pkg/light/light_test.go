package light

import (
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

func TestPointLightSampleCount(t *testing.T) {
	l := NewPointLight(math3d.Point(0, 0, 0), math3d.White)
	if l.SampleCount() != 1 {
		t.Errorf("SampleCount = %d, want 1", l.SampleCount())
	}
	if !l.RepresentativePosition().Equal(l.Position) {
		t.Errorf("RepresentativePosition = %v, want %v", l.RepresentativePosition(), l.Position)
	}
}

func TestAreaLightSampleCountAndCentroid(t *testing.T) {
	l, err := NewAreaLight(
		math3d.Point(-0.5, -0.5, -5),
		math3d.Vector(1, 0, 0),
		math3d.Vector(0, 1, 0),
		2, 2,
		math3d.White,
		1,
	)
	if err != nil {
		t.Fatalf("NewAreaLight: %v", err)
	}
	if l.SampleCount() != 4 {
		t.Errorf("SampleCount = %d, want 4", l.SampleCount())
	}

	want := math3d.Point(0, 0, -5)
	got := l.RepresentativePosition()
	if !got.Equal(want) {
		t.Errorf("RepresentativePosition = %v, want %v", got, want)
	}
}

func TestAreaLightInvalidSteps(t *testing.T) {
	_, err := NewAreaLight(math3d.Point(0, 0, 0), math3d.Vector(1, 0, 0), math3d.Vector(0, 1, 0), 0, 2, math3d.White, 1)
	if err != ErrInvalidAreaLightSteps {
		t.Errorf("err = %v, want ErrInvalidAreaLightSteps", err)
	}
}

func TestAreaLightSamplePointCorners(t *testing.T) {
	l, err := NewAreaLight(
		math3d.Point(0, 0, 0),
		math3d.Vector(2, 0, 0),
		math3d.Vector(0, 2, 0),
		2, 2,
		math3d.White,
		1,
	)
	if err != nil {
		t.Fatalf("NewAreaLight: %v", err)
	}

	got := l.SamplePoint(0, 0, 0, 0)
	want := math3d.Point(0, 0, 0)
	if !got.Equal(want) {
		t.Errorf("SamplePoint(0,0) jitter=0 = %v, want %v", got, want)
	}

	got = l.SamplePoint(1, 1, 0, 0)
	want = math3d.Point(1, 1, 0)
	if !got.Equal(want) {
		t.Errorf("SamplePoint(1,1) jitter=0 = %v, want %v", got, want)
	}
}
