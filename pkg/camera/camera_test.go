package camera

import (
	"math"
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

func TestInvalidFieldOfView(t *testing.T) {
	tests := []float64{0, -1, math.Pi, math.Pi + 0.1}
	for _, fov := range tests {
		if _, err := New(100, 100, fov); err != ErrInvalidFieldOfView {
			t.Errorf("New(fov=%v) err = %v, want ErrInvalidFieldOfView", fov, err)
		}
	}
}

func TestRayForPixelCenter(t *testing.T) {
	c, err := New(201, 101, math.Pi/2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := c.RayForPixel(100, 50, 0.5, 0.5)
	if !r.Origin.Equal(math3d.Point(0, 0, 0)) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	want := math3d.Vector(0, 0, -1)
	if !closeVector(r.Direction, want) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestRayForPixelCorner(t *testing.T) {
	c, err := New(201, 101, math.Pi/2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := c.RayForPixel(0, 0, 0.5, 0.5)
	if !r.Origin.Equal(math3d.Point(0, 0, 0)) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	want := math3d.Vector(0.66519, 0.33259, -0.66851)
	if !closeVector(r.Direction, want) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func closeVector(got, want math3d.Tuple) bool {
	const eps = 1e-4
	return math.Abs(got.X-want.X) < eps && math.Abs(got.Y-want.Y) < eps && math.Abs(got.Z-want.Z) < eps
}
