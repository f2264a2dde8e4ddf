package material

import (
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/pattern"
)

func TestDefaultMaterial(t *testing.T) {
	m := Default()

	if !m.Color.Equal(math3d.White) {
		t.Errorf("Color = %v, want white", m.Color)
	}
	if m.Ambient != 0.1 {
		t.Errorf("Ambient = %v, want 0.1", m.Ambient)
	}
	if m.Diffuse != 0.9 {
		t.Errorf("Diffuse = %v, want 0.9", m.Diffuse)
	}
	if m.Specular != 0.9 {
		t.Errorf("Specular = %v, want 0.9", m.Specular)
	}
	if m.Shininess != 200 {
		t.Errorf("Shininess = %v, want 200", m.Shininess)
	}
	if m.RefractiveIndex != 1 {
		t.Errorf("RefractiveIndex = %v, want 1", m.RefractiveIndex)
	}
	if !m.CastsShadow {
		t.Error("CastsShadow should default to true")
	}
}

func TestColorAtNoPattern(t *testing.T) {
	m := Default()
	m.Color = math3d.NewColor(0.5, 0.25, 0.75)

	got := m.ColorAt(math3d.Identity(), math3d.Point(1, 2, 3))
	if !got.Equal(m.Color) {
		t.Errorf("ColorAt = %v, want %v", got, m.Color)
	}
}

func TestColorAtWithPattern(t *testing.T) {
	m := Default()
	m.Pattern = pattern.NewStripe(math3d.White, math3d.Black)

	inv, err := math3d.ComposeInverse(math3d.Translate(0, 0, 0))
	if err != nil {
		t.Fatalf("ComposeInverse: %v", err)
	}

	tests := []struct {
		name  string
		point math3d.Tuple
		want  math3d.Color
	}{
		{"x=0", math3d.Point(0, 0, 0), math3d.White},
		{"x=0.9", math3d.Point(0.9, 0, 0), math3d.White},
		{"x=1", math3d.Point(1, 0, 0), math3d.Black},
		{"x=-0.1", math3d.Point(-0.1, 0, 0), math3d.Black},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.ColorAt(inv, tc.point)
			if !got.Equal(tc.want) {
				t.Errorf("ColorAt(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}
