package scene

import (
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/light"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

func TestNewFinalizesShapeTree(t *testing.T) {
	s := shape.NewSphere()
	root := shape.NewGroup(s)
	l := light.NewPointLight(math3d.Point(-10, 10, -10), math3d.White)

	w := New(root, l)

	if len(w.Lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(w.Lights))
	}

	r := math3d.NewRay(math3d.Point(0, 0, -5), math3d.Vector(0, 0, 1))
	xs := shape.Intersect(w.Root, r)
	if len(xs) != 2 {
		t.Errorf("got %d intersections against finalized root, want 2", len(xs))
	}
}
