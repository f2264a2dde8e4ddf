package shape

import (
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

func TestMaterialInheritanceFromGroup(t *testing.T) {
	child := NewSphere()
	groupMaterial := material.Default()
	groupMaterial.Color = math3d.NewColor(1, 0, 0)

	g := NewGroup(child)
	g.SetMaterial(groupMaterial)
	Finalize(g)

	if !child.Material().Color.Equal(groupMaterial.Color) {
		t.Errorf("child inherited color = %v, want %v", child.Material().Color, groupMaterial.Color)
	}
}

func TestChildMaterialOverridesGroup(t *testing.T) {
	child := NewSphere()
	childMaterial := material.Default()
	childMaterial.Color = math3d.NewColor(0, 1, 0)
	child.SetMaterial(childMaterial)

	groupMaterial := material.Default()
	groupMaterial.Color = math3d.NewColor(1, 0, 0)
	g := NewGroup(child)
	g.SetMaterial(groupMaterial)
	Finalize(g)

	if !child.Material().Color.Equal(childMaterial.Color) {
		t.Errorf("child material = %v, want own override %v", child.Material().Color, childMaterial.Color)
	}
}

func TestCSGBlocksMaterialInheritance(t *testing.T) {
	left := NewSphere()
	right := NewCube()
	csg := NewCSG(Union, left, right)

	outerMaterial := material.Default()
	outerMaterial.Color = math3d.NewColor(1, 0, 0)
	group := NewGroup(csg)
	group.SetMaterial(outerMaterial)
	Finalize(group)

	defaultColor := material.Default().Color
	if !left.Material().Color.Equal(defaultColor) {
		t.Errorf("CSG left branch material = %v, want default (no inheritance across CSG boundary)", left.Material().Color)
	}
}

func TestIntersectionsSortedNonDecreasing(t *testing.T) {
	a := NewSphere()
	b := NewSphere()
	_ = b.SetTransform(math3d.Translate(0, 0, 5))
	g := NewGroup(a, b)
	Finalize(g)

	r := math3d.NewRay(math3d.Point(0, 0, -10), math3d.Vector(0, 0, 1))
	xs := Intersect(g, r)
	for i := 1; i < len(xs); i++ {
		if xs[i].T < xs[i-1].T {
			t.Errorf("intersections not sorted: %v", xs)
		}
	}
}

func TestHitReturnsSmallestNonNegativeT(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{
		{T: -1, Object: s},
		{T: 2, Object: s},
		{T: 1, Object: s},
	}
	hit, ok := Hit(xs)
	if !ok || hit.T != 1 {
		t.Errorf("Hit = %v, ok=%v, want t=1", hit, ok)
	}
}

func TestHitNoNonNegativeIntersections(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{{T: -2, Object: s}, {T: -1, Object: s}}
	_, ok := Hit(xs)
	if ok {
		t.Error("expected no hit when all ts are negative")
	}
}
