package shape

import (
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

func TestSubdivideGroupsChildrenWhenAboveThreshold(t *testing.T) {
	children := make([]*Shape, 0, bvhThreshold+2)
	for i := 0; i < bvhThreshold+2; i++ {
		s := NewSphere()
		if err := s.SetTransform(math3d.Translate(float64(i)*3, 0, 0)); err != nil {
			t.Fatalf("SetTransform: %v", err)
		}
		children = append(children, s)
	}
	g := NewGroup(children...)
	Finalize(g)

	if len(g.Children) == len(children) {
		t.Error("expected subdivide to restructure children into subgroups")
	}
}

func TestGroupBoundsContainChildren(t *testing.T) {
	a := NewSphere()
	_ = a.SetTransform(math3d.Translate(-5, 0, 0))
	b := NewSphere()
	_ = b.SetTransform(math3d.Translate(5, 0, 0))

	g := NewGroup(a, b)
	Finalize(g)

	combined := a.Bounds.Combine(b.Bounds)
	if !g.Bounds.Contains(combined) {
		t.Errorf("group bounds %v do not contain children's combined bounds %v", g.Bounds, combined)
	}
}

func TestSubdivideBelowThresholdLeavesChildrenAlone(t *testing.T) {
	a, b := NewSphere(), NewCube()
	g := NewGroup(a, b)
	Finalize(g)

	if len(g.Children) != 2 {
		t.Errorf("got %d children, want 2 unchanged", len(g.Children))
	}
}
