package shape

import "github.com/richard-dennehy/raytracer-go/pkg/math3d"

// bvhThreshold is the child count above which a group is subdivided
// (spec.md §4.C "suggested: 8").
const bvhThreshold = 8

// buildBVH recurses into nested groups/CSG branches first, then restructures
// g's own children into a binary hierarchy of synthetic subgroups.
func buildBVH(g *Shape) {
	for _, c := range g.Children {
		switch c.Kind {
		case KindGroup:
			buildBVH(c)
		case KindCSG:
			buildBVHInCSG(c)
		}
	}
	subdivide(g)
}

func buildBVHInCSG(csg *Shape) {
	for _, branch := range [2]*Shape{csg.Left, csg.Right} {
		switch branch.Kind {
		case KindGroup:
			buildBVH(branch)
		case KindCSG:
			buildBVHInCSG(branch)
		}
	}
}

// subdivide splits g.Children along the longest axis of their combined
// extent into two synthetic subgroups, leaving straddling children as
// direct children of g, then recurses on the new subgroups. Stops when the
// count is already at or below the threshold, or when a split makes no
// progress (spec.md §4.C).
func subdivide(g *Shape) {
	if len(g.Children) <= bvhThreshold {
		return
	}

	extent := math3d.EmptyAABB()
	for _, c := range g.Children {
		extent = extent.Combine(c.Bounds)
	}
	axis, mid := longestAxisMid(extent)

	var left, right, straddle []*Shape
	for _, c := range g.Children {
		lo, hi := axisRange(c.Bounds, axis)
		switch {
		case hi <= mid:
			left = append(left, c)
		case lo >= mid:
			right = append(right, c)
		default:
			straddle = append(straddle, c)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return
	}

	leftGroup := newSyntheticGroup(left)
	rightGroup := newSyntheticGroup(right)
	if leftGroup.Bounds.Equal(extent) || rightGroup.Bounds.Equal(extent) {
		return
	}

	children := make([]*Shape, 0, 2+len(straddle))
	children = append(children, leftGroup, rightGroup)
	children = append(children, straddle...)
	g.Children = children

	subdivide(leftGroup)
	subdivide(rightGroup)
}

func newSyntheticGroup(children []*Shape) *Shape {
	g := newShape(KindGroup)
	g.Children = children
	extent := math3d.EmptyAABB()
	for _, c := range children {
		extent = extent.Combine(c.Bounds)
	}
	// Identity transform: g.Bounds (in g's own parent frame) equals the
	// combined extent (in g's own frame) directly.
	g.Bounds = extent
	return g
}

func longestAxisMid(box math3d.AABB) (axis int, mid float64) {
	dx := box.Max.X - box.Min.X
	dy := box.Max.Y - box.Min.Y
	dz := box.Max.Z - box.Min.Z
	center := box.Center()
	switch {
	case dx >= dy && dx >= dz:
		return 0, center.X
	case dy >= dz:
		return 1, center.Y
	default:
		return 2, center.Z
	}
}

func axisRange(box math3d.AABB, axis int) (lo, hi float64) {
	switch axis {
	case 0:
		return box.Min.X, box.Max.X
	case 1:
		return box.Min.Y, box.Max.Y
	default:
		return box.Min.Z, box.Max.Z
	}
}
