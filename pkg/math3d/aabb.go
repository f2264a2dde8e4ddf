package math3d

import "math"

// AABB is an axis-aligned bounding box: a min/max point pair. The empty box
// (no geometry bound yet) is represented with min at +inf and max at -inf,
// so that Combine acts as the identity on it.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns the identity element for Combine.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: V3(inf, inf, inf), Max: V3(-inf, -inf, -inf)}
}

// NewAABB builds a box from explicit corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Combine returns the smallest AABB containing both a and b.
func (a AABB) Combine(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Contains reports whether b is fully contained within a.
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Min.Y <= b.Min.Y && a.Min.Z <= b.Min.Z &&
		a.Max.X >= b.Max.X && a.Max.Y >= b.Max.Y && a.Max.Z >= b.Max.Z
}

// Equal compares two AABBs with the spec tolerance.
func (a AABB) Equal(b AABB) bool {
	return FloatEqual(a.Min.X, b.Min.X) && FloatEqual(a.Min.Y, b.Min.Y) && FloatEqual(a.Min.Z, b.Min.Z) &&
		FloatEqual(a.Max.X, b.Max.X) && FloatEqual(a.Max.Y, b.Max.Y) && FloatEqual(a.Max.Z, b.Max.Z)
}

// Center returns the midpoint of the box, used by the BVH's longest-axis
// split to bucket children into lower/upper halves.
func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// corners returns the eight corners of the box in a fixed order.
func (a AABB) corners() [8]Vec3 {
	return [8]Vec3{
		{a.Min.X, a.Min.Y, a.Min.Z}, {a.Max.X, a.Min.Y, a.Min.Z},
		{a.Min.X, a.Max.Y, a.Min.Z}, {a.Max.X, a.Max.Y, a.Min.Z},
		{a.Min.X, a.Min.Y, a.Max.Z}, {a.Max.X, a.Min.Y, a.Max.Z},
		{a.Min.X, a.Max.Y, a.Max.Z}, {a.Max.X, a.Max.Y, a.Max.Z},
	}
}

// Transform returns the AABB of the eight transformed corners of a,
// conservatively re-bounding a rotated/scaled/translated box.
func (a AABB) Transform(m Mat4) AABB {
	result := EmptyAABB()
	for _, c := range a.corners() {
		p := m.MulTuple(Point(c.X, c.Y, c.Z))
		result = result.Combine(AABB{Min: V3(p.X, p.Y, p.Z), Max: V3(p.X, p.Y, p.Z)})
	}
	return result
}

// Intersects reports whether ray hits the box, via the slab method. An
// empty/degenerate ray direction component is handled by treating a miss on
// that axis's bounds as an immediate false, matching the primary-pruning
// contract in spec.md §4.C.
func (a AABB) Intersects(r Ray) bool {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	axes := [3]struct{ origin, dir, min, max float64 }{
		{r.Origin.X, r.Direction.X, a.Min.X, a.Max.X},
		{r.Origin.Y, r.Direction.Y, a.Min.Y, a.Max.Y},
		{r.Origin.Z, r.Direction.Z, a.Min.Z, a.Max.Z},
	}

	for _, ax := range axes {
		if ax.dir == 0 {
			if ax.origin < ax.min || ax.origin > ax.max {
				return false
			}
			continue
		}
		invD := 1 / ax.dir
		t0 := (ax.min - ax.origin) * invD
		t1 := (ax.max - ax.origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
