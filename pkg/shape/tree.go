package shape

import (
	"sort"

	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Intersect dispatches a ray (expressed in s's parent frame) against s,
// recursing through groups and CSG combinations (spec.md §4.D).
func Intersect(s *Shape, r math3d.Ray) []Intersection {
	switch s.Kind {
	case KindGroup:
		if !s.Bounds.Intersects(r) {
			return nil
		}
		localRay := r.Transform(s.inverse)
		var xs []Intersection
		for _, c := range s.Children {
			xs = append(xs, Intersect(c, localRay)...)
		}
		sortIntersections(xs)
		return xs
	case KindCSG:
		if !s.Bounds.Intersects(r) {
			return nil
		}
		localRay := r.Transform(s.inverse)
		xs := append(Intersect(s.Left, localRay), Intersect(s.Right, localRay)...)
		sortIntersections(xs)
		return filterCSG(s, xs)
	default:
		localRay := r.Transform(s.inverse)
		return localIntersect(s, localRay)
	}
}

func sortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		if xs[i].T != xs[j].T {
			return xs[i].T < xs[j].T
		}
		return xs[i].Object.id < xs[j].Object.id
	})
}

// Hit returns the intersection with the smallest non-negative t.
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T >= 0 && (!found || x.T < best.T) {
			best, found = x, true
		}
	}
	return best, found
}

// NormalAt resolves the world-space normal at worldPoint for a hit on leaf
// primitive s, using the cached worldInverse computed by Finalize.
func NormalAt(s *Shape, worldPoint math3d.Tuple, hit Intersection) math3d.Tuple {
	objectPoint := s.worldInverse.MulTuple(worldPoint)
	objectNormal := localNormalAt(s, objectPoint, hit)
	return objectNormal.Transform(s.worldInverse).Vector()
}

// Finalize prepares a freshly built scene graph for rendering: it resolves
// material/shadow inheritance, computes cached bounds bottom-up, rewrites
// groups into a BVH, then caches world-space inverse transforms top-down.
// Must run exactly once before any Intersect/NormalAt call.
func Finalize(root *Shape) {
	propagateMaterial(root, nil, nil)
	computeBounds(root)
	if root.Kind == KindGroup {
		buildBVH(root)
	} else if root.Kind == KindCSG {
		buildBVHInCSG(root)
	}
	computeWorldInverse(root, math3d.Identity())
}

func propagateMaterial(s *Shape, inheritedMaterial *material.Material, inheritedShadow *bool) {
	switch {
	case s.ownMaterial != nil:
		s.effectiveMaterial = *s.ownMaterial
	case inheritedMaterial != nil:
		s.effectiveMaterial = *inheritedMaterial
	default:
		s.effectiveMaterial = material.Default()
	}

	switch {
	case s.ownShadow != nil:
		s.effectiveShadow = *s.ownShadow
	case inheritedShadow != nil:
		s.effectiveShadow = *inheritedShadow
	default:
		s.effectiveShadow = true
	}

	switch s.Kind {
	case KindGroup:
		passMaterial := inheritedMaterial
		if s.ownMaterial != nil {
			passMaterial = s.ownMaterial
		}
		passShadow := inheritedShadow
		if s.ownShadow != nil {
			passShadow = s.ownShadow
		}
		for _, c := range s.Children {
			propagateMaterial(c, passMaterial, passShadow)
		}
	case KindCSG:
		// CSG never propagates an override into either branch, in either
		// direction (spec.md §4.D "Material inheritance").
		propagateMaterial(s.Left, nil, nil)
		propagateMaterial(s.Right, nil, nil)
	}
}

func computeBounds(s *Shape) {
	switch s.Kind {
	case KindGroup:
		extent := math3d.EmptyAABB()
		for _, c := range s.Children {
			computeBounds(c)
			extent = extent.Combine(c.Bounds)
		}
		s.Bounds = extent.Transform(forward(s.inverse))
	case KindCSG:
		computeBounds(s.Left)
		computeBounds(s.Right)
		extent := s.Left.Bounds.Combine(s.Right.Bounds)
		s.Bounds = extent.Transform(forward(s.inverse))
	default:
		s.Bounds = localBounds(s).Transform(forward(s.inverse))
	}
}

func computeWorldInverse(s *Shape, parentWorldInverse math3d.Mat4) {
	s.worldInverse = s.inverse.Mul(parentWorldInverse)
	switch s.Kind {
	case KindGroup:
		for _, c := range s.Children {
			computeWorldInverse(c, s.worldInverse)
		}
	case KindCSG:
		computeWorldInverse(s.Left, s.worldInverse)
		computeWorldInverse(s.Right, s.worldInverse)
	}
}
