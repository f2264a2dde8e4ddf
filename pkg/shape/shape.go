// Package shape implements the scene's tagged-variant shape tree: local
// primitive geometry, group/CSG composites, the BVH restructuring pass, and
// world-space intersection/normal dispatch (spec.md §4.B-§4.D).
package shape

import (
	"errors"
	"sync/atomic"

	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Kind tags which branch of the Shape variant a node occupies.
type Kind int

// Supported shape kinds (spec.md §3 "Shape").
const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindGroup
	KindCSG
)

// CSGOp selects the boolean combination a Csg node performs.
type CSGOp int

// Supported CSG operations.
const (
	Union CSGOp = iota
	IntersectionOp
	Difference
)

// ErrInvalidCapBounds is returned when a cylinder/cone is constructed with
// min > max. min == max is allowed even when closed: it degenerates to a
// zero-thickness capped disc rather than being rejected (spec.md §8
// boundary behavior).
var ErrInvalidCapBounds = errors.New("shape: cylinder/cone requires min <= max")

var nextID uint64

func allocID() uint64 { return atomic.AddUint64(&nextID, 1) }

// Shape is every node of the scene graph: primitives carry geometry fields,
// composites carry Children or Left/Right. Shared fields (transform
// inverse, material override, shadow override, cached bounds) live on the
// enclosing struct per spec.md §9 "Polymorphism over shapes".
type Shape struct {
	Kind Kind
	id   uint64

	inverse      math3d.Mat4
	worldInverse math3d.Mat4

	// Bounds caches this node's AABB expressed in its PARENT's coordinate
	// frame — exactly what Intersect needs to prune against the ray it
	// receives (which is always already in that same parent frame).
	Bounds math3d.AABB

	ownMaterial *material.Material
	ownShadow   *bool

	effectiveMaterial material.Material
	effectiveShadow   bool

	// Cylinder / Cone
	Min, Max float64
	Closed   bool

	// Triangle
	P1, P2, P3 math3d.Tuple
	N1, N2, N3 *math3d.Normal
	faceNormal math3d.Normal
	e1, e2     math3d.Tuple

	// Group
	Children []*Shape

	// CSG
	Op          CSGOp
	Left, Right *Shape
}

func newShape(k Kind) *Shape {
	return &Shape{Kind: k, id: allocID(), inverse: math3d.Identity(), effectiveMaterial: material.Default(), effectiveShadow: true}
}

// NewSphere builds a unit sphere at the origin.
func NewSphere() *Shape { return newShape(KindSphere) }

// NewPlane builds the xz-plane.
func NewPlane() *Shape { return newShape(KindPlane) }

// NewCube builds an axis-aligned unit cube.
func NewCube() *Shape { return newShape(KindCube) }

// NewCylinder builds a cylinder of radius 1 bounded in y by [min, max],
// optionally capped. Returns ErrInvalidCapBounds if min>max. min==max with
// closed=true is allowed and yields a zero-thickness capped disc.
func NewCylinder(min, max float64, closed bool) (*Shape, error) {
	if min > max {
		return nil, ErrInvalidCapBounds
	}
	s := newShape(KindCylinder)
	s.Min, s.Max, s.Closed = min, max, closed
	return s, nil
}

// NewCone builds a double napped cone bounded in y by [min, max]. Returns
// ErrInvalidCapBounds if min>max. min==max with closed=true is allowed and
// yields a zero-thickness capped disc.
func NewCone(min, max float64, closed bool) (*Shape, error) {
	if min > max {
		return nil, ErrInvalidCapBounds
	}
	s := newShape(KindCone)
	s.Min, s.Max, s.Closed = min, max, closed
	return s, nil
}

// NewTriangle builds a flat-shaded triangle; its normal is the precomputed
// face normal for every hit.
func NewTriangle(p1, p2, p3 math3d.Tuple) *Shape {
	s := newShape(KindTriangle)
	s.P1, s.P2, s.P3 = p1, p2, p3
	s.e1 = p2.Sub(p1)
	s.e2 = p3.Sub(p1)
	s.faceNormal = math3d.NormalFromVector(s.e2.Cross(s.e1))
	return s
}

// NewSmoothTriangle builds a triangle that interpolates per-vertex normals
// by the hit's barycentric (u, v).
func NewSmoothTriangle(p1, p2, p3 math3d.Tuple, n1, n2, n3 math3d.Normal) *Shape {
	s := NewTriangle(p1, p2, p3)
	s.N1, s.N2, s.N3 = &n1, &n2, &n3
	return s
}

// NewGroup builds a composite node owning children, restructured into a
// BVH by Finalize.
func NewGroup(children ...*Shape) *Shape {
	s := newShape(KindGroup)
	s.Children = children
	return s
}

// NewCSG builds a boolean combination of two subtrees.
func NewCSG(op CSGOp, left, right *Shape) *Shape {
	s := newShape(KindCSG)
	s.Op, s.Left, s.Right = op, left, right
	return s
}

// SetTransform composes ops in declaration order and stores the inverse.
// Returns a construction error (spec.md §7) if the composed transform is
// singular.
func (s *Shape) SetTransform(ops ...math3d.Mat4) error {
	inv, err := math3d.ComposeInverse(ops...)
	if err != nil {
		return err
	}
	s.inverse = inv
	return nil
}

// SetMaterial sets an explicit material override for this node.
func (s *Shape) SetMaterial(m material.Material) {
	s.ownMaterial = &m
}

// SetShadowCasts sets an explicit shadow-casting override for this node.
func (s *Shape) SetShadowCasts(castsShadow bool) {
	s.ownShadow = &castsShadow
}

// Material returns the resolved material, valid only after Finalize.
func (s *Shape) Material() material.Material { return s.effectiveMaterial }

// CastsShadow returns the resolved shadow flag, valid only after Finalize.
func (s *Shape) CastsShadow() bool { return s.effectiveShadow }

// WorldInverse returns the cumulative world-to-object-space inverse, valid
// only after Finalize.
func (s *Shape) WorldInverse() math3d.Mat4 { return s.worldInverse }

func forward(inv math3d.Mat4) math3d.Mat4 {
	f, err := inv.Inverse()
	if err != nil {
		// inv is itself the inverse of a non-singular construction-time
		// transform, so it is never singular; this branch is unreachable
		// on a correctly constructed tree.
		return math3d.Identity()
	}
	return f
}
