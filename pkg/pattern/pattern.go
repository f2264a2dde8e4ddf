// Package pattern implements object-space color patterns and UV-mapped
// texture projection (spec.md §4.E).
package pattern

import (
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Pattern evaluates a color at a point already expressed in the owning
// shape's object space; every implementation applies its own inverse
// transform first to reach pattern space.
type Pattern interface {
	ColorAt(objectPoint math3d.Tuple) math3d.Color
}

// base holds the pattern-space transform shared by every pattern kind.
type base struct {
	inverse math3d.Mat4
}

func newBase() base { return base{inverse: math3d.Identity()} }

// SetTransform composes ops in declaration order and stores the inverse,
// returning a construction error (spec.md §7) if the result is singular.
func (b *base) SetTransform(ops ...math3d.Mat4) error {
	inv, err := math3d.ComposeInverse(ops...)
	if err != nil {
		return err
	}
	b.inverse = inv
	return nil
}

func (b base) toPatternSpace(p math3d.Tuple) math3d.Tuple {
	return b.inverse.MulTuple(p)
}

// Stripe alternates A/B by whole units of x.
type Stripe struct {
	base
	A, B math3d.Color
}

// NewStripe builds a stripe pattern between colors a and b.
func NewStripe(a, b math3d.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// ColorAt implements Pattern.
func (s *Stripe) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	p := s.toPatternSpace(objectPoint)
	if evenFloor(p.X) {
		return s.A
	}
	return s.B
}

// Checkers3D alternates A/B by the parity of floor(x)+floor(y)+floor(z).
type Checkers3D struct {
	base
	A, B math3d.Color
}

// NewCheckers3D builds a 3D checkerboard pattern.
func NewCheckers3D(a, b math3d.Color) *Checkers3D {
	return &Checkers3D{base: newBase(), A: a, B: b}
}

// ColorAt implements Pattern.
func (c *Checkers3D) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	p := c.toPatternSpace(objectPoint)
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if evenFloor(sum) {
		return c.A
	}
	return c.B
}

// Gradient linearly interpolates A to B across one unit of x.
type Gradient struct {
	base
	A, B math3d.Color
}

// NewGradient builds a gradient pattern from a to b.
func NewGradient(a, b math3d.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

// ColorAt implements Pattern.
func (g *Gradient) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	p := g.toPatternSpace(objectPoint)
	frac := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Sub(g.A).Scale(frac))
}

// Ring alternates A/B by the parity of floor(sqrt(x^2+z^2)).
type Ring struct {
	base
	A, B math3d.Color
}

// NewRing builds a ring pattern from a to b.
func NewRing(a, b math3d.Color) *Ring {
	return &Ring{base: newBase(), A: a, B: b}
}

// ColorAt implements Pattern.
func (r *Ring) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	p := r.toPatternSpace(objectPoint)
	d := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if evenFloor(d) {
		return r.A
	}
	return r.B
}

// evenFloor reports whether floor(v) is an even integer.
func evenFloor(v float64) bool {
	f := math.Floor(v)
	return math.Mod(f, 2) == 0
}
