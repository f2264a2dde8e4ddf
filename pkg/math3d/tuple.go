package math3d

import "math"

// Tuple is a w-tagged 4-component value: points carry W=1, vectors carry
// W=0. Arithmetic on tuples naturally preserves the tag: point-point
// yields a vector (W=0), point+vector yields a point (W=1), and
// vector+vector yields a vector (W=0).
type Tuple struct {
	X, Y, Z, W float64
}

// Point builds a position tuple (W=1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector builds a direction tuple (W=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether t carries point semantics.
func (t Tuple) IsPoint() bool { return t.W == 1 }

// IsVector reports whether t carries vector semantics.
func (t Tuple) IsVector() bool { return t.W == 0 }

// Add returns t+o, preserving w-tagging arithmetic.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub returns t-o. point-point=vector, point-vector=point, vector-vector=vector.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale returns the tuple scaled by s. Meaningful only for vectors.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns the tuple divided by s.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Dot returns the dot product of the two (typically vector) tuples.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the cross product, ignoring W (defined for vectors).
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Magnitude returns the Euclidean length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length copy. The zero vector normalizes to
// itself rather than producing NaNs.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return t.Div(m)
}

// Reflect returns v reflected about normal n: v - n*(2*v.n).
func Reflect(v, n Tuple) Tuple {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Equal compares tuples with the spec's absolute tolerance (1e-5).
func (t Tuple) Equal(o Tuple) bool {
	return FloatEqual(t.X, o.X) && FloatEqual(t.Y, o.Y) && FloatEqual(t.Z, o.Z) && FloatEqual(t.W, o.W)
}

// Vec3 drops W, useful when feeding a tuple into a routine that only cares
// about the 3-component direction (e.g. AABB corner math).
func (t Tuple) Vec3() (x, y, z float64) { return t.X, t.Y, t.Z }

// Normal wraps a unit-length vector tuple. Construction always normalizes,
// so every Normal satisfies the unit-length invariant (§8.2), except the
// zero normal that results from a zero input vector or a degenerate
// Transform.
type Normal struct {
	v Tuple
}

// NewNormal builds a Normal from raw components, normalizing the result.
func NewNormal(x, y, z float64) Normal {
	return Normal{v: Vector(x, y, z).Normalize()}
}

// NormalFromVector normalizes an existing vector tuple into a Normal.
func NormalFromVector(v Tuple) Normal {
	return Normal{v: v.Normalize()}
}

// Vector returns the underlying unit vector tuple.
func (n Normal) Vector() Tuple { return n.v }

// Transform maps n through a shape's world transform: apply the inverse
// transpose to the underlying vector (ignoring translation via W=0), then
// re-normalize, per spec.md §3.
func (n Normal) Transform(invTransform Mat4) Normal {
	transposed := invTransform.Transpose()
	world := transposed.MulTuple(Vector(n.v.X, n.v.Y, n.v.Z))
	world.W = 0
	if world.Magnitude() == 0 {
		// Degenerate normal transform (e.g. a degenerate triangle): the
		// caller's shading math yields zero diffuse/specular, per spec.md §7.
		return Normal{v: Vector(0, 0, 0)}
	}
	return Normal{v: world.Normalize()}
}
