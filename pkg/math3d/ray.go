package math3d

// Ray is an origin point and a direction vector. Direction need not be
// unit-length; hit distances (t) are expressed in units of that direction.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay builds a ray from an origin point and direction vector.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point along the ray at parameter t.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps the ray through m, used to bring a world-space ray into a
// shape's object space via the shape's inverse transform.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
