package shape

import (
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Intersection is a single ray/shape hit: parameter t along the ray,
// the leaf primitive hit, and barycentric (u, v) for smooth triangles.
type Intersection struct {
	T      float64
	Object *Shape
	U, V   float64
	HasUV  bool
}

func localIntersect(s *Shape, r math3d.Ray) []Intersection {
	switch s.Kind {
	case KindSphere:
		return sphereIntersect(s, r)
	case KindPlane:
		return planeIntersect(s, r)
	case KindCube:
		return cubeIntersect(s, r)
	case KindCylinder:
		return cylinderIntersect(s, r)
	case KindCone:
		return coneIntersect(s, r)
	case KindTriangle:
		return triangleIntersect(s, r)
	default:
		return nil
	}
}

func localBounds(s *Shape) math3d.AABB {
	switch s.Kind {
	case KindSphere:
		return math3d.NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	case KindPlane:
		inf := math.Inf(1)
		return math3d.NewAABB(math3d.V3(-inf, 0, -inf), math3d.V3(inf, 0, inf))
	case KindCube:
		return math3d.NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	case KindCylinder:
		return math3d.NewAABB(math3d.V3(-1, s.Min, -1), math3d.V3(1, s.Max, 1))
	case KindCone:
		r := math.Max(math.Abs(s.Min), math.Abs(s.Max))
		return math3d.NewAABB(math3d.V3(-r, s.Min, -r), math3d.V3(r, s.Max, r))
	case KindTriangle:
		return triangleBounds(s)
	default:
		return math3d.EmptyAABB()
	}
}

func localNormalAt(s *Shape, objectPoint math3d.Tuple, hit Intersection) math3d.Normal {
	switch s.Kind {
	case KindSphere:
		return math3d.NormalFromVector(math3d.Vector(objectPoint.X, objectPoint.Y, objectPoint.Z))
	case KindPlane:
		return math3d.NewNormal(0, 1, 0)
	case KindCube:
		return cubeNormalAt(objectPoint)
	case KindCylinder:
		return cylinderNormalAt(s, objectPoint)
	case KindCone:
		return coneNormalAt(s, objectPoint)
	case KindTriangle:
		return triangleNormalAt(s, hit)
	default:
		return math3d.NewNormal(0, 1, 0)
	}
}

func sphereIntersect(s *Shape, r math3d.Ray) []Intersection {
	sphereToRay := r.Origin.Sub(math3d.Point(0, 0, 0))
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return []Intersection{{T: t1, Object: s}, {T: t2, Object: s}}
}

func planeIntersect(s *Shape, r math3d.Ray) []Intersection {
	if math.Abs(r.Direction.Y) < math3d.Epsilon {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return []Intersection{{T: t, Object: s}}
}

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= math3d.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.MaxFloat64
		tmax = tmaxNumerator * math.MaxFloat64
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func cubeIntersect(s *Shape, r math3d.Ray) []Intersection {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return []Intersection{{T: tmin, Object: s}, {T: tmax, Object: s}}
}

func maxAbs3(x, y, z float64) float64 {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	m := ax
	if ay > m {
		m = ay
	}
	if az > m {
		m = az
	}
	return m
}

func cubeNormalAt(p math3d.Tuple) math3d.Normal {
	switch maxAbs3(p.X, p.Y, p.Z) {
	case math.Abs(p.X):
		return math3d.NewNormal(p.X, 0, 0)
	case math.Abs(p.Y):
		return math3d.NewNormal(0, p.Y, 0)
	default:
		return math3d.NewNormal(0, 0, p.Z)
	}
}

func checkCap(r math3d.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= radius*radius
}

func cylinderIntersect(s *Shape, r math3d.Ray) []Intersection {
	var xs []Intersection

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if a > math3d.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		c := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := r.Origin.Y + t0*r.Direction.Y
		if s.Min < y0 && y0 < s.Max {
			xs = append(xs, Intersection{T: t0, Object: s})
		}
		y1 := r.Origin.Y + t1*r.Direction.Y
		if s.Min < y1 && y1 < s.Max {
			xs = append(xs, Intersection{T: t1, Object: s})
		}
	}

	return append(xs, cylinderCapIntersections(s, r)...)
}

func cylinderCapIntersections(s *Shape, r math3d.Ray) []Intersection {
	var xs []Intersection
	if !s.Closed || math.Abs(r.Direction.Y) < math3d.Epsilon {
		return xs
	}
	t := (s.Min - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	t = (s.Max - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	return xs
}

func cylinderNormalAt(s *Shape, p math3d.Tuple) math3d.Normal {
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1 && p.Y >= s.Max-math3d.Epsilon {
		return math3d.NewNormal(0, 1, 0)
	}
	if dist < 1 && p.Y <= s.Min+math3d.Epsilon {
		return math3d.NewNormal(0, -1, 0)
	}
	return math3d.NewNormal(p.X, 0, p.Z)
}

func coneIntersect(s *Shape, r math3d.Ray) []Intersection {
	var xs []Intersection

	a := r.Direction.X*r.Direction.X - r.Direction.Y*r.Direction.Y + r.Direction.Z*r.Direction.Z
	b := 2*r.Origin.X*r.Direction.X - 2*r.Origin.Y*r.Direction.Y + 2*r.Origin.Z*r.Direction.Z
	c := r.Origin.X*r.Origin.X - r.Origin.Y*r.Origin.Y + r.Origin.Z*r.Origin.Z

	switch {
	case math.Abs(a) < math3d.Epsilon && math.Abs(b) < math3d.Epsilon:
		// Ray is parallel to the cone's axis through its apex: no side hit.
	case math.Abs(a) < math3d.Epsilon:
		t := -c / (2 * b)
		y := r.Origin.Y + t*r.Direction.Y
		if s.Min < y && y < s.Max {
			xs = append(xs, Intersection{T: t, Object: s})
		}
	default:
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			t0 := (-b - sq) / (2 * a)
			t1 := (-b + sq) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			y0 := r.Origin.Y + t0*r.Direction.Y
			if s.Min < y0 && y0 < s.Max {
				xs = append(xs, Intersection{T: t0, Object: s})
			}
			y1 := r.Origin.Y + t1*r.Direction.Y
			if s.Min < y1 && y1 < s.Max {
				xs = append(xs, Intersection{T: t1, Object: s})
			}
		}
	}

	return append(xs, coneCapIntersections(s, r)...)
}

func coneCapIntersections(s *Shape, r math3d.Ray) []Intersection {
	var xs []Intersection
	if !s.Closed || math.Abs(r.Direction.Y) < math3d.Epsilon {
		return xs
	}
	t := (s.Min - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, math.Abs(s.Min)) {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	t = (s.Max - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, math.Abs(s.Max)) {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	return xs
}

func coneNormalAt(s *Shape, p math3d.Tuple) math3d.Normal {
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1 && p.Y >= s.Max-math3d.Epsilon {
		return math3d.NewNormal(0, 1, 0)
	}
	if dist < 1 && p.Y <= s.Min+math3d.Epsilon {
		return math3d.NewNormal(0, -1, 0)
	}
	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return math3d.NewNormal(p.X, y, p.Z)
}

func triangleIntersect(s *Shape, r math3d.Ray) []Intersection {
	dirCrossE2 := r.Direction.Cross(s.e2)
	det := s.e1.Dot(dirCrossE2)
	if math.Abs(det) < math3d.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := r.Origin.Sub(s.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.e1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * s.e2.Dot(originCrossE1)
	return []Intersection{{T: t, Object: s, U: u, V: v, HasUV: true}}
}

func triangleNormalAt(s *Shape, hit Intersection) math3d.Normal {
	if s.N1 == nil {
		return s.faceNormal
	}
	n := s.N2.Vector().Scale(hit.U).
		Add(s.N3.Vector().Scale(hit.V)).
		Add(s.N1.Vector().Scale(1 - hit.U - hit.V))
	return math3d.NormalFromVector(n)
}

func triangleBounds(s *Shape) math3d.AABB {
	v1, v2, v3 := math3d.FromPoint(s.P1), math3d.FromPoint(s.P2), math3d.FromPoint(s.P3)
	return math3d.NewAABB(v1.Min(v2).Min(v3), v1.Max(v2).Max(v3))
}
