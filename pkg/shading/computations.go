// Package shading implements Phong illumination, shadow testing, and the
// recursive reflection/refraction combination (spec.md §4.F, §4.G).
package shading

import (
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

// Computations bundles everything ShadeHit needs about a single hit:
// the hit point and its over/under-point nudges, eye/normal/reflect
// vectors, and the refractive indices on either side of the surface.
type Computations struct {
	T      float64
	Object *shape.Shape

	Point, OverPoint, UnderPoint math3d.Tuple
	Eye, Normal, ReflectV        math3d.Tuple
	Inside                      bool

	N1, N2 float64
}

// PrepareComputations derives Computations for hit, given the ray that
// produced it and the full (sorted) intersection list that hit belongs to
// (needed to compute the refractive-index stack at this point).
func PrepareComputations(hit shape.Intersection, r math3d.Ray, xs []shape.Intersection) Computations {
	var c Computations
	c.T = hit.T
	c.Object = hit.Object
	c.Point = r.Position(hit.T)
	c.Eye = r.Direction.Negate().Normalize()

	normal := shape.NormalAt(hit.Object, c.Point, hit)
	if normal.Dot(c.Eye) < 0 {
		c.Inside = true
		normal = normal.Negate()
	}
	c.Normal = normal
	c.ReflectV = math3d.Reflect(r.Direction, normal)
	c.OverPoint = c.Point.Add(normal.Scale(math3d.Epsilon))
	c.UnderPoint = c.Point.Sub(normal.Scale(math3d.Epsilon))

	c.N1, c.N2 = refractiveIndices(hit, xs)
	return c
}

// refractiveIndices walks intersections up to and including hit, tracking
// which shapes the ray currently sits inside (entering a shape appends it,
// exiting removes it): n1 is the refractive index of the innermost
// container just before hit, n2 just after (spec.md §4.G).
func refractiveIndices(hit shape.Intersection, xs []shape.Intersection) (n1, n2 float64) {
	var containers []*shape.Shape

	for _, x := range xs {
		isHit := x == hit

		if isHit {
			if len(containers) == 0 {
				n1 = 1
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) == 0 {
				n2 = 1
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOfShape(shapes []*shape.Shape, target *shape.Shape) int {
	for i, s := range shapes {
		if s == target {
			return i
		}
	}
	return -1
}
