// Package scene holds the fully-materialized, immutable World a renderer
// queries (spec.md §3 "World/Scene").
package scene

import (
	"github.com/richard-dennehy/raytracer-go/pkg/light"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

// World is a light-source list and the root of the shape tree. The root is
// typically a Group so ray queries hit a single BVH.
type World struct {
	Lights []light.Light
	Root   *shape.Shape
}

// New builds a World and finalizes its shape tree (material/shadow
// inheritance, BVH construction, cached world-space inverses). The scene is
// immutable once returned (spec.md §3 "Lifecycles").
func New(root *shape.Shape, lights ...light.Light) World {
	shape.Finalize(root)
	return World{Lights: lights, Root: root}
}
