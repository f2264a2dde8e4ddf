// Package light implements point and area light sources (spec.md §3
// "Light", §4.F).
package light

import (
	"errors"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Kind tags which branch of the Light variant a value occupies.
type Kind int

// Supported light kinds.
const (
	KindPoint Kind = iota
	KindArea
)

// ErrInvalidAreaLightSteps is returned by NewAreaLight when usteps or
// vsteps is non-positive (spec.md §7 construction errors).
var ErrInvalidAreaLightSteps = errors.New("light: area light requires usteps>0 and vsteps>0")

// Light is a point or rectangular area light source.
type Light struct {
	Kind Kind

	Position  math3d.Tuple
	Intensity math3d.Color

	Corner, UVec, VVec math3d.Tuple
	USteps, VSteps     int
	Seed               uint64
}

// NewPointLight builds a point light at position with the given intensity.
func NewPointLight(position math3d.Tuple, intensity math3d.Color) Light {
	return Light{Kind: KindPoint, Position: position, Intensity: intensity}
}

// NewAreaLight builds a rectangular area light spanning corner+uvec,
// corner+vvec, subdivided into usteps*vsteps sample cells.
func NewAreaLight(corner, uvec, vvec math3d.Tuple, usteps, vsteps int, intensity math3d.Color, seed uint64) (Light, error) {
	if usteps <= 0 || vsteps <= 0 {
		return Light{}, ErrInvalidAreaLightSteps
	}
	return Light{
		Kind: KindArea, Corner: corner, UVec: uvec, VVec: vvec,
		USteps: usteps, VSteps: vsteps, Intensity: intensity, Seed: seed,
	}, nil
}

// SampleCount returns the number of shadow-test samples this light
// requires: 1 for a point light, usteps*vsteps for an area light.
func (l Light) SampleCount() int {
	if l.Kind == KindPoint {
		return 1
	}
	return l.USteps * l.VSteps
}

// RepresentativePosition returns the single position used for the Phong
// diffuse/specular L vector: the light's own position for a point light,
// or the area light's geometric centroid. Only the shadow-test intensity
// scalar is averaged across samples, not the L vector itself (spec.md §4.F).
func (l Light) RepresentativePosition() math3d.Tuple {
	if l.Kind == KindPoint {
		return l.Position
	}
	return l.Corner.Add(l.UVec.Scale(0.5)).Add(l.VVec.Scale(0.5))
}

// SamplePoint returns the jittered world position of sample cell (u, v),
// where jitterU and jitterV are RNG-drawn offsets in [0, 1).
func (l Light) SamplePoint(u, v int, jitterU, jitterV float64) math3d.Tuple {
	if l.Kind == KindPoint {
		return l.Position
	}
	uOffset := l.UVec.Scale((float64(u) + jitterU) / float64(l.USteps))
	vOffset := l.VVec.Scale((float64(v) + jitterV) / float64(l.VSteps))
	return l.Corner.Add(uOffset).Add(vOffset)
}
