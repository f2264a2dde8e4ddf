package pattern

import (
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// UVPattern evaluates a color at UV coordinates already normalized to [0,1]^2.
type UVPattern interface {
	At(u, v float64) math3d.Color
}

// UVCheckers tiles a width x height checkerboard over [0,1]^2.
type UVCheckers struct {
	Width, Height int
	A, B          math3d.Color
}

// At implements UVPattern.
func (c UVCheckers) At(u, v float64) math3d.Color {
	uw := math.Floor(u * float64(c.Width))
	vh := math.Floor(v * float64(c.Height))
	if evenFloor(uw+vh) {
		return c.A
	}
	return c.B
}

// Image is an opaque handle to an already-decoded bitmap, supplied by an
// image loader external to the core (spec.md §4.E, §6).
type Image interface {
	At(x, y int) math3d.Color
	Width() int
	Height() int
}

// UVImage samples Image with nearest-neighbor filtering.
type UVImage struct {
	Image Image
}

// At implements UVPattern.
func (t UVImage) At(u, v float64) math3d.Color {
	w, h := t.Image.Width(), t.Image.Height()
	x := int(math.Round(u * float64(w-1)))
	y := int(math.Round((1 - v) * float64(h-1)))
	if x < 0 {
		x = 0
	} else if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= h {
		y = h - 1
	}
	return t.Image.At(x, y)
}

// Projection selects which UV-mapping formula a Map pattern uses.
type Projection int

// Supported projections (spec.md §4.E).
const (
	Planar Projection = iota
	Spherical
	Cylindrical
	Cube
)

// CubeFace identifies one of the six faces of a cube mapping.
type CubeFace int

// Cube faces, keyed by dominant axis and sign.
const (
	FacePosX CubeFace = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// Map projects an object-space point to UV coordinates and looks the color
// up in a UVPattern. For Cube it selects one of six per-face UVPatterns;
// for Cylindrical it may use distinct Top/Bottom UVPatterns near the caps.
type Map struct {
	base
	Projection Projection
	UV         UVPattern          // Planar / Spherical / non-cap Cylindrical
	Top        UVPattern          // optional cylindrical top-cap override
	Bottom     UVPattern          // optional cylindrical bottom-cap override
	Faces      [6]UVPattern       // Cube, indexed by CubeFace
}

// NewMap builds a UV-mapped pattern for a non-cube projection.
func NewMap(projection Projection, uv UVPattern) *Map {
	return &Map{base: newBase(), Projection: projection, UV: uv}
}

// NewCubeMap builds a cube-mapped pattern with one UVPattern per face.
func NewCubeMap(faces [6]UVPattern) *Map {
	return &Map{base: newBase(), Projection: Cube, Faces: faces}
}

const capEpsilon = 1e-5

// ColorAt implements Pattern.
func (m *Map) ColorAt(objectPoint math3d.Tuple) math3d.Color {
	p := m.toPatternSpace(objectPoint)
	switch m.Projection {
	case Planar:
		u, v := PlanarUV(p)
		return m.UV.At(u, v)
	case Spherical:
		u, v := SphericalUV(p)
		return m.UV.At(u, v)
	case Cylindrical:
		if (m.Top != nil || m.Bottom != nil) && math.Abs(p.Y) >= 1-capEpsilon {
			u, v := PlanarUV(p)
			if p.Y >= 0 && m.Top != nil {
				return m.Top.At(u, v)
			}
			if p.Y < 0 && m.Bottom != nil {
				return m.Bottom.At(u, v)
			}
		}
		u, v := CylindricalUV(p)
		return m.UV.At(u, v)
	case Cube:
		face, u, v := CubeUV(p)
		if pat := m.Faces[face]; pat != nil {
			return pat.At(u, v)
		}
		return math3d.Black
	default:
		return math3d.Black
	}
}

func floorMod1(v float64) float64 {
	f := v - math.Floor(v)
	if f < 0 {
		f++
	}
	return f
}

// PlanarUV projects onto the xz-plane.
func PlanarUV(p math3d.Tuple) (u, v float64) {
	return floorMod1(p.X), floorMod1(p.Z)
}

// SphericalUV projects onto a unit sphere.
func SphericalUV(p math3d.Tuple) (u, v float64) {
	theta := math.Atan2(p.X, p.Z)
	u = 1 - (theta/(2*math.Pi) + 0.5)
	radius := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	phi := math.Acos(p.Y / radius)
	v = 1 - phi/math.Pi
	return u, v
}

// CylindricalUV projects onto a unit cylinder (side surface only; callers
// handle cap overrides).
func CylindricalUV(p math3d.Tuple) (u, v float64) {
	theta := math.Atan2(p.X, p.Z)
	u = 1 - (theta/(2*math.Pi) + 0.5)
	v = floorMod1(p.Y)
	return u, v
}

// CubeUV chooses a face by the dominant axis of p and maps the remaining
// two components from [-1,1] into [0,1].
func CubeUV(p math3d.Tuple) (face CubeFace, u, v float64) {
	coord := maxAbs(p.X, p.Y, p.Z)
	switch coord {
	case math.Abs(p.X):
		if p.X >= 0 {
			return FacePosX, faceUV(p.Z, p.Y, true), faceUV(p.Z, p.Y, false)
		}
		return FaceNegX, faceUV(-p.Z, p.Y, true), faceUV(-p.Z, p.Y, false)
	case math.Abs(p.Y):
		if p.Y >= 0 {
			return FacePosY, faceUV(p.X, -p.Z, true), faceUV(p.X, -p.Z, false)
		}
		return FaceNegY, faceUV(p.X, p.Z, true), faceUV(p.X, p.Z, false)
	default:
		if p.Z >= 0 {
			return FacePosZ, faceUV(-p.X, p.Y, true), faceUV(-p.X, p.Y, false)
		}
		return FaceNegZ, faceUV(p.X, p.Y, true), faceUV(p.X, p.Y, false)
	}
}

func faceUV(a, b float64, wantU bool) float64 {
	if wantU {
		return (a + 1) / 2
	}
	return (b + 1) / 2
}

func maxAbs(x, y, z float64) float64 {
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
