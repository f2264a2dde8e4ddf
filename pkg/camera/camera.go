// Package camera derives world-space rays for each pixel from a camera's
// extrinsics and field of view (spec.md §4.H).
package camera

import (
	"errors"
	"math"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// ErrInvalidFieldOfView is returned by New when fov is outside (0, pi).
// Field of view is always interpreted in radians, never degrees or turns
// (spec.md §9 open question).
var ErrInvalidFieldOfView = errors.New("camera: field of view must be in (0, pi) radians")

// Camera derives per-pixel rays from its extrinsics and field of view.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64

	inverse    math3d.Mat4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// New builds a camera for an hsize x vsize image, composing ops in
// declaration order into the camera's world transform.
func New(hsize, vsize int, fov float64, ops ...math3d.Mat4) (*Camera, error) {
	if fov <= 0 || fov >= math.Pi {
		return nil, ErrInvalidFieldOfView
	}
	inv, err := math3d.ComposeInverse(ops...)
	if err != nil {
		return nil, err
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize: hsize, VSize: vsize, FieldOfView: fov,
		inverse:    inv,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		pixelSize:  2 * halfWidth / float64(hsize),
	}, nil
}

// RayForPixel builds the world-space ray through pixel (px, py), offset
// within the pixel by (subx, suby) in [0, 1] for supersampling.
func (c *Camera) RayForPixel(px, py int, subx, suby float64) math3d.Ray {
	worldX := c.halfWidth - (float64(px)+subx)*c.pixelSize
	worldY := c.halfHeight - (float64(py)+suby)*c.pixelSize

	pixel := c.inverse.MulTuple(math3d.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(math3d.Point(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return math3d.NewRay(origin, direction)
}
