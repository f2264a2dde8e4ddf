package math3d

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix stored in column-major order.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(s, s, s)
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulTuple transforms a Tuple (point or vector, depending on W).
func (m Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0]*t.X + m[4]*t.Y + m[8]*t.Z + m[12]*t.W,
		Y: m[1]*t.X + m[5]*t.Y + m[9]*t.Z + m[13]*t.W,
		Z: m[2]*t.X + m[6]*t.Y + m[10]*t.Z + m[14]*t.W,
		W: m[3]*t.X + m[7]*t.Y + m[11]*t.Z + m[15]*t.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row+col*4] = val
}

// ErrSingularMatrix is returned by Inverse when the matrix has no inverse.
var ErrSingularMatrix = fmt.Errorf("math3d: singular matrix has no inverse")

// Inverse computes the matrix inverse via Gauss-Jordan elimination with
// partial pivoting, augmenting m with the identity and row-reducing until
// the left half becomes the identity, leaving the inverse on the right.
// Returns ErrSingularMatrix if no pivot can be found for some column
// (determinant effectively zero).
func (m Mat4) Inverse() (Mat4, error) {
	// work[row][col] for col in [0,8): left half starts as m (addressed
	// row-major here for pivoting convenience), right half is the
	// identity being reduced alongside it.
	var work [4][8]float64
	for row := range 4 {
		for col := range 4 {
			work[row][col] = m.Get(row, col)
		}
		work[row][4+row] = 1
	}

	for col := 0; col < 4; col++ {
		// Partial pivot: find the row with the largest absolute value in
		// this column at or below the diagonal.
		pivot := col
		best := math.Abs(work[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(work[row][col]); v > best {
				best = v
				pivot = row
			}
		}
		if best < 1e-12 {
			return Mat4{}, ErrSingularMatrix
		}
		if pivot != col {
			work[col], work[pivot] = work[pivot], work[col]
		}

		pv := work[col][col]
		for c := 0; c < 8; c++ {
			work[col][c] /= pv
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := work[row][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 8; c++ {
				work[row][c] -= factor * work[col][c]
			}
		}
	}

	var inv Mat4
	for row := range 4 {
		for col := range 4 {
			inv.Set(row, col, work[row][4+col])
		}
	}
	return inv, nil
}
