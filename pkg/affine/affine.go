// Package affine implements the 2D affine matrices used to place and
// manipulate images and strokes.
//
// A Matrix uses the row-vector convention: a point (x, y) is transformed as
//
//  [x y 1] · | A        B        0 |
//            | C        D        0 |
//            | OffsetX  OffsetY  1 |
//
// so in a product a·b the transform a is applied first. Matrices are values;
// every operation returns a new Matrix.
package affine

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine transform.
type Matrix struct {
	A, B, C, D       float64
	OffsetX, OffsetY float64
}

// Identity returns the neutral transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Scale returns a uniform scaling matrix.
func Scale(factor float64) Matrix {
	m := Identity()
	m.A = factor
	m.D = factor
	return m
}

// Rotation Matrix for an angle given in degrees:
//
//   cos(angle)   sin(angle)
//  -sin(angle)   cos(angle)
//
func Rotation(degrees float64) Matrix {
	rad := Rad(degrees)
	m := Identity()
	m.A = math.Cos(rad)
	m.B = math.Sin(rad)
	m.C = -math.Sin(rad)
	m.D = math.Cos(rad)
	return m
}

// Translation returns a matrix that moves points by dx, dy.
func Translation(dx, dy float64) Matrix {
	m := Identity()
	m.OffsetX = dx
	m.OffsetY = dy
	return m
}

// Multiply returns the product a·b.
// The product is associative but not commutative.
func Multiply(a, b Matrix) Matrix {
	return Matrix{
		A:       a.A*b.A + a.B*b.C,
		B:       a.A*b.B + a.B*b.D,
		C:       a.C*b.A + a.D*b.C,
		D:       a.C*b.B + a.D*b.D,
		OffsetX: a.OffsetX*b.A + a.OffsetY*b.C + b.OffsetX,
		OffsetY: a.OffsetX*b.B + a.OffsetY*b.D + b.OffsetY,
	}
}

// Mul returns m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Multiply(m, n)
}

// Pivoted composes a manipulation around a pivot and applies it before the
// previous transform:
//
//  pivotIn · scale · translate · rotate · pivotOut · previous
//
// pivotIn moves the pivot to the origin and pivotOut moves it back.
// Rotation is applied after translation.
func Pivoted(pivotIn, pivotOut, scale, translate, rotate, previous Matrix) Matrix {
	m := pivotIn.Mul(scale).Mul(translate).Mul(rotate).Mul(pivotOut)
	return Multiply(m, previous)
}

// Apply transforms the point x, y.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := x*m.A + y*m.C + m.OffsetX
	ty := x*m.B + y*m.D + m.OffsetY
	return tx, ty
}

// Determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform.
// The second return value is false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
	inv.OffsetX = -(m.OffsetX*inv.A + m.OffsetY*inv.C)
	inv.OffsetY = -(m.OffsetX*inv.B + m.OffsetY*inv.D)
	return inv, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Equal compares two matrices component-wise with the given tolerance.
func (m Matrix) Equal(n Matrix, tol float64) bool {
	a := m.Array()
	b := n.Array()
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Array returns the coefficients in the order A, B, C, D, OffsetX, OffsetY.
// This is the layout draw2d uses for its matrices.
func (m Matrix) Array() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.OffsetX, m.OffsetY}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.OffsetX, m.OffsetY)
}

// Rad converts degrees to radians.
func Rad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
