package svgpath

import "math"

// Matrix2D is a 2D affine transform:
//
//	[ A C E ]
//	[ B D F ]
//	[ 0 0 1 ]
//
// mapping a point with x' = A·x + C·y + E and y' = B·x + D·y + F.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a.Mult(b), the transform equivalent to applying b
// first and a second.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// TransformPoint maps (x, y) through the transform.
func (a Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// Translate post-multiplies a translation by (x, y).
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale post-multiplies a scaling by (x, y).
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate post-multiplies a rotation about the origin by `angle`,
// in radians.
func (a Matrix2D) Rotate(angle float64) Matrix2D {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX post-multiplies a skew along the x axis by `angle`, in radians.
func (a Matrix2D) SkewX(angle float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(angle), 1, 0, 0})
}

// SkewY post-multiplies a skew along the y axis by `angle`, in radians.
func (a Matrix2D) SkewY(angle float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(angle), 0, 1, 0, 0})
}
