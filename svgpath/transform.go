package svgpath

import "math"

// TransformOp is one parsed entry of an SVG transform attribute, such
// as translate(10, 20) or rotate(45, 50, 50). A matrix(a,b,c,d,e,f)
// entry is a Matrix2D value itself.
type TransformOp interface {
	// Matrix returns the affine transform equivalent to the operation.
	Matrix() Matrix2D
}

// Translate shifts by (Tx, Ty).
type Translate struct {
	Tx, Ty float64
}

func (t Translate) Matrix() Matrix2D {
	return Matrix2D{1, 0, 0, 1, t.Tx, t.Ty}
}

// Rotate rotates by Angle degrees about (Cx, Cy).
type Rotate struct {
	Angle  float64 // in degrees
	Cx, Cy float64
}

func (r Rotate) Matrix() Matrix2D {
	rad := r.Angle * math.Pi / 180
	if r.Cx == 0 && r.Cy == 0 {
		return Identity.Rotate(rad)
	}
	return Identity.Translate(r.Cx, r.Cy).Rotate(rad).Translate(-r.Cx, -r.Cy)
}

// Matrix returns the matrix itself: a raw matrix(...) entry needs no
// conversion.
func (m Matrix2D) Matrix() Matrix2D { return m }

// Compose reduces a transform list to a single matrix, accumulating
// in source order: translate(...) rotate(...) composes to T·R, the
// same matrix SVG assigns to the attribute.
func Compose(ops []TransformOp) Matrix2D {
	m := Identity
	for _, op := range ops {
		m = m.Mult(op.Matrix())
	}
	return m
}

// Resolve returns the path with every coordinate pair mapped through
// the composed transform list. Command kinds pass through unchanged.
// An empty list returns the input path as is, with no remapping that
// could introduce floating point drift.
func Resolve(p Path, ops []TransformOp) Path {
	if len(ops) == 0 {
		return p
	}
	return p.Transform(Compose(ops))
}

// Convert parses a path data string and resolves the transform list
// in one call: Convert(d, ops) = Resolve(Parse(d), ops).
func Convert(d string, ops []TransformOp) (Path, error) {
	p, err := Parse(d)
	if err != nil {
		return nil, err
	}
	return Resolve(p, ops), nil
}
