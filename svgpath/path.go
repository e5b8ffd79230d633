// Provides parsing and normalization of SVG path data.
// Path data strings are compiled into an abstract representation,
// which can then be consumed by output drivers.
// See for example svgshape/drawio .
package svgpath

import (
	"strconv"
	"strings"
)

// This file defines the basic path structure

// Command is one drawing operation of a path. All coordinates carried
// by a Command are absolute canvas units: relative offsets, shorthand
// control points and implicit repetitions are resolved by the parser
// before a Command is constructed.
type Command interface {
	// drawTo replays the command on the driver `d`
	drawTo(d Drawer)

	// transform returns the command with every coordinate pair
	// mapped through `m`
	transform(m Matrix2D) Command
}

// MoveTo starts a new subpath at the given point.
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line to the given point.
type LineTo struct {
	X, Y float64
}

// QuadTo draws a quadratic Bézier curve with one control point.
type QuadTo struct {
	X1, Y1 float64 // control point
	X, Y   float64 // end point
}

// CubicTo draws a cubic Bézier curve with two control points.
type CubicTo struct {
	X1, Y1 float64 // first control point
	X2, Y2 float64 // second control point
	X, Y   float64 // end point
}

// ArcTo draws an elliptical arc to the given point.
type ArcTo struct {
	Rx, Ry   float64 // radii
	Rotation float64 // x-axis rotation, in degrees
	LargeArc bool
	Sweep    bool
	X, Y     float64 // end point
}

// Close closes the current subpath, back to the last MoveTo point.
type Close struct{}

func (op MoveTo) drawTo(d Drawer) { d.Start(op.X, op.Y) }
func (op LineTo) drawTo(d Drawer) { d.Line(op.X, op.Y) }
func (op QuadTo) drawTo(d Drawer) { d.QuadBezier(op.X1, op.Y1, op.X, op.Y) }
func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y)
}
func (op ArcTo) drawTo(d Drawer) {
	d.Arc(op.Rx, op.Ry, op.Rotation, op.LargeArc, op.Sweep, op.X, op.Y)
}
func (op Close) drawTo(d Drawer) { d.Stop(true) }

func (op MoveTo) transform(m Matrix2D) Command {
	op.X, op.Y = m.TransformPoint(op.X, op.Y)
	return op
}

func (op LineTo) transform(m Matrix2D) Command {
	op.X, op.Y = m.TransformPoint(op.X, op.Y)
	return op
}

func (op QuadTo) transform(m Matrix2D) Command {
	op.X1, op.Y1 = m.TransformPoint(op.X1, op.Y1)
	op.X, op.Y = m.TransformPoint(op.X, op.Y)
	return op
}

func (op CubicTo) transform(m Matrix2D) Command {
	op.X1, op.Y1 = m.TransformPoint(op.X1, op.Y1)
	op.X2, op.Y2 = m.TransformPoint(op.X2, op.Y2)
	op.X, op.Y = m.TransformPoint(op.X, op.Y)
	return op
}

// Arcs are tricky: only the end point is transformed. Adjusting the
// radii and the x-axis rotation for an arbitrary affine map would
// require transforming the ellipse itself.
func (op ArcTo) transform(m Matrix2D) Command {
	op.X, op.Y = m.TransformPoint(op.X, op.Y)
	return op
}

func (op Close) transform(Matrix2D) Command { return op }

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
// In particular, transformation matrices are already applied to the
// points before sending them to the Drawer.
type Drawer interface {
	// Start starts a new subpath at the given point.
	Start(x, y float64)

	// Line adds a line from the current point to (x, y)
	Line(x, y float64)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(cx, cy, x, y float64)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(cx1, cy1, cx2, cy2, x, y float64)

	// Arc adds an elliptical arc to the path
	Arc(rx, ry, rotation float64, largeArc, sweep bool, x, y float64)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// Path describes a sequence of basic SVG operations, which should not be nil.
// Higher-level shapes may be reduced to a path.
type Path []Command

// DrawTo replays the path on the driver `d`.
func (p Path) DrawTo(d Drawer) {
	for _, op := range p {
		op.drawTo(d)
	}
}

// Transform returns a copy of the path with every coordinate pair,
// control points included, mapped through `m`. The receiver is left
// untouched.
func (p Path) Transform(m Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.transform(m)
	}
	return out
}

// ToSVGPath returns a path data string equivalent to the path.
// Since the commands are normalized, the output only uses the
// absolute M, L, Q, C, A and Z forms.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M " + nums(op.X, op.Y)
		case LineTo:
			chunks[i] = "L " + nums(op.X, op.Y)
		case QuadTo:
			chunks[i] = "Q " + nums(op.X1, op.Y1, op.X, op.Y)
		case CubicTo:
			chunks[i] = "C " + nums(op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y)
		case ArcTo:
			chunks[i] = "A " + nums(op.Rx, op.Ry, op.Rotation,
				flag(op.LargeArc), flag(op.Sweep), op.X, op.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

func nums(vs ...float64) string {
	chunks := make([]string, len(vs))
	for i, v := range vs {
		chunks[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(chunks, " ")
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
