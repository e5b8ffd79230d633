package svgdoc

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/drawio-tools/svgshape/svgpath"
)

// ParseTransform tokenizes an SVG transform attribute string such as
//
//	translate(50, 50) rotate(45) matrix(1,0,0,1,10,20)
//
// into the operation list consumed by svgpath.Resolve, in source
// order. scale, skewX and skewY entries are lowered to raw matrices.
// Unrecognized function names, and known names with a wrong argument
// count, fail with a *svgpath.UnsupportedTransformError.
func ParseTransform(v string) ([]svgpath.TransformOp, error) {
	var ops []svgpath.TransformOp
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return nil, &svgpath.UnsupportedTransformError{
				Name:   t,
				Reason: "badly formed transform entry",
			}
		}
		name := strings.ToLower(strings.TrimSpace(d[0]))
		args, err := scanNumbers(d[1])
		if err != nil {
			return nil, &svgpath.UnsupportedTransformError{Name: name, Reason: err.Error()}
		}
		op, err := readTransformOp(name, args)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func readTransformOp(name string, args []float64) (svgpath.TransformOp, error) {
	badArity := func() error {
		return &svgpath.UnsupportedTransformError{
			Name:   name,
			Reason: fmt.Sprintf("wrong argument count %d", len(args)),
		}
	}
	switch name {
	case "translate":
		switch len(args) {
		case 1:
			return svgpath.Translate{Tx: args[0]}, nil
		case 2:
			return svgpath.Translate{Tx: args[0], Ty: args[1]}, nil
		}
		return nil, badArity()
	case "rotate":
		switch len(args) {
		case 1:
			return svgpath.Rotate{Angle: args[0]}, nil
		case 3:
			return svgpath.Rotate{Angle: args[0], Cx: args[1], Cy: args[2]}, nil
		}
		return nil, badArity()
	case "matrix":
		if len(args) != 6 {
			return nil, badArity()
		}
		return svgpath.Matrix2D{
			A: args[0], B: args[1], C: args[2],
			D: args[3], E: args[4], F: args[5],
		}, nil
	case "scale":
		switch len(args) {
		case 1:
			return svgpath.Matrix2D{A: args[0], D: args[0]}, nil
		case 2:
			return svgpath.Matrix2D{A: args[0], D: args[1]}, nil
		}
		return nil, badArity()
	case "skewx":
		if len(args) != 1 {
			return nil, badArity()
		}
		return svgpath.Matrix2D{A: 1, D: 1, C: math.Tan(args[0] * math.Pi / 180)}, nil
	case "skewy":
		if len(args) != 1 {
			return nil, badArity()
		}
		return svgpath.Matrix2D{A: 1, D: 1, B: math.Tan(args[0] * math.Pi / 180)}, nil
	default:
		return nil, &svgpath.UnsupportedTransformError{
			Name:   name,
			Reason: "unknown transform function",
		}
	}
}

// scanNumbers reads a comma or whitespace separated list of floats.
func scanNumbers(s string) ([]float64, error) {
	var nums []float64
	data := []byte(s)
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\t', '\n', '\r':
			i++
			continue
		}
		f, n := strconv.ParseFloat(data[i:])
		if n == 0 {
			return nil, fmt.Errorf("expected a number at %q", s[i:])
		}
		nums = append(nums, f)
		i += n
	}
	return nums, nil
}

// getPoints fills the cursor's reusable points buffer from a comma or
// whitespace separated list.
func (c *docCursor) getPoints(s string) error {
	nums, err := scanNumbers(s)
	if err != nil {
		return err
	}
	c.points = nums
	return nil
}

// parseDimension reads a numeric attribute value, ignoring a trailing
// unit such as px.
func parseDimension(s string) (float64, error) {
	f, n := strconv.ParseFloat([]byte(strings.TrimSpace(s)))
	if n == 0 {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return f, nil
}
