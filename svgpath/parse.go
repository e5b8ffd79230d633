package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// command letters recognized in path data, grouped with the number of
// arguments each consumes per segment
var cmdArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// pathCursor accumulates the state needed while compiling a path data
// string. It is local to one Parse call and never shared.
type pathCursor struct {
	path           Path
	placeX, placeY float64 // pen position
	startX, startY float64 // start of the current subpath, for Z
	cntlX, cntlY   float64 // last control point, reflected by S and T
	lastCmd        byte    // uppercase letter of the previous segment
	points         []float64
	data           string
}

// Parse compiles a path data string (the value of an SVG `d`
// attribute) into a sequence of absolute-coordinate commands.
// Relative commands are shifted by the pen position, H and V are
// lowered to LineTo, shorthand curves (S, T) get their reflected
// control point resolved, and extra argument groups repeat their
// command. An empty or whitespace-only string yields an empty path.
// Failures return a *MalformedPathError and no commands.
func Parse(d string) (Path, error) {
	c := &pathCursor{data: d}
	data := []byte(d)
	i := skipSeparators(data, 0)
	for i < len(data) {
		cmd := data[i]
		if _, known := cmdArity[cmd&^0x20]; !known || !isLetter(cmd) {
			return nil, &MalformedPathError{
				Reason: fmt.Sprintf("unexpected character %q", cmd),
				Data:   d,
			}
		}
		i++
		c.points = c.points[:0]
		for {
			i = skipSeparators(data, i)
			if i >= len(data) || isLetter(data[i]) {
				break
			}
			f, n := strconv.ParseFloat(data[i:])
			if n == 0 {
				return nil, &MalformedPathError{
					Reason: fmt.Sprintf("unexpected character %q", data[i]),
					Data:   d,
				}
			}
			c.points = append(c.points, f)
			i += n
		}
		if err := c.addSegments(cmd); err != nil {
			return nil, err
		}
	}
	return c.path, nil
}

func isLetter(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}

func skipSeparators(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// abs shifts (x, y) by the pen position for relative commands.
func (c *pathCursor) abs(rel bool, x, y float64) (float64, float64) {
	if rel {
		return x + c.placeX, y + c.placeY
	}
	return x, y
}

// addSegments emits the commands for one letter and its argument
// list, looping over implicit repetitions.
func (c *pathCursor) addSegments(cmd byte) error {
	rel := cmd >= 'a'
	op := cmd &^ 0x20 // uppercase

	if op == 'Z' {
		if len(c.points) != 0 {
			return &MalformedPathError{Reason: "Z takes no arguments", Data: c.data}
		}
		c.path = append(c.path, Close{})
		c.placeX, c.placeY = c.startX, c.startY
		c.lastCmd = 'Z'
		return nil
	}

	arity := cmdArity[op]
	if len(c.points) == 0 || len(c.points)%arity != 0 {
		return &MalformedPathError{
			Reason: fmt.Sprintf("%c needs a multiple of %d arguments, got %d",
				cmd, arity, len(c.points)),
			Data: c.data,
		}
	}

	for i := 0; i < len(c.points); i += arity {
		seg := c.points[i:]
		switch op {
		case 'M':
			x, y := c.abs(rel, seg[0], seg[1])
			c.path = append(c.path, MoveTo{x, y})
			c.placeX, c.placeY = x, y
			c.startX, c.startY = x, y
			c.lastCmd = 'M'
			// extra coordinate pairs after a moveto are implicit
			// linetos, relative iff the moveto was `m`
			op = 'L'
		case 'L':
			x, y := c.abs(rel, seg[0], seg[1])
			c.path = append(c.path, LineTo{x, y})
			c.placeX, c.placeY = x, y
			c.lastCmd = 'L'
		case 'H':
			x := seg[0]
			if rel {
				x += c.placeX
			}
			c.path = append(c.path, LineTo{x, c.placeY})
			c.placeX = x
			c.lastCmd = 'H'
		case 'V':
			y := seg[0]
			if rel {
				y += c.placeY
			}
			c.path = append(c.path, LineTo{c.placeX, y})
			c.placeY = y
			c.lastCmd = 'V'
		case 'C':
			x1, y1 := c.abs(rel, seg[0], seg[1])
			x2, y2 := c.abs(rel, seg[2], seg[3])
			x, y := c.abs(rel, seg[4], seg[5])
			c.path = append(c.path, CubicTo{x1, y1, x2, y2, x, y})
			c.cntlX, c.cntlY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastCmd = 'C'
		case 'S':
			// the first control point is the reflection of the
			// previous control point through the pen, but only when
			// the previous segment was itself a cubic curve
			x1, y1 := c.placeX, c.placeY
			if c.lastCmd == 'C' || c.lastCmd == 'S' {
				x1, y1 = 2*c.placeX-c.cntlX, 2*c.placeY-c.cntlY
			}
			x2, y2 := c.abs(rel, seg[0], seg[1])
			x, y := c.abs(rel, seg[2], seg[3])
			c.path = append(c.path, CubicTo{x1, y1, x2, y2, x, y})
			c.cntlX, c.cntlY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastCmd = 'S'
		case 'Q':
			x1, y1 := c.abs(rel, seg[0], seg[1])
			x, y := c.abs(rel, seg[2], seg[3])
			c.path = append(c.path, QuadTo{x1, y1, x, y})
			c.cntlX, c.cntlY = x1, y1
			c.placeX, c.placeY = x, y
			c.lastCmd = 'Q'
		case 'T':
			x1, y1 := c.placeX, c.placeY
			if c.lastCmd == 'Q' || c.lastCmd == 'T' {
				x1, y1 = 2*c.placeX-c.cntlX, 2*c.placeY-c.cntlY
			}
			x, y := c.abs(rel, seg[0], seg[1])
			c.path = append(c.path, QuadTo{x1, y1, x, y})
			c.cntlX, c.cntlY = x1, y1
			c.placeX, c.placeY = x, y
			c.lastCmd = 'T'
		case 'A':
			if seg[3] != 0 && seg[3] != 1 {
				return &MalformedPathError{Reason: "large-arc-flag must be 0 or 1", Data: c.data}
			}
			if seg[4] != 0 && seg[4] != 1 {
				return &MalformedPathError{Reason: "sweep-flag must be 0 or 1", Data: c.data}
			}
			x, y := c.abs(rel, seg[5], seg[6])
			c.path = append(c.path, ArcTo{
				Rx: seg[0], Ry: seg[1], Rotation: seg[2],
				LargeArc: seg[3] == 1, Sweep: seg[4] == 1,
				X: x, Y: y,
			})
			c.placeX, c.placeY = x, y
			c.lastCmd = 'A'
		}
	}
	return nil
}
