// Implements a draw.io backend for normalized SVG paths,
// emitting the path XML dialect of the custom-shape editor.
// Shapes converted this way keep their stroke and fill editable in
// draw.io, unlike images imported directly.
package drawio

import (
	"strconv"
	"strings"

	"github.com/drawio-tools/svgshape/svgpath"
)

// assert interface conformance
var _ svgpath.Drawer = (*Writer)(nil)

// Writer collects draw.io path tags, one per drawing command:
// <move>, <line>, <quad>, <curve>, <arc> and <close/>.
// The zero value is ready for use.
type Writer struct {
	tags []string
}

func (w *Writer) Start(x, y float64) {
	w.tag("move", attrs{{"x", x}, {"y", y}})
}

func (w *Writer) Line(x, y float64) {
	w.tag("line", attrs{{"x", x}, {"y", y}})
}

// QuadBezier emits a <quad> tag; the end point is labeled x2/y2.
func (w *Writer) QuadBezier(cx, cy, x, y float64) {
	w.tag("quad", attrs{{"x1", cx}, {"y1", cy}, {"x2", x}, {"y2", y}})
}

// CubeBezier emits a <curve> tag; the end point is labeled x3/y3.
func (w *Writer) CubeBezier(cx1, cy1, cx2, cy2, x, y float64) {
	w.tag("curve", attrs{
		{"x1", cx1}, {"y1", cy1},
		{"x2", cx2}, {"y2", cy2},
		{"x3", x}, {"y3", y},
	})
}

func (w *Writer) Arc(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	w.tag("arc", attrs{
		{"rx", rx}, {"ry", ry},
		{"x-axis-rotation", rotation},
		{"large-arc-flag", boolFlag(largeArc)},
		{"sweep-flag", boolFlag(sweep)},
		{"x", x}, {"y", y},
	})
}

func (w *Writer) Stop(closeLoop bool) {
	if closeLoop {
		w.tags = append(w.tags, "<close/>")
	}
}

type attr struct {
	name  string
	value float64
}

type attrs []attr

func (w *Writer) tag(name string, as attrs) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte(' ')
	for _, a := range as {
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(fmtNum(a.value))
		b.WriteString(`" `)
	}
	b.WriteString("/>")
	w.tags = append(w.tags, b.String())
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// fmtNum formats n with at most 6 decimal places, cropping trailing
// zeros and the decimal point: 4.0 -> "4", 4.500000 -> "4.5".
func fmtNum(n float64) string {
	s := strconv.FormatFloat(n, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

// PathXML serializes the given paths into one <path> element.
// Multiple input paths are merged: in the draw.io editor, later
// <path> elements would overpaint the ones before.
func PathXML(paths ...svgpath.Path) string {
	var w Writer
	for _, p := range paths {
		p.DrawTo(&w)
	}
	if len(w.tags) == 0 {
		return "<path>\n</path>"
	}
	return "<path>\n\t" + strings.Join(w.tags, "\n\t") + "\n</path>"
}
