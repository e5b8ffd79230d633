package drawio

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/drawio-tools/svgshape/svgpath"
)

// ShapeXML wraps the given paths in the full custom-shape template
// understood by draw.io's Edit Shape dialog. w and h size the shape
// canvas, typically the source document's viewBox. Stroke and fill
// are left to the editor: the foreground ends with <fillstroke/> so
// the user's style applies to the whole geometry.
func ShapeXML(name string, w, h float64, paths ...svgpath.Path) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<shape name=\"%s\" h=\"%s\" w=\"%s\" aspect=\"variable\" strokewidth=\"inherit\">\n",
		escape(name), fmtNum(h), fmtNum(w))
	b.WriteString("<connections/>\n<foreground>\n")
	b.WriteString(PathXML(paths...))
	b.WriteString("\n<fillstroke/>\n</foreground>\n</shape>")
	return b.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) // never fails on a bytes.Buffer
	return buf.String()
}
