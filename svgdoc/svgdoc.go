// Locates path geometry in SVG documents.
// Elements are traversed with their transform attributes composed
// down the tree, so every collected path carries absolute, fully
// transformed coordinates, ready for an output driver such as
// svgshape/drawio.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/drawio-tools/svgshape/svgpath"
)

// ErrorMode defines how unsupported SVG elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported elements with a log message.
	WarnErrorMode
	// StrictErrorMode fails on the first unsupported element.
	StrictErrorMode
)

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Shape holds the geometry collected from a parsed SVG document.
type Shape struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Paths        []svgpath.Path
}

// docCursor is used while parsing SVG files
type docCursor struct {
	shape          *Shape
	transformStack []svgpath.Matrix2D
	path           svgpath.Path // set by the element funcs
	points         []float64
	errorMode      ErrorMode
	inTitleText    bool
	inDescText     bool
	seenRoot       bool
}

func (c *docCursor) transform() svgpath.Matrix2D {
	return c.transformStack[len(c.transformStack)-1]
}

// pushTransform composes the element's transform attribute, if any,
// onto the parent transform and pushes the result.
func (c *docCursor) pushTransform(attrs []xml.Attr) error {
	m := c.transform()
	for _, attr := range attrs {
		if attr.Name.Local != "transform" {
			continue
		}
		ops, err := ParseTransform(attr.Value)
		if err != nil {
			return err
		}
		m = m.Mult(svgpath.Compose(ops))
	}
	c.transformStack = append(c.transformStack, m)
	return nil
}

// ReadShapeStream reads a shape from the given io.Reader.
// This only supports the geometry subset of SVG: paths and the basic
// shapes that reduce to paths. errMode determines if the reader
// ignores, errors out, or logs a warning when it does not handle an
// element found in the document.
func ReadShapeStream(stream io.Reader, errMode ErrorMode) (*Shape, error) {
	shape := &Shape{}
	cursor := &docCursor{
		shape:          shape,
		transformStack: []svgpath.Matrix2D{svgpath.Identity},
		errorMode:      errMode,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !cursor.seenRoot {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return shape, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			cursor.seenRoot = true
			if err = cursor.pushTransform(se.Attr); err != nil {
				return shape, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return shape, err
			}
		case xml.EndElement:
			// pop transform
			cursor.transformStack = cursor.transformStack[:len(cursor.transformStack)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				shape.Titles[len(shape.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				shape.Descriptions[len(shape.Descriptions)-1] += string(se)
			}
		}
	}
	return shape, nil
}

// ReadShapeFile reads a shape from the named SVG file.
// See ReadShapeStream.
func ReadShapeFile(svgFile string, errMode ErrorMode) (*Shape, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadShapeStream(fin, errMode)
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		return c.handleError("cannot process svg element " + se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return err
	}
	if len(c.path) > 0 {
		// the element produced geometry: remap it through the
		// composed transform and collect it
		c.shape.Paths = append(c.shape.Paths, c.path.Transform(c.transform()))
		c.path = nil
	}
	return nil
}
