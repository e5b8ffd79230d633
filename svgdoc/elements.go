package svgdoc

import (
	"encoding/xml"
	"errors"
	"log"

	"github.com/drawio-tools/svgshape/svgpath"
)

type elementFunc func(c *docCursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"g":        gF,
	"path":     pathF,
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"rect":     rectF,
	"title":    titleF,
	"desc":     descF,
}

func (c *docCursor) handleError(errStr string) error {
	if c.errorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.errorMode == WarnErrorMode {
		log.Println(errStr)
	}
	return nil
}

func svgF(c *docCursor, attrs []xml.Attr) error {
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errors.New("viewBox needs 4 values")
			}
			c.shape.ViewBox = Bounds{c.points[0], c.points[1], c.points[2], c.points[3]}
		case "width":
			width, err = parseDimension(attr.Value)
		case "height":
			height, err = parseDimension(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.shape.ViewBox.W == 0 {
		c.shape.ViewBox.W = width
	}
	if c.shape.ViewBox.H == 0 {
		c.shape.ViewBox.H = height
	}
	return nil
}

func gF(*docCursor, []xml.Attr) error { return nil } // g only pushes its transform

func pathF(c *docCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p, err := svgpath.Parse(attr.Value)
		if err != nil {
			return err
		}
		c.path = p
	}
	return nil
}

func lineF(c *docCursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseDimension(attr.Value)
		case "y1":
			y1, err = parseDimension(attr.Value)
		case "x2":
			x2, err = parseDimension(attr.Value)
		case "y2":
			y2, err = parseDimension(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if x1 == x2 && y1 == y2 { // not drawn, but not an error
		return nil
	}
	c.path = svgpath.Path{svgpath.MoveTo{X: x1, Y: y1}, svgpath.LineTo{X: x2, Y: y2}}
	return nil
}

func polylineF(c *docCursor, attrs []xml.Attr) error {
	c.points = c.points[:0] // the buffer may hold a previous element's numbers
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points)%2 != 0 {
			return errors.New("polyline has an odd number of points")
		}
	}
	if len(c.points) >= 4 {
		c.path = svgpath.Path{svgpath.MoveTo{X: c.points[0], Y: c.points[1]}}
		for i := 2; i < len(c.points)-1; i += 2 {
			c.path = append(c.path, svgpath.LineTo{X: c.points[i], Y: c.points[i+1]})
		}
	}
	return nil
}

func polygonF(c *docCursor, attrs []xml.Attr) error {
	err := polylineF(c, attrs)
	if len(c.path) > 0 {
		c.path = append(c.path, svgpath.Close{})
	}
	return err
}

func rectF(c *docCursor, attrs []xml.Attr) error {
	var x, y, w, h float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseDimension(attr.Value)
		case "y":
			y, err = parseDimension(attr.Value)
		case "width":
			w, err = parseDimension(attr.Value)
		case "height":
			h, err = parseDimension(attr.Value)
		case "rx", "ry":
			return c.handleError("rounded rect corners are not supported")
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return nil
	}
	c.path = svgpath.Path{
		svgpath.MoveTo{X: x, Y: y},
		svgpath.LineTo{X: x + w, Y: y},
		svgpath.LineTo{X: x + w, Y: y + h},
		svgpath.LineTo{X: x, Y: y + h},
		svgpath.Close{},
	}
	return nil
}

func titleF(c *docCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.shape.Titles = append(c.shape.Titles, "")
	return nil
}

func descF(c *docCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.shape.Descriptions = append(c.shape.Descriptions, "")
	return nil
}
