// Command svg2drawio converts SVG path geometry to the custom-shape
// XML understood by draw.io, keeping stroke and fill editable.
package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	xmlminify "github.com/tdewolff/minify/v2/xml"

	"github.com/drawio-tools/svgshape/drawio"
	"github.com/drawio-tools/svgshape/svgdoc"
	"github.com/drawio-tools/svgshape/svgpath"
)

type Convert struct {
	Output    string `short:"o" desc:"Output file (default stdout)"`
	Name      string `short:"n" default:"Shape" desc:"Shape name used in the template"`
	PathData  string `short:"d" desc:"Convert a literal path data string instead of a file"`
	Transform string `short:"t" desc:"SVG transform attribute applied to the -d path data"`
	PathOnly  bool   `desc:"Emit only the <path> element, without the shape template"`
	Compact   bool   `short:"c" desc:"Minify the XML output"`
	Strict    bool   `desc:"Fail on unsupported SVG elements"`
	Input     string `index:"0" desc:"Input SVG file"`
}

type Gear struct {
	Output string  `short:"o" desc:"Output file (default stdout)"`
	Name   string  `short:"n" default:"Gear" desc:"Shape name used in the template"`
	Teeth  int     `default:"8" desc:"Number of teeth"`
	Outer  float64 `default:"50" desc:"Outer radius"`
	Inner  float64 `default:"40" desc:"Inner radius"`
	Ratio  float64 `default:"0.5" desc:"Tooth width as a fraction of the pitch"`
	Flat   bool    `desc:"Straight tooth tips instead of arcs"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "SVG path to draw.io custom shape converter")
	root.AddCmd(&Gear{}, "gear", "Generate a cogwheel shape")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" && cmd.PathData == "" {
		return argp.ShowUsage
	}

	var out string
	if cmd.PathData != "" {
		ops, err := svgdoc.ParseTransform(cmd.Transform)
		if err != nil {
			return err
		}
		p, err := svgpath.Convert(cmd.PathData, ops)
		if err != nil {
			return fmt.Errorf("could not convert path: %w", err)
		}
		if cmd.PathOnly {
			out = drawio.PathXML(p)
		} else {
			// a literal path carries no viewBox, size the canvas
			// from the geometry instead
			b := p.Bounds()
			out = drawio.ShapeXML(cmd.Name, b.MaxX, b.MaxY, p)
		}
	} else {
		errMode := svgdoc.WarnErrorMode
		if cmd.Strict {
			errMode = svgdoc.StrictErrorMode
		}
		shape, err := svgdoc.ReadShapeFile(cmd.Input, errMode)
		if err != nil {
			return fmt.Errorf("could not convert %s: %w", cmd.Input, err)
		}
		if cmd.PathOnly {
			out = drawio.PathXML(shape.Paths...)
		} else {
			w, h := shape.ViewBox.W, shape.ViewBox.H
			if w == 0 || h == 0 {
				// no usable viewBox or dimensions in the document
				var all svgpath.Path
				for _, p := range shape.Paths {
					all = append(all, p...)
				}
				b := all.Bounds()
				w, h = b.MaxX, b.MaxY
			}
			out = drawio.ShapeXML(cmd.Name, w, h, shape.Paths...)
		}
	}

	return write(cmd.Output, out, cmd.Compact)
}

func (cmd *Gear) Run() error {
	d := svgpath.GearPath(cmd.Teeth, cmd.Outer, cmd.Inner, cmd.Ratio)
	if cmd.Flat {
		d = svgpath.GearPathFlat(cmd.Teeth, cmd.Outer, cmd.Inner, cmd.Ratio)
	}
	p, err := svgpath.Parse(d)
	if err != nil {
		return err
	}
	// recenter so the shape canvas starts at the origin
	p = p.Transform(svgpath.Identity.Translate(cmd.Outer, cmd.Outer))
	out := drawio.ShapeXML(cmd.Name, 2*cmd.Outer, 2*cmd.Outer, p)
	return write(cmd.Output, out, false)
}

func write(path, out string, compact bool) error {
	if compact {
		m := minify.New()
		m.AddFunc("text/xml", xmlminify.Minify)
		var err error
		if out, err = m.String("text/xml", out); err != nil {
			return err
		}
	}
	if path == "" {
		fmt.Println(out)
		return nil
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}
