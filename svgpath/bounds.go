package svgpath

import "math"

// Rect is an axis aligned bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) W() float64 { return r.MaxX - r.MinX }
func (r Rect) H() float64 { return r.MaxY - r.MinY }

func (r Rect) extend(x, y float64) Rect {
	r.MinX = math.Min(r.MinX, x)
	r.MinY = math.Min(r.MinY, y)
	r.MaxX = math.Max(r.MaxX, x)
	r.MaxY = math.Max(r.MaxY, y)
	return r
}

// Bounds returns the bounding rectangle of the path, used to size a
// shape canvas when the source document does not provide one. Bezier
// extrema are solved exactly from the derivative roots; arc segments
// contribute their end points only, so a box around a sweeping arc
// may be short by up to the arc radii.
func (p Path) Bounds() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	var penX, penY, startX, startY float64
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			penX, penY = op.X, op.Y
			startX, startY = op.X, op.Y
			r = r.extend(penX, penY)
		case LineTo:
			r = r.extend(op.X, op.Y)
			penX, penY = op.X, op.Y
		case QuadTo:
			r = extendCurve(r, quadCurve{penX, penY, op.X1, op.Y1, op.X, op.Y})
			penX, penY = op.X, op.Y
		case CubicTo:
			r = extendCurve(r, cubicCurve{penX, penY, op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y})
			penX, penY = op.X, op.Y
		case ArcTo:
			r = r.extend(op.X, op.Y)
			penX, penY = op.X, op.Y
		case Close:
			penX, penY = startX, startY
		}
	}
	if r.MinX > r.MaxX { // no geometry seen
		return Rect{}
	}
	return r
}

// curve is one bezier segment, parameterized over t in [0,1].
type curve interface {
	// at evaluates the curve point at time t
	at(t float64) (x, y float64)
	// criticalPoints returns the t values zeroing the derivative,
	// per axis, not filtered to [0,1]
	criticalPoints() (tX, tY []float64)
}

// extendCurve grows r to cover the curve's end points and every
// critical point falling inside the segment.
func extendCurve(r Rect, c curve) Rect {
	tX, tY := c.criticalPoints()
	for _, t := range append(append(tX, 0, 1), tY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		r = r.extend(c.at(t))
	}
	return r
}

type quadCurve struct {
	p0x, p0y, p1x, p1y, p2x, p2y float64
}

// x = (p0 - 2p1 + p2)t^2 + 2(p1 - p0)t + p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0-2*p1+p2)*t*t + 2*(p1-p0)*t + p0
}

func (c quadCurve) at(t float64) (x, y float64) {
	return bezierQuad(c.p0x, c.p1x, c.p2x, t), bezierQuad(c.p0y, c.p1y, c.p2y, t)
}

// the quadratic derivative is linear: 2(p0 - 2p1 + p2)t + 2(p1 - p0)
func quadRoot(p0, p1, p2 float64) []float64 {
	a := p0 - 2*p1 + p2
	if a == 0 {
		return nil
	}
	return []float64{(p0 - p1) / a}
}

func (c quadCurve) criticalPoints() (tX, tY []float64) {
	return quadRoot(c.p0x, c.p1x, c.p2x), quadRoot(c.p0y, c.p1y, c.p2y)
}

type cubicCurve struct {
	p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y float64
}

// x = (p3 - 3p2 + 3p1 - p0)t^3 + 3(p2 - 2p1 + p0)t^2 + 3(p1 - p0)t + p0
func bezierCubic(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		3*(p2-2*p1+p0)*t*t +
		3*(p1-p0)*t +
		p0
}

func (c cubicCurve) at(t float64) (x, y float64) {
	return bezierCubic(c.p0x, c.p1x, c.p2x, c.p3x, t),
		bezierCubic(c.p0y, c.p1y, c.p2y, c.p3y, t)
}

func (c cubicCurve) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(c.p0x, c.p1x, c.p2x, c.p3x)
	aY, bY, cY := cubicDerivative(c.p0y, c.p1y, c.p2y, c.p3y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

// the cubic derivative taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*(p3-3*p2+3*p1-p0), 6*(p2-2*p1+p0), 3 * (p1 - p0)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
