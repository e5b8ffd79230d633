package svgpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordsOf(c Command) []float64 {
	switch c := c.(type) {
	case MoveTo:
		return []float64{c.X, c.Y}
	case LineTo:
		return []float64{c.X, c.Y}
	case QuadTo:
		return []float64{c.X1, c.Y1, c.X, c.Y}
	case CubicTo:
		return []float64{c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y}
	case ArcTo:
		return []float64{c.Rx, c.Ry, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.X, c.Y}
	case Close:
		return nil
	}
	return nil
}

func assertPathNear(t *testing.T, want, got Path) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.IsType(t, want[i], got[i], "command %d", i)
		wc, gc := coordsOf(want[i]), coordsOf(got[i])
		require.Len(t, gc, len(wc), "command %d", i)
		for j := range wc {
			assert.InDelta(t, wc[j], gc[j], 1e-9, "command %d, coordinate %d", i, j)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		d    string
		want Path
	}{
		{
			"horizontal and vertical",
			"M10,10 h80 v50 l-30,20 H10 Z",
			Path{
				MoveTo{10, 10},
				LineTo{90, 10},
				LineTo{90, 60},
				LineTo{60, 80},
				LineTo{10, 80},
				Close{},
			},
		},
		{
			"repeated H and V",
			"M0,0 h10 20 30 v40 50",
			Path{
				MoveTo{0, 0},
				LineTo{10, 0},
				LineTo{30, 0},
				LineTo{60, 0},
				LineTo{60, 40},
				LineTo{60, 90},
			},
		},
		{
			"relative curve",
			"M 30,30 c 10,20 25,00 50,10",
			Path{
				MoveTo{30, 30},
				CubicTo{40, 50, 55, 30, 80, 40},
			},
		},
		{
			"relative quad",
			"M 10, 20 q 25,-10 30,20",
			Path{
				MoveTo{10, 20},
				QuadTo{35, 10, 40, 40},
			},
		},
		{
			"relative arc",
			"M 6,10 a 6 4 10 1 0 8,0",
			Path{
				MoveTo{6, 10},
				ArcTo{Rx: 6, Ry: 4, Rotation: 10, LargeArc: true, Sweep: false, X: 14, Y: 10},
			},
		},
		{
			"implicit lineto",
			"M 10 10 20 20 30 30",
			Path{MoveTo{10, 10}, LineTo{20, 20}, LineTo{30, 30}},
		},
		{
			"implicit relative lineto",
			"M 10 10 m 0 5 20 30 40 40",
			Path{MoveTo{10, 10}, MoveTo{10, 15}, LineTo{30, 45}, LineTo{70, 85}},
		},
		{
			"repeated lineto",
			"M 0 0 L 10 10 20 20 30 30",
			Path{MoveTo{0, 0}, LineTo{10, 10}, LineTo{20, 20}, LineTo{30, 30}},
		},
		{
			"repeated curveto",
			"M 0 0 C 1 1 2 2 3 3 4 4 5 5 6 6",
			Path{
				MoveTo{0, 0},
				CubicTo{1, 1, 2, 2, 3, 3},
				CubicTo{4, 4, 5, 5, 6, 6},
			},
		},
		{
			// reflected control point: x1 = 2*95-65 = 125, y1 = 2*80-10 = 150
			"smooth curve after curve",
			"M 10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80",
			Path{
				MoveTo{10, 80},
				CubicTo{40, 10, 65, 10, 95, 80},
				CubicTo{125, 150, 150, 150, 180, 80},
			},
		},
		{
			// no previous curve: the first control point is the pen itself
			"smooth curve without preceding curve",
			"M 10 80 S 150 150, 180 80",
			Path{
				MoveTo{10, 80},
				CubicTo{10, 80, 150, 150, 180, 80},
			},
		},
		{
			"relative smooth curve",
			"m 10 80 c 30 -70, 55 -70, 85 0 s 55 70, 85 0",
			Path{
				MoveTo{10, 80},
				CubicTo{40, 10, 65, 10, 95, 80},
				CubicTo{125, 150, 150, 150, 180, 80},
			},
		},
		{
			"smooth quad after quad",
			"M 0 0 Q 10 20 30 0 T 60 0",
			Path{
				MoveTo{0, 0},
				QuadTo{10, 20, 30, 0},
				QuadTo{50, -20, 60, 0},
			},
		},
		{
			"smooth quad without preceding quad",
			"M 5 5 T 60 0",
			Path{MoveTo{5, 5}, QuadTo{5, 5, 60, 0}},
		},
		{
			"minus without space",
			"M 50 50 L 10-5",
			Path{MoveTo{50, 50}, LineTo{10, -5}},
		},
		{
			"scientific notation",
			"M 50 50 L 100 1E2",
			Path{MoveTo{50, 50}, LineTo{100, 100}},
		},
		{
			"negative exponent",
			"M 50 50 l -0.1 1E-2 ",
			Path{MoveTo{50, 50}, LineTo{49.9, 50.01}},
		},
		{
			"leading dot and signs",
			"M .5 .5 L -.5 +.5 ",
			Path{MoveTo{0.5, 0.5}, LineTo{-0.5, 0.5}},
		},
		{
			"mixed exponent forms",
			"M 5 6 L 1e2 5 V 1E+2 L -.5e-2 33",
			Path{
				MoveTo{5, 6},
				LineTo{100, 5},
				LineTo{100, 100},
				LineTo{-0.005, 33},
			},
		},
		{
			"leading plus",
			"M +10 -0",
			Path{MoveTo{10, 0}},
		},
		{
			"superfluous separators",
			"M 10 10,, 20 20 30 30",
			Path{MoveTo{10, 10}, LineTo{20, 20}, LineTo{30, 30}},
		},
		{
			"concatenated decimals",
			"L1.5.6",
			Path{LineTo{1.5, 0.6}},
		},
		{
			"exponent then decimal",
			"L1e-2.3",
			Path{LineTo{0.01, 0.3}},
		},
		{
			"whitespace only",
			"       ",
			nil,
		},
		{
			"multiple subpaths",
			"M 0 0 L 1 1 Z M 10 10 L 11 11 Z",
			Path{
				MoveTo{0, 0}, LineTo{1, 1}, Close{},
				MoveTo{10, 10}, LineTo{11, 11}, Close{},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.d)
			require.NoError(t, err)
			assertPathNear(t, c.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		d    string
	}{
		{"unknown command letter", "M10,10 X40"},
		{"rogue E", "M 20 21 E 20"},
		{"rogue E at begin", "E 11 12 V 42"},
		{"too few values for C", "C 1 2 3 4 5"},
		{"too few values for A", "A 1 1 0 0 1 5"},
		{"too few values for Q", "Q 1 1 0"},
		{"lineto without arguments", "M 0 0 L"},
		{"arguments after Z", "M 0 0 Z 1 2"},
		{"invalid character", "M 10 10 # 20"},
		{"arc large flag out of range", "A 1 1 0 2 1 5 5"},
		{"relative arc large flag out of range", "a 1 1 0 2 1 5 5"},
		{"arc sweep flag out of range", "A 1 1 0 0 3 5 5"},
		{"relative arc sweep flag out of range", "a 1 1 0 0 3 5 5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.d)
			require.Error(t, err)
			var mpe *MalformedPathError
			assert.True(t, errors.As(err, &mpe))
			assert.Nil(t, got, "no partial result on error")
		})
	}
}

// A path written with absolute M/L/C/Q/Z only must come back verbatim.
func TestParseAbsoluteIdentity(t *testing.T) {
	got, err := Parse("M 20,30 L 30,30 L 30,40 L 20,40")
	require.NoError(t, err)
	assert.Equal(t, Path{
		MoveTo{20, 30},
		LineTo{30, 30},
		LineTo{30, 40},
		LineTo{20, 40},
	}, got)
}

// Relative commands starting from (0,0) parse to the same commands as
// their expanded absolute form.
func TestParseRelativeEqualsAbsolute(t *testing.T) {
	rel, err := Parse("m 20,30 l 10,0 l 0,10 l -10,0 z")
	require.NoError(t, err)
	abs, err := Parse("M 20,30 L 30,30 L 30,40 L 20,40 Z")
	require.NoError(t, err)
	assert.Equal(t, abs, rel)
}

func TestParseImplicitRepetition(t *testing.T) {
	short, err := Parse("L 10,10 20,20")
	require.NoError(t, err)
	long, err := Parse("L 10,10 L 20,20")
	require.NoError(t, err)
	assert.Equal(t, long, short)
}

// Z resets the pen to the subpath start, so a relative command after
// it is offset from the MoveTo point.
func TestParseCloseResetsPen(t *testing.T) {
	got, err := Parse("M 10 10 L 20 20 Z l 5 5")
	require.NoError(t, err)
	assert.Equal(t, Path{
		MoveTo{10, 10},
		LineTo{20, 20},
		Close{},
		LineTo{15, 15},
	}, got)
}

// A smooth curve only reflects when the previous command is of the
// matching curve family: a quad does not prime an S.
func TestParseNoReflectionAcrossFamilies(t *testing.T) {
	got, err := Parse("M 0 0 Q 10 20 30 0 S 50 50 60 0")
	require.NoError(t, err)
	assert.Equal(t, Path{
		MoveTo{0, 0},
		QuadTo{10, 20, 30, 0},
		CubicTo{30, 0, 50, 50, 60, 0},
	}, got)
}

func TestToSVGPathRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M 20,30 L 30,30 L 30,40 L 20,40 Z",
		"M 10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80",
		"M 6,10 a 6 4 10 1 0 8,0",
		"M 10, 20 q 25,-10 30,20 T 80 80",
	} {
		p, err := Parse(d)
		require.NoError(t, err)
		again, err := Parse(p.ToSVGPath())
		require.NoError(t, err)
		assert.Equal(t, p, again, "round trip of %q via %q", d, p.ToSVGPath())
	}
}
