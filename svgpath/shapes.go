package svgpath

import (
	"fmt"
	"math"
	"strings"
)

// Generators for paths that involve repetition or are based on a
// geometric formula.

// GearPath returns path data for a cogwheel with n teeth, outer
// radius R, inner radius r, and tooth width `ratio` as a fraction of
// the pitch. Tooth tips and roots are convex arcs.
func GearPath(n int, R, r, ratio float64) string {
	return gearPath(n, R, r, ratio, false)
}

// GearPathFlat is GearPath with straight tooth tips instead of arcs.
func GearPathFlat(n int, R, r, ratio float64) string {
	return gearPath(n, R, r, ratio, true)
}

func gearPath(n int, R, r, ratio float64, flat bool) string {
	pitch := 2 * math.Pi / float64(n)
	tip := pitch * ratio
	// start at -tip/2 on the outer radius
	theta0 := -tip / 2
	d := []string{fmt.Sprintf("M %.3f,%.3f", R*math.Cos(theta0), R*math.Sin(theta0))}
	for i := 0; i < n; i++ {
		a1 := float64(i)*pitch + tip/2
		a2 := float64(i+1)*pitch - tip/2
		x1, y1 := R*math.Cos(a1), R*math.Sin(a1)
		x2, y2 := r*math.Cos(a1), r*math.Sin(a1)
		x3, y3 := r*math.Cos(a2), r*math.Sin(a2)
		x4, y4 := R*math.Cos(a2), R*math.Sin(a2)
		if flat {
			// straight line across the tooth tip
			d = append(d, fmt.Sprintf("L %.3f,%.3f", x1, y1))
		} else {
			// outer arc, sweep flag chosen to keep it convex
			d = append(d, fmt.Sprintf("A %.3f,%.3f 0 0,0 %.3f,%.3f", R, R, x1, y1))
		}
		// radial to the root
		d = append(d, fmt.Sprintf("L %.3f,%.3f", x2, y2))
		// root arc
		d = append(d, fmt.Sprintf("A %.3f,%.3f 0 0,1 %.3f,%.3f", r, r, x3, y3))
		// radial back to the outer radius
		d = append(d, fmt.Sprintf("L %.3f,%.3f", x4, y4))
	}
	d = append(d, "Z")
	return strings.Join(d, " ")
}
