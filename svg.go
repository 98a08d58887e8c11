package viewcurve

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a curve to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c Curve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, opts)
	return sb.String()
}

// WriteSVG converts a curve to a string of SVG path commands and writes it to
// w. Coordinates are written as they are; views are y-up, so callers
// typically flip the drawing.
//
// Lines become a single "L" command, arcs an "A" command, and circles two
// half arcs. Curves that project to a line are drawn as their projection.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, c Curve, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}

	if c.IsStraightLine(true) {
		writef("M%s L%s", pt(c.Start), pt(c.End))
		return err
	}

	a, aerr := c.Arc()
	if aerr != nil {
		return aerr
	}
	r := format(math.Abs(a.Radius))
	if c.IsCircle() {
		p0 := pointOnCircle(a.Center, a.Radius, 0)
		p1 := pointOnCircle(a.Center, a.Radius, math.Pi)
		writef("M%s A%s,%s 0 0,1 %s A%s,%s 0 0,1 %s Z", pt(p0), r, r, pt(p1), r, r, pt(p0))
		return err
	}

	large, sweep := 0, 0
	if math.Abs(a.SweepAngle) > math.Pi {
		large = 1
	}
	if a.SweepAngle > 0 {
		sweep = 1
	}
	writef("M%s A%s,%s 0 %d,%d %s", pt(c.Start), r, r, large, sweep, pt(c.End))
	return err
}
