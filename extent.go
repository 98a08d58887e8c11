package viewcurve

import (
	"fmt"
	"iter"
)

// ExtentDirection names one side of a view.
type ExtentDirection uint8

const (
	Top ExtentDirection = iota
	Bottom
	Left
	Right
)

// ExtentDirections lists all directions in a stable order.
var ExtentDirections = [...]ExtentDirection{Top, Bottom, Left, Right}

func (d ExtentDirection) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("ExtentDirection(%d)", uint8(d))
	}
}

// CenterPoint returns the center of an arc or circle, or the midpoint of the
// endpoints for all other curves.
func (c Curve) CenterPoint() Point {
	if c.Type == ArcCurve || c.Type == CircleCurve {
		if center, ok := c.Center.Get(); ok {
			return center
		}
	}
	return c.Start.Midpoint(c.End)
}

// CenterCoordinate returns the x (or y, if useX is false) coordinate of
// [Curve.CenterPoint], rounded to 4 decimal places.
func (c Curve) CenterCoordinate(useX bool) float64 {
	return c.centerCoordinate(useX, DefaultDecimalPlaces)
}

func (c Curve) centerCoordinate(useX bool, places int) float64 {
	p := c.CenterPoint()
	if useX {
		return Round(p.X, places)
	}
	return Round(p.Y, places)
}

// LongerCurve returns the longer of two curves, comparing lengths at 2
// decimal places. Ties favor c2.
func LongerCurve(c1, c2 Curve) Curve {
	if c1.Length(lengthPlaces) > c2.Length(lengthPlaces) {
		return c1
	}
	return c2
}

// ExtentCurve returns whichever curve lies farther in direction dir, judged
// by [Curve.CenterCoordinate]. Exact ties go to [LongerCurve]. If only one
// curve is set, it is returned.
func ExtentCurve(c1, c2 Option[Curve], dir ExtentDirection) Option[Curve] {
	return extentCurve(c1, c2, dir, DefaultDecimalPlaces)
}

func extentCurve(c1, c2 Option[Curve], dir ExtentDirection, places int) Option[Curve] {
	a, ok := c1.Get()
	if !ok {
		return c2
	}
	b, ok := c2.Get()
	if !ok {
		return c1
	}

	useX := dir == Left || dir == Right
	va := a.centerCoordinate(useX, places)
	vb := b.centerCoordinate(useX, places)
	if va == vb {
		return Some(LongerCurve(a, b))
	}
	greater := va > vb
	if dir == Right || dir == Top {
		if greater {
			return c1
		}
		return c2
	}
	if greater {
		return c2
	}
	return c1
}

// ExtentCurves returns the top-, bottom-, left- and right-most curves of a
// sequence. Only curves that are horizontal or vertical, including circles
// projected to such lines, take part. All four directions are present in the
// result, with empty options if no curve qualified.
//
// Orientation and center coordinates are compared at 4 decimal places. See
// [ExtentCurvesAt] for other precisions.
func ExtentCurves(curves iter.Seq[Curve]) map[ExtentDirection]Option[Curve] {
	return ExtentCurvesAt(curves, DefaultDecimalPlaces)
}

// ExtentCurvesAt is like [ExtentCurves], but rounds to places when testing
// orientation and comparing center coordinates.
func ExtentCurvesAt(curves iter.Seq[Curve], places int) map[ExtentDirection]Option[Curve] {
	var extents [len(ExtentDirections)]Option[Curve]
	for c := range curves {
		if !c.IsHorizontal(places, true) && !c.IsVertical(places, true) {
			continue
		}
		for i, dir := range ExtentDirections {
			extents[i] = extentCurve(extents[i], Some(c), dir, places)
		}
	}

	out := make(map[ExtentDirection]Option[Curve], len(extents))
	for i, dir := range ExtentDirections {
		out[dir] = extents[i]
	}
	return out
}
