package viewcurve

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns the unit vector pointing from P0 to P1.
func (l Line) Direction() (Vec2, error) {
	return l.P1.Sub(l.P0).Normalize()
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// DistanceToExtended returns the perpendicular distance from pt to the
// infinite line through P0 and P1.
//
// It returns [ErrDegenerateVector] if P0 and P1 coincide.
func (l Line) DistanceToExtended(pt Point) (float64, error) {
	dir, err := l.Direction()
	if err != nil {
		return 0, err
	}
	return math.Abs(l.P0.Sub(pt).Cross(dir)), nil
}

// RayContains reports whether pt lies on the ray that starts at P0 and
// passes through P1: pt is P0 itself, or the cosine between P0→P1 and P0→pt
// is within 0.001 of 1. Distance along the ray is not bounded.
func (l Line) RayContains(pt Point) bool {
	const tolerance = 0.001

	v1 := l.P0.Sub(l.P1)
	v2 := l.P0.Sub(pt)
	mag2 := v2.Hypot()
	if mag2 == 0 {
		return true
	}
	mag1 := v1.Hypot()
	if mag1 == 0 {
		return false
	}
	return math.Abs(v1.Dot(v2)/(mag1*mag2)-1) < tolerance
}
