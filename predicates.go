package viewcurve

import (
	"fmt"
	"math"
)

// IsStraightLine reports whether c is a line segment. With projected set,
// curves whose projection is a line segment count as well.
func (c Curve) IsStraightLine(projected bool) bool {
	return c.Type == LineCurve || (projected && c.ProjectedType() == LineCurve)
}

func (c Curve) IsCircle() bool {
	return c.Type == CircleCurve
}

// IsArc reports whether c is a circular arc. With projectedOnly set, only the
// type of the projection is considered; otherwise either type may be an arc.
func (c Curve) IsArc(projectedOnly bool) bool {
	if projectedOnly {
		return c.ProjectedType() == ArcCurve
	}
	return c.Type == ArcCurve || c.ProjectedType() == ArcCurve
}

// Length returns the length of the curve in model units, rounded to the given
// number of decimal places.
//
// Lines measure the distance between their endpoints. Other curves use
// [Curve.Arclen] if set, and their circular geometry otherwise.
func (c Curve) Length(places int) float64 {
	var l float64
	if c.Type == LineCurve {
		l = c.Start.Distance(c.End)
	} else {
		l = c.pathLength()
	}
	return Round(l/c.Scale, places)
}

func (c Curve) pathLength() float64 {
	if l, ok := c.Arclen.Get(); ok {
		return l
	}
	a, err := c.Arc()
	if err != nil {
		return math.NaN()
	}
	return a.Arclen()
}

// Slope returns Δy/Δx of a straight curve, with both deltas rounded to 4
// decimal places and the result rounded to places.
//
// It returns [ErrUndefinedSlope] for vertical lines, whose Δx rounds to zero,
// and [ErrInvalidCurveType] for curves that aren't straight even when
// projected.
func (c Curve) Slope(places int) (float64, error) {
	if !c.IsStraightLine(true) {
		return 0, fmt.Errorf("%w: slope of %s", ErrInvalidCurveType, c.Type)
	}
	dx := Round(c.End.X-c.Start.X, 4)
	dy := Round(c.End.Y-c.Start.Y, 4)
	if dx == 0 {
		return 0, ErrUndefinedSlope
	}
	return Round(dy/dx, places), nil
}

// IsVertical reports whether c is a vertical line, comparing the x
// coordinates of its endpoints rounded to places.
//
// Circles are never vertical, except when projected is set and the circle is
// projected to a line whose range box has no width.
func (c Curve) IsVertical(places int, projected bool) bool {
	if !c.IsStraightLine(projected) {
		return false
	}
	if c.IsCircle() {
		b := c.BoundingBox()
		return Round(b.MinX(), places) == Round(b.MaxX(), places)
	}
	return Round(c.Start.X, places) == Round(c.End.X, places)
}

// IsHorizontal is like [Curve.IsVertical], but compares y coordinates.
func (c Curve) IsHorizontal(places int, projected bool) bool {
	if !c.IsStraightLine(projected) {
		return false
	}
	if c.IsCircle() {
		b := c.BoundingBox()
		return Round(b.MinY(), places) == Round(b.MaxY(), places)
	}
	return Round(c.Start.Y, places) == Round(c.End.Y, places)
}

// ArcAngle returns the angle in whole degrees between the vectors from the
// center to the start and end points. The angle is unsigned and at most 180°;
// an arc sweeping 270° reports 90°.
//
// It returns [ErrInvalidCurveType] for curves without a center.
func (c Curve) ArcAngle() (float64, error) {
	center, ok := c.Center.Get()
	if !ok {
		return 0, fmt.Errorf("%w: arc angle of %s", ErrInvalidCurveType, c.Type)
	}
	th := center.VectorTo(c.Start).AngleTo(center.VectorTo(c.End))
	return Round(math.Abs(th)*(180.0/math.Pi), 0), nil
}

// IsSemiCircle reports whether the curve's arc angle is 180°.
func (c Curve) IsSemiCircle() bool {
	a, err := c.ArcAngle()
	return err == nil && a == 180
}

// Diameter returns twice the radius of an arc or circle in model units,
// rounded to places. For a circle cut into a part this is the hole diameter.
func (c Curve) Diameter(places int) (float64, error) {
	r, ok := c.Radius.Get()
	if !ok {
		return 0, fmt.Errorf("%w: diameter of %s", ErrInvalidCurveType, c.Type)
	}
	return Round(2*r/c.Scale, places), nil
}
