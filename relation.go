package viewcurve

// onLineTolerance is the maximum distance of a point from an extended line
// for it to count as lying on it.
const onLineTolerance = 1e-6

// IsParallel reports whether two line curves are parallel: both vertical,
// both horizontal, or with equal slopes at 2 decimal places. Lines whose
// slopes are both undefined are parallel. Curves that aren't lines are never
// parallel.
func (c Curve) IsParallel(o Curve) bool {
	if !c.IsStraightLine(false) || !o.IsStraightLine(false) {
		return false
	}
	if c.IsVertical(DefaultDecimalPlaces, false) && o.IsVertical(DefaultDecimalPlaces, false) {
		return true
	}
	if c.IsHorizontal(DefaultDecimalPlaces, false) && o.IsHorizontal(DefaultDecimalPlaces, false) {
		return true
	}
	s1, err1 := c.Slope(slopePlaces)
	s2, err2 := o.Slope(slopePlaces)
	switch {
	case err1 == nil && err2 == nil:
		return s1 == s2
	case err1 != nil && err2 != nil:
		return true
	default:
		return false
	}
}

// IsPointOnExtendedLine reports whether pt lies on the infinite line through
// the curve's endpoints. Points equal to an endpoint always do; otherwise pt
// may be at most 1e-6 away from the line.
func (c Curve) IsPointOnExtendedLine(pt Point) bool {
	if pt == c.Start || pt == c.End {
		return true
	}
	d, err := c.Line().DistanceToExtended(pt)
	if err != nil {
		return false
	}
	return d <= onLineTolerance
}

// IsCollinear reports whether two line curves are parallel and at least one
// endpoint of o lies on the extension of c.
func (c Curve) IsCollinear(o Curve) bool {
	if !c.IsParallel(o) {
		return false
	}
	return c.IsPointOnExtendedLine(o.Start) || c.IsPointOnExtendedLine(o.End)
}

// Overlaps reports whether two line curves are parallel and an endpoint of
// either lies on the other, as judged by [Line.RayContains]. The test looks
// along rays, so disjoint segments of the same line overlap too.
func (c Curve) Overlaps(o Curve) bool {
	if !c.IsParallel(o) {
		return false
	}
	l1, l2 := c.Line(), o.Line()
	return l2.RayContains(l1.P0) ||
		l2.RayContains(l1.P1) ||
		l1.RayContains(l2.P0) ||
		l1.RayContains(l2.P1)
}
