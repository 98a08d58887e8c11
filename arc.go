package viewcurve

import "math"

// Arc is a circular arc, swept from StartAngle by SweepAngle radians.
// Positive sweeps rotate the positive x direction into positive y.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// NewArcFromPoints returns the arc around center that starts at start and
// sweeps counter-clockwise (in a y-up space) until it reaches end. The radius
// is the distance from center to start.
//
// Coinciding start and end points describe a full turn.
func NewArcFromPoints(center, start, end Point) Arc {
	v0 := start.Sub(center)
	v1 := end.Sub(center)
	sweep := v0.AngleTo(v1)
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radius:     v0.Hypot(),
		StartAngle: v0.Angle(),
		SweepAngle: sweep,
	}
}

func (a Arc) Start() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

func (a Arc) End() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+a.SweepAngle)
}

// Arclen returns the length of the arc.
func (a Arc) Arclen() float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// BoundingBox returns the smallest rectangle enclosing the arc, taking into
// account the axis extrema that fall within the sweep.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.End())
	start, sweep := a.StartAngle, a.SweepAngle
	if sweep < 0 {
		start, sweep = start+sweep, -sweep
	}
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		d := math.Mod(th-start, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d <= sweep {
			bbox = bbox.UnionPoint(pointOnCircle(a.Center, a.Radius, th))
		}
	}
	return bbox
}
