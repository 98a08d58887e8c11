package viewcurve

import (
	"fmt"
	"math"
	"strings"
)

// CurveType identifies the geometry of a [Curve]. The zero value is not a
// valid curve type; as [Curve.Projected] it means "same as the curve's type".
type CurveType uint8

const (
	LineCurve CurveType = iota + 1
	ArcCurve
	CircleCurve
)

func (t CurveType) String() string {
	switch t {
	case LineCurve:
		return "line"
	case ArcCurve:
		return "arc"
	case CircleCurve:
		return "circle"
	default:
		return fmt.Sprintf("CurveType(%d)", uint8(t))
	}
}

// ParseCurveType parses the names returned by [CurveType.String].
func ParseCurveType(s string) (CurveType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return LineCurve, nil
	case "arc":
		return ArcCurve, nil
	case "circle":
		return CircleCurve, nil
	default:
		return 0, fmt.Errorf("%w: unknown curve type %q", ErrInvalidCurveType, s)
	}
}

func (t CurveType) valid() bool {
	return t >= LineCurve && t <= CircleCurve
}

// Curve is a snapshot of one curve of a drawing view, in view coordinates.
//
// Center and Radius are set iff Type is ArcCurve or CircleCurve. Lines
// must not have coinciding endpoints. Use [Curve.Validate] to check these
// invariants; all other methods assume them.
//
// Curves are values. Nothing in this package modifies a curve; the With
// methods return modified copies.
type Curve struct {
	ID   string
	Type CurveType
	// Projected is the type of the curve's 2D projection in the view, for
	// example a line for a circle that is seen edge-on. The zero value means
	// the projection has the same type as the curve.
	Projected CurveType

	Start Point
	End   Point

	Center Option[Point]
	Radius Option[float64]
	// Arclen is the precomputed path length in view units, as reported by
	// the drawing. Arcs and circles without it derive their length from
	// their geometry.
	Arclen Option[float64]

	// ViewID identifies the view the curve belongs to.
	ViewID string
	// Scale is the view's scale, the ratio of view units to model units.
	Scale float64
}

// NewLine returns a line curve from start to end, with a scale of 1.
func NewLine(start, end Point) Curve {
	return Curve{
		Type:  LineCurve,
		Start: start,
		End:   end,
		Scale: 1,
	}
}

// NewArc returns an arc curve around center, from start to end, with a scale
// of 1.
func NewArc(center Point, radius float64, start, end Point) Curve {
	return Curve{
		Type:   ArcCurve,
		Start:  start,
		End:    end,
		Center: Some(center),
		Radius: Some(radius),
		Scale:  1,
	}
}

// NewCircle returns a circle curve with a scale of 1. Its start and end
// points are both the point at angle zero.
func NewCircle(center Point, radius float64) Curve {
	p := center.Translate(Vec(radius, 0))
	return Curve{
		Type:   CircleCurve,
		Start:  p,
		End:    p,
		Center: Some(center),
		Radius: Some(radius),
		Scale:  1,
	}
}

func (c Curve) WithID(id string) Curve {
	c.ID = id
	return c
}

func (c Curve) WithView(viewID string, scale float64) Curve {
	c.ViewID = viewID
	c.Scale = scale
	return c
}

func (c Curve) WithProjected(t CurveType) Curve {
	c.Projected = t
	return c
}

func (c Curve) WithArclen(l float64) Curve {
	c.Arclen = Some(l)
	return c
}

// ProjectedType returns the type of the curve's projection.
func (c Curve) ProjectedType() CurveType {
	if c.Projected == 0 {
		return c.Type
	}
	return c.Projected
}

func (c Curve) String() string {
	id := c.ID
	if id == "" {
		id = "?"
	}
	switch c.Type {
	case LineCurve:
		return fmt.Sprintf("%s %s %v→%v", c.Type, id, c.Start, c.End)
	default:
		return fmt.Sprintf("%s %s %v→%v center=%v radius=%v", c.Type, id, c.Start, c.End, c.Center, c.Radius)
	}
}

// Validate checks the invariants of the curve data model.
func (c Curve) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: curve %q: %s", ErrInvalidCurve, c.ID, fmt.Sprintf(format, args...))
	}

	if !c.Type.valid() {
		return fail("unknown type %v", c.Type)
	}
	if c.Projected != 0 && !c.Projected.valid() {
		return fail("unknown projected type %v", c.Projected)
	}
	if c.Start.IsNaN() || c.Start.IsInf() || c.End.IsNaN() || c.End.IsInf() {
		return fail("endpoints must be finite")
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fail("scale must be positive, got %g", c.Scale)
	}
	if l, ok := c.Arclen.Get(); ok && !(l >= 0) {
		return fail("arc length must not be negative, got %g", l)
	}

	switch c.Type {
	case LineCurve:
		if c.Center.IsSet() || c.Radius.IsSet() {
			return fail("lines have no center or radius")
		}
		if c.Start == c.End {
			return fail("zero-length line at %v", c.Start)
		}
	case ArcCurve, CircleCurve:
		center, ok := c.Center.Get()
		if !ok {
			return fail("%s without center", c.Type)
		}
		if center.IsNaN() || center.IsInf() {
			return fail("center must be finite")
		}
		r, ok := c.Radius.Get()
		if !ok {
			return fail("%s without radius", c.Type)
		}
		if !(r > 0) || math.IsInf(r, 0) {
			return fail("radius must be positive, got %g", r)
		}
	}
	return nil
}

// Line returns the segment between the curve's endpoints.
func (c Curve) Line() Line {
	return Line{P0: c.Start, P1: c.End}
}

// Arc returns the circular geometry of an arc or circle curve. Arcs sweep
// counter-clockwise from Start to End.
//
// It returns [ErrInvalidCurveType] for curves without a center.
func (c Curve) Arc() (Arc, error) {
	center, ok := c.Center.Get()
	if !ok {
		return Arc{}, fmt.Errorf("%w: %s has no center", ErrInvalidCurveType, c.Type)
	}
	if c.Type == CircleCurve {
		return Arc{
			Center:     center,
			Radius:     c.Radius.Or(c.Start.Distance(center)),
			SweepAngle: 2 * math.Pi,
		}, nil
	}
	a := NewArcFromPoints(center, c.Start, c.End)
	if r, ok := c.Radius.Get(); ok {
		a.Radius = r
	}
	return a, nil
}

// BoundingBox returns the curve's range box in view space.
//
// Curves that project to a line are bounded by their endpoints, which is
// how circles seen edge-on become degenerate boxes.
func (c Curve) BoundingBox() Rect {
	if c.Type == LineCurve || c.ProjectedType() == LineCurve {
		return c.Line().BoundingBox()
	}
	a, err := c.Arc()
	if err != nil {
		return c.Line().BoundingBox()
	}
	if c.Type == CircleCurve {
		return Circle{Center: a.Center, Radius: a.Radius}.BoundingBox()
	}
	return a.BoundingBox()
}

// Transform applies aff to the curve's points. Radius and arc length are
// scaled by the transform's linear scale.
//
// Reflections reverse the direction of arcs, so aff should not contain one.
func (c Curve) Transform(aff Affine) Curve {
	s := aff.LinearScale()
	c.Start = c.Start.Transform(aff)
	c.End = c.End.Transform(aff)
	if center, ok := c.Center.Get(); ok {
		c.Center = Some(center.Transform(aff))
	}
	if r, ok := c.Radius.Get(); ok {
		c.Radius = Some(r * s)
	}
	if l, ok := c.Arclen.Get(); ok {
		c.Arclen = Some(l * s)
	}
	return c
}
