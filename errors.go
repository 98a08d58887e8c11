package viewcurve

import "errors"

var (
	// ErrDegenerateVector is returned when a direction is requested from a
	// zero-length vector.
	ErrDegenerateVector = errors.New("viewcurve: degenerate vector")

	// ErrUndefinedSlope is returned when computing the slope of a line whose
	// x extent rounds to zero. Check [Curve.IsVertical] first.
	ErrUndefinedSlope = errors.New("viewcurve: undefined slope")

	// ErrInvalidCurveType is returned when an attribute is requested from a
	// curve type that doesn't carry it.
	ErrInvalidCurveType = errors.New("viewcurve: invalid curve type")

	// ErrInvalidCurve is returned by validation when a curve or curve set
	// violates the data model.
	ErrInvalidCurve = errors.New("viewcurve: invalid curve")
)
