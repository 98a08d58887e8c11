// Package viewcurve classifies and compares the 2D curves of an engineering
// drawing view. It answers questions such as "is this edge vertical?", "do
// these two lines overlap?", "which lines connect to this fillet?" and "which
// edge is the top-most one of the view?".
//
// The package operates on plain values. It doesn't read drawings, doesn't
// talk to CAD applications and never modifies the curves it is given. An
// adapter is expected to extract the curves of a view, projected into 2D view
// coordinates, and hand them over as a [CurveSet].
//
// # Curves
//
// A [Curve] is a line segment, a circular arc or a full circle. Besides its
// endpoints it records the view it belongs to and that view's scale, which
// converts view lengths back into model lengths. Arcs and circles carry their
// center and radius.
//
// Curves also record the type of their projection. A circle that is seen
// edge-on appears as a line in the view; with the projected interpretation
// enabled, predicates such as [Curve.IsVertical] treat it as one.
//
// # Tolerances
//
// Drawing coordinates are noisy, so most comparisons happen on rounded
// values. Coordinates are rounded to [DefaultDecimalPlaces] decimal places,
// slopes and lengths to 2. Rounding, see [Round], rounds half to even on the
// shortest decimal representation of a number.
//
// A few tests use fixed tolerances instead: a point lies on an extended line
// if it is within 1e-6 of it, and on the ray of a segment if the cosine
// between the segment and the point is within 0.001 of 1.
//
// # Relationships
//
// Pairs of lines can be tested for being parallel ([Curve.IsParallel]),
// collinear ([Curve.IsCollinear]) and overlapping ([Curve.Overlaps]).
// [Similarity] combines several properties of two arbitrary curves into a
// single score in [0, 1].
//
// # Selection
//
// [AdjacentCurves] finds the lines connected to the ends of an arc, and
// [ExtentCurves] finds the outermost horizontal and vertical curves of a view
// in each [ExtentDirection].
//
// # Concurrency
//
// All functions are pure. They may be called concurrently, including on
// shared curve sets, as long as nobody modifies the sets.
//
// # Errors
//
// Errors are precondition failures, such as asking for the slope of a
// vertical line ([ErrUndefinedSlope]) or the arc angle of a line
// ([ErrInvalidCurveType]). Use [errors.Is] to tell them apart.
package viewcurve
