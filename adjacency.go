package viewcurve

import "iter"

// AdjacentCurves finds the curves connected to the start and end points of
// main, comparing endpoints rounded to 4 decimal places. See
// [AdjacentCurvesAt].
func AdjacentCurves(main Curve, candidates iter.Seq[Curve], projectedArcOnly, useArcOnly bool) (atStart, atEnd Option[Curve]) {
	return AdjacentCurvesAt(main, candidates, DefaultDecimalPlaces, projectedArcOnly, useArcOnly)
}

// AdjacentCurvesAt finds the curves connected to the start and end points of
// main, comparing endpoints rounded to places.
//
// Circles have no adjacent curves. With useArcOnly set, only arcs (as judged
// by [Curve.IsArc] with projectedArcOnly) are examined, and only line
// candidates are considered.
//
// Candidates are scanned in order. main itself is skipped, as is any other
// curve carrying main's ID, unless that ID is empty.
// The first candidate touching an endpoint wins that endpoint; a single
// candidate may win both. Scanning stops once both endpoints are taken.
func AdjacentCurvesAt(main Curve, candidates iter.Seq[Curve], places int, projectedArcOnly, useArcOnly bool) (atStart, atEnd Option[Curve]) {
	if main.IsCircle() || (useArcOnly && !main.IsArc(projectedArcOnly)) {
		return atStart, atEnd
	}

	start := main.Start.RoundTo(places)
	end := main.End.RoundTo(places)
	for cand := range candidates {
		if cand == main || (main.ID != "" && cand.ID == main.ID) {
			continue
		}
		if useArcOnly && !cand.IsStraightLine(false) {
			continue
		}
		if cand.Start.IsNaN() || cand.End.IsNaN() {
			continue
		}

		cs := cand.Start.RoundTo(places)
		ce := cand.End.RoundTo(places)
		if !atStart.IsSet() && (start == cs || start == ce) {
			atStart = Some(cand)
		}
		if !atEnd.IsSet() && (end == cs || end == ce) {
			atEnd = Some(cand)
		}
		if atStart.IsSet() && atEnd.IsSet() {
			break
		}
	}
	return atStart, atEnd
}
