package viewcurve

import "testing"

func TestAdjacentCurves(t *testing.T) {
	arc := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)).WithID("fillet")
	l1 := NewLine(Pt(1, 0), Pt(5, 0)).WithID("l1")
	l2 := NewLine(Pt(0, 5), Pt(0, 1.00001)).WithID("l2")
	l3 := NewLine(Pt(1.00002, 0), Pt(1, -5)).WithID("l3")
	other := NewArc(Pt(2, 0), 1, Pt(3, 0), Pt(1, 0)).WithID("other")
	far := NewLine(Pt(7, 7), Pt(8, 8)).WithID("far")

	tests := []struct {
		name             string
		main             Curve
		candidates       CurveSet
		projectedArcOnly bool
		useArcOnly       bool
		start, end       Option[Curve]
	}{
		{
			name:       "both ends",
			main:       arc,
			candidates: CurveSet{far, arc, l1, l2},
			start:      Some(l1),
			end:        Some(l2),
		},
		{
			name:       "first match wins",
			main:       arc,
			candidates: CurveSet{l3, l1, l2},
			start:      Some(l3),
			end:        Some(l2),
		},
		{
			name:       "arcs are candidates",
			main:       arc,
			candidates: CurveSet{other, l1},
			start:      Some(other),
		},
		{
			name:       "lines only",
			main:       arc,
			candidates: CurveSet{other, l1},
			useArcOnly: true,
			start:      Some(l1),
		},
		{
			name:       "line main with arc-only",
			main:       l1,
			candidates: CurveSet{arc, l3},
			useArcOnly: true,
		},
		{
			name:       "line main",
			main:       l1,
			candidates: CurveSet{arc, l3},
			start:      Some(arc),
		},
		{
			name:       "circle",
			main:       NewCircle(Pt(5, 0), 1).WithID("hole"),
			candidates: CurveSet{l1},
		},
		{
			name:             "projection isn't an arc",
			main:             arc.WithProjected(LineCurve),
			candidates:       CurveSet{l1, l2},
			projectedArcOnly: true,
			useArcOnly:       true,
		},
		{
			name:       "no candidates",
			main:       arc,
			candidates: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.candidates.Adjacent(tt.main, tt.projectedArcOnly, tt.useArcOnly)
			diff(t, tt.start, start)
			diff(t, tt.end, end)
		})
	}
}

func TestAdjacentCurvesBothEnds(t *testing.T) {
	semi := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(-1, 0)).WithID("semi")
	chord := NewLine(Pt(-1, 0), Pt(1, 0)).WithID("chord")
	start, end := AdjacentCurves(semi, CurveSet{chord}.All(), false, true)
	diff(t, Some(chord), start)
	diff(t, Some(chord), end)
}

func TestAdjacentCurvesWithoutIDs(t *testing.T) {
	semi := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(-1, 0))
	right := NewLine(Pt(1, 0), Pt(1, 5))
	left := NewLine(Pt(-1, 0), Pt(-1, 5))

	start, end := AdjacentCurves(semi, CurveSet{right, left}.All(), true, true)
	diff(t, Some(right), start)
	diff(t, Some(left), end)

	// main itself is skipped even though it touches both of its endpoints
	start, end = AdjacentCurves(semi, CurveSet{semi, right, left}.All(), false, false)
	diff(t, Some(right), start)
	diff(t, Some(left), end)
}

func TestAdjacentCurvesAt(t *testing.T) {
	arc := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)).WithID("arc")
	s := CurveSet{
		NewLine(Pt(1.2, 0), Pt(5, 0)).WithID("bottom"),
		NewLine(Pt(0, 5), Pt(0.3, 1)).WithID("left"),
	}

	start, end := AdjacentCurvesAt(arc, s.All(), 0, true, true)
	diff(t, Some(s[0]), start)
	diff(t, Some(s[1]), end)

	start, end = AdjacentCurves(arc, s.All(), true, true)
	diff(t, None[Curve](), start)
	diff(t, None[Curve](), end)
}
