package viewcurve

import (
	"errors"
	"testing"
)

func TestIsVertical(t *testing.T) {
	tests := []struct {
		name      string
		c         Curve
		projected bool
		vertical  bool
		horiz     bool
	}{
		{"rounded", NewLine(Pt(3.00001, 0), Pt(3.00002, 10)), false, true, false},
		{"horizontal", NewLine(Pt(0, 2), Pt(10, 2.00004)), false, false, true},
		{"diagonal", NewLine(Pt(0, 0), Pt(1, 1)), false, false, false},
		{"arc", NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(1, 0)), true, false, false},
		{"circle", NewCircle(Pt(0, 0), 1), true, false, false},
		{"edge-on circle", edgeOnCircle(Pt(3, 0), Pt(3, 10)), true, true, false},
		{"edge-on circle, not projected", edgeOnCircle(Pt(3, 0), Pt(3, 10)), false, false, false},
		{"edge-on circle, horizontal", edgeOnCircle(Pt(-5, 1), Pt(5, 1)), true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsVertical(4, tt.projected); got != tt.vertical {
				t.Errorf("IsVertical = %t, want %t", got, tt.vertical)
			}
			if got := tt.c.IsHorizontal(4, tt.projected); got != tt.horiz {
				t.Errorf("IsHorizontal = %t, want %t", got, tt.horiz)
			}
		})
	}
}

func edgeOnCircle(start, end Point) Curve {
	c := NewCircle(start.Midpoint(end), start.Distance(end)/2).WithProjected(LineCurve)
	c.Start = start
	c.End = end
	return c
}

func TestCurveKinds(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(1, 0))
	arc := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1))
	circle := NewCircle(Pt(0, 0), 1)
	edgeOn := edgeOnCircle(Pt(0, 0), Pt(0, 2))
	ellipticArc := NewCircle(Pt(0, 0), 1).WithProjected(ArcCurve)

	if !line.IsStraightLine(false) || arc.IsStraightLine(true) || circle.IsStraightLine(true) {
		t.Error("unexpected IsStraightLine")
	}
	if edgeOn.IsStraightLine(false) || !edgeOn.IsStraightLine(true) {
		t.Error("edge-on circle should only be straight when projected")
	}
	if !circle.IsCircle() || !edgeOn.IsCircle() || arc.IsCircle() {
		t.Error("unexpected IsCircle")
	}
	if !arc.IsArc(true) || !arc.IsArc(false) || line.IsArc(false) {
		t.Error("unexpected IsArc")
	}
	if circle.IsArc(false) || !ellipticArc.IsArc(true) || !ellipticArc.IsArc(false) {
		t.Error("unexpected IsArc for circles")
	}
}

func TestSlope(t *testing.T) {
	s, err := NewLine(Pt(0, 0), Pt(2, 1)).Slope(2)
	if err != nil || s != 0.5 {
		t.Errorf("got (%v, %v), want (0.5, nil)", s, err)
	}
	s, err = NewLine(Pt(0, 0), Pt(3, -1)).Slope(2)
	if err != nil || s != -0.33 {
		t.Errorf("got (%v, %v), want (-0.33, nil)", s, err)
	}
	s, err = edgeOnCircle(Pt(0, 0), Pt(4, 4)).Slope(2)
	if err != nil || s != 1 {
		t.Errorf("got (%v, %v), want (1, nil)", s, err)
	}

	// Δx rounds to zero
	if _, err := NewLine(Pt(1, 0), Pt(1.00001, 5)).Slope(2); !errors.Is(err, ErrUndefinedSlope) {
		t.Errorf("got error %v, want %v", err, ErrUndefinedSlope)
	}
	if _, err := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)).Slope(2); !errors.Is(err, ErrInvalidCurveType) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurveType)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
		want float64
	}{
		{"line", NewLine(Pt(0, 0), Pt(3, 4)), 5},
		{"scaled line", NewLine(Pt(0, 0), Pt(3, 4)).WithView("front", 0.5), 10},
		{"quarter arc", NewArc(Pt(0, 0), 2, Pt(2, 0), Pt(0, 2)), 3.14},
		{"arc with arclen", NewArc(Pt(0, 0), 2, Pt(2, 0), Pt(0, 2)).WithArclen(7).WithView("v", 2), 3.5},
		{"circle", NewCircle(Pt(0, 0), 1), 6.28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Length(2); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcAngle(t *testing.T) {
	semi := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(-1, 0))
	a, err := semi.ArcAngle()
	if err != nil || a != 180 {
		t.Errorf("got (%v, %v), want (180, nil)", a, err)
	}
	if !semi.IsSemiCircle() {
		t.Error("expected semicircle")
	}

	// unsigned, so three quarters of a circle measure 90°
	threeQuarters := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, -1))
	if a, _ := threeQuarters.ArcAngle(); a != 90 {
		t.Errorf("got %v, want 90", a)
	}
	if threeQuarters.IsSemiCircle() {
		t.Error("unexpected semicircle")
	}

	line := NewLine(Pt(0, 0), Pt(1, 0))
	if _, err := line.ArcAngle(); !errors.Is(err, ErrInvalidCurveType) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurveType)
	}
	if line.IsSemiCircle() {
		t.Error("line can't be a semicircle")
	}
}

func TestDiameter(t *testing.T) {
	d, err := NewCircle(Pt(0, 0), 2).WithView("detail", 0.5).Diameter(2)
	if err != nil || d != 8 {
		t.Errorf("got (%v, %v), want (8, nil)", d, err)
	}
	if _, err := NewLine(Pt(0, 0), Pt(1, 0)).Diameter(2); !errors.Is(err, ErrInvalidCurveType) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurveType)
	}
}

func TestPredicatesIdempotent(t *testing.T) {
	c := NewLine(Pt(0.12345, 1), Pt(7.5, 3.33333))
	s1, _ := c.Slope(2)
	for range 10 {
		if s, _ := c.Slope(2); s != s1 {
			t.Fatalf("slope changed from %v to %v", s1, s)
		}
		if c.Length(2) != c.Length(2) || c.IsVertical(4, true) != c.IsVertical(4, true) {
			t.Fatal("predicate changed between calls")
		}
	}
}
