package viewcurve

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCurveTypeString(t *testing.T) {
	for _, typ := range []CurveType{LineCurve, ArcCurve, CircleCurve} {
		got, err := ParseCurveType(typ.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("ParseCurveType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
	if got, err := ParseCurveType(" Circle "); err != nil || got != CircleCurve {
		t.Errorf("got (%v, %v), want (circle, nil)", got, err)
	}
	if _, err := ParseCurveType("spline"); !errors.Is(err, ErrInvalidCurveType) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurveType)
	}
	if s := CurveType(0).String(); s != "CurveType(0)" {
		t.Errorf("got %q", s)
	}
}

func TestOption(t *testing.T) {
	var empty Option[float64]
	if empty.IsSet() {
		t.Error("zero option is set")
	}
	if v := empty.Or(3); v != 3 {
		t.Errorf("got %v, want 3", v)
	}
	if !empty.Equal(None[float64]()) {
		t.Error("empty options should be equal")
	}

	o := Some(2.5)
	if v, ok := o.Get(); !ok || v != 2.5 {
		t.Errorf("got (%v, %t), want (2.5, true)", v, ok)
	}
	if o.Equal(empty) || !o.Equal(Some(2.5)) || o.Equal(Some(2.0)) {
		t.Error("unexpected option equality")
	}
	if s := o.String(); s != "Some(2.5)" {
		t.Errorf("got %q", s)
	}

	defer func() {
		if recover() == nil {
			t.Error("Unwrap of empty option didn't panic")
		}
	}()
	empty.Unwrap()
}

func TestCurveValidate(t *testing.T) {
	valid := []Curve{
		NewLine(Pt(0, 0), Pt(1, 0)),
		NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)),
		NewCircle(Pt(0, 0), 2).WithProjected(LineCurve),
		NewLine(Pt(0, 0), Pt(1, 0)).WithView("front", 0.5),
	}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("%v: unexpected error %v", c, err)
		}
	}

	lineWithCenter := NewLine(Pt(0, 0), Pt(1, 0))
	lineWithCenter.Center = Some(Pt(0, 0))
	arcWithoutRadius := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1))
	arcWithoutRadius.Radius = None[float64]()
	circleWithoutCenter := NewCircle(Pt(0, 0), 1)
	circleWithoutCenter.Center = Option[Point]{}

	invalid := map[string]Curve{
		"unknown type":     {Type: 7, Start: Pt(0, 0), End: Pt(1, 1), Scale: 1},
		"unknown proj":     NewLine(Pt(0, 0), Pt(1, 0)).WithProjected(9),
		"zero length":      NewLine(Pt(1, 1), Pt(1, 1)),
		"zero scale":       NewLine(Pt(0, 0), Pt(1, 0)).WithView("v", 0),
		"NaN scale":        NewLine(Pt(0, 0), Pt(1, 0)).WithView("v", math.NaN()),
		"NaN endpoint":     NewLine(Pt(0, math.NaN()), Pt(1, 0)),
		"line with center": lineWithCenter,
		"arc no radius":    arcWithoutRadius,
		"circle no center": circleWithoutCenter,
		"negative radius":  NewCircle(Pt(0, 0), -1),
		"negative arclen":  NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)).WithArclen(-1),
	}
	for name, c := range invalid {
		if err := c.Validate(); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrInvalidCurve)
		}
	}
}

func TestCurveArc(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	a, err := NewArc(Pt(1, 1), 2, Pt(3, 1), Pt(1, 3)).Arc()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, SweepAngle: math.Pi / 2}, approx)

	a, err = NewCircle(Pt(0, 0), 3).Arc()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, Arc{Center: Pt(0, 0), Radius: 3, SweepAngle: 2 * math.Pi}, approx)

	if _, err := NewLine(Pt(0, 0), Pt(1, 0)).Arc(); !errors.Is(err, ErrInvalidCurveType) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurveType)
	}
}

func TestCurveBoundingBox(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	diff(t, NewLine(Pt(4, 0), Pt(0, 3)).BoundingBox(), Rect{0, 0, 4, 3})
	diff(t, NewCircle(Pt(1, 1), 2).BoundingBox(), Rect{-1, -1, 3, 3})
	diff(t, NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(-1, 0)).BoundingBox(), Rect{-1, 0, 1, 1}, approx)

	edgeOn := NewCircle(Pt(3, 5), 5).WithProjected(LineCurve)
	edgeOn.Start = Pt(3, 0)
	edgeOn.End = Pt(3, 10)
	diff(t, edgeOn.BoundingBox(), Rect{3, 0, 3, 10})
}

func TestCurveTransform(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	aff := Scale(2, 2).ThenTranslate(Vec(10, 0))

	got := NewArc(Pt(0, 0), 1, Pt(1, 0), Pt(0, 1)).WithArclen(1.5).Transform(aff)
	want := NewArc(Pt(10, 0), 2, Pt(12, 0), Pt(10, 2)).WithArclen(3)
	diff(t, got, want, approx)

	line := NewLine(Pt(1, 1), Pt(2, 1)).WithID("l").Transform(aff)
	diff(t, line, NewLine(Pt(12, 2), Pt(14, 2)).WithID("l"))
}

func TestCurveSet(t *testing.T) {
	s := CurveSet{
		NewLine(Pt(0, 0), Pt(1, 0)).WithID("a"),
		NewLine(Pt(0, 1), Pt(1, 1)).WithID("b"),
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if c, ok := s.ByID("b"); !ok || c.Start != Pt(0, 1) {
		t.Errorf("got (%v, %t)", c, ok)
	}
	if _, ok := s.ByID("c"); ok {
		t.Error("found curve that doesn't exist")
	}

	dup := append(CurveSet{}, s...)
	dup = append(dup, NewLine(Pt(5, 5), Pt(6, 6)).WithID("a"))
	if err := dup.Validate(); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurve)
	}

	bad := CurveSet{NewLine(Pt(0, 0), Pt(0, 0))}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCurve)
	}
}
