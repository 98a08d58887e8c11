package viewcurve

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 2), Pt(-4, 8))
	diff(t, r, Rect{-4, 2, 10, 8})
	if r.MinX() != -4 || r.MaxX() != 10 || r.MinY() != 2 || r.MaxY() != 8 {
		t.Errorf("unexpected extents %v", r)
	}
	if r.Width() != 14 || r.Height() != 6 {
		t.Errorf("got size %v×%v, want 14×6", r.Width(), r.Height())
	}
	diff(t, r.Center(), Pt(3, 5))
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, r.Union(Rect{2, -1, 3, 0.5}), Rect{0, -1, 3, 1})
	diff(t, r.UnionPoint(Pt(-2, 4)), Rect{-2, 0, 1, 4})
	diff(t, r.Inflate(1, 2), Rect{-1, -2, 2, 3})
}

func TestRectNonFinite(t *testing.T) {
	if (Rect{0, 0, 1, 1}).IsInf() || (Rect{0, 0, 1, 1}).IsNaN() {
		t.Error("finite rect reported as non-finite")
	}
	if !(Rect{0, math.Inf(-1), 1, 1}).IsInf() {
		t.Error("infinite rect reported as finite")
	}
	if !(Rect{0, 0, math.NaN(), 1}).IsNaN() {
		t.Error("NaN rect not reported as NaN")
	}
}
