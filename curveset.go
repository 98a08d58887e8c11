package viewcurve

import (
	"fmt"
	"iter"
	"slices"
)

// CurveSet is the ordered sequence of curves of one drawing view.
type CurveSet []Curve

// All returns an iterator over the curves in order.
func (s CurveSet) All() iter.Seq[Curve] {
	return slices.Values(s)
}

// ByID returns the curve with the given ID.
func (s CurveSet) ByID(id string) (Curve, bool) {
	i := slices.IndexFunc(s, func(c Curve) bool { return c.ID == id })
	if i < 0 {
		return Curve{}, false
	}
	return s[i], true
}

// Validate validates every curve and checks that IDs are distinct.
func (s CurveSet) Validate() error {
	seen := make(map[string]int, len(s))
	for i, c := range s {
		if err := c.Validate(); err != nil {
			return err
		}
		if j, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: curves %d and %d share the ID %q", ErrInvalidCurve, j, i, c.ID)
		}
		seen[c.ID] = i
	}
	return nil
}

// Extents is shorthand for [ExtentCurves] over the set.
func (s CurveSet) Extents() map[ExtentDirection]Option[Curve] {
	return ExtentCurves(s.All())
}

// Adjacent is shorthand for [AdjacentCurves] with the set as candidates.
func (s CurveSet) Adjacent(main Curve, projectedArcOnly, useArcOnly bool) (atStart, atEnd Option[Curve]) {
	return AdjacentCurves(main, s.All(), projectedArcOnly, useArcOnly)
}
