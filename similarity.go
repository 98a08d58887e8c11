package viewcurve

import "math"

// SimilarityWeights are the raw weights of the terms of [Similarity]. They
// are normalized to sum to 1 before use.
type SimilarityWeights struct {
	// Parent weighs whether both curves belong to the same view.
	Parent float64
	// Type weighs whether both curves have the same type.
	Type float64
	// Length weighs the ratio of the curves' lengths.
	Length float64
	// Slope weighs the ratio of the absolute slopes of two lines.
	Slope float64
	// Endpoints weighs how many endpoints coincide.
	Endpoints float64
}

// DefaultSimilarityWeights are the weights used by [Similarity].
var DefaultSimilarityWeights = SimilarityWeights{
	Parent:    0.1,
	Type:      0.3,
	Length:    0.5,
	Slope:     0.5,
	Endpoints: 0.02,
}

// Total returns the sum of all weights.
func (w SimilarityWeights) Total() float64 {
	return w.Parent + w.Type + w.Length + w.Slope + w.Endpoints
}

func (w SimilarityWeights) normalized() SimilarityWeights {
	total := w.Total()
	return SimilarityWeights{
		Parent:    w.Parent / total,
		Type:      w.Type / total,
		Length:    w.Length / total,
		Slope:     w.Slope / total,
		Endpoints: w.Endpoints / total,
	}
}

// Similarity computes a score in [0, 1] for how alike two curves are, using
// [DefaultSimilarityWeights]. See [SimilarityWeights.Similarity].
func Similarity(c1, c2 Curve, places int) float64 {
	return DefaultSimilarityWeights.Similarity(c1, c2, places)
}

// Similarity computes a score in [0, 1] for how alike two curves are, rounded
// to places. Lengths and slopes are compared at the same precision, and
// endpoints match when they are within 10^-places of each other.
//
// The slope term only contributes when both curves are lines. It isn't
// renormalized away otherwise, so two identical arcs score below 1.
//
// Ratios whose denominator is zero, such as two curves of zero length or two
// horizontal lines, count as a perfect match. Two vertical lines have equal
// slopes; a vertical and a non-vertical line have nothing in common.
func (w SimilarityWeights) Similarity(c1, c2 Curve, places int) float64 {
	w = w.normalized()

	var score float64
	if c1.ViewID == c2.ViewID {
		score += w.Parent
	}
	if c1.Type == c2.Type {
		score += w.Type
	}
	score += w.Length * ratioSimilarity(c1.Length(places), c2.Length(places))
	if c1.IsStraightLine(false) && c2.IsStraightLine(false) {
		score += w.Slope * slopeSimilarity(c1, c2, places)
	}
	score += w.Endpoints * endpointSimilarity(c1, c2, places)
	return Round(score, places)
}

// ratioSimilarity returns 1 − |a−b| / max(a, b).
func ratioSimilarity(a, b float64) float64 {
	m := max(a, b)
	if m == 0 {
		return 1
	}
	return 1 - math.Abs(a-b)/m
}

func slopeSimilarity(c1, c2 Curve, places int) float64 {
	s1, err1 := c1.Slope(places)
	s2, err2 := c2.Slope(places)
	switch {
	case err1 != nil && err2 != nil:
		return 1
	case err1 != nil || err2 != nil:
		return 0
	default:
		return ratioSimilarity(math.Abs(s1), math.Abs(s2))
	}
}

func endpointSimilarity(c1, c2 Curve, places int) float64 {
	tol := Tolerance(places)
	start := c1.Start.Equal(c2.Start, tol)
	end := c1.End.Equal(c2.End, tol)
	switch {
	case start && end:
		return 1
	case start || end:
		return 0.5
	default:
		return 0
	}
}
