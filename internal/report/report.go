// Package report runs the curve analyses over every view of a drawing.
package report

import (
	"context"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/viewcurve"
	"honnef.co/go/viewcurve/internal/config"
	"honnef.co/go/viewcurve/internal/curvefile"
)

// Options controls the precision and selection rules of an [Analyzer].
type Options struct {
	DecimalPlaces int
	SlopePlaces   int
	LengthPlaces  int

	SimilarityPlaces int
	// Threshold is the minimum score of reported similar pairs.
	Threshold float64
	Weights   viewcurve.SimilarityWeights

	ProjectedArcOnly bool
	UseArcOnly       bool
}

// DefaultOptions matches the defaults of the config package.
var DefaultOptions = Options{
	DecimalPlaces:    viewcurve.DefaultDecimalPlaces,
	SlopePlaces:      2,
	LengthPlaces:     2,
	SimilarityPlaces: 2,
	Threshold:        0.9,
	Weights:          viewcurve.DefaultSimilarityWeights,
	ProjectedArcOnly: true,
	UseArcOnly:       true,
}

func OptionsFromConfig(cfg *config.Config) Options {
	w := cfg.Similarity.Weights
	return Options{
		DecimalPlaces:    cfg.Geometry.DecimalPlaces,
		SlopePlaces:      cfg.Geometry.SlopePlaces,
		LengthPlaces:     cfg.Geometry.LengthPlaces,
		SimilarityPlaces: cfg.Similarity.Places,
		Threshold:        cfg.Similarity.Threshold,
		Weights: viewcurve.SimilarityWeights{
			Parent:    w.Parent,
			Type:      w.Type,
			Length:    w.Length,
			Slope:     w.Slope,
			Endpoints: w.Endpoints,
		},
		ProjectedArcOnly: cfg.Adjacency.ProjectedArcOnly,
		UseArcOnly:       cfg.Adjacency.UseArcOnly,
	}
}

// CurveRow classifies a single curve. Optional values are nil when they
// don't apply, such as the slope of a vertical line.
type CurveRow struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Projected  string   `json:"projected,omitempty"`
	Length     float64  `json:"length"`
	Slope      *float64 `json:"slope,omitempty"`
	Vertical   bool     `json:"vertical"`
	Horizontal bool     `json:"horizontal"`
	ArcAngle   *float64 `json:"arc_angle,omitempty"`
	Diameter   *float64 `json:"diameter,omitempty"`
}

// Extents holds the IDs of the outermost curves of a view. Empty IDs mean
// that no curve qualified.
type Extents struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

func (e *Extents) set(dir viewcurve.ExtentDirection, id string) {
	switch dir {
	case viewcurve.Top:
		e.Top = id
	case viewcurve.Bottom:
		e.Bottom = id
	case viewcurve.Left:
		e.Left = id
	case viewcurve.Right:
		e.Right = id
	}
}

// Get returns the ID for dir.
func (e Extents) Get(dir viewcurve.ExtentDirection) string {
	switch dir {
	case viewcurve.Top:
		return e.Top
	case viewcurve.Bottom:
		return e.Bottom
	case viewcurve.Left:
		return e.Left
	case viewcurve.Right:
		return e.Right
	default:
		return ""
	}
}

type Adjacency struct {
	ID    string `json:"id"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Pair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

type ViewReport struct {
	ViewID    string      `json:"view"`
	Name      string      `json:"name,omitempty"`
	Curves    []CurveRow  `json:"curves"`
	Extents   Extents     `json:"extents"`
	Adjacency []Adjacency `json:"adjacency"`
	Similar   []Pair      `json:"similar"`
}

type Report struct {
	Views []ViewReport `json:"views"`
}

// Analyzer produces reports. It is safe for concurrent use.
type Analyzer struct {
	opts Options
	log  zerolog.Logger
}

func New(opts Options, log zerolog.Logger) *Analyzer {
	return &Analyzer{opts: opts, log: log}
}

// Analyze analyzes the views of d concurrently. The views of the report are
// in the same order as those of d.
func (a *Analyzer) Analyze(ctx context.Context, d *curvefile.Drawing) (*Report, error) {
	r := &Report{Views: make([]ViewReport, len(d.Views))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range d.Views {
		g.Go(func() error {
			vr, err := a.AnalyzeView(gctx, v)
			if err != nil {
				return errors.Wrapf(err, "failed to analyze view %s", v.ID)
			}
			r.Views[i] = vr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// AnalyzeView analyzes a single view. It returns early with the context's
// error if ctx is canceled.
func (a *Analyzer) AnalyzeView(ctx context.Context, v curvefile.View) (ViewReport, error) {
	log := a.log.With().Str("view", v.ID).Logger()

	vr := ViewReport{
		ViewID: v.ID,
		Name:   v.Name,
		Curves: make([]CurveRow, 0, len(v.Curves)),
	}
	for _, c := range v.Curves {
		vr.Curves = append(vr.Curves, a.classify(c))
	}

	for dir, c := range viewcurve.ExtentCurvesAt(v.Curves.All(), a.opts.DecimalPlaces) {
		if c, ok := c.Get(); ok {
			vr.Extents.set(dir, c.ID)
		}
	}

	for _, c := range v.Curves {
		if !c.IsArc(a.opts.ProjectedArcOnly) {
			continue
		}
		vr.Adjacency = append(vr.Adjacency, a.adjacent(v.Curves, c))
	}

	if err := ctx.Err(); err != nil {
		return ViewReport{}, err
	}
	similar, err := a.similar(ctx, v.Curves)
	if err != nil {
		return ViewReport{}, err
	}
	vr.Similar = similar

	log.Debug().
		Int("curves", len(v.Curves)).
		Int("adjacency", len(vr.Adjacency)).
		Int("similar", len(vr.Similar)).
		Msg("analyzed view")
	return vr, nil
}

func (a *Analyzer) classify(c viewcurve.Curve) CurveRow {
	row := CurveRow{
		ID:         c.ID,
		Type:       c.Type.String(),
		Length:     c.Length(a.opts.LengthPlaces),
		Vertical:   c.IsVertical(a.opts.DecimalPlaces, true),
		Horizontal: c.IsHorizontal(a.opts.DecimalPlaces, true),
	}
	if c.Projected != 0 && c.Projected != c.Type {
		row.Projected = c.Projected.String()
	}
	if s, err := c.Slope(a.opts.SlopePlaces); err == nil {
		row.Slope = &s
	}
	if c.Type == viewcurve.ArcCurve {
		if angle, err := c.ArcAngle(); err == nil {
			row.ArcAngle = &angle
		}
	}
	if d, err := c.Diameter(a.opts.LengthPlaces); err == nil {
		row.Diameter = &d
	}
	return row
}

func (a *Analyzer) adjacent(s viewcurve.CurveSet, c viewcurve.Curve) Adjacency {
	start, end := viewcurve.AdjacentCurvesAt(c, s.All(), a.opts.DecimalPlaces, a.opts.ProjectedArcOnly, a.opts.UseArcOnly)
	adj := Adjacency{ID: c.ID}
	if start, ok := start.Get(); ok {
		adj.Start = start.ID
	}
	if end, ok := end.Get(); ok {
		adj.End = end.ID
	}
	return adj
}

// Adjacent returns the curves connected to the curve with the given ID,
// searching all views of d.
func (a *Analyzer) Adjacent(d *curvefile.Drawing, id string) (Adjacency, error) {
	for _, v := range d.Views {
		if c, ok := v.Curves.ByID(id); ok {
			return a.adjacent(v.Curves, c), nil
		}
	}
	return Adjacency{}, errors.Errorf("no curve with id %q", id)
}

// similar returns all pairs scoring at least the threshold, best first.
func (a *Analyzer) similar(ctx context.Context, s viewcurve.CurveSet) ([]Pair, error) {
	var pairs []Pair
	for i, c1 := range s {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, c2 := range s[i+1:] {
			score := a.opts.Weights.Similarity(c1, c2, a.opts.SimilarityPlaces)
			if score >= a.opts.Threshold {
				pairs = append(pairs, Pair{A: c1.ID, B: c2.ID, Score: score})
			}
		}
	}
	slices.SortStableFunc(pairs, func(p1, p2 Pair) int {
		switch {
		case p1.Score > p2.Score:
			return -1
		case p1.Score < p2.Score:
			return 1
		default:
			return 0
		}
	})
	return pairs, nil
}
