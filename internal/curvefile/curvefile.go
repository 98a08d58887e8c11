// Package curvefile reads drawing views from YAML or JSON files and places
// their curves in view coordinates.
//
// A file lists views. Each view has a scale, a rotation in degrees and an
// origin, which together map the model coordinates of its curves onto the
// drawing sheet:
//
//	views:
//	  - id: front
//	    scale: 0.5
//	    origin: [100, 50]
//	    curves:
//	      - {id: base, type: line, start: [0, 0], end: [80, 0]}
//	      - {type: arc, center: [80, 10], start: [80, 0], end: [90, 10]}
//	      - {type: circle, center: [40, 20], radius: 6}
//
// Since JSON is a subset of YAML, the same structure may be written as JSON.
// Curves and views without an id are assigned a random one.
package curvefile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/viewcurve"
)

// newID generates ids for views and curves that don't have one.
var newID = uuid.NewString

// Drawing is the set of views read from one file.
type Drawing struct {
	Views []View
}

// View is a drawing view with its curves in view coordinates.
type View struct {
	ID   string
	Name string
	// Scale is the ratio of view units to model units.
	Scale float64
	// Placement maps model coordinates to view coordinates.
	Placement viewcurve.Affine
	Curves    viewcurve.CurveSet
}

// Coord is a point written either as [x, y] or as {x: .., y: ..}.
type Coord viewcurve.Point

func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs 2 coordinates, got %d", node.Line, len(xy))
		}
		*c = Coord{X: xy[0], Y: xy[1]}
		return nil
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("line %d: point needs both x and y", node.Line)
		}
		*c = Coord{X: *m.X, Y: *m.Y}
		return nil
	default:
		return fmt.Errorf("line %d: expected a point", node.Line)
	}
}

type fileSpec struct {
	Views []viewSpec `yaml:"views"`
}

type viewSpec struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Scale    *float64    `yaml:"scale"`
	Rotation float64     `yaml:"rotation"`
	Origin   Coord       `yaml:"origin"`
	Curves   []curveSpec `yaml:"curves"`
}

type curveSpec struct {
	ID        string   `yaml:"id"`
	Type      string   `yaml:"type"`
	Projected string   `yaml:"projected"`
	Start     *Coord   `yaml:"start"`
	End       *Coord   `yaml:"end"`
	Center    *Coord   `yaml:"center"`
	Radius    *float64 `yaml:"radius"`
	Arclen    *float64 `yaml:"arclen"`
}

// Load reads the drawing stored at path.
func Load(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open drawing")
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return d, nil
}

// Decode reads a drawing from r. Unknown keys are rejected, and every curve
// is validated after placement.
func Decode(r io.Reader) (*Drawing, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fileSpec
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &Drawing{}, nil
		}
		return nil, errors.Wrap(err, "failed to decode drawing")
	}

	d := &Drawing{Views: make([]View, 0, len(file.Views))}
	seen := make(map[string]bool, len(file.Views))
	for i, vs := range file.Views {
		v, err := vs.build()
		if err != nil {
			return nil, errors.Wrapf(err, "view %d", i)
		}
		if seen[v.ID] {
			return nil, errors.Errorf("view %d: duplicate view id %q", i, v.ID)
		}
		seen[v.ID] = true
		d.Views = append(d.Views, v)
	}
	return d, nil
}

func (vs viewSpec) placement(scale float64) viewcurve.Affine {
	return viewcurve.Scale(scale, scale).
		ThenRotate(vs.Rotation * math.Pi / 180).
		ThenTranslate(viewcurve.Vec(vs.Origin.X, vs.Origin.Y))
}

func (vs viewSpec) build() (View, error) {
	scale := 1.0
	if vs.Scale != nil {
		scale = *vs.Scale
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return View{}, errors.Errorf("invalid scale %v", scale)
	}

	v := View{
		ID:        vs.ID,
		Name:      vs.Name,
		Scale:     scale,
		Placement: vs.placement(scale),
		Curves:    make(viewcurve.CurveSet, 0, len(vs.Curves)),
	}
	if v.ID == "" {
		v.ID = newID()
	}

	for i, cs := range vs.Curves {
		c, err := cs.build()
		if err != nil {
			return View{}, errors.Wrapf(err, "curve %d", i)
		}
		c = c.Transform(v.Placement).WithView(v.ID, v.Scale)
		if c.ID == "" {
			c.ID = newID()
		}
		v.Curves = append(v.Curves, c)
	}
	if err := v.Curves.Validate(); err != nil {
		return View{}, errors.Wrapf(err, "view %s", v.ID)
	}
	return v, nil
}

// build returns the curve in model coordinates.
func (cs curveSpec) build() (viewcurve.Curve, error) {
	typ, err := viewcurve.ParseCurveType(cs.Type)
	if err != nil {
		return viewcurve.Curve{}, err
	}

	var c viewcurve.Curve
	switch typ {
	case viewcurve.LineCurve:
		if cs.Start == nil || cs.End == nil {
			return c, errors.New("line needs start and end")
		}
		if cs.Center != nil || cs.Radius != nil {
			return c, errors.New("line can't have a center or radius")
		}
		c = viewcurve.NewLine(viewcurve.Point(*cs.Start), viewcurve.Point(*cs.End))

	case viewcurve.ArcCurve:
		if cs.Center == nil || cs.Start == nil || cs.End == nil {
			return c, errors.New("arc needs center, start and end")
		}
		center := viewcurve.Point(*cs.Center)
		start := viewcurve.Point(*cs.Start)
		r := center.Distance(start)
		if cs.Radius != nil {
			r = *cs.Radius
		}
		c = viewcurve.NewArc(center, r, start, viewcurve.Point(*cs.End))

	case viewcurve.CircleCurve:
		if cs.Center == nil {
			return c, errors.New("circle needs a center")
		}
		center := viewcurve.Point(*cs.Center)
		var r float64
		switch {
		case cs.Radius != nil:
			r = *cs.Radius
		case cs.Start != nil:
			r = center.Distance(viewcurve.Point(*cs.Start))
		default:
			return c, errors.New("circle needs a radius or a start point")
		}
		c = viewcurve.NewCircle(center, r)
		// circles seen edge-on are given as the endpoints of their projection
		if cs.Start != nil {
			c.Start = viewcurve.Point(*cs.Start)
		}
		if cs.End != nil {
			c.End = viewcurve.Point(*cs.End)
		}
	}

	if cs.Projected != "" {
		proj, err := viewcurve.ParseCurveType(cs.Projected)
		if err != nil {
			return c, errors.Wrap(err, "projected")
		}
		c = c.WithProjected(proj)
	}
	if cs.Arclen != nil {
		c = c.WithArclen(*cs.Arclen)
	}
	return c.WithID(cs.ID), nil
}
