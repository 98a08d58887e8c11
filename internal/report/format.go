package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"

	"honnef.co/go/viewcurve"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to write JSON")
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteClassification writes one table row per curve.
func WriteClassification(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIEW\tID\tTYPE\tLENGTH\tSLOPE\tVERTICAL\tHORIZONTAL\tANGLE\tDIAMETER")
	for _, v := range r.Views {
		for _, c := range v.Curves {
			typ := c.Type
			if c.Projected != "" {
				typ += "/" + c.Projected
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				v.ViewID, c.ID, typ,
				strconv.FormatFloat(c.Length, 'f', -1, 64),
				optional(c.Slope),
				yesNo(c.Vertical), yesNo(c.Horizontal),
				optional(c.ArcAngle), optional(c.Diameter))
		}
	}
	return errors.Wrap(tw.Flush(), "failed to write classification")
}

// WriteExtents writes the extent curves of every view.
func WriteExtents(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "VIEW")
	for _, dir := range viewcurve.ExtentDirections {
		fmt.Fprintf(tw, "\t%s", dir)
	}
	fmt.Fprintln(tw)
	for _, v := range r.Views {
		fmt.Fprint(tw, v.ViewID)
		for _, dir := range viewcurve.ExtentDirections {
			id := v.Extents.Get(dir)
			if id == "" {
				id = "-"
			}
			fmt.Fprintf(tw, "\t%s", id)
		}
		fmt.Fprintln(tw)
	}
	return errors.Wrap(tw.Flush(), "failed to write extents")
}

// WriteAdjacency writes the curves adjacent to each arc.
func WriteAdjacency(w io.Writer, adj ...Adjacency) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTART\tEND")
	for _, a := range adj {
		start, end := a.Start, a.End
		if start == "" {
			start = "-"
		}
		if end == "" {
			end = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, start, end)
	}
	return errors.Wrap(tw.Flush(), "failed to write adjacency")
}

// WriteSimilar writes the similar pairs of every view.
func WriteSimilar(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIEW\tA\tB\tSCORE")
	for _, v := range r.Views {
		for _, p := range v.Similar {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ViewID, p.A, p.B, strconv.FormatFloat(p.Score, 'f', -1, 64))
		}
	}
	return errors.Wrap(tw.Flush(), "failed to write similar pairs")
}
