package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"honnef.co/go/viewcurve"
	"honnef.co/go/viewcurve/internal/curvefile"
)

const (
	defaultStroke = "black"
	similarStroke = "magenta"
)

var extentStrokes = map[viewcurve.ExtentDirection]string{
	viewcurve.Top:    "red",
	viewcurve.Bottom: "blue",
	viewcurve.Left:   "green",
	viewcurve.Right:  "orange",
}

// Highlights returns stroke colors for the curves of vr worth pointing out:
// the curves of similar pairs and, taking precedence, the extent curves.
func Highlights(vr ViewReport) map[string]string {
	out := make(map[string]string)
	for _, p := range vr.Similar {
		out[p.A] = similarStroke
		out[p.B] = similarStroke
	}
	for _, dir := range viewcurve.ExtentDirections {
		if id := vr.Extents.Get(dir); id != "" {
			out[id] = extentStrokes[dir]
		}
	}
	return out
}

// WriteSVG writes a standalone SVG document showing the curves of v. Curves
// whose IDs are keys of highlight are stroked in the mapped color.
//
// The view's y axis points up, so the drawing is flipped.
func WriteSVG(w io.Writer, v curvefile.View, highlight map[string]string, opts viewcurve.SVGOptions) error {
	var bbox viewcurve.Rect
	for i, c := range v.Curves {
		if i == 0 {
			bbox = c.BoundingBox()
		} else {
			bbox = bbox.Union(c.BoundingBox())
		}
	}
	margin := max(bbox.Width(), bbox.Height())*0.05 + 1
	bbox = bbox.Inflate(margin, margin)
	strokeWidth := max(bbox.Width(), bbox.Height()) / 500

	num := func(f float64) string {
		return strconv.FormatFloat(viewcurve.Round(f, 3), 'f', -1, 64)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(bbox.MinX()), num(-bbox.MaxY()), num(bbox.Width()), num(bbox.Height()))
	fmt.Fprintf(&sb, `<title>%s</title>`+"\n", escape(title(v)))
	fmt.Fprintf(&sb, `<g transform="scale(1,-1)" fill="none" stroke-width="%s">`+"\n", num(strokeWidth))
	for _, c := range v.Curves {
		stroke, ok := highlight[c.ID]
		if !ok {
			stroke = defaultStroke
		}
		var d strings.Builder
		if err := viewcurve.WriteSVG(&d, c, opts); err != nil {
			return errors.Wrapf(err, "failed to render curve %s", c.ID)
		}
		fmt.Fprintf(&sb, `<path id="%s" stroke="%s" d="%s"/>`+"\n", escape(c.ID), escape(stroke), d.String())
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write SVG")
}

func title(v curvefile.View) string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
