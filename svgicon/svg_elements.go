package svgicon

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/pkg/errors"
)

type svgFunc func(v *visitor, el element, state *visitorState) error

var visitFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"a":        gF,
	"switch":   gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
}

// skippedElements are never rendered directly, and neither are their children
var skippedElements = map[string]bool{
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"style":          true,
	"script":         true,
	"defs":           true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
}

// alignTable maps the preserveAspectRatio alignments
// to the fraction of free space put before the content
var alignTable = map[string][2]float64{
	"xMinYMin": {0, 0},
	"xMidYMin": {0.5, 0},
	"xMaxYMin": {1, 0},
	"xMinYMid": {0, 0.5},
	"xMidYMid": {0.5, 0.5},
	"xMaxYMid": {1, 0.5},
	"xMinYMax": {0, 1},
	"xMidYMax": {0.5, 1},
	"xMaxYMax": {1, 1},
}

// ViewBox returns the matrix mapping the viewBox (x, y, w, h) to
// a viewport of size (width, height), with an optional preserveAspectRatio
// value (default to xMidYMid meet).
// It also returns the scale to apply to stroke widths.
func ViewBox(x, y, w, h, width, height float64, aspect string) (m svgpath.Matrix2D, strokeScale float64) {
	sx, sy := width/w, height/h
	fields := strings.Fields(aspect)
	align, slice := "xMidYMid", false
	if len(fields) >= 1 {
		align = fields[0]
	}
	if len(fields) >= 2 {
		slice = fields[1] == "slice"
	}
	if a, ok := alignTable[align]; ok {
		if slice {
			sx = math.Max(sx, sy)
		} else {
			sx = math.Min(sx, sy)
		}
		sy = sx
		x += (w - width/sx) * a[0]
		y += (h - height/sy) * a[1]
	}
	m = svgpath.Identity.Scale(sx, sy).Translate(-x, -y)
	return m, math.Sqrt(sx * sy)
}

// svgF handles the root element. Nested svg elements are
// treated as groups.
func svgF(v *visitor, el element, state *visitorState) error {
	if el.node != v.root {
		return nil
	}
	var (
		meta Metadata
		err  error
	)
	if w := el.attr("width"); w != "" {
		if meta.Width, err = v.units(w); err != nil {
			return err
		}
		meta.HasWidth = true
	}
	if h := el.attr("height"); h != "" {
		if meta.Height, err = v.units(h); err != nil {
			return err
		}
		meta.HasHeight = true
	}
	if vb := el.attr("viewBox"); vb != "" {
		if err = v.readViewBox(vb, el.attr("preserveAspectRatio"), &meta, state); err != nil {
			return err
		}
	}
	if meta.HasWidth || meta.HasHeight {
		v.sink.Metadata(meta)
	}
	return nil
}

func (v *visitor) readViewBox(vb, aspect string, meta *Metadata, state *visitorState) error {
	fields := splitOnCommaOrSpace(vb)
	if len(fields) != 4 {
		v.logger.Warn().Str("viewBox", vb).Msg("ignoring invalid viewBox")
		return nil
	}
	var values [4]float64
	for i, f := range fields {
		var err error
		if values[i], err = v.units(f); err != nil {
			return errors.WithMessage(err, "viewBox")
		}
	}
	x, y, w, h := values[0], values[1], values[2], values[3]
	if w <= 0 || h <= 0 {
		return errors.Wrapf(ErrInvalidNumber, "viewBox %q", vb)
	}
	if !meta.HasWidth {
		meta.Width, meta.HasWidth = w, true
	}
	if !meta.HasHeight {
		meta.Height, meta.HasHeight = h, true
	}
	if meta.Width <= 0 || meta.Height <= 0 {
		return errors.Wrapf(ErrInvalidNumber, "viewport %gx%g for viewBox %q", meta.Width, meta.Height, vb)
	}
	m, strokeScale := ViewBox(x, y, w, h, meta.Width, meta.Height, aspect)
	state.matrix = state.matrix.Mult(m)
	state.strokeScale *= strokeScale
	return nil
}

func gF(*visitor, element, *visitorState) error { return nil } // g only passes its state to its children

// lengths parses the given attributes
func (v *visitor) lengths(el element, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		var err error
		if out[i], err = v.units(el.attr(name)); err != nil {
			return nil, errors.WithMessage(err, name)
		}
	}
	return out, nil
}

func rectF(v *visitor, el element, state *visitorState) error {
	ls, err := v.lengths(el, "x", "y", "width", "height", "rx", "ry")
	if err != nil {
		return err
	}
	x, y, w, h, rx, ry := ls[0], ls[1], ls[2], ls[3], ls[4], ls[5]
	return v.draw(el, *state, func(p svgpath.Pather) error {
		if rx != 0 || ry != 0 {
			svgpath.AddRoundRect(p, x, y, w, h, rx, ry)
		} else {
			svgpath.AddRect(p, x, y, w, h)
		}
		return nil
	})
}

func circleF(v *visitor, el element, state *visitorState) error {
	ls, err := v.lengths(el, "cx", "cy", "r")
	if err != nil {
		return err
	}
	return v.draw(el, *state, func(p svgpath.Pather) error {
		svgpath.AddEllipse(p, ls[0], ls[1], ls[2], ls[2])
		return nil
	})
}

func ellipseF(v *visitor, el element, state *visitorState) error {
	ls, err := v.lengths(el, "cx", "cy", "rx", "ry")
	if err != nil {
		return err
	}
	return v.draw(el, *state, func(p svgpath.Pather) error {
		svgpath.AddEllipse(p, ls[0], ls[1], ls[2], ls[3])
		return nil
	})
}

func lineF(v *visitor, el element, state *visitorState) error {
	ls, err := v.lengths(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	return v.draw(el, *state, func(p svgpath.Pather) error {
		svgpath.AddLine(p, ls[0], ls[1], ls[2], ls[3])
		return nil
	})
}

func readPoints(el element) ([]svgpath.Point, error) {
	values, err := svgpath.ParseNumbers(el.attr("points"))
	if err != nil {
		return nil, errors.WithMessage(err, "points")
	}
	points, err := svgpath.PointsFromNumbers(values)
	return points, errors.WithMessage(err, "points")
}

func polylineF(v *visitor, el element, state *visitorState) error {
	points, err := readPoints(el)
	if err != nil {
		return err
	}
	return v.draw(el, *state, func(p svgpath.Pather) error {
		svgpath.AddPolyline(p, points, false)
		return nil
	})
}

func polygonF(v *visitor, el element, state *visitorState) error {
	points, err := readPoints(el)
	if err != nil {
		return err
	}
	return v.draw(el, *state, func(p svgpath.Pather) error {
		svgpath.AddPolyline(p, points, true)
		return nil
	})
}

func pathF(v *visitor, el element, state *visitorState) error {
	return v.draw(el, *state, func(p svgpath.Pather) error {
		return svgpath.CompilePath(el.attr("d"), p, v.opts.Path)
	})
}
