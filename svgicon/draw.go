package svgicon

import (
	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Given a parsed SVG document, implements how to
// walk it and emit the drawing calls.

// visitorState is the graphic state inherited by
// the children of an element.
// It is passed by value, so that modifications
// never leak to siblings or parents.
type visitorState struct {
	matrix      svgpath.Matrix2D
	strokeScale float64
	opacity     float64
}

var initialState = visitorState{matrix: svgpath.Identity, strokeScale: 1, opacity: 1}

// Style is the resolved painting style of a shape.
// A nil color means "none".
type Style struct {
	Fill, Stroke *Color
	StrokeWidth  float64
}

// visitor is used while walking SVG documents
type visitor struct {
	sink   Sink
	opts   Options
	logger zerolog.Logger
	root   *node
}

func newVisitor(sink Sink, opts Options) *visitor {
	return &visitor{sink: sink, opts: opts, logger: opts.logger()}
}

// element is a node with its parsed inline style
type element struct {
	*node
	style map[string]string
}

// get returns the value of the presentation attribute `name`,
// or of the inline declaration `name`, or `defaut`
func (el element) get(name, defaut string) string {
	if v := el.attr(name); v != "" {
		return v
	}
	if v := el.style[name]; v != "" {
		return v
	}
	return defaut
}

// units parses a length attribute, applying the unit policy
func (v *visitor) units(text string) (float64, error) {
	f, unit, err := ParseUnits(text)
	if err != nil {
		return 0, err
	}
	if unit != "" {
		if v.opts.StrictUnits {
			return 0, errors.Wrapf(ErrUnsupportedUnit, "%q", text)
		}
		v.logger.Warn().Str("length", text).Str("unit", unit).Msg("ignoring unsupported unit")
	}
	return f, nil
}

// resolveStyle looks for fill, stroke and stroke-width, in the attributes,
// then in the inline style, and finally uses the defaults.
func (v *visitor) resolveStyle(el element) (Style, error) {
	var out Style
	if fill := el.get("fill", "black"); fill != "none" {
		c, err := ParseColor(fill)
		if err != nil {
			return out, err
		}
		out.Fill = &c
	}
	if stroke := el.get("stroke", "none"); stroke != "none" {
		c, err := ParseColor(stroke)
		if err != nil {
			return out, err
		}
		out.Stroke = &c
		out.StrokeWidth, err = v.units(el.get("stroke-width", "1"))
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// draw emits one shape : the path built by `outline`,
// in device space, followed by the fill and stroke operations
func (v *visitor) draw(el element, state visitorState, outline func(p svgpath.Pather) error) error {
	style, err := v.resolveStyle(el)
	if err != nil {
		return err
	}
	v.sink.BeginPath()
	if err = outline(svgpath.MatrixPather{Pather: v.sink, M: state.matrix}); err != nil {
		return err
	}
	if style.Fill != nil {
		v.sink.Fill(style.Fill.WithOpacity(state.opacity))
	}
	if style.Stroke != nil {
		v.sink.Stroke(style.Stroke.WithOpacity(state.opacity), style.StrokeWidth*state.strokeScale)
	}
	return nil
}

func (v *visitor) visitRoot(root *node) error {
	v.root = root
	return v.visit(root, initialState)
}

// visit handles the element n and its children.
func (v *visitor) visit(n *node, state visitorState) error {
	if skippedElements[n.name] {
		return nil
	}
	style, err := parseStyleDeclarations(n.attr("style"))
	if err != nil {
		return err
	}
	el := element{node: n, style: style}

	opacity, err := parseFloat(el.get("opacity", "1"))
	if err != nil {
		return errors.WithMessage(err, "opacity")
	}
	state.opacity *= opacity

	if tr := n.attr("transform"); tr != "" {
		m, err := ParseTransform(tr)
		if err != nil {
			return err
		}
		state.matrix = state.matrix.Mult(m)
	}

	if err = v.readElement(el, &state); err != nil {
		return errors.WithMessagef(err, "<%s>", n.name)
	}

	for _, child := range n.children {
		if err = v.visit(child, state); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) readElement(el element, state *visitorState) error {
	df, ok := visitFuncs[el.name]
	if !ok {
		switch v.opts.ErrorMode {
		case StrictErrorMode:
			return ErrUnknownElement
		case WarnErrorMode:
			v.logger.Warn().Str("element", el.name).Msg("cannot process svg element")
		}
		return nil
	}
	return df(v, el, state)
}
