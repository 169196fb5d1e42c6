package svgdraw

import (
	"strings"

	"github.com/benoitkugler/svgcalls/svgicon"
)

// Op identifies a sink method
type Op uint8

const (
	OpMetadata Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpCurveTo
	OpClosePath
	OpFill
	OpStroke
)

func (op Op) String() string {
	switch op {
	case OpMetadata:
		return "metadata"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpCurveTo:
		return "curveTo"
	case OpClosePath:
		return "closePath"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	default:
		return "<invalid op>"
	}
}

// Call is one recorded sink call.
// Colors are recorded as r, g, b, a, and the
// metadata as width, height (0 when missing)
type Call struct {
	Op   Op
	Args []float64
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = formatFloat(a)
	}
	return c.Op.String() + "(" + strings.Join(args, ", ") + ")"
}

// Recorder stores the calls it receives.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) add(op Op, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) Metadata(m svgicon.Metadata) { r.add(OpMetadata, m.Width, m.Height) }
func (r *Recorder) BeginPath()                  { r.add(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)         { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)         { r.add(OpLineTo, x, y) }
func (r *Recorder) ClosePath()                  { r.add(OpClosePath) }

func (r *Recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.add(OpCurveTo, x1, y1, x2, y2, x3, y3)
}

func (r *Recorder) Fill(c svgicon.Color) {
	r.add(OpFill, float64(c.R), float64(c.G), float64(c.B), c.A)
}

func (r *Recorder) Stroke(c svgicon.Color, width float64) {
	r.add(OpStroke, float64(c.R), float64(c.G), float64(c.B), c.A, width)
}

// Ops returns the sequence of operations, without arguments
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

// Count returns the number of calls to `op`
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// String returns one call per line
func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
