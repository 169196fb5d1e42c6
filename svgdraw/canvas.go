package svgdraw

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/benoitkugler/svgcalls/svgicon"
)

// Script writes the drawing calls as JavaScript code
// targeting an HTML canvas 2D context.
// Write errors are sticky : once one occurred, the next calls are
// ignored, and the error is returned by Flush.
type Script struct {
	w   *bufio.Writer
	err error

	// CanvasID is the id of the canvas element (default to "canvas")
	CanvasID string
}

// NewScript returns a Script writing to `w`.
// Flush must be called at the end.
func NewScript(w io.Writer) *Script {
	return &Script{w: bufio.NewWriter(w), CanvasID: "canvas"}
}

func (s *Script) line(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format+"\n", args...)
}

func (s *Script) Metadata(m svgicon.Metadata) {
	s.line(`var canvas = document.getElementById(%q);`, s.CanvasID)
	s.line(`var context = canvas.getContext("2d");`)
	s.line(`var width = %s;`, formatFloat(m.Width))
	s.line(`var height = %s;`, formatFloat(m.Height))
	s.line(`var dpr = window.devicePixelRatio || 1;`)
	s.line(`canvas.width = dpr * width;`)
	s.line(`canvas.height = dpr * height;`)
	s.line(`canvas.style.width = width + "px";`)
	s.line(`canvas.style.height = height + "px";`)
	s.line(`context.scale(dpr, dpr);`)
}

func (s *Script) BeginPath() { s.line("context.beginPath();") }

func (s *Script) MoveTo(x, y float64) {
	s.line("context.moveTo(%s, %s);", formatFloat(x), formatFloat(y))
}

func (s *Script) LineTo(x, y float64) {
	s.line("context.lineTo(%s, %s);", formatFloat(x), formatFloat(y))
}

func (s *Script) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.line("context.bezierCurveTo(%s, %s, %s, %s, %s, %s);", formatFloat(x1), formatFloat(y1),
		formatFloat(x2), formatFloat(y2), formatFloat(x3), formatFloat(y3))
}

func (s *Script) ClosePath() { s.line("context.closePath();") }

func (s *Script) Fill(c svgicon.Color) {
	s.line(`context.fillStyle = "%s";`, c)
	s.line("context.fill();")
}

func (s *Script) Stroke(c svgicon.Color, width float64) {
	s.line("context.lineWidth = %s;", formatFloat(width))
	s.line(`context.strokeStyle = "%s";`, c)
	s.line("context.stroke();")
}

// Flush writes the buffered code, and returns the first error encountered.
func (s *Script) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

// WriteHTML writes a page showing the SVG source next to its canvas rendering.
// The script is generated by interpreting `svg`, with `opts`.
func WriteHTML(w io.Writer, svg string, opts svgicon.Options) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "<!DOCTYPE html>\n<html>\n<body>\n%s\n<canvas id=\"canvas\"></canvas>\n<script>\n", svg)
	script := NewScript(out)
	if err := svgicon.InterpretStream(strings.NewReader(svg), script, opts); err != nil {
		return err
	}
	if err := script.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "</script>\n<pre>%s</pre>\n</body>\n</html>\n", html.EscapeString(svg))
	return out.Flush()
}
