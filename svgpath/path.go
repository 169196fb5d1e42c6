// Implements the SVG path mini-language and the
// lowering of basic shapes to paths.
// Paths are emitted as a stream of segments to a Pather,
// or recorded into a Path and replayed later.
package svgpath

import (
	"fmt"
	"strings"
)

// Pather receives path segments.
// Quadratic curves are always converted to cubic ones before
// reaching a Pather.
type Pather interface {
	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)
	// LineTo adds a line from the current point to (x, y)
	LineTo(x, y float64)
	// CurveTo adds a cubic bezier curve with control points (x1, y1), (x2, y2)
	// ending at (x3, y3)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	// ClosePath closes the current subpath
	ClosePath()
}

// MatrixPather applies M to every point
// before forwarding it to the wrapped Pather.
type MatrixPather struct {
	Pather
	M Matrix2D
}

func (t MatrixPather) MoveTo(x, y float64) {
	p := t.M.Transform(Point{x, y})
	t.Pather.MoveTo(p.X, p.Y)
}

func (t MatrixPather) LineTo(x, y float64) {
	p := t.M.Transform(Point{x, y})
	t.Pather.LineTo(p.X, p.Y)
}

func (t MatrixPather) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p1 := t.M.Transform(Point{x1, y1})
	p2 := t.M.Transform(Point{x2, y2})
	p3 := t.M.Transform(Point{x3, y3})
	t.Pather.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
)

// Operation groups the different path segments
type Operation interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path records a sequence of operations.
// It implements Pather, so that shapes and path data
// may be compiled into it.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", op[0].X, op[0].Y,
				op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, MoveTo{x, y})
}

func (p *Path) LineTo(x, y float64) {
	*p = append(*p, LineTo{x, y})
}

func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	*p = append(*p, CubicTo{{x1, y1}, {x2, y2}, {x3, y3}})
}

func (p *Path) ClosePath() {
	*p = append(*p, Close{})
}

// AddTo replays the Path p into q.
func (p Path) AddTo(q Pather) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.MoveTo(op.X, op.Y)
		case LineTo:
			q.LineTo(op.X, op.Y)
		case CubicTo:
			q.CurveTo(op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			q.ClosePath()
		}
	}
}
