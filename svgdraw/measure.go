package svgdraw

import (
	"math"

	"github.com/benoitkugler/svgcalls/svgicon"
	"github.com/benoitkugler/svgcalls/svgpath"
)

// Measurer computes the extent of the painted area.
type Measurer struct {
	// Meta is the metadata received, if any
	Meta    svgicon.Metadata
	HasMeta bool

	// Bounds is the union of the painted paths,
	// stroke width included.
	Bounds svgpath.Rect

	current svgpath.Path
}

// NewMeasurer returns an empty measurer.
func NewMeasurer() *Measurer {
	return &Measurer{Bounds: svgpath.EmptyRect}
}

func (m *Measurer) Metadata(meta svgicon.Metadata) {
	m.Meta, m.HasMeta = meta, true
}

func (m *Measurer) BeginPath() { m.current.Clear() }

func (m *Measurer) MoveTo(x, y float64) { m.current.MoveTo(x, y) }

func (m *Measurer) LineTo(x, y float64) { m.current.LineTo(x, y) }

func (m *Measurer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	m.current.CurveTo(x1, y1, x2, y2, x3, y3)
}

func (m *Measurer) ClosePath() { m.current.ClosePath() }

func (m *Measurer) Fill(svgicon.Color) {
	m.Bounds = m.Bounds.Union(m.current.Bounds())
}

func (m *Measurer) Stroke(_ svgicon.Color, width float64) {
	b := m.current.Bounds()
	if b.IsEmpty() {
		return
	}
	hw := width / 2
	b.Min = b.Min.Sub(svgpath.Point{X: hw, Y: hw})
	b.Max = b.Max.Add(svgpath.Point{X: hw, Y: hw})
	m.Bounds = m.Bounds.Union(b)
}

// Size returns the size of the image : the metadata if present, or
// the painted area (including the origin).
func (m *Measurer) Size() (width, height float64) {
	if !m.Bounds.IsEmpty() {
		width, height = math.Max(m.Bounds.Max.X, 0), math.Max(m.Bounds.Max.Y, 0)
	}
	if m.HasMeta && m.Meta.HasWidth {
		width = m.Meta.Width
	}
	if m.HasMeta && m.Meta.HasHeight {
		height = m.Meta.Height
	}
	return width, height
}
