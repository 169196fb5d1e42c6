// Implements a PDF backend to render SVG images,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"bytes"
	"io"
	"math"

	"github.com/benoitkugler/svgcalls/svgdraw"
	"github.com/benoitkugler/svgcalls/svgicon"
	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/jung-kurt/gofpdf"
)

// assert interface conformance
var (
	_ svgicon.Sink   = (*Renderer)(nil)
	_ svgpath.Pather = pather{}
)

// Renderer writes the drawing calls in the current page of a PDF document.
// PDF painting operators consume the current path, so it is
// recorded and written again for each paint operation.
type Renderer struct {
	pdf  *gofpdf.Fpdf
	path svgpath.Path
}

// implements the path commands, directly
// writing to the page content
type pather struct {
	pdf *gofpdf.Fpdf
}

func (p pather) MoveTo(x, y float64) { p.pdf.MoveTo(x, y) }

func (p pather) LineTo(x, y float64) { p.pdf.LineTo(x, y) }

func (p pather) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.pdf.CurveBezierCubicTo(x1, y1, x2, y2, x3, y3)
}

func (p pather) ClosePath() { p.pdf.ClosePath() }

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// RenderSVGToPDF writes a one page PDF document to `output`,
// with a page size given by the svg metadata (or the painted area),
// in points.
func RenderSVGToPDF(svg io.Reader, output io.Writer, opts svgicon.Options) error {
	source, err := io.ReadAll(svg)
	if err != nil {
		return err
	}
	measure := svgdraw.NewMeasurer()
	if err = svgicon.InterpretStream(bytes.NewReader(source), measure, opts); err != nil {
		return err
	}
	w, h := measure.Size()
	// gofpdf rejects empty pages
	w, h = math.Max(w, 1), math.Max(h, 1)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts.LogOutput = nil
	if err = svgicon.InterpretStream(bytes.NewReader(source), NewRenderer(pdf), opts); err != nil {
		return err
	}
	return pdf.Output(output)
}

// Metadata is ignored: the page is setup by the caller.
func (r *Renderer) Metadata(svgicon.Metadata) {}

func (r *Renderer) BeginPath() { r.path.Clear() }

func (r *Renderer) MoveTo(x, y float64) { r.path.MoveTo(x, y) }

func (r *Renderer) LineTo(x, y float64) { r.path.LineTo(x, y) }

func (r *Renderer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.path.CurveTo(x1, y1, x2, y2, x3, y3)
}

func (r *Renderer) ClosePath() { r.path.ClosePath() }

// Fill paints the current path with the non zero winding rule.
func (r *Renderer) Fill(c svgicon.Color) {
	r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(c.A, "")
	r.path.AddTo(pather{r.pdf})
	r.pdf.DrawPath("f")
}

func (r *Renderer) Stroke(c svgicon.Color, width float64) {
	r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(c.A, "")
	r.pdf.SetLineWidth(width)
	r.pdf.SetLineCapStyle("butt")
	r.pdf.SetLineJoinStyle("miter")
	r.path.AddTo(pather{r.pdf})
	r.pdf.DrawPath("D")
}
