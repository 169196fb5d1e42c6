// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/benoitkugler/svgcalls/svgdraw"
	"github.com/benoitkugler/svgcalls/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Sink = (*Renderer)(nil) // assert interface conformance

// MiterLimit is used for every stroke, as in SVG
const MiterLimit = 4

// Renderer paints the drawing calls into an image.
// Each path is recorded, and then replayed into the filler
// or the dasher.
type Renderer struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler

	path rasterx.Path // current path, in fixed coordinates
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV, drawing into img, is used
func NewRenderer(img draw.Image, scanner rasterx.Scanner) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, b)
	}
	return &Renderer{dasher: rasterx.NewDasher(w, h, scanner), filler: rasterx.NewFiller(w, h, scanner)}
}

// RasterSVGToImage uses a ScannerGV instance to render the
// svg into an image and returns it.
// The size of the image is given by the svg metadata, or by
// the painted area when missing.
func RasterSVGToImage(svg io.Reader, opts svgicon.Options) (*image.RGBA, error) {
	source, err := io.ReadAll(svg)
	if err != nil {
		return nil, err
	}
	measure := svgdraw.NewMeasurer()
	if err = svgicon.InterpretStream(bytes.NewReader(source), measure, opts); err != nil {
		return nil, err
	}
	fw, fh := measure.Size()
	w, h := int(math.Ceil(fw)), int(math.Ceil(fh))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img, nil
	}

	renderer := NewRenderer(img, nil)
	// warnings have been reported by the first pass
	opts.LogOutput = nil
	err = svgicon.InterpretStream(bytes.NewReader(source), renderer, opts)
	return img, err
}

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// Metadata is ignored : the size is fixed by the target image.
func (rd *Renderer) Metadata(svgicon.Metadata) {}

func (rd *Renderer) BeginPath() { rd.path.Clear() }

func (rd *Renderer) MoveTo(x, y float64) {
	rd.path.Stop(false)
	rd.path.Start(toFixedP(x, y))
}

func (rd *Renderer) LineTo(x, y float64) { rd.path.Line(toFixedP(x, y)) }

func (rd *Renderer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	rd.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x3, y3))
}

func (rd *Renderer) ClosePath() { rd.path.Stop(true) }

func toRasterxColor(c svgicon.Color) color.NRGBA {
	return rasterx.ApplyOpacity(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, c.A)
}

// Fill paints the current path with the non zero winding rule.
func (rd *Renderer) Fill(c svgicon.Color) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	rd.path.AddTo(rd.filler)
	rd.filler.SetColor(toRasterxColor(c))
	rd.filler.Draw()
}

// Stroke paints the outline of the current path, with butt caps and miter joins.
func (rd *Renderer) Stroke(c svgicon.Color, width float64) {
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(MiterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	rd.path.AddTo(rd.dasher)
	rd.dasher.SetColor(toRasterxColor(c))
	rd.dasher.Draw()
}
