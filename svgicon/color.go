package svgicon

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Color is a non premultiplied color, with
// an alpha channel in [0, 1]
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := uint32(clamp(c.A, 1)*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * alpha / 0xffff
	g = uint32(c.G) * 0x101 * alpha / 0xffff
	b = uint32(c.B) * 0x101 * alpha / 0xffff
	return r, g, b, alpha
}

// WithOpacity multiplies the alpha channel by opacity.
func (c Color) WithOpacity(opacity float64) Color {
	c.A *= opacity
	return c
}

func (c Color) String() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(c.A, 'g', -1, 64) + ")"
}

var _ color.Color = Color{}

var (
	hex6Re = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)
	hex3Re = regexp.MustCompile(`^#[A-Fa-f0-9]{3}$`)
	rgbRe  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaRe = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+(?:\.\d+)?|\.\d+)\s*\)$`)
)

func clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// parseColorValue parses a decimal component, clamped to 255
func parseColorValue(v string) uint8 {
	n, err := strconv.Atoi(v)
	if err != nil || n > 255 { // only overflow is possible : v matches \d+
		return 255
	}
	return uint8(n)
}

// ParseColor resolves a color keyword (case sensitive), an hexadecimal
// #RRGGBB or #RGB value, or the rgb(r,g,b) and rgba(r,g,b,a) functions.
// Other syntaxes return ErrUnsupportedColor.
func ParseColor(text string) (Color, error) {
	v := strings.TrimSpace(text)
	if c, ok := colornames.Map[v]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	switch {
	case hex6Re.MatchString(v):
		n, _ := strconv.ParseUint(v[1:], 16, 32)
		return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 1}, nil
	case hex3Re.MatchString(v):
		n, _ := strconv.ParseUint(v[1:], 16, 16)
		return Color{R: uint8(n>>8&15) * 0x11, G: uint8(n>>4&15) * 0x11, B: uint8(n&15) * 0x11, A: 1}, nil
	}
	if m := rgbRe.FindStringSubmatch(v); m != nil {
		return Color{R: parseColorValue(m[1]), G: parseColorValue(m[2]), B: parseColorValue(m[3]), A: 1}, nil
	}
	if m := rgbaRe.FindStringSubmatch(v); m != nil {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return Color{}, errors.Wrapf(ErrUnsupportedColor, "%q", text)
		}
		return Color{R: parseColorValue(m[1]), G: parseColorValue(m[2]), B: parseColorValue(m[3]), A: clamp(a, 1)}, nil
	}
	return Color{}, errors.Wrapf(ErrUnsupportedColor, "%q", text)
}
