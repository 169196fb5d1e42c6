package svgicon

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/parser"
	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/pkg/errors"
	parse "github.com/tdewolff/parse/v2/strconv"
)

// ParseUnits parses a length, such as "12", "1.5px" or "3em".
// An empty text is 0. The "px" suffix is stripped, any other
// suffix is returned in `unit`, and is NOT applied to the value.
func ParseUnits(text string) (value float64, unit string, err error) {
	v := strings.TrimSpace(text)
	if v == "" {
		return 0, "", nil
	}
	f, n := parse.ParseFloat([]byte(v))
	if n == 0 {
		return 0, "", errors.Wrapf(ErrInvalidNumber, "length %q", text)
	}
	if exact, err := strconv.ParseFloat(v[:n], 64); err == nil {
		f = exact
	}
	unit = strings.TrimSpace(v[n:])
	if unit == "px" {
		unit = ""
	}
	return f, unit, nil
}

func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", text)
	}
	return f, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
}

// readTransformAttr returns the matrix for one transform function `k`
func readTransformAttr(k string, points []float64) (svgpath.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "translate":
		if ln == 1 {
			return svgpath.Identity.Translate(points[0], 0), nil
		} else if ln == 2 {
			return svgpath.Identity.Translate(points[0], points[1]), nil
		}
	case "matrix":
		if ln == 6 {
			return svgpath.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]}, nil
		}
	}
	return svgpath.Matrix2D{}, ErrUnsupportedTransform
}

// ParseTransform parses a list of matrix(a b c d e f) and
// translate(tx [ty]) functions, composed from left to right.
// Other functions, such as rotate or scale, are not supported.
func ParseTransform(v string) (svgpath.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := svgpath.Identity
	for i, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			if i == len(ts)-1 {
				continue
			}
			return m1, errors.Wrapf(ErrUnsupportedTransform, "%q", v)
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || i == len(ts)-1 { // badly formed transformation
			return m1, errors.Wrapf(ErrUnsupportedTransform, "%q", v)
		}
		points, err := svgpath.ParseNumbers(d[1])
		if err != nil {
			return m1, errors.Wrapf(ErrUnsupportedTransform, "%q", v)
		}
		m, err := readTransformAttr(strings.TrimSpace(strings.TrimLeft(d[0], ", \t\n\r")), points)
		if err != nil {
			return m1, errors.Wrapf(err, "%q", v)
		}
		m1 = m1.Mult(m)
	}
	return m1, nil
}

// parseStyleDeclarations parses an inline style attribute, such as
// "fill:red; stroke-width:2", into a flat mapping.
// The last occurrence of a property wins.
func parseStyleDeclarations(style string) (map[string]string, error) {
	var kept []string
	for _, chunk := range strings.Split(style, ";") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			kept = append(kept, chunk+";")
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(strings.Join(kept, " "))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidStyle, "%q: %s", style, err)
	}
	out := make(map[string]string, len(decls))
	for _, decl := range decls {
		out[decl.Property] = decl.Value
	}
	return out, nil
}
