package svgicon

import (
	"strings"
	"testing"

	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		text  string
		value float64
		unit  string
	}{
		{"", 0, ""},
		{"10", 10, ""},
		{" 7 ", 7, ""},
		{"10px", 10, ""},
		{"-3e1px", -30, ""},
		{".5", 0.5, ""},
		{"1.5em", 1.5, "em"},
		{"50%", 50, "%"},
		{"2 cm", 2, "cm"},
	}
	for _, test := range tests {
		v, unit, err := ParseUnits(test.text)
		require.NoError(t, err, test.text)
		assert.Equal(t, test.value, v, test.text)
		assert.Equal(t, test.unit, unit, test.text)
	}

	for _, text := range []string{"abc", "px", "-"} {
		_, _, err := ParseUnits(text)
		assert.ErrorIs(t, err, ErrInvalidNumber, text)
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		text     string
		expected svgpath.Matrix2D
	}{
		{"matrix(1 2 3 4 5 6)", svgpath.Matrix2D{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"matrix(0,-1,1,0,0,400)", svgpath.Matrix2D{A: 0, B: -1, C: 1, D: 0, E: 0, F: 400}},
		{"translate(10, 20)", svgpath.Matrix2D{A: 1, D: 1, E: 10, F: 20}},
		{" translate ( 5 ) ", svgpath.Matrix2D{A: 1, D: 1, E: 5}},
		{"translate(10,0) matrix(2 0 0 2 0 0)", svgpath.Matrix2D{A: 2, D: 2, E: 10}},
		{"translate(10,0), translate(0,10)", svgpath.Matrix2D{A: 1, D: 1, E: 10, F: 10}},
	}
	for _, test := range tests {
		m, err := ParseTransform(test.text)
		require.NoError(t, err, test.text)
		assert.Equal(t, test.expected, m, test.text)
	}

	// left to right composition
	m, err := ParseTransform("translate(10,0) matrix(2 0 0 2 0 0)")
	require.NoError(t, err)
	assert.Equal(t, svgpath.Point{X: 12, Y: 2}, m.Transform(svgpath.Point{X: 1, Y: 1}))

	for _, text := range []string{
		"rotate(45)",
		"scale(2)",
		"skewX(10)",
		"translate(1,0) rotate(45)",
		"matrix(1 2 3)",
		"translate(1,2,3)",
		"translate()",
		"translate(1,2",
		"translate(a,b)",
		"translate(1,2))",
		"Translate(1,2)",
	} {
		_, err := ParseTransform(text)
		assert.ErrorIs(t, err, ErrUnsupportedTransform, text)
	}
}

func TestParseStyleDeclarations(t *testing.T) {
	decls, err := parseStyleDeclarations("fill:red; stroke : blue;fill:green")
	require.NoError(t, err)
	assert.Equal(t, "green", decls["fill"])
	assert.Equal(t, "blue", decls["stroke"])

	decls, err = parseStyleDeclarations("fill: rgb(1, 2, 3); stroke-width: 4px;")
	require.NoError(t, err)
	assert.Equal(t, "4px", decls["stroke-width"])
	c, err := ParseColor(decls["fill"])
	require.NoError(t, err)
	assert.Equal(t, Color{1, 2, 3, 1}, c)

	decls, err = parseStyleDeclarations("  ")
	require.NoError(t, err)
	assert.Empty(t, decls)

	// empty declarations are skipped
	decls, err = parseStyleDeclarations("fill:red;;stroke:blue")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"fill": "red", "stroke": "blue"}, decls)

	decls, err = parseStyleDeclarations(";fill:red")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"fill": "red"}, decls)

	decls, err = parseStyleDeclarations(" ; ;")
	require.NoError(t, err)
	assert.Empty(t, decls)

	_, err = parseStyleDeclarations("fill red")
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestSplitOnCommaOrSpace(t *testing.T) {
	assert.Equal(t, []string{"0", "0", "10", "20"}, splitOnCommaOrSpace(" 0,0\t10 ,\n20 "))
}

func TestViewBox(t *testing.T) {
	m, scale := ViewBox(0, 0, 50, 50, 100, 100, "")
	assert.Equal(t, svgpath.Matrix2D{A: 2, D: 2}, m)
	assert.Equal(t, 2., scale)

	// centered vertically
	m, scale = ViewBox(0, 0, 100, 50, 100, 100, "xMidYMid")
	assert.Equal(t, svgpath.Matrix2D{A: 1, D: 1, F: 25}, m)
	assert.Equal(t, 1., scale)

	m, _ = ViewBox(0, 0, 100, 50, 100, 100, "xMinYMin meet")
	assert.Equal(t, svgpath.Matrix2D{A: 1, D: 1}, m)

	m, _ = ViewBox(0, 0, 100, 50, 100, 100, "xMinYMax")
	assert.Equal(t, svgpath.Matrix2D{A: 1, D: 1, F: 50}, m)

	// independent scales
	m, scale = ViewBox(0, 0, 100, 50, 100, 100, "none")
	assert.Equal(t, svgpath.Matrix2D{A: 1, D: 2}, m)
	assert.InDelta(t, 1.41421356, scale, 1e-6)

	m, _ = ViewBox(0, 0, 100, 50, 100, 100, "xMaxYMax slice")
	assert.Equal(t, svgpath.Matrix2D{A: 2, D: 2, E: -100}, m)

	// origin of the viewBox
	m, _ = ViewBox(10, 20, 50, 50, 100, 100, "")
	assert.Equal(t, svgpath.Point{}, m.Transform(svgpath.Point{X: 10, Y: 20}))
}

func TestReadTree(t *testing.T) {
	root, err := readTree(strings.NewReader(`<?xml version="1.0"?>
	<!-- comment -->
	<svg width="10"><g id="a"><rect/>text</g><path d="M0 0"/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.name)
	assert.Equal(t, "10", root.attr("width"))
	require.Len(t, root.children, 2)
	assert.Equal(t, "g", root.children[0].name)
	assert.Equal(t, "rect", root.children[0].children[0].name)
	assert.Equal(t, "M0 0", root.children[1].attr("d"))

	for _, markup := range []string{
		"",
		"not xml",
		"<svg><g></svg>",
		"<svg>",
		"<a/><b/>",
	} {
		_, err := readTree(strings.NewReader(markup))
		assert.ErrorIs(t, err, ErrMalformedMarkup, markup)
	}
}

func TestReadTreeCharset(t *testing.T) {
	markup := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><title>caf\xe9</title></svg>"
	root, err := readTree(strings.NewReader(markup))
	require.NoError(t, err)
	assert.Equal(t, "title", root.children[0].name)
}
