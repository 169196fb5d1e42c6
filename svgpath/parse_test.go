package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opPoints(op Operation) []Point {
	switch op := op.(type) {
	case MoveTo:
		return []Point{Point(op)}
	case LineTo:
		return []Point{Point(op)}
	case CubicTo:
		return op[:]
	}
	return nil
}

func assertPath(t *testing.T, expected, got Path) {
	t.Helper()
	require.Len(t, got, len(expected), "got %s", got)
	for i, exp := range expected {
		require.Equal(t, exp.command(), got[i].command(), "operation %d in %s", i, got)
		ep, gp := opPoints(exp), opPoints(got[i])
		for j := range ep {
			assertPointInDelta(t, ep[j], gp[j])
		}
	}
}

func compile(t *testing.T, d string, opts Options) Path {
	t.Helper()
	var out Path
	err := CompilePath(d, &out, opts)
	require.NoError(t, err, d)
	return out
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("M1e1-2.5.5,+3 -.25E-1L")
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.String())
	}
	assert.Equal(t, []string{"M", "10", "-2.5", "0.5", "3", "-0.025", "L"}, got)

	assert.Empty(t, tokenize(" , \n\t"))
}

func TestParseNumbers(t *testing.T) {
	vs, err := ParseNumbers("0,0 10 20.5,-3")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 10, 20.5, -3}, vs)

	_, err = ParseNumbers("0 0 10 x")
	assert.ErrorIs(t, err, ErrParamMismatch)
}

func TestCompilePath(t *testing.T) {
	const third = 10. / 3
	tests := []struct {
		d        string
		expected Path
	}{
		{"M 0 0 L 10 0 L 10 10 Z", Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, Close{}}},
		// extra pairs after a move are lines
		{"m10 10 20 0 0 20z", Path{MoveTo{10, 10}, LineTo{30, 10}, LineTo{30, 30}, Close{}}},
		{"M0,0 H10 V10 h-5 v-5 5", Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, LineTo{5, 10}, LineTo{5, 5}, LineTo{5, 10}}},
		{"M1e1-2.5L.5.5", Path{MoveTo{10, -2.5}, LineTo{0.5, 0.5}}},
		// quadratic curves are converted to cubic ones
		{"M0 0 Q10 0 10 10", Path{MoveTo{0, 0}, CubicTo{{2 * third, 0}, {10, third}, {10, 10}}}},
		{"M0 0 q10 0 10 10", Path{MoveTo{0, 0}, CubicTo{{2 * third, 0}, {10, third}, {10, 10}}}},
		// T without previous curve uses the cursor as control point
		{"M0 0 T10 10", Path{MoveTo{0, 0}, CubicTo{{0, 0}, {third, third}, {10, 10}}}},
		{"M0 0 Q 5 5 10 0 T 20 0", Path{
			MoveTo{0, 0},
			CubicTo{{third, third}, {20 * 2 / 6., third}, {10, 0}},
			CubicTo{{10 + third, -third}, {20 - third, -third}, {20, 0}},
		}},
		{"M0 0 C 0 10 10 10 10 0 S 20 -10 20 0", Path{
			MoveTo{0, 0},
			CubicTo{{0, 10}, {10, 10}, {10, 0}},
			CubicTo{{10, -10}, {20, -10}, {20, 0}},
		}},
		{"M0 0 c 0 10 10 10 10 0 s 10 -10 10 0", Path{
			MoveTo{0, 0},
			CubicTo{{0, 10}, {10, 10}, {10, 0}},
			CubicTo{{10, -10}, {20, -10}, {20, 0}},
		}},
		// S after a line uses the cursor
		{"M0 0 L10 0 S 20 20 30 30", Path{MoveTo{0, 0}, LineTo{10, 0}, CubicTo{{10, 0}, {20, 20}, {30, 30}}}},
		// implicit repetition of curves
		{"M0 0 C 1 1 2 2 3 3 4 4 5 5 6 6", Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 2}, {3, 3}}, CubicTo{{4, 4}, {5, 5}, {6, 6}}}},
		// close resets the cursor to the origin
		{"M10 10 L20 10 Z l5 5", Path{MoveTo{10, 10}, LineTo{20, 10}, Close{}, LineTo{5, 5}}},
		{"", nil},
	}
	for _, test := range tests {
		assertPath(t, test.expected, compile(t, test.d, Options{}))
	}
}

func TestCompilePathStandardClose(t *testing.T) {
	got := compile(t, "M10 10 L20 10 Z l5 5", Options{StandardClose: true})
	assertPath(t, Path{MoveTo{10, 10}, LineTo{20, 10}, Close{}, LineTo{15, 15}}, got)
}

func TestCompilePathErrors(t *testing.T) {
	for _, d := range []string{
		"M0 0 A 10 10 0 0 1 20 20",
		"M0 0 X",
		"10 10",
		"M0 0 Z 10 10",
		"M0 0 L10 10 #",
	} {
		var out Path
		err := CompilePath(d, &out, Options{})
		assert.ErrorIs(t, err, ErrUnsupportedCommand, d)
	}

	for _, d := range []string{
		"M 0",
		"M0 0 L10",
		"M0 0 C 1 1 2 2",
		"M0 0 Q 1 1",
		"M0 0 L 1 L",
	} {
		var out Path
		err := CompilePath(d, &out, Options{})
		assert.ErrorIs(t, err, ErrParamMismatch, d)
	}
}

func TestCompilePathErrorNamesToken(t *testing.T) {
	var out Path
	err := CompilePath("M0 0 L5 5 X 1", &out, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"X"`)
	// segments before the error are emitted
	assertPath(t, Path{MoveTo{0, 0}, LineTo{5, 5}}, out)
}

func TestCompilePathArcs(t *testing.T) {
	got := compile(t, "M0 0 A10 10 0 0 1 20 0", Options{Arcs: true})
	require.True(t, len(got) >= 3)
	for _, op := range got[1:] {
		assert.IsType(t, CubicTo{}, op)
	}
	last := got[len(got)-1].(CubicTo)
	assert.Equal(t, Point{20, 0}, last[2])

	bounds := got.Bounds()
	assert.InDelta(t, 20, bounds.Width(), 1e-3)
	assert.InDelta(t, 10, bounds.Height(), 0.01)

	// degenerated radius
	got = compile(t, "M0 0 a0 10 0 0 1 20 0", Options{Arcs: true})
	assertPath(t, Path{MoveTo{0, 0}, LineTo{20, 0}}, got)
}
