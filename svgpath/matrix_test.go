package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPointInDelta(t *testing.T, expected, got Point) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, 1e-9, "X of %v", got)
	assert.InDelta(t, expected.Y, got.Y, 1e-9, "Y of %v", got)
}

func TestIdentity(t *testing.T) {
	for _, p := range []Point{{}, {1, 2}, {-4.5, 1e6}} {
		assert.Equal(t, p, Identity.Transform(p))
	}
	assert.Equal(t, Identity, Identity.Mult(Identity))
}

func TestMultIsComposition(t *testing.T) {
	matrices := []Matrix2D{
		Identity,
		{A: 2, D: 3, E: 1, F: -1},
		{A: 0, B: -1, C: 1, D: 0, E: 0, F: 400},
		{A: 0.5, B: 0.2, C: -0.3, D: 1.5, E: 10, F: 20},
	}
	points := []Point{{0, 0}, {1, 0}, {3, -7}, {100, 250}}
	for _, a := range matrices {
		for _, b := range matrices {
			ab := a.Mult(b)
			for _, p := range points {
				assertPointInDelta(t, a.Transform(b.Transform(p)), ab.Transform(p))
			}
		}
	}
}

func TestMultNotCommutative(t *testing.T) {
	a := Identity.Translate(10, 0)
	b := Identity.Scale(2, 2)
	assert.Equal(t, Point{12, 2}, a.Mult(b).Transform(Point{1, 1}))
	assert.Equal(t, Point{22, 2}, b.Mult(a).Transform(Point{1, 1}))
}

func TestPointOps(t *testing.T) {
	p, q := Point{1, 2}, Point{4, -1}
	assert.Equal(t, Point{5, 1}, p.Add(q))
	assert.Equal(t, Point{-3, 3}, p.Sub(q))
	assert.Equal(t, Point{2.5, 5}, p.Mul(2.5))
	assert.Equal(t, Point{7, -4}, p.Reflect(q))
}

func TestMatrixPather(t *testing.T) {
	var rec Path
	mp := MatrixPather{Pather: &rec, M: Identity.Translate(10, 20).Scale(2, 2)}
	mp.MoveTo(1, 1)
	mp.LineTo(2, 1)
	mp.CurveTo(0, 0, 1, 0, 2, 2)
	mp.ClosePath()
	assert.Equal(t, Path{
		MoveTo{12, 22},
		LineTo{14, 22},
		CubicTo{{10, 20}, {12, 20}, {14, 24}},
		Close{},
	}, rec)
}
