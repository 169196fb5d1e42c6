package svgdraw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/svgcalls/svgicon"
	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg width="20" height="10"><rect x="1" y="1" width="4" height="4" fill="red" stroke="blue" stroke-width="2"/></svg>`

func TestRecorder(t *testing.T) {
	var rec Recorder
	require.NoError(t, svgicon.Interpret(square, &rec))
	assert.Equal(t, []Op{OpMetadata, OpBeginPath, OpMoveTo, OpLineTo, OpLineTo, OpLineTo, OpLineTo, OpClosePath, OpFill, OpStroke}, rec.Ops())
	assert.Equal(t, 4, rec.Count(OpLineTo))
	assert.Equal(t, "metadata(20, 10)", rec.Calls[0].String())
	assert.Equal(t, "stroke(0, 0, 255, 1, 2)", rec.Calls[9].String())
	assert.Equal(t, "<invalid op>", Op(99).String())
}

func TestMeasurer(t *testing.T) {
	m := NewMeasurer()
	require.NoError(t, svgicon.Interpret(`<svg><rect x="1" y="1" width="4" height="4" stroke="blue" stroke-width="2"/></svg>`, m))
	assert.False(t, m.HasMeta)
	assert.Equal(t, svgpath.Rect{Min: svgpath.Point{X: 0, Y: 0}, Max: svgpath.Point{X: 6, Y: 6}}, m.Bounds)
	w, h := m.Size()
	assert.Equal(t, 6., w)
	assert.Equal(t, 6., h)

	m = NewMeasurer()
	require.NoError(t, svgicon.Interpret(square, m))
	assert.True(t, m.HasMeta)
	w, h = m.Size()
	assert.Equal(t, 20., w)
	assert.Equal(t, 10., h)

	m = NewMeasurer()
	w, h = m.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestScript(t *testing.T) {
	var buf bytes.Buffer
	s := NewScript(&buf)
	require.NoError(t, svgicon.Interpret(square, s))
	require.NoError(t, s.Flush())
	code := buf.String()
	assert.True(t, strings.HasPrefix(code, `var canvas = document.getElementById("canvas");`))
	assert.Contains(t, code, "var width = 20;\nvar height = 10;\n")
	assert.Contains(t, code, "context.beginPath();\ncontext.moveTo(1, 1);\ncontext.lineTo(5, 1);\n")
	assert.Contains(t, code, "context.fillStyle = \"rgba(255, 0, 0, 1)\";\ncontext.fill();\n")
	assert.Contains(t, code, "context.lineWidth = 2;\ncontext.strokeStyle = \"rgba(0, 0, 255, 1)\";\ncontext.stroke();\n")

	buf.Reset()
	s = NewScript(&buf)
	s.CurveTo(1, 2, 3, 4, 5.5, 6)
	s.ClosePath()
	require.NoError(t, s.Flush())
	assert.Equal(t, "context.bezierCurveTo(1, 2, 3, 4, 5.5, 6);\ncontext.closePath();\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestScriptError(t *testing.T) {
	s := NewScript(failingWriter{})
	for i := 0; i < 1000; i++ {
		s.MoveTo(float64(i), 0)
	}
	assert.EqualError(t, s.Flush(), "disk full")
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, square, svgicon.Options{}))
	page := buf.String()
	assert.Contains(t, page, square)
	assert.Contains(t, page, `<canvas id="canvas"></canvas>`)
	assert.Contains(t, page, "context.stroke();")
	assert.Contains(t, page, "&lt;svg")

	err := WriteHTML(&buf, `<svg><path d="M0 0" fill="blurple"/></svg>`, svgicon.Options{})
	assert.ErrorIs(t, err, svgicon.ErrUnsupportedColor)
}
