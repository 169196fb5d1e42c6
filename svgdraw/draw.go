// Provides simple sinks for the drawing calls emitted
// by svgicon : a recorder, used to inspect or debug the calls,
// a bounding box accumulator, and an HTML canvas script writer.
// Rasterization and PDF output are provided by svgraster and svgpdf.
package svgdraw

import (
	"strconv"

	"github.com/benoitkugler/svgcalls/svgicon"
)

// assert interface conformance
var (
	_ svgicon.Sink = (*Recorder)(nil)
	_ svgicon.Sink = (*Measurer)(nil)
	_ svgicon.Sink = (*Script)(nil)
)

// formatFloat uses the shortest representation
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
