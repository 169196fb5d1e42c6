package svgpath

import (
	"math"

	"github.com/pkg/errors"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// CircleApproximation is the distance, relative to the radius, of the
// control points of the cubic curve approximating a quarter of circle.
// See http://en.wikipedia.org/wiki/Bezier_spline
const CircleApproximation = 4. / 3 * (math.Sqrt2 - 1)

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// AddRect adds a sharp rectangle to p, as four lines.
func AddRect(p Pather, x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y)
	p.ClosePath()
}

// AddRoundRect adds a rectangle with elliptic corners of radius
// rx in the x axis and ry in the y axis.
// The radii are clamped to half the sides.
func AddRoundRect(p Pather, x, y, w, h, rx, ry float64) {
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	crx := rx * (1 - CircleApproximation)
	cry := ry * (1 - CircleApproximation)

	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CurveTo(x+w-crx, y, x+w, y+cry, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CurveTo(x+w, y+h-cry, x+w-crx, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CurveTo(x+crx, y+h, x, y+h-cry, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CurveTo(x, y+cry, x+crx, y, x+rx, y)
	p.ClosePath()
}

// AddEllipse adds an axis aligned ellipse, made of one cubic curve
// per quadrant, starting from the leftmost point.
func AddEllipse(p Pather, cx, cy, rx, ry float64) {
	crx := rx * CircleApproximation
	cry := ry * CircleApproximation
	p.MoveTo(cx-rx, cy)
	p.CurveTo(cx-rx, cy-cry, cx-crx, cy-ry, cx, cy-ry)
	p.CurveTo(cx+crx, cy-ry, cx+rx, cy-cry, cx+rx, cy)
	p.CurveTo(cx+rx, cy+cry, cx+crx, cy+ry, cx, cy+ry)
	p.CurveTo(cx-crx, cy+ry, cx-rx, cy+cry, cx-rx, cy)
	p.ClosePath()
}

// AddLine adds an open segment.
func AddLine(p Pather, x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
}

// AddPolyline adds a path through the given points,
// closed if `closed` is true.
func AddPolyline(p Pather, points []Point, closed bool) {
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if closed {
		p.ClosePath()
	}
}

// PointsFromNumbers pairs the values of a points list.
// An odd count is an ErrParamMismatch.
func PointsFromNumbers(values []float64) ([]Point, error) {
	if len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrParamMismatch, "odd number of coordinates (%d)", len(values))
	}
	out := make([]Point, len(values)/2)
	for i := range out {
		out[i] = Point{values[2*i], values[2*i+1]}
	}
	return out, nil
}

// addArc adds an arc to p, starting at (px, py), with
// points holding the arguments of an A command : rx, ry, rotation, large arc flag,
// sweep flag and end point
func addArc(p Pather, points [7]float64, cx, cy, px, py float64) (lx, ly float64) {
	rotX := points[2] * math.Pi / 180 // Convert degress to radians
	largeArc := points[3] != 0
	sweep := points[4] != 0
	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(points[6]-cy, points[5]-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezeir splines
	etaStart := math.Atan2(math.Sin(startAngle)/points[1], math.Cos(startAngle)/points[0])
	etaEnd := math.Atan2(math.Sin(endAngle)/points[1], math.Cos(endAngle)/points[0])
	deltaEta := etaEnd - etaStart
	if (arcBig && !largeArc) || (!arcBig && largeArc) { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!
	lx, ly = px, py
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, etaStart, cx, cy)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = points[5], points[6] // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		p.CurveTo(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return lx, ly
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePrime(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
