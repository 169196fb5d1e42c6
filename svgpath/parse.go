package svgpath

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	parse "github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrUnsupportedCommand is returned for path commands
	// outside of M, L, H, V, Q, T, C, S, Z (and A when enabled).
	ErrUnsupportedCommand = errors.New("unsupported path command")
	// ErrParamMismatch is returned when a command is not followed
	// by enough numbers.
	ErrParamMismatch = errors.New("param mismatch")
)

// Options tunes the path interpreter.
// The zero value gives the legacy behavior.
type Options struct {
	// Arcs enables the A/a elliptical arc commands,
	// approximated with cubic curves.
	Arcs bool
	// StandardClose makes Z move the cursor back to the start
	// of the subpath, instead of the origin.
	StandardClose bool
}

// token is either a number or a command
type token struct {
	command  string
	value    float64
	isNumber bool
}

func (t token) String() string {
	if t.isNumber {
		return strconv.FormatFloat(t.value, 'g', -1, 64)
	}
	return t.command
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// tokenize splits s into numbers and single character commands.
// Commas and white spaces are separators.
func tokenize(s string) []token {
	var out []token
	for i := 0; i < len(s); {
		if isSeparator(s[i]) {
			i++
			continue
		}
		if _, n := parse.ParseFloat([]byte(s[i:])); n > 0 {
			lexeme := s[i : i+n]
			f, err := strconv.ParseFloat(lexeme, 64)
			if err != nil { // out of range
				f, _ = parse.ParseFloat([]byte(lexeme))
			}
			out = append(out, token{value: f, isNumber: true})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, token{command: s[i : i+size]})
		i += size
	}
	return out
}

// ParseNumbers returns the numbers found in s, such as in
// a points list or a viewBox. Any other content is an error.
func ParseNumbers(s string) ([]float64, error) {
	tokens := tokenize(s)
	out := make([]float64, len(tokens))
	for i, t := range tokens {
		if !t.isNumber {
			return nil, errors.Wrapf(ErrParamMismatch, "unexpected %q in number list", t.command)
		}
		out[i] = t.value
	}
	return out, nil
}

// tokenCursor reads tokens from left to right
type tokenCursor struct {
	tokens []token
	pos    int
}

func (c *tokenCursor) done() bool { return c.pos >= len(c.tokens) }

func (c *tokenCursor) peekIsNumber() bool {
	return c.pos < len(c.tokens) && c.tokens[c.pos].isNumber
}

func (c *tokenCursor) next() token {
	t := c.tokens[c.pos]
	c.pos++
	return t
}

func (c *tokenCursor) nextNumber() (float64, error) {
	if c.done() {
		return 0, errors.WithMessage(ErrParamMismatch, "unexpected end of path data")
	}
	t := c.next()
	if !t.isNumber {
		return 0, errors.Wrapf(ErrParamMismatch, "expected number, got %q", t.command)
	}
	return t.value, nil
}

// pathCursor is used while interpreting path data
type pathCursor struct {
	tokens tokenCursor
	out    Pather
	opts   Options

	cursor Point
	start  Point // of the current subpath
	// last control point of the previous segment,
	// valid only after a curve command
	control    Point
	hasControl bool

	relative bool
}

func (c *pathCursor) nextX() (float64, error) {
	x, err := c.tokens.nextNumber()
	if c.relative {
		x += c.cursor.X
	}
	return x, err
}

func (c *pathCursor) nextY() (float64, error) {
	y, err := c.tokens.nextNumber()
	if c.relative {
		y += c.cursor.Y
	}
	return y, err
}

func (c *pathCursor) nextXY() (Point, error) {
	x, err := c.nextX()
	if err != nil {
		return Point{}, err
	}
	y, err := c.nextY()
	return Point{x, y}, err
}

// reflection returns the implicit control point of smooth curves
func (c *pathCursor) reflection() Point {
	if c.hasControl {
		return c.control.Reflect(c.cursor)
	}
	return c.cursor
}

func (c *pathCursor) moveTo(p Point) {
	c.cursor, c.start = p, p
	c.out.MoveTo(p.X, p.Y)
}

func (c *pathCursor) lineTo(p Point) {
	c.cursor = p
	c.out.LineTo(p.X, p.Y)
}

func (c *pathCursor) cubicTo(c1, c2, end Point) {
	c.cursor = end
	c.control, c.hasControl = c2, true
	c.out.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

// quadTo converts the quadratic curve to a cubic one
func (c *pathCursor) quadTo(cp, end Point) {
	c1 := c.cursor.Add(cp.Sub(c.cursor).Mul(2. / 3))
	c2 := end.Add(cp.Sub(end).Mul(2. / 3))
	c.cubicTo(c1, c2, end)
	c.control = cp
}

// CompilePath interprets the path data d, sending the segments
// to p.
// Malformed data returns an error, but the segments before the error
// are still sent.
func CompilePath(d string, p Pather, opts Options) error {
	c := pathCursor{tokens: tokenCursor{tokens: tokenize(d)}, out: p, opts: opts}
	for !c.tokens.done() {
		if err := c.addSeg(c.tokens.next()); err != nil {
			return err
		}
	}
	return nil
}

// addSeg runs one command and its implicit repetitions
func (c *pathCursor) addSeg(t token) error {
	if t.isNumber || len(t.command) != 1 {
		return errors.Wrapf(ErrUnsupportedCommand, "token %q", t.String())
	}
	k := t.command[0]
	c.relative = 'a' <= k && k <= 'z'
	var err error
	switch k {
	case 'M', 'm':
		var p Point
		if p, err = c.nextXY(); err != nil {
			return err
		}
		c.moveTo(p)
		for c.tokens.peekIsNumber() {
			if p, err = c.nextXY(); err != nil {
				return err
			}
			c.lineTo(p)
		}
		c.hasControl = false
	case 'L', 'l':
		err = c.repeat(func() error {
			p, err := c.nextXY()
			if err != nil {
				return err
			}
			c.lineTo(p)
			return nil
		})
		c.hasControl = false
	case 'H', 'h':
		err = c.repeat(func() error {
			x, err := c.nextX()
			if err != nil {
				return err
			}
			c.lineTo(Point{x, c.cursor.Y})
			return nil
		})
		c.hasControl = false
	case 'V', 'v':
		err = c.repeat(func() error {
			y, err := c.nextY()
			if err != nil {
				return err
			}
			c.lineTo(Point{c.cursor.X, y})
			return nil
		})
		c.hasControl = false
	case 'Q', 'q':
		err = c.repeat(func() error {
			cp, err := c.nextXY()
			if err != nil {
				return err
			}
			end, err := c.nextXY()
			if err != nil {
				return err
			}
			c.quadTo(cp, end)
			return nil
		})
	case 'T', 't':
		err = c.repeat(func() error {
			cp := c.reflection()
			end, err := c.nextXY()
			if err != nil {
				return err
			}
			c.quadTo(cp, end)
			return nil
		})
	case 'C', 'c':
		err = c.repeat(func() error {
			c1, err := c.nextXY()
			if err != nil {
				return err
			}
			c2, err := c.nextXY()
			if err != nil {
				return err
			}
			end, err := c.nextXY()
			if err != nil {
				return err
			}
			c.cubicTo(c1, c2, end)
			return nil
		})
	case 'S', 's':
		err = c.repeat(func() error {
			c1 := c.reflection()
			c2, err := c.nextXY()
			if err != nil {
				return err
			}
			end, err := c.nextXY()
			if err != nil {
				return err
			}
			c.cubicTo(c1, c2, end)
			return nil
		})
	case 'A', 'a':
		if !c.opts.Arcs {
			return errors.Wrapf(ErrUnsupportedCommand, "token %q", t.command)
		}
		err = c.repeat(c.arc)
		c.hasControl = false
	case 'Z', 'z':
		c.out.ClosePath()
		if c.opts.StandardClose {
			c.cursor = c.start
		} else {
			c.cursor = Point{}
		}
		c.hasControl = false
	default:
		return errors.Wrapf(ErrUnsupportedCommand, "token %q", t.command)
	}
	return errors.WithMessagef(err, "command %c", k)
}

// repeat calls step at least once, and then as long as
// numbers follow
func (c *pathCursor) repeat(step func() error) error {
	for {
		if err := step(); err != nil {
			return err
		}
		if !c.tokens.peekIsNumber() {
			return nil
		}
	}
}

// arc reads the 7 arguments of an elliptical arc
func (c *pathCursor) arc() error {
	var points [7]float64
	for i := range points[:5] {
		v, err := c.tokens.nextNumber()
		if err != nil {
			return err
		}
		points[i] = v
	}
	end, err := c.nextXY()
	if err != nil {
		return err
	}
	points[5], points[6] = end.X, end.Y

	rx, ry := math.Abs(points[0]), math.Abs(points[1])
	if rx == 0 || ry == 0 || end == c.cursor {
		c.lineTo(end)
		return nil
	}
	points[0], points[1] = rx, ry
	cx, cy := findEllipseCenter(&points[0], &points[1], points[2]*math.Pi/180, c.cursor.X,
		c.cursor.Y, points[5], points[6], points[4] == 0, points[3] == 0)
	addArc(c.out, points, cx, cy, c.cursor.X, c.cursor.Y)
	c.cursor = end
	return nil
}
