// Provides interpretation of a subset of SVG images.
// SVG files are walked and translated into drawing calls (paths,
// fills and strokes) sent to a Sink, which does the actual painting.
// See for example svgcalls/svgraster or svgcalls/svgpdf .
package svgicon

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/svgcalls/svgpath"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

var (
	ErrUnsupportedColor     = errors.New("unsupported color syntax")
	ErrUnsupportedTransform = errors.New("unsupported transform syntax")
	ErrUnsupportedUnit      = errors.New("unsupported unit")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidStyle         = errors.New("invalid style attribute")
	ErrMalformedMarkup      = errors.New("malformed svg markup")
	ErrUnknownElement       = errors.New("cannot process svg element")
)

// Metadata describes the size of the image, as
// given by the root svg element.
type Metadata struct {
	Width, Height       float64
	HasWidth, HasHeight bool
}

// Sink receives the drawing calls.
// Points are given in device coordinates : every transformation
// is already applied.
type Sink interface {
	// Metadata is called at most once, before any path.
	Metadata(m Metadata)

	// BeginPath starts a new path, which will be followed
	// by segments, and then by Fill and/or Stroke.
	BeginPath()

	svgpath.Pather

	// Fill paints the interior of the current path.
	Fill(c Color)

	// Stroke paints the outline of the current path.
	Stroke(c Color, width float64)
}

// ErrorMode determines how unknown elements are handled.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// Options tunes the interpretation.
// The zero value is valid.
type Options struct {
	ErrorMode ErrorMode
	// LogOutput receives the warnings, if not nil.
	LogOutput io.Writer
	// StrictUnits rejects lengths with a unit other than px,
	// instead of ignoring the unit.
	StrictUnits bool
	// Path enables the optional path commands
	Path svgpath.Options
}

func (opts Options) logger() zerolog.Logger {
	if opts.LogOutput == nil {
		return zerolog.Nop()
	}
	return zerolog.New(opts.LogOutput).With().Timestamp().Logger()
}

// Interpret walks the SVG document `markup`, using default options.
func Interpret(markup string, sink Sink) error {
	return InterpretStream(strings.NewReader(markup), sink, Options{})
}

// InterpretStream reads the SVG document from the given io.Reader
// and sends the drawing calls to `sink`.
// This only supports a sub-set of SVG, but
// is enough to draw many icons. opts.ErrorMode determines if the interpreter ignores, errors out, or logs a warning
// if it does not handle an element found in the file.
// Every error aborts the interpretation.
func InterpretStream(stream io.Reader, sink Sink, opts Options) error {
	root, err := readTree(stream)
	if err != nil {
		return err
	}
	v := newVisitor(sink, opts)
	return v.visitRoot(root)
}

// InterpretFile reads the SVG from the named file
func InterpretFile(svgFile string, sink Sink, opts Options) error {
	fin, errf := os.Open(svgFile)
	if errf != nil {
		return errf
	}
	defer fin.Close()
	return InterpretStream(fin, sink, opts)
}

// node is an element of the SVG document
type node struct {
	name     string
	attrs    map[string]string
	children []*node
}

// attr returns the value of the attribute, or an empty string
func (n *node) attr(name string) string { return n.attrs[name] }

// readTree decodes the XML document, keeping only the elements
func readTree(stream io.Reader) (*node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *node
		stack []*node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if root == nil {
					return nil, fmt.Errorf("%w: no root element", ErrMalformedMarkup)
				}
				return root, nil
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedMarkup, err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			n := &node{name: se.Name.Local, attrs: make(map[string]string, len(se.Attr))}
			for _, attr := range se.Attr {
				n.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedMarkup)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
}
