// Command svgcalls interprets a SVG file and outputs the resulting
// drawing calls, or renders them with one of the backends.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/benoitkugler/svgcalls/svgdraw"
	"github.com/benoitkugler/svgcalls/svgicon"
	"github.com/benoitkugler/svgcalls/svgpdf"
	"github.com/benoitkugler/svgcalls/svgraster"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	configArg        = flag.String("config", "", "Path to a TOML file providing default settings.")
	backendArg       = flag.String("backend", "trace", "Output format: trace, canvas, html, png, pdf or bounds.")
	outputArg        = flag.String("o", "", "Output file. (Defaults to stdout)")
	strictPtr        = flag.Bool("strict", false, "Fail on unknown elements.")
	warnPtr          = flag.Bool("warn", false, "Log a warning for unknown elements.")
	arcsPtr          = flag.Bool("arcs", false, "Support the A and a path commands.")
	standardClosePtr = flag.Bool("standard-close", false, "Move the cursor back to the subpath start on Z.")
	strictUnitsPtr   = flag.Bool("strict-units", false, "Reject lengths with units other than px.")
)

// config stores the settings, read from
// the optional config file and overridden by the flags
type config struct {
	Backend       string `toml:"backend"`
	Output        string `toml:"output"`
	Strict        bool   `toml:"strict"`
	Warn          bool   `toml:"warn"`
	Arcs          bool   `toml:"arcs"`
	StandardClose bool   `toml:"standard_close"`
	StrictUnits   bool   `toml:"strict_units"`
}

func defaultConfig() config { return config{Backend: "trace"} }

// loadConfig decodes the TOML content over `cfg`.
func loadConfig(r io.Reader, cfg *config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return errors.Wrap(dec.Decode(cfg), "invalid config file")
}

// applyFlags overrides the config with the flags explicitly set.
func applyFlags(fs *flag.FlagSet, cfg *config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendArg
		case "o":
			cfg.Output = *outputArg
		case "strict":
			cfg.Strict = *strictPtr
		case "warn":
			cfg.Warn = *warnPtr
		case "arcs":
			cfg.Arcs = *arcsPtr
		case "standard-close":
			cfg.StandardClose = *standardClosePtr
		case "strict-units":
			cfg.StrictUnits = *strictUnitsPtr
		}
	})
}

func (cfg config) options(logOutput io.Writer) svgicon.Options {
	opts := svgicon.Options{LogOutput: logOutput, StrictUnits: cfg.StrictUnits}
	opts.Path.Arcs = cfg.Arcs
	opts.Path.StandardClose = cfg.StandardClose
	switch {
	case cfg.Strict:
		opts.ErrorMode = svgicon.StrictErrorMode
	case cfg.Warn:
		opts.ErrorMode = svgicon.WarnErrorMode
	}
	return opts
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.svg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	console := zerolog.ConsoleWriter{Out: os.Stderr}
	log := zerolog.New(console).With().Timestamp().Logger()

	cfg, err := checkflags()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	if err := run(cfg, flag.Arg(0), console); err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("rendering failed")
	}
}

func checkflags() (config, error) {
	if flag.NArg() != 1 {
		return config{}, errors.New("exactly one svg file is expected")
	}
	cfg := defaultConfig()
	if *configArg != "" {
		f, err := os.Open(*configArg)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := loadConfig(f, &cfg); err != nil {
			return cfg, err
		}
	}
	applyFlags(flag.CommandLine, &cfg)
	return cfg, nil
}

func run(cfg config, svgFile string, logOutput io.Writer) error {
	source, err := os.ReadFile(svgFile)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return render(cfg.Backend, source, out, cfg.options(logOutput))
}

// render writes the output of `backend` for the svg `source`.
func render(backend string, source []byte, out io.Writer, opts svgicon.Options) error {
	switch backend {
	case "trace":
		var rec svgdraw.Recorder
		if err := svgicon.InterpretStream(bytes.NewReader(source), &rec, opts); err != nil {
			return err
		}
		_, err := io.WriteString(out, rec.String())
		return err
	case "canvas":
		script := svgdraw.NewScript(out)
		if err := svgicon.InterpretStream(bytes.NewReader(source), script, opts); err != nil {
			return err
		}
		return script.Flush()
	case "html":
		return svgdraw.WriteHTML(out, string(source), opts)
	case "png":
		img, err := svgraster.RasterSVGToImage(bytes.NewReader(source), opts)
		if err != nil {
			return err
		}
		return png.Encode(out, img)
	case "pdf":
		return svgpdf.RenderSVGToPDF(bytes.NewReader(source), out, opts)
	case "bounds":
		m := svgdraw.NewMeasurer()
		if err := svgicon.InterpretStream(bytes.NewReader(source), m, opts); err != nil {
			return err
		}
		w, h := m.Size()
		if m.Bounds.IsEmpty() {
			_, err := fmt.Fprintf(out, "size %g %g\nbounds empty\n", w, h)
			return err
		}
		_, err := fmt.Fprintf(out, "size %g %g\nbounds %g %g %g %g\n", w, h,
			m.Bounds.Min.X, m.Bounds.Min.Y, m.Bounds.Max.X, m.Bounds.Max.Y)
		return err
	default:
		return errors.Errorf("unknown backend %q", backend)
	}
}
