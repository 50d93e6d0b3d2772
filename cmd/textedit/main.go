// Command textedit lays out and edits text from the command line.
//
// Usage:
//
//	textedit [flags] [file]
//
// The optional file provides the initial text. With -script the edit script
// is run once (or on every change with -watch); otherwise an interactive
// prompt reads commands. With -png the layout is rendered after each run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/font"
	"github.com/gogpu/textedit/internal/script"
)

// config holds the command line settings.
type config struct {
	fontName string
	backend  string
	size     float64
	width    float64
	wrap     string
	align    string
	spacing  float64
	script   string
	watch    bool
	encoding string
	png      string
	verbose  bool
	file     string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("textedit", flag.ContinueOnError)
	fs.StringVar(&cfg.fontName, "font", "", "font file or system font name (default: Go Regular)")
	fs.StringVar(&cfg.backend, "backend", font.ParserSFNT, "font parser backend")
	fs.Float64Var(&cfg.size, "size", 16, "font size in pixels")
	fs.Float64Var(&cfg.width, "width", 0, "wrap width in pixels (0: no wrapping)")
	fs.StringVar(&cfg.wrap, "wrap", "word", "wrap mode: word, char or single")
	fs.StringVar(&cfg.align, "align", "left", "alignment: left, center or right")
	fs.Float64Var(&cfg.spacing, "spacing", 1, "line spacing multiplier")
	fs.StringVar(&cfg.script, "script", "", "edit script to run instead of the prompt")
	fs.BoolVar(&cfg.watch, "watch", false, "re-run the script whenever it or the input file changes")
	fs.StringVar(&cfg.encoding, "encoding", "utf-8", "character encoding of the input file")
	fs.StringVar(&cfg.png, "png", "", "write a debug rendering to this PNG file")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 1 {
		return cfg, errors.New("at most one input file")
	}
	cfg.file = fs.Arg(0)
	if cfg.watch && cfg.script == "" {
		return cfg, errors.New("-watch needs -script")
	}
	return cfg, nil
}

// options converts the layout flags.
func (c config) options() (textedit.Options, error) {
	wrap, err := textedit.ParseWrapMode(c.wrap)
	if err != nil {
		return textedit.Options{}, err
	}
	align, err := textedit.ParseAlignment(c.align)
	if err != nil {
		return textedit.Options{}, err
	}
	return textedit.Options{
		FontSize:    c.size,
		LineSpacing: c.spacing,
		TextWidth:   c.width,
		Wrap:        wrap,
		Alignment:   align,
	}, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "textedit:", err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	textedit.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		logger.Error("textedit failed", "err", err)
		os.Exit(1)
	}
}

// app is the state shared by the prompt, the script runner and the watcher.
type app struct {
	cfg     config
	font    *font.Font
	session *textedit.EditSession
	interp  *script.Interp
	out     io.Writer
}

func newApp(cfg config, out io.Writer) (*app, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	f, err := loadFont(cfg.fontName, cfg.backend, cfg.png != "")
	if err != nil {
		return nil, err
	}
	l, err := textedit.NewTextLayout(f, opts)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, font: f, out: out}
	a.session = textedit.NewEditSession(l)
	a.interp = script.New(a.session, out)
	if err := a.reset(); err != nil {
		return nil, err
	}
	textedit.Logger().Info("textedit: ready",
		"font", f.Name(), "parser", f.Parser(), "chars", a.session.Len())
	return a, nil
}

// reset loads the initial text from the input file, if any.
func (a *app) reset() error {
	if a.cfg.file == "" {
		return a.session.SetText("")
	}
	text, err := readFile(a.cfg.file, a.cfg.encoding)
	if err != nil {
		return err
	}
	return a.session.SetText(text)
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	a, err := newApp(cfg, out)
	if err != nil {
		return err
	}
	switch {
	case cfg.watch:
		return a.watch(ctx)
	case cfg.script != "":
		return a.runScript()
	default:
		return a.repl()
	}
}

// runScript runs the script file and renders the result.
func (a *app) runScript() error {
	f, err := os.Open(a.cfg.script)
	if err != nil {
		return err
	}
	defer f.Close()

	sc, err := script.Parse(a.cfg.script, f)
	if err != nil {
		return err
	}
	if err := a.interp.Run(sc); err != nil {
		return err
	}
	return a.render()
}

// render writes the PNG debug image when -png is set.
func (a *app) render() error {
	if a.cfg.png == "" {
		return nil
	}
	if err := writePNG(a.cfg.png, a.session, a.font.Atlas()); err != nil {
		return fmt.Errorf("render %s: %w", a.cfg.png, err)
	}
	textedit.Logger().Info("textedit: rendered", "path", a.cfg.png)
	return nil
}
