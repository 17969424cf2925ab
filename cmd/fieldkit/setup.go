package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/pkg/dispatch"
	"github.com/dkoosis/fieldkit/pkg/registry"
	"github.com/dkoosis/fieldkit/pkg/render"
)

// app is the wired runtime shared by every command.
type app struct {
	cfg      *config.ResolvedConfig
	log      *logrus.Entry
	registry *registry.Cache
	engine   *dispatch.Engine
	stdout   io.Writer
	stderr   io.Writer
}

// newFlagSet creates a flag set carrying the configuration flags.
func newFlagSet(name string, stderr io.Writer, flags *config.CliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("fieldkit "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigFile, "config", "", "Config file (default: .fieldkit.yaml lookup)")
	fs.StringVar(&flags.Format, "format", "", "Output format: terminal, llm, json")
	fs.StringVar(&flags.Theme, "theme", "", "Theme: default, slate, mono")
	fs.IntVar(&flags.Width, "width", 0, "Terminal width (default: detected)")
	fs.StringVar(&flags.Mode, "mode", "", "Render mode: display, compact, edit, form, preview")
	fs.StringVar(&flags.Context, "context", "", "Hosting surface: grid, form, portal, review, builder, card, filter")
	fs.StringVar(&flags.Registry, "registry", "", "Field type registry: http(s) URL or YAML/JSON file")
	fs.DurationVar(&flags.FetchTimeout, "fetch-timeout", 0, "Bound on one registry fetch")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "Container nesting cap")
	fs.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colors")
	return fs
}

// markSet records which boolean flags were given explicitly.
func markSet(fs *flag.FlagSet, flags *config.CliFlags) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			flags.DebugSet = true
		case "no-color":
			flags.NoColorSet = true
		}
	})
}

// newApp resolves configuration and wires logging, registry and engine.
// It returns a non-negative exit code on failure.
func newApp(ctx context.Context, fs *flag.FlagSet, flags config.CliFlags, stdout, stderr io.Writer) (*app, int) {
	markSet(fs, &flags)
	cfg, err := config.ResolveConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return nil, 2
	}
	if cfg.Sources["format"] == config.SourceDefault && !isTTYWriter(stdout) {
		cfg.Format = "llm"
	}
	if cfg.Sources["width"] == config.SourceDefault {
		cfg.Width = termWidth(stdout, cfg.Width)
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	log := logrus.NewEntry(logger).WithField("component", "fieldkit")
	log.WithField("file", cfg.File).Debug("configuration resolved")

	cache := registry.New(fetcherFor(cfg.Registry),
		registry.WithFetchTimeout(cfg.FetchTimeout),
		registry.WithLogger(log.WithField("component", "registry")),
	)
	cache.Preload(ctx)

	engine := dispatch.New(
		dispatch.WithEntries(cache),
		dispatch.WithMaxDepth(cfg.MaxDepth),
		dispatch.WithLogger(log.WithField("component", "dispatch")),
	)
	return &app{cfg: cfg, log: log, registry: cache, engine: engine, stdout: stdout, stderr: stderr}, -1
}

// fetcherFor maps the registry setting to a fetcher. Without one the
// built-in entries are served.
func fetcherFor(source string) registry.Fetcher {
	switch {
	case source == "":
		return registry.StaticFetcher(registry.BuiltinEntries())
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return registry.HTTPFetcher{URL: source}
	default:
		return registry.FileFetcher{Path: source}
	}
}

func (a *app) renderer() render.Renderer {
	return selectRenderer(a.cfg.Format, a.cfg.Theme, a.cfg.Width)
}

func selectRenderer(format, themeName string, width int) render.Renderer {
	switch format {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		return render.NewTerminal(render.ThemeByName(themeName), width)
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width of w, or def.
func termWidth(w io.Writer, def int) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return def
}
