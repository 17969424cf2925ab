package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/render"
)

// runRender renders one record against a schema. In form mode validation
// messages are shown inline and the exit code is 1 when any exist.
func runRender(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("render", stderr, &flags)
	schemaPath := fs.String("schema", "", "Schema file (default: stdin)")
	recordPath := fs.String("record", "", "Record file, JSON or YAML")
	title := fs.String("title", "", "Document title")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, code := newApp(ctx, fs, flags, stdout, stderr)
	if code >= 0 {
		return code
	}

	defs, kind, err := readSchema(*schemaPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 2
	}
	record, err := readRecord(*recordPath)
	if err != nil {
		fmt.Fprintf(stderr, "fieldkit: %v\n", err)
		return 2
	}
	a.log.WithField("kind", kind.String()).WithField("fields", len(defs)).Debug("schema loaded")

	var errs map[string]string
	if a.cfg.Mode == field.ModeForm {
		errs = topLevelErrors(defs, container.Validate(defs, record, a.cfg.MaxDepth))
	}
	doc := render.Build(a.engine, *title, defs, record, render.BuildOptions{
		Mode:    a.cfg.Mode,
		Context: a.cfg.Context,
		Errors:  errs,
	})
	fmt.Fprint(stdout, a.renderer().Render(doc))
	if len(errs) > 0 {
		return 1
	}
	return 0
}
