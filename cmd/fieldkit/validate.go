package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/pkg/adapter"
	"github.com/dkoosis/fieldkit/pkg/container"
)

// runValidate checks a schema for structural problems and, when a record
// is given, the record against the schema's constraints.
func runValidate(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("validate", stderr, &flags)
	schemaPath := fs.String("schema", "", "Schema file (default: stdin)")
	recordPath := fs.String("record", "", "Record file to check against the schema")
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

	var problems []string
	if err := adapter.Validate(defs); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				problems = append(problems, "schema: "+e.Error())
			}
		} else {
			problems = append(problems, "schema: "+err.Error())
		}
	}

	if *recordPath != "" {
		record, err := readRecord(*recordPath)
		if err != nil {
			fmt.Fprintf(stderr, "fieldkit: %v\n", err)
			return 2
		}
		for path, msg := range container.Validate(defs, record, a.cfg.MaxDepth) {
			problems = append(problems, "record: "+path+": "+msg)
		}
	}
	sort.Strings(problems)

	if len(problems) == 0 {
		fmt.Fprintf(stdout, "ok: %d fields (%s)\n", len(defs), kind)
		return 0
	}
	for _, p := range problems {
		fmt.Fprintln(stdout, p)
	}
	return 1
}
