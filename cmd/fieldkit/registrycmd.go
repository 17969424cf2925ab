package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/pkg/dispatch"
)

// runRegistry lists the field types the configured registry serves, with
// the renderer category each one dispatches to.
func runRegistry(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("registry", stderr, &flags)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, code := newApp(ctx, fs, flags, stdout, stderr)
	if code >= 0 {
		return code
	}

	entries := a.registry.All(ctx)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	if a.cfg.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "fieldkit: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	if len(entries) == 0 {
		fmt.Fprintln(stdout, "no field types (registry empty or unreachable)")
		return 1
	}
	width := 0
	for _, e := range entries {
		width = max(width, len(e.ID))
	}
	for _, e := range entries {
		fmt.Fprintf(stdout, "%-*s  %-10s  %s\n", width, e.ID, e.Category, dispatch.Classify(e.ID))
	}
	fmt.Fprintf(stdout, "%d field types\n", len(entries))
	return 0
}
