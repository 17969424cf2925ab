// fieldkit renders schema-driven records as terminal text, LLM text or JSON.
//
// Usage:
//
//	fieldkit render --schema contact.yaml --record ada.json
//	fieldkit render --mode form --format llm < portal.json
//	fieldkit edit --schema contact.yaml --record ada.json > ada.json
//	fieldkit validate --schema contact.yaml --record ada.json
//	fieldkit serve --addr :8080
//	fieldkit registry
//
// Schemas may be canonical field definitions, table columns or portal form
// fields, in JSON or YAML; the vocabulary is detected from content.
//
// Output formats:
//
//	terminal  styled Unicode output (default when TTY)
//	llm       terse plain text for AI consumption (default when piped)
//	json      structured node trees for automation
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dkoosis/fieldkit/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := "render"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "render":
		return runRender(ctx, args, stdin, stdout, stderr)
	case "edit":
		return runEdit(ctx, args, stdin, stdout, stderr)
	case "validate":
		return runValidate(ctx, args, stdin, stdout, stderr)
	case "serve":
		return runServe(ctx, args, stdout, stderr)
	case "registry":
		return runRegistry(ctx, args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "fieldkit version %s\n", version.Version)
		fmt.Fprintf(stdout, "Commit: %s\n", version.CommitHash)
		fmt.Fprintf(stdout, "Built: %s\n", version.BuildDate)
		return 0
	case "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "fieldkit: unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fieldkit [render|edit|validate|serve|registry|version] [flags]")
	fmt.Fprintln(w, "Run 'fieldkit <command> -h' for the flags of one command.")
}
