package magetasks

import (
	"fmt"
	"strings"

	"github.com/dkoosis/fieldkit/pkg/render"
)

var theme = render.DefaultTheme()

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	width := 80
	fmt.Println()
	fmt.Println(theme.Muted.Render(strings.Repeat("=", width)))
	padding := max((width-len(title))/2, 0)
	fmt.Printf("%s%s\n", strings.Repeat(" ", padding), theme.Bold.Render(title))
	fmt.Println(theme.Muted.Render(strings.Repeat("=", width)))
	fmt.Println()
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Println()
	fmt.Println(theme.Bold.Render("=== " + title + " ==="))
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Println(theme.Success.Render("✓ " + msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Println(theme.Warning.Render(theme.Icons.Warn + " " + msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(theme.Error.Render(theme.Icons.Error + " " + msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Println(theme.Primary.Render("· " + msg))
}
