package magetasks

import (
	"fmt"
)

// QualityCheck runs linters, tests and the build. Lint findings are
// reported but do not fail the check.
func QualityCheck() error {
	PrintH1Header("fieldkit Quality Assurance")

	if err := LintAll(); err != nil {
		PrintWarning(fmt.Sprintf("Linting issues found: %v", err))
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	PrintSuccess("Quality checks complete")
	return nil
}
