package magetasks

import (
	"github.com/hashicorp/go-multierror"
)

const golangciDisable = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Missing optional linters are skipped.
func LintAll() error {
	var errs *multierror.Error

	if err := LintFormat(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := LintVet(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := LintStaticcheck(); err != nil && !IsCommandNotFound(err) {
		errs = multierror.Append(errs, err)
	}
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return Run("Go Format", "go", "fmt", "./...")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional(Run("Staticcheck", "staticcheck", "./..."),
		"Staticcheck not found (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional(Run("Golangci-lint", "golangci-lint", "run", golangciDisable, "--timeout=5m", "./..."),
		"Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional(Run("Golangci-lint Fix", "golangci-lint", "run", "--fix", golangciDisable, "--timeout=5m", "./..."),
		"Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
}

// optional warns when the tool is not installed and passes err through.
func optional(err error, hint string) error {
	if IsCommandNotFound(err) {
		PrintWarning(hint)
	}
	return err
}
