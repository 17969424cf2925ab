package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the fieldkit binary with version information.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := Ldflags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Building fieldkit", "go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Ldflags returns the linker flags that stamp internal/version.
func Ldflags(version, commit, date string) string {
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, version, ModulePath, commit, ModulePath, date)
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := sh.Rm("./bin"); err != nil {
		return err
	}
	if err := sh.Rm("coverage.out"); err != nil && !os.IsNotExist(err) {
		return err
	}
	_ = sh.Run("go", "clean", "-cache")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || out == "" {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func getGitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || out == "" {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
