package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run prints a step label and runs cmd with output attached to the terminal.
func Run(label, cmd string, args ...string) error {
	PrintInfo(label)
	if err := sh.RunV(cmd, args...); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
