// Package ui provides terminal progress feedback for long audit runs,
// with a plain log-line fallback when no TTY is attached.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsHeadless reports whether the UI should avoid interactive rendering.
// Set force to override TTY detection (the --no-color / CI path).
func IsHeadless(force bool) bool {
	if force {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}
