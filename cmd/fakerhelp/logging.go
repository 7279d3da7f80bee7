// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. Diagnostics never go to stdout so that
// listings stay line-exact.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "fakerhelp",
		Level:  level,
	})
}
