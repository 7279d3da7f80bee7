// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fakerhelp/fakerhelp/internal/explorer"
	"github.com/fakerhelp/fakerhelp/internal/helpdoc"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// maxSampleLen caps the length of a sample value shown in function help.
const maxSampleLen = 240

// newFuncCommand creates the `fakerhelp func <name>` command.
func newFuncCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "func <name>",
		Short:             "Show help for a generator function",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFunctions(app),
		RunE: func(_ *cobra.Command, args []string) error {
			ex, err := app.explorer()
			if err != nil {
				return err
			}
			fn, err := ex.ResolveFunction(args[0])
			if err != nil {
				return app.reportNotFound(err)
			}

			var sample helpdoc.Sample
			if app.cfg.Sample.Enabled {
				sample = sampleOf(fn, app.logger)
			}
			return app.printHelp(helpdoc.Function(fn.Function, sample), fn.QualifiedName)
		},
	}
}

// newFindCommand creates the `fakerhelp find <substring>` command.
func newFindCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "find <substring>",
		Short: "Find generator functions by partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ex, err := app.explorer()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "Faker functions containing %s:\n", explorer.Quote(args[0]))
			for name := range ex.SearchFunctionNames(args[0]) {
				fmt.Fprintf(app.stdout, "  %s\n", name)
			}
			return nil
		},
	}
}

// sampleOf invokes fn without parameters. Functions that need parameters, produce
// binary content or fail yield no sample.
func sampleOf(fn explorer.Callable, logger *log.Logger) (sample helpdoc.Sample) {
	if !fn.Callable() || strings.HasPrefix(fn.ContentType, "image/") {
		return helpdoc.Sample{}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("sample generation panicked", "function", fn.Name, "panic", r)
			sample = helpdoc.Sample{}
		}
	}()

	v, err := fn.Invoke(nil)
	if err != nil {
		logger.Debug("no sample for function", "function", fn.Name, "error", err)
		return helpdoc.Sample{}
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	return helpdoc.Sample{Value: truncate(fmt.Sprintf("%v", v), maxSampleLen), Valid: true}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
