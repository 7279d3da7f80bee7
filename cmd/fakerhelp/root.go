// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fakerhelp/fakerhelp/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the fakerhelp command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fakerhelp",
		Short: "Browse the providers and functions of the gofakeit library",
		Long: TitleStyle.Render("fakerhelp") + SubtitleStyle.Render(" - help on the gofakeit fake-data library") + `

fakerhelp lists the providers (categories) of gofakeit, the generator
functions each provider owns, and prints reference text for any of them.

` + SubtitleStyle.Render("Examples:") + `
  fakerhelp providers        List all providers
  fakerhelp provider person  Show help for the 'person' provider
  fakerhelp func email       Show help for the 'email' function
  fakerhelp find name        Find functions whose name contains 'name'
  fakerhelp ls internet      List the functions of the 'internet' provider`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.configure(cmd.Context())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configFile, "config", "", "config file (default is $HOME/.config/fakerhelp/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&app.flags.strict, "strict", false, "exit with status 2 when a provider or function is not found")

	rootCmd.AddCommand(newProvidersCommand(app))
	rootCmd.AddCommand(newProviderCommand(app))
	rootCmd.AddCommand(newFuncCommand(app))
	rootCmd.AddCommand(newFindCommand(app))
	rootCmd.AddCommand(newLsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand())

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Main runs the CLI with production dependencies and returns the process exit code.
func Main() int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// Execute runs the CLI and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Main())
}

// handleError prints command errors. An ExitError without a cause has already been
// reported by the command and only carries the exit status.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, ae.Format(false))
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
