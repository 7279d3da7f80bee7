// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fakerhelp/fakerhelp/internal/config"
	"github.com/fakerhelp/fakerhelp/internal/explorer"
	"github.com/fakerhelp/fakerhelp/internal/helpdoc"
	"github.com/fakerhelp/fakerhelp/internal/issue"
	"github.com/fakerhelp/fakerhelp/internal/registry"

	"github.com/charmbracelet/log"
)

// ExitNotFound is the exit status for unknown names in strict mode.
const ExitNotFound = 2

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer; every command handler receives the App and resolves the explorer,
	// the help renderer and the effective configuration through it.
	App struct {
		Config ConfigProvider
		Source registry.Source
		stdout io.Writer
		stderr io.Writer

		flags   rootFlags
		cfg     *config.Config
		verbose bool
		strict  bool
		logger  *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Source registry.Source
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	rootFlags struct {
		verbose    bool
		strict     bool
		configFile string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Source == nil {
		deps.Source = registry.Gofakeit()
	}

	return &App{
		Config: deps.Config,
		Source: deps.Source,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: newLogger(deps.Stderr, false),
	}, nil
}

// configure loads the configuration and merges it with the global flags.
// A configuration that fails to load is reported and replaced by the defaults.
func (a *App) configure(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		if a.flags.verbose {
			a.printIssue(issue.CatalogEntry(err))
		}
		cfg = config.DefaultConfig()
	}

	a.cfg = cfg
	a.verbose = a.flags.verbose || cfg.UI.Verbose
	a.strict = a.flags.strict || cfg.Strict
	a.logger = newLogger(a.stderr, a.verbose)

	if cfg.Path != "" {
		a.logger.Debug("loaded configuration", "path", cfg.Path)
	}
}

// explorer builds the registry from the source and wraps it in an Explorer.
func (a *App) explorer() (*explorer.Explorer, error) {
	reg, err := registry.Build(a.Source)
	if err != nil {
		return nil, issue.New("build function registry", err, issue.On(registry.Namespace))
	}
	a.logger.Debug("built function registry", "functions", reg.Len())

	return explorer.New(reg,
		explorer.WithSeed(a.cfg.Sample.Seed),
		explorer.WithLogger(a.logger),
	), nil
}

// printHelp renders a Markdown document to stdout.
func (a *App) printHelp(markdown, subject string) error {
	out, err := helpdoc.NewRenderer(string(a.cfg.UI.Style), a.cfg.UI.Width).Render(markdown)
	if err != nil {
		renderErr := issue.New("render help", err, issue.On(subject), issue.Catalog(issue.HelpRenderFailedId))
		if a.verbose {
			a.printIssue(issue.CatalogEntry(renderErr))
		}
		return renderErr
	}
	fmt.Fprint(a.stdout, out)
	return nil
}

// reportNotFound prints a not-found error as a single line on stdout. Other errors
// are returned unchanged. In strict mode the command still fails with ExitNotFound.
func (a *App) reportNotFound(err error) error {
	var nfErr *explorer.NotFoundError
	if !errors.As(err, &nfErr) {
		return err
	}

	fmt.Fprintln(a.stdout, nfErr.Error())

	if a.verbose {
		switch nfErr.Kind {
		case explorer.KindProvider:
			a.printIssue(issue.Get(issue.ProviderNotFoundId))
		case explorer.KindFunction:
			a.printIssue(issue.Get(issue.FunctionNotFoundId))
		}
	}

	if a.strict {
		return &ExitError{Code: ExitNotFound}
	}
	return nil
}

// printIssue renders a catalog entry to stderr. A nil entry prints nothing.
func (a *App) printIssue(entry *issue.Issue) {
	if entry == nil {
		return
	}
	rendered, err := entry.Render(string(a.cfg.UI.Style))
	if err != nil {
		a.logger.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
