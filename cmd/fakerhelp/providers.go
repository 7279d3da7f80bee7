// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/fakerhelp/fakerhelp/internal/explorer"
	"github.com/fakerhelp/fakerhelp/internal/helpdoc"
	"github.com/fakerhelp/fakerhelp/internal/registry"

	"github.com/spf13/cobra"
)

// newProvidersCommand creates the `fakerhelp providers` command.
func newProvidersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List all gofakeit providers",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ex, err := app.explorer()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, "Faker providers:")
			for _, p := range ex.ListProviders() {
				fmt.Fprintf(app.stdout, "  %s\n", p.QualifiedName)
			}
			return nil
		},
	}
}

// newProviderCommand creates the `fakerhelp provider <name>` command.
func newProviderCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "provider <name>",
		Short:             "Show help for a provider",
		Long:              "Show help for the provider whose short name (last dotted segment) is <name>.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProviders(app),
		RunE: func(_ *cobra.Command, args []string) error {
			ex, err := app.explorer()
			if err != nil {
				return err
			}
			p, err := ex.FindProvider(args[0])
			if err != nil {
				return app.reportNotFound(err)
			}
			return app.printHelp(helpdoc.Provider(p, ex.ListProviderFunctions(p)), p.QualifiedName)
		},
	}
}

// newLsCommand creates the `fakerhelp ls [provider]` command.
func newLsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "ls [provider]",
		Short:             "List the functions of one or all providers",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeProviders(app),
		RunE: func(_ *cobra.Command, args []string) error {
			ex, err := app.explorer()
			if err != nil {
				return err
			}

			providers := ex.ListProviders()
			if len(args) == 1 {
				providers, err = ex.FindProviders(args[0])
				if err != nil {
					return app.reportNotFound(err)
				}
			}

			for _, p := range providers {
				printProviderFunctions(app, ex, p)
			}
			return nil
		},
	}
}

func printProviderFunctions(app *App, ex *explorer.Explorer, p registry.Provider) {
	fmt.Fprintf(app.stdout, "%s:\n", p.QualifiedName)
	for _, fn := range ex.ListProviderFunctions(p) {
		fmt.Fprintf(app.stdout, "  %s\n", fn.Name)
	}
}
