// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/fakerhelp/fakerhelp/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `fakerhelp config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fakerhelp configuration",
		Long: `Manage fakerhelp configuration.

Configuration is read from config.cue (or config.toml) in:
  - Linux: ~/.config/fakerhelp/
  - macOS: ~/Library/Application Support/fakerhelp/
  - Windows: %APPDATA%\fakerhelp\`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: app.flags.configFile})
			if err != nil {
				return err
			}

			path := SubtitleStyle.Render("(using defaults)")
			if cfg.Path != "" {
				path = cfg.Path
			}
			fmt.Fprintf(app.stderr, "%s: %s\n", CmdStyle.Render("Config file"), path)
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a default configuration file.

Without --config the file is written to config.cue in the platform configuration
directory. With --config it is written to that path, as TOML when the path ends
in .toml and as CUE otherwise. An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		// The target file usually does not exist yet, so skip loading it.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			app.logger = newLogger(app.stderr, app.flags.verbose)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			path, created, err := initConfig(app.flags.configFile)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(app.stdout, "Configuration file already exists: %s\n", path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	return cfgCmd
}

// initConfig writes the default configuration to configFile, or to the platform
// config directory when configFile is empty.
func initConfig(configFile string) (path string, created bool, err error) {
	if configFile == "" {
		return config.CreateDefaultConfig("")
	}
	created, err = config.WriteDefaultConfig(configFile)
	return configFile, created, err
}
