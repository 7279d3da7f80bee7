// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fakerhelp/fakerhelp/internal/cueutil"
	"github.com/fakerhelp/fakerhelp/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "fakerhelp"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// TOMLFileExt is the extension of the alternative TOML config file.
	TOMLFileExt = "toml"

	// maxConfigFileSize bounds the config file read into memory.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the fakerhelp configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.style", string(defaults.UI.Style))
	v.SetDefault("ui.width", defaults.UI.Width)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("sample.enabled", defaults.Sample.Enabled)
	v.SetDefault("sample.seed", defaults.Sample.Seed)

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		// A path passed via --config is used exclusively.
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.New("load configuration", fmt.Errorf("config file not found: %s", opts.ConfigFilePath),
				issue.On(opts.ConfigFilePath),
				issue.Suggest(
					"Verify the file path is correct",
					"Run 'fakerhelp --config <file> config init' to create it with the defaults",
				),
				issue.Catalog(issue.ConfigLoadFailedId),
			)
		}
		if err := loadFileIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, err
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, err
		}

		candidates := []string{
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
			filepath.Join(cfgDir, ConfigFileName+"."+TOMLFileExt),
			ConfigFileName + "." + ConfigFileExt,
		}
		for _, candidate := range candidates {
			if !fileExists(candidate) {
				continue
			}
			if err := loadFileIntoViper(v, candidate); err != nil {
				return nil, err
			}
			resolvedPath = candidate
			break
		}
		// If no config file found, use defaults (no error)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, issue.New("validate configuration", errs[0],
			issue.On(resolvedPath),
			issue.Suggest(
				"ui.style must be one of auto, dark, light, notty",
				"ui.width must be between 0 and 400",
			),
			issue.Catalog(issue.ConfigLoadFailedId),
		)
	}

	cfg.Path = resolvedPath
	return &cfg, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadFileIntoViper dispatches on the file extension and wraps failures with
// user-facing context.
func loadFileIntoViper(v *viper.Viper, path string) error {
	load := loadCUEIntoViper
	syntax := "CUE"
	if strings.EqualFold(filepath.Ext(path), "."+TOMLFileExt) {
		load = loadTOMLIntoViper
		syntax = "TOML"
	}

	if err := load(v, path); err != nil {
		return issue.New("load configuration", err,
			issue.On(path),
			issue.Suggest(
				fmt.Sprintf("Check that the file contains valid %s syntax", syntax),
				"Verify the configuration values match the expected schema",
				"Run 'fakerhelp config show' to see the effective configuration",
			),
			issue.Catalog(issue.ConfigLoadFailedId),
		)
	}
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", len(data), maxConfigFileSize)
	}
	return data, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := readConfigFile(path)
	if err != nil {
		return err
	}

	configMap, err := cueutil.Decode[map[string]any]([]byte(configSchema), data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithMaxFileSize(maxConfigFileSize),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// loadTOMLIntoViper decodes a TOML file and merges its contents into Viper.
// TOML has no schema step; Config.IsValid covers the same constraints after decoding.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := readConfigFile(path)
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig creates a default config file in configDirPath (the platform
// config directory when empty) and returns its path. The created flag is false when
// the file was already present.
func CreateDefaultConfig(configDirPath string) (path string, created bool, err error) {
	cfgDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return "", false, err
	}

	path = filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	created, err = WriteDefaultConfig(path)
	return path, created, err
}

// WriteDefaultConfig writes the default configuration to path unless a file already
// exists there. Paths ending in .toml get TOML, anything else gets CUE.
func WriteDefaultConfig(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	content := GenerateCUE(DefaultConfig())
	if strings.EqualFold(filepath.Ext(path), "."+TOMLFileExt) {
		if content, err = GenerateTOML(DefaultConfig()); err != nil {
			return false, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// GenerateTOML renders the configuration in the TOML config format.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return "# fakerhelp configuration file\n\n" + string(data), nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// fakerhelp configuration file\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tstyle: %q\n", cfg.UI.Style)
	fmt.Fprintf(&sb, "\twidth: %d\n", cfg.UI.Width)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	fmt.Fprintf(&sb, "\nstrict: %v\n", cfg.Strict)

	sb.WriteString("\nsample: {\n")
	fmt.Fprintf(&sb, "\tenabled: %v\n", cfg.Sample.Enabled)
	fmt.Fprintf(&sb, "\tseed: %d\n", cfg.Sample.Seed)
	sb.WriteString("}\n")

	return sb.String()
}
