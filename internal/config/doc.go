// SPDX-License-Identifier: MPL-2.0

// Package config handles fakerhelp configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/fakerhelp/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/fakerhelp/config.cue on macOS, %APPDATA%\fakerhelp\config.cue
// on Windows). A config.toml in the same directory is accepted when no CUE file exists.
// A missing file is not an error: the defaults from DefaultConfig apply.
//
// CUE files are validated against an embedded schema (config_schema.cue); every loaded
// configuration is then checked with Config.IsValid.
package config
