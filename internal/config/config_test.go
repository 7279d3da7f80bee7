// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fakerhelp/fakerhelp/internal/issue"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultConfig()
	if cfg.UI != want.UI || cfg.Strict != want.Strict || cfg.Sample != want.Sample {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.cue", `
ui: {
	style: "notty"
	width: 100
}
strict: true
sample: seed: 7
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UI.Style != StyleNoTTY {
		t.Errorf("UI.Style = %q, want %q", cfg.UI.Style, StyleNoTTY)
	}
	if cfg.UI.Width != 100 {
		t.Errorf("UI.Width = %d, want 100", cfg.UI.Width)
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
	if cfg.Sample.Seed != 7 {
		t.Errorf("Sample.Seed = %d, want 7", cfg.Sample.Seed)
	}
	if !cfg.Sample.Enabled {
		t.Error("Sample.Enabled should keep its default (true)")
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
strict = true

[ui]
style = "light"

[sample]
enabled = false
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UI.Style != StyleLight {
		t.Errorf("UI.Style = %q, want %q", cfg.UI.Style, StyleLight)
	}
	if cfg.UI.Width != DefaultWidth {
		t.Errorf("UI.Width = %d, want default %d", cfg.UI.Width, DefaultWidth)
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
	if cfg.Sample.Enabled {
		t.Error("Sample.Enabled should be false")
	}
}

func TestLoad_CUETakesPrecedenceOverTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.cue", `ui: style: "dark"`)
	writeFile(t, dir, "config.toml", "[ui]\nstyle = \"light\"\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Style != StyleDark {
		t.Errorf("UI.Style = %q, want %q", cfg.UI.Style, StyleDark)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "custom.toml", "strict = true\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		file      string
		content   string
		wantInErr string
	}{
		{
			name:      "schema violation",
			file:      "config.cue",
			content:   `ui: style: "neon"`,
			wantInErr: "load configuration",
		},
		{
			name:      "unknown field",
			file:      "config.cue",
			content:   `colour: "red"`,
			wantInErr: "load configuration",
		},
		{
			name:      "invalid CUE syntax",
			file:      "config.cue",
			content:   `ui: {`,
			wantInErr: "load configuration",
		},
		{
			name:      "TOML style out of range",
			file:      "config.toml",
			content:   "[ui]\nstyle = \"neon\"\n",
			wantInErr: "validate configuration",
		},
		{
			name:      "TOML width out of range",
			file:      "config.toml",
			content:   "[ui]\nwidth = 1000\n",
			wantInErr: "ui.width",
		},
		{
			name:      "invalid TOML syntax",
			file:      "config.toml",
			content:   "[ui\n",
			wantInErr: "valid TOML syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("Load() should fail")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T", err)
			}
			if got := ae.Format(true); !strings.Contains(got, tt.wantInErr) {
				t.Errorf("Format(true) = %q, want it to contain %q", got, tt.wantInErr)
			}
		})
	}
}

func TestLoad_CUEErrorNamesDocumentField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.cue", "ui: width: 9000\n")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() should fail for an out-of-range width")
	}
	if msg := err.Error(); !strings.Contains(msg, "ui.width") || strings.Contains(msg, "#Config") {
		t.Errorf("Load() error = %q, want the document path ui.width without the schema definition", msg)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %v", err)
	}
	if ae.Resource != path {
		t.Errorf("Resource = %q, want %q", ae.Resource, path)
	}
	if len(ae.Suggestions) == 0 {
		t.Error("missing config error should carry suggestions")
	}
	if ae.Issue != issue.ConfigLoadFailedId {
		t.Errorf("Issue = %d, want the config load catalog entry", ae.Issue)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "fakerhelp")

	path, created, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created {
		t.Error("first call should create the file")
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	// The generated file must round-trip through the loader.
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() of generated config error = %v", err)
	}
	if cfg.UI != DefaultConfig().UI {
		t.Errorf("generated config UI = %+v, want %+v", cfg.UI, DefaultConfig().UI)
	}

	_, created, err = CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("second CreateDefaultConfig() error = %v", err)
	}
	if created {
		t.Error("second call should not overwrite the file")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"custom.cue", "custom.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", name)

			created, err := WriteDefaultConfig(path)
			if err != nil {
				t.Fatalf("WriteDefaultConfig() error = %v", err)
			}
			if !created {
				t.Error("first call should create the file")
			}

			cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
			if err != nil {
				t.Fatalf("Load() of written config error = %v", err)
			}
			want := DefaultConfig()
			if cfg.UI != want.UI || cfg.Strict != want.Strict || cfg.Sample != want.Sample {
				t.Errorf("written config = %+v, want defaults %+v", cfg, want)
			}

			if created, err := WriteDefaultConfig(path); err != nil || created {
				t.Errorf("second WriteDefaultConfig() = (%v, %v), want (false, nil)", created, err)
			}
		})
	}
}

func TestGenerateCUE(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Strict = true
	cfg.Sample.Seed = 99

	out := GenerateCUE(cfg)
	for _, want := range []string{`style: "auto"`, "width: 80", "strict: true", "seed: 99"} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() missing %q in:\n%s", want, out)
		}
	}
}
