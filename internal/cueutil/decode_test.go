// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Settings: {
	name:   string
	level?: int & >=0 & <=10
	tags?: [...string]
	opts?: depth?: int & <=3
}
`

type settings struct {
	Name  string   `json:"name"`
	Level int      `json:"level"`
	Tags  []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		opts    []Option
		want    settings
		wantErr string
	}{
		{
			name: "valid document",
			data: `name: "a", level: 3, tags: ["x"]`,
			want: settings{Name: "a", Level: 3, Tags: []string{"x"}},
		},
		{
			name: "optional field omitted",
			data: `name: "a"`,
			want: settings{Name: "a"},
		},
		{
			name:    "constraint violation names the field",
			data:    `name: "a", level: 11`,
			opts:    []Option{WithFilename("settings.cue")},
			wantErr: "settings.cue: level",
		},
		{
			name:    "closed definition rejects unknown fields",
			data:    `name: "a", colour: "red"`,
			wantErr: "colour",
		},
		{
			name:    "syntax error",
			data:    `name: `,
			wantErr: "<input>",
		},
		{
			name:    "missing field fails when concrete",
			data:    `level: 1`,
			opts:    []Option{WithConcrete(true)},
			wantErr: "name",
		},
		{
			name:    "size limit",
			data:    `name: "abcdefghij"`,
			opts:    []Option{WithMaxFileSize(4)},
			wantErr: "exceeds maximum 4 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode[settings]([]byte(testSchema), []byte(tt.data), "#Settings", tt.opts...)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Decode() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Decode() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Name != tt.want.Name || got.Level != tt.want.Level || strings.Join(got.Tags, ",") != strings.Join(tt.want.Tags, ",") {
				t.Errorf("Decode() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDecode_UnknownDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[settings]([]byte(testSchema), []byte(`name: "a"`), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("Decode() error = %v, want missing definition error", err)
	}
}

func TestDecode_ErrorPathOmitsDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[settings]([]byte(testSchema), []byte(`name: "a", opts: depth: 9`), "#Settings",
		WithFilename("settings.cue"))
	if err == nil {
		t.Fatal("Decode() error = nil, want a bound error")
	}
	if strings.Contains(err.Error(), "#Settings") {
		t.Errorf("Decode() error = %v, should not name the schema definition", err)
	}
	if !strings.Contains(err.Error(), "settings.cue: opts.depth") {
		t.Errorf("Decode() error = %v, want it to contain %q", err, "settings.cue: opts.depth")
	}
}

func TestWithoutDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{[]string{"#Config", "ui", "width"}, "ui.width"},
		{[]string{"#Config"}, ""},
		{[]string{"ui", "width"}, "ui.width"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := jsonPath(withoutDefinition(tt.path)); got != tt.want {
			t.Errorf("jsonPath(withoutDefinition(%v)) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestJSONPath(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"":         nil,
		"ui.width": {"ui", "width"},
		"tags[0]":  {"tags", "0"},
		"a[2].b":   {"a", "2", "b"},
		"0.b":      {"0", "b"},
	}
	for want, path := range tests {
		if got := jsonPath(path); got != want {
			t.Errorf("jsonPath(%v) = %q, want %q", path, got, want)
		}
	}
}
