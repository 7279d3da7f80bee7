// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"strings"
	"testing"

	"github.com/fakerhelp/fakerhelp/internal/registry"

	"github.com/brianvoe/gofakeit/v7"
)

func testFunction() registry.Function {
	return registry.Function{
		Entry: registry.Entry{
			Name:        "password",
			Category:    "auth",
			Display:     "Password",
			Description: "Secret | word",
			Example:     "EEP+wwpk 4lU-eHNXlJZ4n K9%v&TZ9e",
			Output:      "string",
			Params: []registry.Param{
				{Field: "lower", Type: "bool", Default: "true", Description: "Whether or not to add lower case characters"},
				{Field: "length", Type: "int", Description: "Number of characters"},
				{Field: "case", Type: "string", Optional: true, Options: []string{"upper", "lower"}},
			},
			Generate: func(*gofakeit.Faker, map[string][]string) (any, error) { return "x", nil },
		},
		QualifiedName: "auth.password",
		Provider:      "gofakeit.auth",
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	fn := testFunction()
	md := Provider(registry.Provider{QualifiedName: "gofakeit.auth", Name: "auth"}, []registry.Function{fn})

	for _, want := range []string{
		"# gofakeit.auth",
		"Provider `auth` supplies 1 generator function(s).",
		"| `password` | Secret \\| word | string |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Provider() missing %q in:\n%s", want, md)
		}
	}
}

func TestProvider_NoFunctions(t *testing.T) {
	t.Parallel()

	md := Provider(registry.Provider{QualifiedName: "gofakeit.empty", Name: "empty"}, nil)
	if strings.Contains(md, "| Function |") {
		t.Errorf("Provider() with no functions should not render a table:\n%s", md)
	}
}

func TestFunction(t *testing.T) {
	t.Parallel()

	md := Function(testFunction(), Sample{Value: "s3cr3t", Valid: true})

	for _, want := range []string{
		"# Password (`password`)",
		"- **Provider:** gofakeit.auth",
		"- **Qualified name:** auth.password",
		"## Parameters",
		"| `lower` | bool | true |",
		"| `length` | int | required |",
		"One of: upper, lower.",
		"## Example",
		"## Sample",
		"s3cr3t",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Function() missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "**Callable:** no") {
		t.Error("callable function should not be marked as not callable")
	}
}

func TestFunction_MetadataOnly(t *testing.T) {
	t.Parallel()

	fn := registry.Function{
		Entry:         registry.Entry{Name: "fields"},
		QualifiedName: "gofakeit.fields",
		Provider:      "gofakeit",
	}
	md := Function(fn, Sample{})

	if !strings.HasPrefix(md, "# fields\n") {
		t.Errorf("title should fall back to the function name:\n%s", md)
	}
	if !strings.Contains(md, "**Callable:** no") {
		t.Errorf("metadata-only function should be marked not callable:\n%s", md)
	}
	if strings.Contains(md, "## Sample") {
		t.Errorf("invalid sample should be omitted:\n%s", md)
	}
}

func TestCodeBlock_NestedFence(t *testing.T) {
	t.Parallel()

	got := codeBlock("a ``` b")
	if !strings.HasPrefix(got, "````\n") {
		t.Errorf("codeBlock() should lengthen the fence, got %q", got)
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer("notty", DefaultWidth).Render(Function(testFunction(), Sample{}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"password", "gofakeit.auth"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderer_UnknownStyle(t *testing.T) {
	t.Parallel()

	if _, err := NewRenderer("no-such-style", 0).Render("# x"); err == nil {
		t.Error("Render() with an unknown style should fail")
	}
}
