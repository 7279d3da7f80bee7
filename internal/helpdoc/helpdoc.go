// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"fmt"
	"strings"

	"github.com/fakerhelp/fakerhelp/internal/registry"
)

// Sample is a value produced by calling a generator function. A zero Sample is omitted.
type Sample struct {
	Value any
	Valid bool
}

// Provider returns the Markdown reference for a provider and the functions it owns.
func Provider(p registry.Provider, funcs []registry.Function) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", p.QualifiedName)
	fmt.Fprintf(&sb, "Provider `%s` supplies %d generator function(s).\n\n", p.Name, len(funcs))

	if len(funcs) == 0 {
		return sb.String()
	}

	sb.WriteString("| Function | Description | Output |\n")
	sb.WriteString("|---|---|---|\n")
	for _, fn := range funcs {
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", fn.Name, cell(fn.Description), cell(fn.Output))
	}

	sb.WriteString("\nRun `fakerhelp func <name>` for details on a function.\n")
	return sb.String()
}

// Function returns the Markdown reference for a generator function.
func Function(fn registry.Function, sample Sample) string {
	var sb strings.Builder

	title := fn.Name
	if fn.Display != "" {
		title = fmt.Sprintf("%s (`%s`)", fn.Display, fn.Name)
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if fn.Description != "" {
		sb.WriteString(fn.Description)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "- **Provider:** %s\n", fn.Provider)
	fmt.Fprintf(&sb, "- **Qualified name:** %s\n", fn.QualifiedName)
	if fn.Output != "" {
		fmt.Fprintf(&sb, "- **Output:** %s\n", fn.Output)
	}
	if fn.ContentType != "" {
		fmt.Fprintf(&sb, "- **Content type:** %s\n", fn.ContentType)
	}
	if !fn.Callable() {
		sb.WriteString("- **Callable:** no\n")
	}

	if len(fn.Params) > 0 {
		sb.WriteString("\n## Parameters\n\n")
		sb.WriteString("| Field | Type | Default | Description |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, p := range fn.Params {
			def := p.Default
			if def == "" && !p.Optional {
				def = "required"
			}
			desc := p.Description
			if len(p.Options) > 0 {
				desc = strings.TrimSpace(desc + " One of: " + strings.Join(p.Options, ", ") + ".")
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", p.Field, cell(p.Type), cell(def), cell(desc))
		}
	}

	if fn.Example != "" {
		sb.WriteString("\n## Example\n\n")
		sb.WriteString(codeBlock(fn.Example))
	}

	if sample.Valid {
		sb.WriteString("\n## Sample\n\n")
		sb.WriteString(codeBlock(fmt.Sprintf("%v", sample.Value)))
	}

	return sb.String()
}

// cell escapes text for use inside a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func codeBlock(s string) string {
	fence := "```"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	return fence + "\n" + strings.TrimRight(s, "\n") + "\n" + fence + "\n"
}
