// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestCatalog_Complete(t *testing.T) {
	t.Parallel()

	ids := []Id{ProviderNotFoundId, FunctionNotFoundId, ConfigLoadFailedId, HelpRenderFailedId}
	if len(Values()) != len(ids) {
		t.Errorf("catalog has %d issues, want %d", len(Values()), len(ids))
	}
	for _, id := range ids {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_DocLinksAreCopied(t *testing.T) {
	t.Parallel()

	i := Get(ProviderNotFoundId)
	links := i.DocLinks()
	if len(links) == 0 {
		t.Fatal("provider issue should link to the library docs")
	}
	links[0] = "mutated"
	if i.DocLinks()[0] == "mutated" {
		t.Error("DocLinks() should return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(FunctionNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Unknown function", "fakerhelp find", "pkg.go.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}
}
