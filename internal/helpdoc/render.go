// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// DefaultWidth is the word-wrap width used when none is configured.
const DefaultWidth = 80

// Renderer renders Markdown documents for the terminal.
type Renderer struct {
	style string
	width int
}

// NewRenderer creates a Renderer using a glamour standard style ("auto", "dark",
// "light", "notty", ...). An empty style means "auto"; a zero width disables wrapping.
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = styles.AutoStyle
	}
	return &Renderer{style: style, width: width}
}

// Render converts Markdown into styled terminal text.
func (r *Renderer) Render(markdown string) (string, error) {
	width := max(r.width, 0)

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(markdown)
}
