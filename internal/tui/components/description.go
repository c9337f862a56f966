package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/quadro-app/quadro/internal/tui/theme"
)

// DescriptionProps carries the markdown body and wrap width
type DescriptionProps struct {
	Description string
	Width       int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders an item description as markdown, falling back
// to the raw text when glamour fails
func RenderDescription(props DescriptionProps) string {
	if props.Description != "" {
		renderer, err := getRenderer(props.Width)
		if err == nil {
			renderedDesc, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(renderedDesc)
			}
		}
		return props.Description
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No description")
}
