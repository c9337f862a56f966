package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/quadro-app/quadro/internal/tui/theme"
)

// StatusBarProps carries the status bar inputs
type StatusBarProps struct {
	Width     int
	Board     string // active board name
	Dragging  bool   // a card is grabbed
	Connected bool   // live-update daemon reachable
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: board name plus connection state.
// Right side: gesture hint or the help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Quadro · " + props.Board
	if !props.Connected {
		leftText += " (offline)"
	}

	rightText := "press ? for help"
	if props.Dragging {
		rightText = "h/l move · enter drop · esc cancel"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
