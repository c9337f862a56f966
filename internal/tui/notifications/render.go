package notifications

import (
	"charm.land/lipgloss/v2"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	if severity == Info {
		headerStyle = headerStyle.Background(lipgloss.Color(style.background))
	}

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact inline notification (for the tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}
