package components

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/tui/theme"
)

// RenderCard renders a single item as a card
//
//	┌─────────────────────┐
//	│ {Item Title}        │
//	│ priority | owner    │
//	│ due date            │
//	└─────────────────────┘
//
// A grabbed card (mid drag gesture) gets the grabbed border color so the
// user can see what travels with the selection.
func RenderCard(item *models.ItemSummary, selected bool, grabbed bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	content := renderCardTitle(item, bg) +
		renderCardMetadata(item, bg) +
		renderCardDueDate(item.DueDate, bg)

	border := theme.SelectedBorder
	if grabbed {
		border = theme.GrabbedBorder
	}

	style := CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(content)
}

func renderCardTitle(item *models.ItemSummary, bg string) string {
	title := item.Title
	if len(title) >= cardTitleMaxLength {
		ellipsisStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		title = title[:cardTitleMaxLength] + ellipsisStyle.Render("...")
	}

	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}

// renderCardMetadata renders priority and owner on the same line, separated by │
func renderCardMetadata(item *models.ItemSummary, bg string) string {
	priorityStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(priorityColor(item.Priority))).
		Background(lipgloss.Color(bg))
	priorityDisplay := priorityStyle.Render(item.Priority)

	var ownerDisplay string
	if item.Owner != "" {
		ownerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))
		ownerDisplay = ownerStyle.Render(item.Owner)
	} else {
		ownerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg)).Italic(true)
		ownerDisplay = ownerStyle.Render("no owner")
	}

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))
	separator := separatorStyle.Render(" │ ")

	return "\n " + priorityDisplay + separator + ownerDisplay
}

func renderCardDueDate(due *time.Time, bg string) string {
	if due == nil {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg)).Italic(true)
		return "\n " + emptyStyle.Render("no due date")
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Background(lipgloss.Color(bg))
	if due.Before(time.Now()) {
		style = style.Foreground(lipgloss.Color(theme.ErrorBg)).Bold(true)
	}
	return "\n " + style.Render(due.Format("2006-01-02"))
}

// priorityColor maps a priority level to its display color
func priorityColor(priority string) string {
	switch priority {
	case models.PriorityHigh:
		return models.ColorHex("red")
	case models.PriorityLow:
		return models.ColorHex("gray")
	default:
		return models.ColorHex("yellow")
	}
}
