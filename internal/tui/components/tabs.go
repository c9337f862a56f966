package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/quadro-app/quadro/internal/models"
)

// boardLabels maps board kinds to their tab labels
var boardLabels = map[models.BoardKind]string{
	models.BoardActivities: "Atividades",
	models.BoardProjects:   "Projetos",
}

// BoardLabel returns the display label for a board kind
func BoardLabel(kind models.BoardKind) string {
	if label, ok := boardLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// RenderBoardTabs renders the board switcher as a tab row
func RenderBoardTabs(active models.BoardKind, width int) string {
	var tabs []string
	for _, kind := range models.AllBoardKinds {
		label := boardLabels[kind]
		if kind == active {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	gapWidth := max(0, width-lipgloss.Width(row)-2)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
