package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/tui/theme"
)

// ColumnProps carries everything RenderColumn needs
type ColumnProps struct {
	Selected        bool   // this column holds the cursor
	DropTarget      bool   // a grabbed card would land here
	SelectedItemIdx int    // index of selected item in this column (-1 if not this column)
	GrabbedItemID   string // id of the item mid drag gesture ("" when idle)
	Height          int    // fixed height for the column (0 for auto)
	ScrollOffset    int    // index of first visible item
}

// RenderColumn renders a complete column with its title and item cards
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more items below)
func RenderColumn(group board.ColumnItems, props ColumnProps) string {
	items := group.Items

	// Column title carries the configured column color plus item count
	headerStyle := TitleStyle.Foreground(lipgloss.Color(models.ColorHex(group.Column.Color)))
	content := headerStyle.Render(fmt.Sprintf("%s (%d)", group.Column.Name, len(items))) + "\n"

	if len(items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No items")
	} else {
		// Column overhead: borders and padding (3) + header (1) + top
		// indicator (1), matching the fixed card height math below
		const columnOverhead = 5
		availableHeight := props.Height - columnOverhead
		maxVisibleItems := max(availableHeight/CardHeight, 1)

		// Always reserve space for the top indicator
		if props.ScrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.ScrollOffset+maxVisibleItems, len(items))
		visibleItems := items[props.ScrollOffset:endIdx]

		for i, item := range visibleItems {
			actualIdx := props.ScrollOffset + i
			isSelected := props.Selected && actualIdx == props.SelectedItemIdx
			isGrabbed := props.GrabbedItemID != "" && item.ID == props.GrabbedItemID
			content += RenderCard(item, isSelected, isGrabbed)
		}

		// Pad so a bottom indicator sits flush with the bottom border
		usedLines := 1 + 1 + (len(visibleItems) * CardHeight)
		hasBottomIndicator := endIdx < len(items)
		var bottomIndicatorLines int
		if hasBottomIndicator {
			bottomIndicatorLines = 2
		}

		contentHeight := props.Height - 3
		remainingLines := contentHeight - usedLines - bottomIndicatorLines
		if remainingLines > 0 {
			content += strings.Repeat("\n", remainingLines)
		}

		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.DropTarget {
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}
