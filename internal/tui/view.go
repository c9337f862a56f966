package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/tui/components"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// View renders the whole screen for the current mode.
// Required by tea.Model interface
func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	if m.width == 0 {
		return "Loading board..."
	}

	switch m.mode {
	case modeHelp:
		return m.centered(m.renderHelp())
	case modeView:
		return m.centered(m.renderItemDetail())
	case modeForm:
		return m.centered(m.renderForm())
	case modeConfirmDelete:
		return m.centered(m.renderDeleteConfirm())
	}

	return m.renderBoard()
}

// boardHeight is the vertical space left for columns after the chrome
func (m Model) boardHeight() int {
	// Tabs take 3 rows, status bar 1, notification banner 1
	return max(m.height-5, components.CardHeight+5)
}

// renderBoard draws tabs, columns and the status bar
func (m Model) renderBoard() string {
	bs := m.current()

	sections := []string{
		components.RenderBoardTabs(m.kind, m.width),
	}

	switch {
	case m.notification == nil:
		sections = append(sections, "")
	case m.notification.severity == notifications.Error:
		// Errors get the full bordered banner
		sections = append(sections, notifications.Render(m.notification.severity, m.notification.message))
	default:
		sections = append(sections, notifications.RenderInline(m.notification.severity, m.notification.message))
	}

	sections = append(sections, m.renderColumns(bs))

	dragging := bs != nil && bs.coordinator != nil && bs.coordinator.State() == board.Dragging
	sections = append(sections, components.RenderStatusBar(components.StatusBarProps{
		Width:     m.width,
		Board:     components.BoardLabel(m.kind),
		Dragging:  dragging,
		Connected: m.eventCh != nil,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderColumns draws the visible slice of columns side by side
func (m Model) renderColumns(bs *boardState) string {
	if bs == nil || len(bs.groups) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render("No columns configured")
	}

	visible := m.visibleColumnCount()
	start := bs.viewportOffset
	if start > len(bs.groups)-1 {
		start = len(bs.groups) - 1
	}
	end := min(start+visible, len(bs.groups))

	grabbedID := bs.coordinator.DraggedItem()
	dropTarget := ""
	if bs.coordinator.State() == board.Dragging {
		dropTarget = bs.coordinator.TargetColumn()
	}

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		group := bs.groups[i]
		selected := i == bs.selectedColumn

		selectedIdx := -1
		if selected {
			selectedIdx = bs.selectedItem
		}

		rendered = append(rendered, components.RenderColumn(group, components.ColumnProps{
			Selected:        selected,
			DropTarget:      dropTarget == group.Column.ID,
			SelectedItemIdx: selectedIdx,
			GrabbedItemID:   grabbedID,
			Height:          m.boardHeight(),
			ScrollOffset:    bs.scroll[group.Column.ID],
		}))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderItemDetail draws the read-only item overlay
func (m Model) renderItemDetail() string {
	return components.ViewBoxStyle.Render(m.detail.View())
}

// itemDetailContent builds the scrollable body of the item overlay
func itemDetailContent(item *models.Item, width int) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(item.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Status: %s\n", item.Status))
	if item.Priority != "" {
		b.WriteString(fmt.Sprintf("Priority: %s\n", item.Priority))
	}
	if item.Owner != "" {
		b.WriteString(fmt.Sprintf("Owner: %s\n", item.Owner))
	}
	if item.DueDate != nil {
		b.WriteString(fmt.Sprintf("Due: %s\n", item.DueDate.Format("2006-01-02")))
	}
	b.WriteString("\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: item.Description,
		Width:       width - 4,
	}))
	return b.String()
}

// renderForm draws the active huh form inside a dialog box
func (m Model) renderForm() string {
	if m.form == nil {
		return ""
	}

	box := components.EditInputBoxStyle
	if m.formPurpose == formCreateItem {
		box = components.CreateInputBoxStyle
	}
	return box.Width(min(m.width-10, 70)).Render(m.form.View())
}

// renderDeleteConfirm draws the y/n deletion prompt
func (m Model) renderDeleteConfirm() string {
	subject := "this item"
	if m.confirm == confirmColumn {
		if col := m.currentColumn(); col != nil {
			subject = fmt.Sprintf("column '%s' ", col.Name)
		} else {
			subject = "this column"
		}
	} else if item := m.currentItem(); item != nil {
		subject = fmt.Sprintf("'%s'", item.Title)
	}

	content := fmt.Sprintf("Delete %s?\n\n", subject) +
		components.IndicatorStyle.Render("y to delete · n to keep")
	return components.DeleteConfirmBoxStyle.Render(content)
}

// helpEntry pairs a key with what it does
type helpEntry struct {
	key  string
	desc string
}

// renderHelp draws the keybinding reference from the active key mappings
func (m Model) renderHelp() string {
	km := m.config.KeyMappings

	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Navigation", []helpEntry{
			{km.PrevColumn + "/" + km.NextColumn, "previous / next column"},
			{km.PrevItem + "/" + km.NextItem, "previous / next item"},
			{km.SwitchBoard, "switch board"},
		}},
		{"Items", []helpEntry{
			{km.AddItem, "add item"},
			{km.EditItem, "edit item"},
			{km.ViewItem, "view item"},
			{km.DeleteItem, "delete item"},
		}},
		{"Moving", []helpEntry{
			{km.GrabItem, "grab item"},
			{km.DropItem, "drop item"},
			{km.CancelDrag, "cancel drag"},
			{km.MoveItemLeft + "/" + km.MoveItemRight, "move item left / right"},
		}},
		{"Columns", []helpEntry{
			{km.CreateColumn, "new column"},
			{km.RenameColumn, "rename column"},
			{km.DeleteColumn, "delete column"},
			{km.MoveColumnLeft + "/" + km.MoveColumnRight, "move column left / right"},
		}},
		{"General", []helpEntry{
			{km.ShowHelp, "toggle this help"},
			{km.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keybindings"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n" + section.title + "\n")
		for _, entry := range section.entries {
			b.WriteString(fmt.Sprintf("  %-8s %s\n", entry.key, entry.desc))
		}
	}

	return components.HelpBoxStyle.Render(b.String())
}

// centered places an overlay in the middle of the screen
func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
