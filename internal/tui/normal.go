package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/tui/components"
	"github.com/quadro-app/quadro/internal/tui/huhforms"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in normal mode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notification = nil

	key := msg.String()
	km := m.config.KeyMappings

	// A grabbed card changes what the movement keys mean
	if m.current() != nil && m.current().coordinator.State() == board.Dragging {
		return m.handleDraggingKeys(key)
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.mode = modeHelp
		return m, nil
	case km.SwitchBoard:
		return m.handleSwitchBoard()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.PrevItem, "up":
		return m.handleNavigateUp()
	case km.NextItem, "down":
		return m.handleNavigateDown()
	case km.GrabItem:
		return m.handleGrabItem()
	case km.MoveItemLeft:
		return m.handleMoveItem(-1)
	case km.MoveItemRight:
		return m.handleMoveItem(+1)
	case km.AddItem:
		return m.handleAddItem()
	case km.EditItem:
		return m.handleEditItem()
	case km.ViewItem:
		return m.handleViewItem()
	case km.DeleteItem:
		return m.handleDeleteItem()
	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()
	case km.MoveColumnLeft:
		return m.handleMoveColumn(-1)
	case km.MoveColumnRight:
		return m.handleMoveColumn(+1)
	}

	return m, nil
}

// handleDraggingKeys interprets keys while a card is grabbed
func (m Model) handleDraggingKeys(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	bs := m.current()

	switch key {
	case km.CancelDrag:
		bs.coordinator.Cancel()
		m.notify(notifications.Info, "Drop cancelled")
		return m, nil
	case km.DropItem:
		return m, dropCmd(m.ctx, m.kind, bs.coordinator)
	case km.PrevColumn, "left":
		return m.handleDragOver(-1)
	case km.NextColumn, "right":
		return m.handleDragOver(+1)
	case km.Quit, "ctrl+c":
		// Never quit mid gesture with an optimistic state pending
		bs.coordinator.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

// handleDragOver slides the drop target one column over
func (m Model) handleDragOver(delta int) (tea.Model, tea.Cmd) {
	bs := m.current()
	next := bs.selectedColumn + delta
	if next < 0 || next >= len(bs.groups) {
		return m, nil
	}
	bs.selectedColumn = next
	if err := bs.coordinator.OnDragOverColumn(bs.groups[next].Column.ID); err != nil {
		m.notify(notifications.Error, "Drag lost, pick the card up again")
	}
	return m, nil
}

// handleGrabItem starts a drag gesture on the selected card
func (m Model) handleGrabItem() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		m.notify(notifications.Info, "Nothing to grab here")
		return m, nil
	}

	if err := m.current().coordinator.OnDragStart(item.ID); err != nil {
		m.notify(notifications.Warning, "Another card is already grabbed")
		return m, nil
	}
	return m, nil
}

// handleMoveItem moves the selected item one column over without a gesture
func (m Model) handleMoveItem(delta int) (tea.Model, tea.Cmd) {
	bs := m.current()
	item := m.currentItem()
	if item == nil {
		return m, nil
	}

	target := bs.selectedColumn + delta
	if target < 0 || target >= len(bs.groups) {
		m.notify(notifications.Info, "Already at the edge of the board")
		return m, nil
	}

	return m, moveCmd(m.ctx, m.kind, bs.coordinator, item.ID, bs.groups[target].Column.ID)
}

// handleSwitchBoard flips between the activities and projects boards
func (m Model) handleSwitchBoard() (tea.Model, tea.Cmd) {
	if m.kind == models.BoardActivities {
		m.kind = models.BoardProjects
	} else {
		m.kind = models.BoardActivities
	}
	return m, nil
}

// handleNavigateLeft moves selection to the previous column.
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	bs := m.current()
	if bs.selectedColumn > 0 {
		bs.selectedColumn--
		bs.selectedItem = 0
		m.ensureColumnVisible()
	} else {
		m.notify(notifications.Info, "Already at the first column")
	}
	return m, nil
}

// handleNavigateRight moves selection to the next column.
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	bs := m.current()
	if bs.selectedColumn < len(bs.groups)-1 {
		bs.selectedColumn++
		bs.selectedItem = 0
		m.ensureColumnVisible()
	} else {
		m.notify(notifications.Info, "Already at the last column")
	}
	return m, nil
}

// handleNavigateUp moves selection to the previous item in the column
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	bs := m.current()
	if bs.selectedItem > 0 {
		bs.selectedItem--
		m.ensureItemVisible()
	}
	return m, nil
}

// handleNavigateDown moves selection to the next item in the column
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	bs := m.current()
	if len(bs.groups) == 0 {
		return m, nil
	}
	if bs.selectedItem < len(bs.groups[bs.selectedColumn].Items)-1 {
		bs.selectedItem++
		m.ensureItemVisible()
	}
	return m, nil
}

// ensureColumnVisible keeps the selected column inside the viewport
func (m *Model) ensureColumnVisible() {
	bs := m.current()
	visible := m.visibleColumnCount()
	if bs.selectedColumn < bs.viewportOffset {
		bs.viewportOffset = bs.selectedColumn
	}
	if bs.selectedColumn >= bs.viewportOffset+visible {
		bs.viewportOffset = bs.selectedColumn - visible + 1
	}
}

// ensureItemVisible keeps the selected card inside its column's window
func (m *Model) ensureItemVisible() {
	bs := m.current()
	if len(bs.groups) == 0 {
		return
	}
	columnID := bs.groups[bs.selectedColumn].Column.ID
	maxVisible := m.visibleCardCount()

	offset := bs.scroll[columnID]
	if bs.selectedItem < offset {
		offset = bs.selectedItem
	}
	if bs.selectedItem >= offset+maxVisible {
		offset = bs.selectedItem - maxVisible + 1
	}
	bs.scroll[columnID] = offset
}

// visibleColumnCount is how many columns fit in the current width
func (m Model) visibleColumnCount() int {
	if m.width <= 0 {
		return 3
	}
	return max(m.width/components.ColumnWidth, 1)
}

// visibleCardCount is how many cards fit in a column at the current height
func (m Model) visibleCardCount() int {
	height := m.boardHeight()
	return max((height-5)/components.CardHeight, 1)
}

// ============================================================================
// ITEM HANDLERS
// ============================================================================

// handleAddItem opens the item creation form
func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	m.itemForm = &huhforms.ItemFormValues{}
	m.form = huhforms.CreateItemForm(m.itemForm, false).
		WithTheme(huhforms.CreateQuadroTheme(m.config.ColorScheme))
	m.formPurpose = formCreateItem
	m.mode = modeForm
	return m, m.form.Init()
}

// handleEditItem opens the edit form for the selected item
func (m Model) handleEditItem() (tea.Model, tea.Cmd) {
	summary := m.currentItem()
	if summary == nil {
		m.notify(notifications.Info, "Nothing to edit here")
		return m, nil
	}

	item, ok := m.current().collection.Get(summary.ID)
	if !ok {
		m.notify(notifications.Error, "Item vanished, board refreshed")
		m.refreshBoard(m.kind)
		return m, nil
	}

	values := &huhforms.ItemFormValues{
		Title:       item.Title,
		Description: item.Description,
		Priority:    item.Priority,
		Owner:       item.Owner,
	}
	if item.DueDate != nil {
		values.Due = item.DueDate.Format("2006-01-02")
	}

	m.itemForm = values
	m.editingItemID = item.ID
	m.form = huhforms.CreateItemForm(values, true).
		WithTheme(huhforms.CreateQuadroTheme(m.config.ColorScheme))
	m.formPurpose = formEditItem
	m.mode = modeForm
	return m, m.form.Init()
}

// handleViewItem opens the read-only detail overlay
func (m Model) handleViewItem() (tea.Model, tea.Cmd) {
	summary := m.currentItem()
	if summary == nil {
		return m, nil
	}
	item, ok := m.current().collection.Get(summary.ID)
	if !ok {
		m.notify(notifications.Error, "Item vanished, board refreshed")
		m.refreshBoard(m.kind)
		return m, nil
	}

	width := min(m.width-10, 80)
	vp := viewport.New()
	vp.SetWidth(width)
	vp.SetHeight(max(m.height-8, 5))
	vp.MouseWheelEnabled = true
	vp.SetContent(itemDetailContent(item, width))

	m.detail = vp
	m.mode = modeView
	return m, nil
}

// handleDeleteItem asks for confirmation before deleting the selected item
func (m Model) handleDeleteItem() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}
	m.confirm = confirmItem
	m.confirmItemID = item.ID
	m.mode = modeConfirmDelete
	return m, nil
}

// deleteConfirmedItem deletes the item the confirmation was opened for
func (m *Model) deleteConfirmedItem() {
	if err := m.app.ItemService.DeleteItem(m.ctx, m.confirmItemID); err != nil {
		m.notify(notifications.Error, "Error deleting item")
		return
	}
	m.current().collection.Remove(m.confirmItemID)
	m.current().regroup()
}

// ============================================================================
// COLUMN HANDLERS
// ============================================================================

// handleCreateColumn appends a default column and opens the rename form
func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	bs := m.current()
	created := bs.columns.AddColumn()
	bs.coordinator.SetMapper(bs.columns.Mapper())
	bs.regroup()
	bs.selectedColumn = len(bs.groups) - 1
	bs.selectedItem = 0
	m.ensureColumnVisible()

	m.columnForm = &huhforms.ColumnFormValues{Name: created.Name, Color: created.Color}
	m.editingColumnID = created.ID
	m.form = huhforms.CreateColumnForm(m.columnForm, false).
		WithTheme(huhforms.CreateQuadroTheme(m.config.ColorScheme))
	m.formPurpose = formEditColumn
	m.mode = modeForm
	return m, m.form.Init()
}

// handleRenameColumn opens the rename form for the selected column
func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		return m, nil
	}

	m.columnForm = &huhforms.ColumnFormValues{Name: col.Name, Color: col.Color}
	m.editingColumnID = col.ID
	m.form = huhforms.CreateColumnForm(m.columnForm, true).
		WithTheme(huhforms.CreateQuadroTheme(m.config.ColorScheme))
	m.formPurpose = formEditColumn
	m.mode = modeForm
	return m, m.form.Init()
}

// handleDeleteColumn asks for confirmation before deleting the selected column
func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		return m, nil
	}
	m.confirm = confirmColumn
	m.confirmColumnID = col.ID
	m.mode = modeConfirmDelete
	return m, nil
}

// deleteConfirmedColumn deletes the column the confirmation was opened for
func (m *Model) deleteConfirmedColumn() {
	bs := m.current()
	if err := bs.columns.RemoveColumn(m.confirmColumnID); err != nil {
		if errors.Is(err, models.ErrLastColumn) {
			m.notify(notifications.Warning, "Boards need at least one column")
		} else {
			m.notify(notifications.Error, "Error deleting column")
		}
		return
	}
	bs.coordinator.SetMapper(bs.columns.Mapper())
	bs.regroup()
}

// handleMoveColumn shifts the selected column one position over
func (m Model) handleMoveColumn(delta int) (tea.Model, tea.Cmd) {
	bs := m.current()
	from := bs.selectedColumn
	to := from + delta
	if to < 0 || to >= len(bs.groups) {
		return m, nil
	}

	if err := bs.columns.ReorderColumn(from, to); err != nil {
		m.notify(notifications.Error, fmt.Sprintf("Error moving column: %v", err))
		return m, nil
	}
	bs.coordinator.SetMapper(bs.columns.Mapper())
	bs.regroup()
	bs.selectedColumn = to
	m.ensureColumnVisible()
	return m, nil
}
