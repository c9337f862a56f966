package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// handleFormMode routes keys while a huh form is active
func (m Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.CancelDrag:
		m.form = nil
		m.mode = modeNormal
		return m, tea.ClearScreen
	case m.config.KeyMappings.SaveForm:
		// Save from any field without tabbing to the end
		m.form.State = huh.StateCompleted
		return m.submitForm()
	}
	return m.updateForm(msg)
}

// updateForm forwards a message to the active form and submits on completion
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.form.Update(msg)
	m.form = model.(*huh.Form)

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return m, cmd
}

// submitForm applies the completed form to the store behind it
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.formPurpose {
	case formCreateItem:
		m.submitCreateItem()
	case formEditItem:
		m.submitEditItem()
	case formEditColumn:
		m.submitEditColumn()
	}

	m.form = nil
	m.mode = modeNormal
	return m, tea.ClearScreen
}

func (m *Model) submitCreateItem() {
	values := m.itemForm
	if values == nil || values.Title == "" {
		return
	}

	req := itemservice.CreateItemRequest{
		Kind:        m.kind,
		Title:       values.Title,
		Description: values.Description,
		Priority:    values.Priority,
		Owner:       values.Owner,
		DueDate:     parseDue(values.Due),
	}

	// New cards land in the column the cursor is on.
	// An empty status means the service picks the board's first column.
	if col := m.currentColumn(); col != nil {
		req.Status = m.current().columns.Mapper().StatusForColumn(col.ID)
	}

	item, err := m.app.ItemService.CreateItem(m.ctx, req)
	if err != nil {
		m.notify(notifications.Error, "Error creating item")
		return
	}
	m.current().collection.Add(item)
	m.current().regroup()
}

func (m *Model) submitEditItem() {
	values := m.itemForm
	if values == nil || values.Title == "" {
		return
	}

	req := itemservice.UpdateItemRequest{
		ItemID:      m.editingItemID,
		Title:       &values.Title,
		Description: &values.Description,
		Priority:    &values.Priority,
		Owner:       &values.Owner,
	}
	if due := parseDue(values.Due); due != nil {
		req.DueDate = due
	} else {
		req.ClearDueDate = true
	}

	if _, err := m.app.ItemService.UpdateItem(m.ctx, req); err != nil {
		m.notify(notifications.Error, "Error updating item")
		return
	}
	m.refreshBoard(m.kind)
}

func (m *Model) submitEditColumn() {
	values := m.columnForm
	bs := m.current()
	if values == nil || bs == nil {
		return
	}

	if err := bs.columns.RenameColumn(m.editingColumnID, values.Name); err != nil {
		m.notify(notifications.Warning, "Column name rejected, keeping the old one")
	}
	if err := bs.columns.SetColumnColor(m.editingColumnID, values.Color); err != nil {
		m.notify(notifications.Warning, "Unknown color, keeping the old one")
	}
	bs.coordinator.SetMapper(bs.columns.Mapper())
	bs.regroup()
}

// parseDue parses a YYYY-MM-DD form value; the form validated it already
func parseDue(value string) *time.Time {
	if value == "" {
		return nil
	}
	due, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &due
}
