package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardEventMsg:
		m.handleBoardEvent(msg.event)
		return m, waitForEvent(m.eventCh)

	case moveResolvedMsg:
		return m.handleMoveResolved(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.handleNormalMode(msg)
		case modeHelp, modeView:
			return m.handleDismissMode(msg)
		case modeConfirmDelete:
			return m.handleConfirmMode(msg)
		case modeForm:
			return m.handleFormMode(msg)
		}
	}

	// Forms also consume non-key messages (blink, etc.)
	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

// handleBoardEvent refreshes boards touched by a daemon event.
// An empty kind means every board may have changed.
func (m *Model) handleBoardEvent(event events.Event) {
	kinds := models.AllBoardKinds
	if event.Kind != "" {
		kinds = []models.BoardKind{models.BoardKind(event.Kind)}
	}

	for _, kind := range kinds {
		if event.Type == events.EventColumnsChanged {
			// Column config is owned by another process; rebuild it from disk
			m.boards[kind] = m.loadBoard(kind)
			continue
		}
		m.refreshBoard(kind)
	}
}

// handleMoveResolved applies the outcome of a drop or direct move
func (m Model) handleMoveResolved(msg moveResolvedMsg) (tea.Model, tea.Cmd) {
	bs := m.boards[msg.kind]
	if bs == nil {
		return m, nil
	}

	outcome := msg.outcome
	if outcome.Err != nil {
		switch {
		case errors.Is(outcome.Err, models.ErrMoveInFlight):
			m.notify(notifications.Warning, "That item is still moving, try again")
		case errors.Is(outcome.Err, board.ErrUnknownTargetColumn):
			m.notify(notifications.Error, "No column there to drop on")
		default:
			m.notify(notifications.Error, "Move failed, item put back")
		}
		bs.regroup()
		return m, nil
	}

	bs.regroup()

	if outcome.Moved {
		// Selection follows the moved item
		for colIdx, group := range bs.groups {
			for itemIdx, item := range group.Items {
				if item.ID == outcome.ItemID {
					bs.selectedColumn = colIdx
					bs.selectedItem = itemIdx
				}
			}
		}
	}
	return m, nil
}

// handleDismissMode closes the help or item view overlay
func (m Model) handleDismissMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.CancelDrag, m.config.KeyMappings.Quit, m.config.KeyMappings.ShowHelp, m.config.KeyMappings.ViewItem:
		m.mode = modeNormal
		return m, tea.ClearScreen
	}

	// Remaining keys scroll a long item description
	if m.mode == modeView {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleConfirmMode resolves a pending deletion
func (m Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirm == confirmItem {
			m.deleteConfirmedItem()
		} else {
			m.deleteConfirmedColumn()
		}
		m.mode = modeNormal
		return m, tea.ClearScreen
	case "n", "N", m.config.KeyMappings.CancelDrag:
		m.mode = modeNormal
		return m, tea.ClearScreen
	}
	return m, nil
}
