package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
)

// boardEventMsg carries a daemon event into the update loop
type boardEventMsg struct {
	event events.Event
}

// moveResolvedMsg reports the outcome of an asynchronous item move
type moveResolvedMsg struct {
	kind    models.BoardKind
	outcome board.MoveOutcome
}

// waitForEvent blocks on the daemon event channel and turns the next
// event into a message. The update loop re-issues it after each event.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return boardEventMsg{event: event}
	}
}

// dropCmd resolves a drop gesture off the update loop so a slow persist
// never freezes the board
func dropCmd(ctx context.Context, kind models.BoardKind, coordinator *board.Coordinator) tea.Cmd {
	return func() tea.Msg {
		return moveResolvedMsg{kind: kind, outcome: coordinator.OnDrop(ctx)}
	}
}

// moveCmd moves an item straight to a target column without a gesture
func moveCmd(ctx context.Context, kind models.BoardKind, coordinator *board.Coordinator, itemID, targetColumnID string) tea.Cmd {
	return func() tea.Msg {
		return moveResolvedMsg{kind: kind, outcome: coordinator.MoveItem(ctx, itemID, targetColumnID)}
	}
}
