package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
	columnservice "github.com/quadro-app/quadro/internal/services/column"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
	"github.com/quadro-app/quadro/internal/tui/components"
	"github.com/quadro-app/quadro/internal/tui/huhforms"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// mode is the current interaction mode of the board
type mode int

const (
	modeNormal mode = iota
	modeHelp
	modeView
	modeForm
	modeConfirmDelete
)

// formPurpose says what a completed form should do
type formPurpose int

const (
	formCreateItem formPurpose = iota
	formEditItem
	formEditColumn
)

// confirmTarget says what a deletion confirmation applies to
type confirmTarget int

const (
	confirmItem confirmTarget = iota
	confirmColumn
)

// notification is a transient banner shown above the board
type notification struct {
	severity notifications.Severity
	message  string
}

// boardState holds everything one board needs to render and mutate.
// One exists per board kind; switching boards swaps the active pointer
// so selection and scroll survive a round trip.
type boardState struct {
	columns        columnservice.Service
	collection     *board.Collection
	coordinator    *board.Coordinator
	groups         []board.ColumnItems
	selectedColumn int
	selectedItem   int
	viewportOffset int
	scroll         map[string]int // per-column scroll offset, keyed by column id
}

// Model represents the application state for the TUI
type Model struct {
	app    *app.App
	config *config.Config
	ctx    context.Context

	kind   models.BoardKind
	boards map[models.BoardKind]*boardState

	width  int
	height int
	mode   mode

	// Form state
	form            *huh.Form
	formPurpose     formPurpose
	itemForm        *huhforms.ItemFormValues
	columnForm      *huhforms.ColumnFormValues
	editingItemID   string
	editingColumnID string

	// Deletion confirmation state
	confirm         confirmTarget
	confirmItemID   string
	confirmColumnID string

	// Scrollable item detail overlay
	detail viewport.Model

	notification *notification

	eventCh <-chan events.Event
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(application *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	ctx := context.Background()

	m := Model{
		app:    application,
		config: cfg,
		ctx:    ctx,
		kind:   models.BoardActivities,
		boards: make(map[models.BoardKind]*boardState),
	}

	for _, kind := range models.AllBoardKinds {
		m.boards[kind] = m.loadBoard(kind)
	}

	// Live updates are optional; without a daemon the board still works
	if publisher := application.Events(); publisher != nil {
		if err := publisher.Subscribe(""); err != nil {
			slog.Warn("Error subscribing to board events", "error", err)
		}
		ch, err := publisher.Listen(ctx)
		if err != nil {
			slog.Warn("Error listening for board events", "error", err)
		} else {
			m.eventCh = ch
		}
	}

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.eventCh)
}

// loadBoard builds the full state for one board: columns from the config
// store, items from the database, and a drag coordinator wired over both.
func (m Model) loadBoard(kind models.BoardKind) *boardState {
	columnService, err := m.app.Columns(kind)
	if err != nil {
		slog.Error("Error resolving board", "kind", kind, "error", err)
		return &boardState{scroll: make(map[string]int)}
	}

	items, err := m.app.ItemService.GetBoardItems(m.ctx, kind)
	if err != nil {
		slog.Error("Error loading items", "kind", kind, "error", err)
		items = nil
	}

	collection := board.NewCollection(items)
	bridge := itemservice.NewStoreBridge(m.app.ItemService)
	coordinator := board.NewCoordinator(collection, bridge, columnService.Mapper())

	bs := &boardState{
		columns:     columnService,
		collection:  collection,
		coordinator: coordinator,
		scroll:      make(map[string]int),
	}
	bs.regroup()
	return bs
}

// regroup recomputes the rendered column grouping from current state
func (bs *boardState) regroup() {
	if bs.columns == nil {
		return
	}
	bs.groups = board.Render(bs.columns.Columns(), bs.columns.Mapper(), bs.collection.Items())
	bs.clampSelection()
}

// clampSelection keeps the cursor inside the grouped board
func (bs *boardState) clampSelection() {
	if len(bs.groups) == 0 {
		bs.selectedColumn = 0
		bs.selectedItem = 0
		return
	}
	if bs.selectedColumn >= len(bs.groups) {
		bs.selectedColumn = len(bs.groups) - 1
	}
	items := bs.groups[bs.selectedColumn].Items
	if bs.selectedItem >= len(items) {
		bs.selectedItem = max(len(items)-1, 0)
	}
}

// current returns the active board's state
func (m Model) current() *boardState {
	return m.boards[m.kind]
}

// currentItem returns the selected item summary, or nil
func (m Model) currentItem() *models.ItemSummary {
	bs := m.current()
	if bs == nil || len(bs.groups) == 0 {
		return nil
	}
	items := bs.groups[bs.selectedColumn].Items
	if len(items) == 0 || bs.selectedItem >= len(items) {
		return nil
	}
	return items[bs.selectedItem]
}

// currentColumn returns the selected column, or nil
func (m Model) currentColumn() *models.Column {
	bs := m.current()
	if bs == nil || len(bs.groups) == 0 || bs.selectedColumn >= len(bs.groups) {
		return nil
	}
	col := bs.groups[bs.selectedColumn].Column
	return &col
}

// refreshBoard reloads items and columns for one board from their stores
func (m *Model) refreshBoard(kind models.BoardKind) {
	bs := m.boards[kind]
	if bs == nil || bs.columns == nil {
		return
	}

	items, err := m.app.ItemService.GetBoardItems(m.ctx, kind)
	if err != nil {
		slog.Error("Error reloading items", "kind", kind, "error", err)
		return
	}
	bs.collection.Replace(items)
	bs.coordinator.SetMapper(bs.columns.Mapper())
	bs.regroup()
}

// notify replaces the transient banner
func (m *Model) notify(severity notifications.Severity, message string) {
	m.notification = &notification{severity: severity, message: message}
}
