package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/models"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
	clitest "github.com/quadro-app/quadro/internal/testutil/cli"
	"github.com/quadro-app/quadro/internal/tui/huhforms"
	"github.com/quadro-app/quadro/internal/tui/notifications"
)

// Model must satisfy the bubbletea program contract
var _ tea.Model = Model{}

// setupTestModel builds a model over a fresh file-backed app
func setupTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()

	testApp := clitest.SetupCLITest(t)
	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}

	m := InitialModel(testApp, cfg)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return newModel.(Model), testApp
}

// press sends a single character key and returns the updated model
func press(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()

	key := tea.Key{Text: text}
	if len(text) == 1 {
		key.Code = rune(text[0])
	}
	newModel, cmd := m.Update(tea.KeyPressMsg(key))
	return newModel.(Model), cmd
}

func createTestItem(t *testing.T, testApp *app.App, title string) *models.Item {
	t.Helper()

	item, err := testApp.ItemService.CreateItem(context.Background(), itemservice.CreateItemRequest{
		Kind:  models.BoardActivities,
		Title: title,
	})
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	return item
}

func TestInitialModel_LoadsDefaultColumns(t *testing.T) {
	m, _ := setupTestModel(t)

	activities := m.boards[models.BoardActivities]
	if activities == nil {
		t.Fatal("activities board not loaded")
	}
	if len(activities.groups) != 3 {
		t.Fatalf("activities groups = %d, want 3", len(activities.groups))
	}
	if activities.groups[0].Column.Name != "PENDENTE" {
		t.Errorf("first activities column = %q, want PENDENTE", activities.groups[0].Column.Name)
	}

	projects := m.boards[models.BoardProjects]
	if projects == nil {
		t.Fatal("projects board not loaded")
	}
	if len(projects.groups) != 5 {
		t.Fatalf("projects groups = %d, want 5", len(projects.groups))
	}
}

func TestNavigation_Columns(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, "l")
	if m.current().selectedColumn != 1 {
		t.Errorf("selectedColumn after l = %d, want 1", m.current().selectedColumn)
	}

	m, _ = press(t, m, "h")
	if m.current().selectedColumn != 0 {
		t.Errorf("selectedColumn after h = %d, want 0", m.current().selectedColumn)
	}

	// Left edge stays put
	m, _ = press(t, m, "h")
	if m.current().selectedColumn != 0 {
		t.Errorf("selectedColumn at left edge = %d, want 0", m.current().selectedColumn)
	}
}

func TestNavigation_Items(t *testing.T) {
	m, testApp := setupTestModel(t)
	createTestItem(t, testApp, "First")
	createTestItem(t, testApp, "Second")
	m.refreshBoard(models.BoardActivities)

	m, _ = press(t, m, "j")
	if m.current().selectedItem != 1 {
		t.Errorf("selectedItem after j = %d, want 1", m.current().selectedItem)
	}

	// Bottom edge stays put
	m, _ = press(t, m, "j")
	if m.current().selectedItem != 1 {
		t.Errorf("selectedItem at bottom = %d, want 1", m.current().selectedItem)
	}

	m, _ = press(t, m, "k")
	if m.current().selectedItem != 0 {
		t.Errorf("selectedItem after k = %d, want 0", m.current().selectedItem)
	}
}

func TestSwitchBoard_RoundTrip(t *testing.T) {
	m, _ := setupTestModel(t)

	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	m = newModel.(Model)
	if m.kind != models.BoardProjects {
		t.Fatalf("kind after tab = %q, want projects", m.kind)
	}

	// Selection on the other board survives the round trip
	m, _ = press(t, m, "l")
	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	m = newModel.(Model)

	if m.kind != models.BoardProjects {
		t.Fatalf("kind after double tab = %q, want projects", m.kind)
	}
	if m.current().selectedColumn != 1 {
		t.Errorf("projects selection lost across switch, got %d", m.current().selectedColumn)
	}
}

func TestGrabDrop_MovesItemToNextColumn(t *testing.T) {
	m, _ := setupTestModel(t)
	createTestItem(t, m.app, "Movable")
	m.refreshBoard(models.BoardActivities)

	m, _ = press(t, m, "g")
	if m.current().coordinator.State() != board.Dragging {
		t.Fatal("expected Dragging after grab")
	}

	m, _ = press(t, m, "l")
	if m.current().selectedColumn != 1 {
		t.Fatalf("drag-over column = %d, want 1", m.current().selectedColumn)
	}

	newModel, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = newModel.(Model)
	if cmd == nil {
		t.Fatal("drop should return a resolve command")
	}

	msg := cmd()
	resolved, ok := msg.(moveResolvedMsg)
	if !ok {
		t.Fatalf("drop command returned %T, want moveResolvedMsg", msg)
	}
	if resolved.outcome.Err != nil {
		t.Fatalf("drop failed: %v", resolved.outcome.Err)
	}
	if resolved.outcome.Status != "doing" {
		t.Errorf("moved status = %q, want doing", resolved.outcome.Status)
	}

	newModel, _ = m.Update(resolved)
	m = newModel.(Model)

	// Selection follows the moved card
	if m.current().selectedColumn != 1 {
		t.Errorf("selection after move = column %d, want 1", m.current().selectedColumn)
	}
	if len(m.current().groups[1].Items) != 1 {
		t.Errorf("target column items = %d, want 1", len(m.current().groups[1].Items))
	}
}

func TestGrab_CancelPutsItemBack(t *testing.T) {
	m, _ := setupTestModel(t)
	createTestItem(t, m.app, "Stays put")
	m.refreshBoard(models.BoardActivities)

	m, _ = press(t, m, "g")
	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = newModel.(Model)

	if m.current().coordinator.State() != board.Idle {
		t.Error("expected Idle after cancel")
	}
	if len(m.current().groups[0].Items) != 1 {
		t.Error("item left its column on a cancelled drag")
	}
}

func TestMoveResolved_ErrorShowsNotification(t *testing.T) {
	m, _ := setupTestModel(t)

	newModel, _ := m.Update(moveResolvedMsg{
		kind:    models.BoardActivities,
		outcome: board.MoveOutcome{Err: models.ErrMoveInFlight},
	})
	m = newModel.(Model)

	if m.notification == nil {
		t.Fatal("expected a notification after a failed move")
	}
}

func TestHelp_OpenAndDismiss(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, "?")
	if m.mode != modeHelp {
		t.Fatalf("mode after ? = %v, want modeHelp", m.mode)
	}

	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = newModel.(Model)
	if m.mode != modeNormal {
		t.Errorf("mode after esc = %v, want modeNormal", m.mode)
	}
}

func TestDeleteItem_ConfirmAndDecline(t *testing.T) {
	m, _ := setupTestModel(t)
	createTestItem(t, m.app, "Doomed")
	m.refreshBoard(models.BoardActivities)

	// Declining keeps the item
	m, _ = press(t, m, "d")
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode after d = %v, want modeConfirmDelete", m.mode)
	}
	m, _ = press(t, m, "n")
	if m.current().collection.Len() != 1 {
		t.Fatal("item deleted after declining")
	}

	// Confirming removes it
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "y")
	if m.current().collection.Len() != 0 {
		t.Errorf("collection len after delete = %d, want 0", m.current().collection.Len())
	}
}

func TestDeleteColumn_LastColumnProtected(t *testing.T) {
	m, _ := setupTestModel(t)
	bs := m.current()

	// Trim the board down to one column
	for len(bs.groups) > 1 {
		id := bs.groups[len(bs.groups)-1].Column.ID
		if err := bs.columns.RemoveColumn(id); err != nil {
			t.Fatalf("Failed to remove column: %v", err)
		}
		bs.regroup()
	}

	m, _ = press(t, m, "X")
	m, _ = press(t, m, "y")

	if len(m.current().groups) != 1 {
		t.Fatalf("groups after protected delete = %d, want 1", len(m.current().groups))
	}
	if m.notification == nil {
		t.Error("expected a notification when the last column is protected")
	}
}

func TestMoveColumn_ReordersAndFollows(t *testing.T) {
	m, _ := setupTestModel(t)

	first := m.current().groups[0].Column.ID
	m, _ = press(t, m, ">")

	if m.current().selectedColumn != 1 {
		t.Errorf("selection after > = %d, want 1", m.current().selectedColumn)
	}
	if m.current().groups[1].Column.ID != first {
		t.Errorf("column %s did not move to index 1", first)
	}
}

func TestAddItem_OpensForm(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, "a")
	if m.mode != modeForm {
		t.Fatalf("mode after a = %v, want modeForm", m.mode)
	}
	if m.form == nil {
		t.Fatal("expected an active form")
	}
	if m.formPurpose != formCreateItem {
		t.Errorf("formPurpose = %v, want formCreateItem", m.formPurpose)
	}

	// Esc abandons the form
	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = newModel.(Model)
	if m.mode != modeNormal || m.form != nil {
		t.Error("esc should abandon the form and return to normal mode")
	}
}

func TestView_RendersBoardChrome(t *testing.T) {
	m, testApp := setupTestModel(t)
	createTestItem(t, testApp, "Visible card")
	m.refreshBoard(models.BoardActivities)

	view := m.View()
	for _, want := range []string{"Atividades", "PENDENTE", "Visible card", "Quadro"} {
		if !strings.Contains(view.Content, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSubmitCreateItem_LandsInSelectedColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	// Cursor on the second column, so the new card should take its status
	m, _ = press(t, m, "l")
	m.itemForm = &huhforms.ItemFormValues{Title: "Born in doing"}
	m.submitCreateItem()

	if m.notification != nil {
		t.Fatalf("unexpected notification: %s", m.notification.message)
	}
	items := m.current().groups[1].Items
	if len(items) != 1 || items[0].Title != "Born in doing" {
		t.Fatalf("second column items = %v, want the new card", items)
	}
	if items[0].Status != "doing" {
		t.Errorf("new item status = %q, want doing", items[0].Status)
	}
}

func TestDeleteColumn_UnknownColumnShowsError(t *testing.T) {
	m, _ := setupTestModel(t)
	before := len(m.current().groups)

	m.confirmColumnID = "missing"
	m.deleteConfirmedColumn()

	if m.notification == nil {
		t.Fatal("expected a notification for an unknown column")
	}
	if m.notification.severity != notifications.Error {
		t.Errorf("severity = %v, want Error", m.notification.severity)
	}
	if strings.Contains(m.notification.message, "at least one column") {
		t.Error("unknown column reported as last-column protection")
	}
	if len(m.current().groups) != before {
		t.Errorf("groups changed from %d to %d", before, len(m.current().groups))
	}
}
