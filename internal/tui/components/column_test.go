package components

import (
	"strings"
	"testing"

	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/config/colors"
	"github.com/quadro-app/quadro/internal/models"
)

func initTestStyles(t *testing.T) {
	t.Helper()
	InitStyles(*colors.Default())
}

func testGroup(name string, items ...*models.ItemSummary) board.ColumnItems {
	return board.ColumnItems{
		Column: models.Column{ID: "col", Name: name, Color: "orange", Status: "doing"},
		Items:  items,
	}
}

func TestRenderColumn_HeaderShowsNameAndCount(t *testing.T) {
	initTestStyles(t)

	out := RenderColumn(testGroup("EM PROGRESSO",
		&models.ItemSummary{ID: "1", Title: "One"},
		&models.ItemSummary{ID: "2", Title: "Two"},
	), ColumnProps{})

	if !strings.Contains(out, "EM PROGRESSO (2)") {
		t.Errorf("header missing name and count:\n%s", out)
	}
}

func TestRenderColumn_EmptyState(t *testing.T) {
	initTestStyles(t)

	out := RenderColumn(testGroup("PENDENTE"), ColumnProps{})
	if !strings.Contains(out, "No items") {
		t.Errorf("empty column missing placeholder:\n%s", out)
	}
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	initTestStyles(t)

	items := make([]*models.ItemSummary, 10)
	for i := range items {
		items[i] = &models.ItemSummary{ID: string(rune('a' + i)), Title: "Card"}
	}

	// A short column scrolled past the top shows both indicators
	out := RenderColumn(testGroup("PENDENTE", items...), ColumnProps{
		Height:       20,
		ScrollOffset: 2,
	})
	if !strings.Contains(out, "▲") {
		t.Error("scrolled column missing top indicator")
	}
	if !strings.Contains(out, "▼") {
		t.Error("overflowing column missing bottom indicator")
	}
}

func TestRenderCard_TruncatesLongTitle(t *testing.T) {
	initTestStyles(t)

	long := strings.Repeat("x", 60)
	out := RenderCard(&models.ItemSummary{ID: "1", Title: long}, false, false)

	if strings.Contains(out, long) {
		t.Error("long title rendered untruncated")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated title missing ellipsis")
	}
}

func TestRenderBoardTabs_MarksActiveBoard(t *testing.T) {
	initTestStyles(t)

	out := RenderBoardTabs(models.BoardProjects, 80)
	for _, label := range []string{"Atividades", "Projetos"} {
		if !strings.Contains(out, label) {
			t.Errorf("tabs missing %q", label)
		}
	}
}

func TestRenderStatusBar_OfflineFlag(t *testing.T) {
	initTestStyles(t)

	out := RenderStatusBar(StatusBarProps{Width: 80, Board: "Atividades", Connected: false})
	if !strings.Contains(out, "(offline)") {
		t.Error("status bar missing offline marker")
	}

	out = RenderStatusBar(StatusBarProps{Width: 80, Board: "Atividades", Connected: true})
	if strings.Contains(out, "(offline)") {
		t.Error("connected status bar should not show offline marker")
	}
}

func TestRenderStatusBar_DraggingHint(t *testing.T) {
	initTestStyles(t)

	out := RenderStatusBar(StatusBarProps{Width: 80, Board: "Atividades", Dragging: true, Connected: true})
	if !strings.Contains(out, "drop") {
		t.Errorf("dragging status bar missing gesture hint:\n%s", out)
	}
}
