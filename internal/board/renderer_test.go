package board

import (
	"testing"

	"github.com/quadro-app/quadro/internal/boardcfg"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/statusmap"
)

func activityFixture(t *testing.T) ([]models.Column, *statusmap.Mapper) {
	t.Helper()
	columns := boardcfg.DefaultColumns(models.BoardActivities)
	return columns, statusmap.New(models.BoardActivities, columns)
}

func item(id, status string) *models.Item {
	return &models.Item{ID: id, Kind: models.BoardActivities, Title: "item " + id, Status: status}
}

func TestRender_GroupsByMappedColumn(t *testing.T) {
	columns, mapper := activityFixture(t)
	items := []*models.Item{
		item("a", "pending"),
		item("b", "in_progress"),
		item("c", "completed"),
		item("d", "open"), // synonym of pending
	}

	groups := Render(columns, mapper, items)
	if len(groups) != 3 {
		t.Fatalf("expected 3 column groups, got %d", len(groups))
	}

	if len(groups[0].Items) != 2 {
		t.Errorf("todo column should hold 2 items, got %d", len(groups[0].Items))
	}
	if len(groups[1].Items) != 1 || groups[1].Items[0].ID != "b" {
		t.Errorf("doing column wrong: %+v", groups[1].Items)
	}
	if len(groups[2].Items) != 1 || groups[2].Items[0].ID != "c" {
		t.Errorf("done column wrong: %+v", groups[2].Items)
	}
}

func TestRender_EveryMappedItemInExactlyOneColumn(t *testing.T) {
	columns, mapper := activityFixture(t)
	items := []*models.Item{
		item("a", "todo"),
		item("b", "doing"),
		item("c", "done"),
		item("d", "pending"),
		item("e", "archived"), // unmapped: hidden
	}

	groups := Render(columns, mapper, items)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, it := range g.Items {
			seen[it.ID]++
		}
	}

	for _, id := range []string{"a", "b", "c", "d"} {
		if seen[id] != 1 {
			t.Errorf("item %s appears in %d columns, want 1", id, seen[id])
		}
	}
	if seen["e"] != 0 {
		t.Errorf("unmapped item should render in no column, appeared %d times", seen["e"])
	}
}

func TestRender_PreservesArrivalOrder(t *testing.T) {
	columns, mapper := activityFixture(t)
	items := []*models.Item{
		item("first", "pending"),
		item("second", "todo"),
		item("third", "open"),
	}

	groups := Render(columns, mapper, items)
	got := groups[0].Items
	if len(got) != 3 || got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Errorf("arrival order not preserved: %+v", got)
	}
}

func TestRender_DoesNotMutateItems(t *testing.T) {
	columns, mapper := activityFixture(t)
	items := []*models.Item{item("a", "pending")}

	Render(columns, mapper, items)

	if items[0].Status != "pending" {
		t.Errorf("renderer mutated item status to %q", items[0].Status)
	}
}

func TestRender_EmptyCollection(t *testing.T) {
	columns, mapper := activityFixture(t)

	groups := Render(columns, mapper, nil)
	if len(groups) != len(columns) {
		t.Fatalf("expected %d empty groups, got %d", len(columns), len(groups))
	}
	for _, g := range groups {
		if len(g.Items) != 0 {
			t.Errorf("column %s should be empty", g.Column.ID)
		}
	}
}
