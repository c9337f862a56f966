package column

import (
	"errors"
	"testing"

	"github.com/quadro-app/quadro/internal/boardcfg"
	"github.com/quadro-app/quadro/internal/models"
)

func setupService(t *testing.T) Service {
	t.Helper()
	store := boardcfg.NewStore(models.BoardActivities, boardcfg.NewFileStore(t.TempDir()))
	store.Load()
	return NewService(store, nil)
}

func TestAddColumnUsesDefaults(t *testing.T) {
	svc := setupService(t)

	added := svc.AddColumn()

	if added.Name != models.DefaultColumnName {
		t.Errorf("Name = %q, want %q", added.Name, models.DefaultColumnName)
	}
	if added.Color != models.DefaultColumnColor {
		t.Errorf("Color = %q, want %q", added.Color, models.DefaultColumnColor)
	}
	if added.Status != added.ID {
		t.Errorf("new column status %q should equal its id %q", added.Status, added.ID)
	}

	columns := svc.Columns()
	if columns[len(columns)-1].ID != added.ID {
		t.Error("new column should append at the end")
	}
}

func TestRenameColumnValidation(t *testing.T) {
	svc := setupService(t)
	columns := svc.Columns()

	if err := svc.RenameColumn(columns[0].ID, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	if err := svc.RenameColumn(columns[0].ID, "EM REVISÃO"); err != nil {
		t.Fatalf("RenameColumn failed: %v", err)
	}
	if got := svc.Columns()[0].Name; got != "EM REVISÃO" {
		t.Errorf("Name = %q after rename", got)
	}
}

func TestSetColumnColorRejectsUnknownNames(t *testing.T) {
	svc := setupService(t)
	columns := svc.Columns()

	if err := svc.SetColumnColor(columns[0].ID, "magenta"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
	if err := svc.SetColumnColor(columns[0].ID, "purple"); err != nil {
		t.Errorf("palette name rejected: %v", err)
	}
	if err := svc.SetColumnColor(columns[0].ID, "#8B7355"); err != nil {
		t.Errorf("hex value rejected: %v", err)
	}
}

func TestRemoveColumnKeepsLastOne(t *testing.T) {
	svc := setupService(t)

	columns := svc.Columns()
	for _, col := range columns[1:] {
		if err := svc.RemoveColumn(col.ID); err != nil {
			t.Fatalf("RemoveColumn failed: %v", err)
		}
	}

	remaining := svc.Columns()
	if len(remaining) != 1 {
		t.Fatalf("columns left = %d, want 1", len(remaining))
	}
	if err := svc.RemoveColumn(remaining[0].ID); !errors.Is(err, models.ErrLastColumn) {
		t.Errorf("expected ErrLastColumn, got %v", err)
	}
}

func TestMapperTracksColumnChanges(t *testing.T) {
	svc := setupService(t)

	added := svc.AddColumn()
	if err := svc.SetColumnStatus(added.ID, "review"); err != nil {
		t.Fatalf("SetColumnStatus failed: %v", err)
	}

	mapper := svc.Mapper()
	columnID, ok := mapper.ColumnForStatus("review")
	if !ok || columnID != added.ID {
		t.Errorf("ColumnForStatus(review) = %q, %v", columnID, ok)
	}
}

func TestReorderColumn(t *testing.T) {
	svc := setupService(t)

	before := svc.Columns()
	if err := svc.ReorderColumn(0, len(before)-1); err != nil {
		t.Fatalf("ReorderColumn failed: %v", err)
	}

	after := svc.Columns()
	if after[len(after)-1].ID != before[0].ID {
		t.Errorf("first column should now be last: %+v", after)
	}
}
