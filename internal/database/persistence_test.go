package database

import (
	"context"
	"testing"

	"github.com/quadro-app/quadro/internal/models"
)

// TestItemsSurviveRestart verifies that items written through the repository
// are still there after the database is closed and reopened.
func TestItemsSurviveRestart(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	ctx := context.Background()

	repo := NewRepository(db)
	created, err := repo.CreateItem(ctx, &models.Item{
		Kind:   models.BoardProjects,
		Title:  "Office remodel",
		Status: "planning",
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	db = closeAndReopenDB(t, db, dbPath)
	defer db.Close()

	repo = NewRepository(db)
	got, err := repo.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem after reopen failed: %v", err)
	}
	if got.Title != "Office remodel" || got.Status != "planning" {
		t.Errorf("reopened item = %+v", got)
	}
}
