package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quadro-app/quadro/internal/models"
)

func TestCreateItemFillsDefaults(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	item, err := repo.CreateItem(context.Background(), &models.Item{
		Kind:   models.BoardActivities,
		Title:  "Call supplier",
		Status: "pending",
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if item.ID == "" {
		t.Error("CreateItem should assign an id")
	}
	if item.Priority != models.DefaultPriority {
		t.Errorf("Priority = %q, want default %q", item.Priority, models.DefaultPriority)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("CreateItem should return database timestamps")
	}
}

func TestGetItemsByKindSeparatesBoards(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	createTestItem(t, repo, "activity one", "pending")
	createTestItem(t, repo, "activity two", "completed")
	if _, err := repo.CreateItem(ctx, &models.Item{
		Kind:   models.BoardProjects,
		Title:  "project one",
		Status: "planning",
	}); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	activities, err := repo.GetItemsByKind(ctx, models.BoardActivities)
	if err != nil {
		t.Fatalf("GetItemsByKind failed: %v", err)
	}
	if len(activities) != 2 {
		t.Errorf("activities count = %d, want 2", len(activities))
	}

	projects, err := repo.GetItemsByKind(ctx, models.BoardProjects)
	if err != nil {
		t.Fatalf("GetItemsByKind failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "project one" {
		t.Errorf("unexpected projects: %+v", projects)
	}
}

func TestUpdateItemStatus(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	item := createTestItem(t, repo, "Review contract", "pending")

	updated, err := repo.UpdateItemStatus(ctx, item.ID, "completed")
	if err != nil {
		t.Fatalf("UpdateItemStatus failed: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("Status = %q, want completed", updated.Status)
	}

	// Unknown ids surface a not-found error
	if _, err := repo.UpdateItemStatus(ctx, "missing", "completed"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItemPartialEdit(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	item, err := repo.CreateItem(ctx, &models.Item{
		Kind:        models.BoardActivities,
		Title:       "Prepare proposal",
		Description: "draft v1",
		Status:      "pending",
		Owner:       "lucas",
		DueDate:     datePtr(due),
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	newTitle := "Prepare proposal v2"
	updated, err := repo.UpdateItem(ctx, item.ID, models.ItemUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("Title = %q, want %q", updated.Title, newTitle)
	}
	// Untouched fields survive a partial edit
	if updated.Description != "draft v1" || updated.Owner != "lucas" {
		t.Errorf("partial edit clobbered fields: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", updated.DueDate, due)
	}

	// ClearDueDate removes the due date
	cleared, err := repo.UpdateItem(ctx, item.ID, models.ItemUpdate{ClearDueDate: true})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("DueDate should be cleared, got %v", cleared.DueDate)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	item := createTestItem(t, repo, "obsolete", "pending")

	if err := repo.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := repo.GetItem(ctx, item.ID); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := repo.DeleteItem(ctx, item.ID); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("double delete should report ErrItemNotFound, got %v", err)
	}
}

func TestGetItemCountByStatus(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	createTestItem(t, repo, "one", "pending")
	createTestItem(t, repo, "two", "pending")
	createTestItem(t, repo, "three", "completed")

	count, err := repo.GetItemCountByStatus(ctx, models.BoardActivities, "pending")
	if err != nil {
		t.Fatalf("GetItemCountByStatus failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
