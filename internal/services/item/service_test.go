package item

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/quadro-app/quadro/internal/database"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
)

// fakePublisher records published events without a daemon
type fakePublisher struct {
	mu   sync.Mutex
	sent []events.Event
}

func (f *fakePublisher) Connect(ctx context.Context) error { return nil }
func (f *fakePublisher) SendEvent(event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, event)
	return nil
}
func (f *fakePublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}
func (f *fakePublisher) Subscribe(kind string) error { return nil }
func (f *fakePublisher) Close() error                { return nil }

func (f *fakePublisher) kinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, evt := range f.sent {
		out = append(out, evt.Kind)
	}
	return out
}

func setupService(t *testing.T) (Service, *fakePublisher) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	publisher := &fakePublisher{}
	return NewService(database.NewRepository(db), publisher), publisher
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateItemRequest
		want error
	}{
		{"empty title", CreateItemRequest{Kind: models.BoardActivities}, ErrEmptyTitle},
		{"unknown board", CreateItemRequest{Kind: "sprints", Title: "x"}, ErrInvalidBoardKind},
		{"bad priority", CreateItemRequest{Kind: models.BoardActivities, Title: "x", Priority: "urgent"}, ErrInvalidPriority},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateItem(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Errorf("CreateItem error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateItemDefaultsStatusPerBoard(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	activity, err := svc.CreateItem(ctx, CreateItemRequest{Kind: models.BoardActivities, Title: "call"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if activity.Status != models.StatusPending {
		t.Errorf("activity status = %q, want %q", activity.Status, models.StatusPending)
	}

	project, err := svc.CreateItem(ctx, CreateItemRequest{Kind: models.BoardProjects, Title: "remodel"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if project.Status != models.StatusPlanning {
		t.Errorf("project status = %q, want %q", project.Status, models.StatusPlanning)
	}
}

func TestMoveItemPublishesBoardEvent(t *testing.T) {
	svc, publisher := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, CreateItemRequest{Kind: models.BoardActivities, Title: "call"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	moved, err := svc.MoveItem(ctx, created.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if moved.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", moved.Status)
	}

	kinds := publisher.kinds()
	if len(kinds) != 2 || kinds[1] != "activities" {
		t.Errorf("published kinds = %v, want create+move for activities", kinds)
	}
}

func TestMoveItemUnknownID(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.MoveItem(context.Background(), "ghost", models.StatusCompleted); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestServiceWorksWithoutEventClient(t *testing.T) {
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	// Nil publisher: writes must still succeed
	svc := NewService(database.NewRepository(db), nil)

	created, err := svc.CreateItem(context.Background(), CreateItemRequest{Kind: models.BoardActivities, Title: "offline"})
	if err != nil {
		t.Fatalf("CreateItem without event client failed: %v", err)
	}
	if _, err := svc.MoveItem(context.Background(), created.ID, models.StatusInProgress); err != nil {
		t.Fatalf("MoveItem without event client failed: %v", err)
	}
}

func TestDeleteItemPublishesForOwningBoard(t *testing.T) {
	svc, publisher := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, CreateItemRequest{Kind: models.BoardProjects, Title: "remodel"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := svc.DeleteItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}

	kinds := publisher.kinds()
	if len(kinds) != 2 || kinds[1] != "projects" {
		t.Errorf("published kinds = %v, want delete event for projects", kinds)
	}
}
