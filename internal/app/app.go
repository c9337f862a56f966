package app

import (
	"fmt"

	"github.com/quadro-app/quadro/internal/boardcfg"
	"github.com/quadro-app/quadro/internal/database"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
	columnservice "github.com/quadro-app/quadro/internal/services/column"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher

	// Service layer (business logic)
	ItemService itemservice.Service

	// One column service per board, each backed by its own config file
	columnServices map[models.BoardKind]columnservice.Service
}

// New creates a new App with all services initialized.
// boardDir is where the per-board column configuration files live; the
// column stores load their defaults on first use, so New never fails on
// a missing or corrupt config file.
func New(repo database.DataStore, boardDir string, eventClient events.EventPublisher) *App {
	columnServices := make(map[models.BoardKind]columnservice.Service, len(models.AllBoardKinds))
	fileStore := boardcfg.NewFileStore(boardDir)
	for _, kind := range models.AllBoardKinds {
		store := boardcfg.NewStore(kind, fileStore)
		store.Load()
		columnServices[kind] = columnservice.NewService(store, eventClient)
	}

	return &App{
		repo:           repo,
		eventClient:    eventClient,
		ItemService:    itemservice.NewService(repo, eventClient),
		columnServices: columnServices,
	}
}

// Columns returns the column service for a board
func (a *App) Columns(kind models.BoardKind) (columnservice.Service, error) {
	svc, ok := a.columnServices[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownBoard, kind)
	}
	return svc, nil
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the event publisher, which may be nil when no daemon is
// reachable
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.eventClient != nil {
		return a.eventClient.Close()
	}
	return nil
}
