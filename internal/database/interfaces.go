package database

import (
	"context"

	"github.com/quadro-app/quadro/internal/models"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	GetItemsByKind(ctx context.Context, kind models.BoardKind) ([]*models.Item, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	GetItemCountByStatus(ctx context.Context, kind models.BoardKind, status string) (int, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (*models.Item, error)
	UpdateItemStatus(ctx context.Context, id, status string) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// DataStore defines the unified interface for all data operations needed by
// the TUI and CLI. Consumers can depend on the smaller interfaces for better
// testability and clearer dependencies.
type DataStore interface {
	ItemRepository
}
