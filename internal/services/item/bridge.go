package item

import (
	"context"

	"github.com/quadro-app/quadro/internal/board"
)

// StoreBridge adapts the item service to the board engine's persistence
// bridge. The drag coordinator hands it the field set of a drop; the bridge
// turns that into a committed status change and reports a normalized Result,
// never a panic and never a partial success.
type StoreBridge struct {
	service Service
}

// NewStoreBridge creates a bridge over an item service
func NewStoreBridge(service Service) *StoreBridge {
	return &StoreBridge{service: service}
}

var _ board.Bridge = (*StoreBridge)(nil)

// Persist commits the status field of a move. Unknown or missing fields are
// reported as an error Result rather than ignored, so the coordinator rolls
// back its optimistic update.
func (b *StoreBridge) Persist(ctx context.Context, itemID string, fields map[string]string) board.Result {
	status, ok := fields["status"]
	if !ok {
		return board.Result{Err: ErrInvalidStatus}
	}

	moved, err := b.service.MoveItem(ctx, itemID, status)
	if err != nil {
		return board.Result{Err: err}
	}
	return board.Result{Data: moved}
}
