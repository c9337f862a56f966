package board

import (
	"context"

	"github.com/quadro-app/quadro/internal/models"
)

// Result is the normalized outcome of a persistence call.
// Exactly one of Data and Err is populated; a bridge never panics and never
// lets a transport error escape as anything but Err.
type Result struct {
	Data *models.Item
	Err  error
}

// Bridge translates a local status mutation into a request against the
// durable item store. Implementations must be safe to retry: repeating an
// identical update is idempotent.
type Bridge interface {
	Persist(ctx context.Context, itemID string, fields map[string]string) Result
}
