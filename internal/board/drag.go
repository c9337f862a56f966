package board

import (
	"context"
	"sync"

	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/statusmap"
)

// DragState is the coordinator's gesture state
type DragState int

const (
	// Idle means no gesture is active
	Idle DragState = iota
	// Dragging means an item has been picked up and not yet dropped
	Dragging
)

// MoveOutcome reports what a drop or move did.
// Moved is false for clean no-ops (same column, cancelled gesture); Err is
// set only for real failures, after any optimistic update was rolled back.
type MoveOutcome struct {
	Moved    bool
	ItemID   string
	Status   string // status after the move resolved
	Previous string // status before the move
	Err      error
}

// Coordinator manages the lifecycle of one drag-and-drop gesture from
// pick-up to drop and turns the drop into a status mutation: resolve the
// target column to a canonical status, apply it optimistically, persist
// through the bridge, and roll back on failure.
//
// A per-item in-flight guard rejects a second move of an item whose
// previous move has not resolved, closing the race where two in-flight
// moves could complete out of order.
type Coordinator struct {
	collection *Collection
	bridge     Bridge

	mu           sync.Mutex
	mapper       *statusmap.Mapper
	state        DragState
	itemID       string
	sourceColumn string
	targetColumn string
	inflight     map[string]bool
}

// NewCoordinator creates a drag coordinator over a collection and bridge
func NewCoordinator(collection *Collection, bridge Bridge, mapper *statusmap.Mapper) *Coordinator {
	return &Coordinator{
		collection: collection,
		bridge:     bridge,
		mapper:     mapper,
		inflight:   make(map[string]bool),
	}
}

// SetMapper swaps the status mapper after a column configuration change
func (c *Coordinator) SetMapper(mapper *statusmap.Mapper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mapper = mapper
}

// State returns the current gesture state
func (c *Coordinator) State() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DraggedItem returns the id of the item being dragged, or ""
func (c *Coordinator) DraggedItem() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Dragging {
		return ""
	}
	return c.itemID
}

// TargetColumn returns the current drop target hint, or ""
func (c *Coordinator) TargetColumn() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Dragging {
		return ""
	}
	return c.targetColumn
}

// OnDragStart begins a gesture, capturing the item and its source column
func (c *Coordinator) OnDragStart(itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Dragging {
		return ErrDragInProgress
	}

	item, ok := c.collection.Get(itemID)
	if !ok {
		return models.ErrItemNotFound
	}

	source, _ := c.mapper.ColumnForStatus(item.Status)
	c.state = Dragging
	c.itemID = itemID
	c.sourceColumn = source
	c.targetColumn = source
	return nil
}

// OnDragOverColumn updates the target column hint. No mutation happens
// until the drop.
func (c *Coordinator) OnDragOverColumn(columnID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Dragging {
		return ErrNotDragging
	}
	c.targetColumn = columnID
	return nil
}

// Cancel discards the gesture with no side effects
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// OnDrop ends the gesture. When the target column differs from the source,
// or the item's current status is not yet the target's canonical status,
// the move is issued; otherwise the drop is a clean no-op.
func (c *Coordinator) OnDrop(ctx context.Context) MoveOutcome {
	c.mu.Lock()
	if c.state != Dragging {
		c.mu.Unlock()
		return MoveOutcome{Err: ErrNotDragging}
	}

	itemID := c.itemID
	source := c.sourceColumn
	target := c.targetColumn
	c.reset()
	c.mu.Unlock()

	if target == "" {
		// Dropped outside any valid target: cancel with no side effects
		return MoveOutcome{ItemID: itemID}
	}

	if target == source {
		if item, ok := c.collection.Get(itemID); ok {
			c.mu.Lock()
			canonical := c.mapper.StatusForColumn(target)
			c.mu.Unlock()
			if item.Status == canonical {
				return MoveOutcome{ItemID: itemID}
			}
		}
	}

	return c.MoveItem(ctx, itemID, target)
}

// MoveItem moves an item to a target column: the column is resolved to its
// canonical domain status, the collection is updated optimistically, and
// the bridge persists the change. On bridge failure the optimistic update
// is rolled back and the error is returned in the outcome; on success the
// optimistic state remains the source of truth.
func (c *Coordinator) MoveItem(ctx context.Context, itemID, targetColumnID string) MoveOutcome {
	c.mu.Lock()
	status := c.mapper.StatusForColumn(targetColumnID)
	if status == "" {
		c.mu.Unlock()
		return MoveOutcome{ItemID: itemID, Err: ErrUnknownTargetColumn}
	}
	if c.inflight[itemID] {
		c.mu.Unlock()
		return MoveOutcome{ItemID: itemID, Err: models.ErrMoveInFlight}
	}
	c.inflight[itemID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, itemID)
		c.mu.Unlock()
	}()

	previous, err := c.collection.SetStatus(itemID, status)
	if err != nil {
		return MoveOutcome{ItemID: itemID, Err: err}
	}

	result := c.bridge.Persist(ctx, itemID, map[string]string{"status": status})
	if result.Err != nil {
		// Roll back the optimistic update; the item reverts to its
		// last-known-good column
		if _, rbErr := c.collection.SetStatus(itemID, previous); rbErr != nil {
			return MoveOutcome{ItemID: itemID, Previous: previous, Err: result.Err}
		}
		return MoveOutcome{ItemID: itemID, Status: previous, Previous: previous, Err: result.Err}
	}

	return MoveOutcome{Moved: true, ItemID: itemID, Status: status, Previous: previous}
}

// reset clears gesture state; callers must hold c.mu
func (c *Coordinator) reset() {
	c.state = Idle
	c.itemID = ""
	c.sourceColumn = ""
	c.targetColumn = ""
}
