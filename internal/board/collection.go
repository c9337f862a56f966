// Package board implements the kanban board engine: the in-memory item
// collection, the pure board projection, and the drag coordinator that
// turns a drop gesture into an optimistic, rollback-safe status mutation.
package board

import (
	"sync"

	"github.com/quadro-app/quadro/internal/models"
)

// Collection holds one board's items in arrival order.
// It is the only place item status is mutated locally; the coordinator's
// optimistic-update-then-confirm path owns all writes.
type Collection struct {
	mu    sync.RWMutex
	items []*models.Item
	index map[string]*models.Item
}

// NewCollection creates a collection over the given items, preserving order
func NewCollection(items []*models.Item) *Collection {
	c := &Collection{index: make(map[string]*models.Item, len(items))}
	for _, item := range items {
		c.items = append(c.items, item)
		c.index[item.ID] = item
	}
	return c
}

// Items returns the items in arrival order. The slice is a copy; the items
// are shared.
func (c *Collection) Items() []*models.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given id
func (c *Collection) Get(id string) (*models.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.index[id]
	return item, ok
}

// SetStatus updates an item's status and returns the previous value,
// so the caller can roll back a failed optimistic update.
func (c *Collection) SetStatus(id, status string) (previous string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.index[id]
	if !ok {
		return "", models.ErrItemNotFound
	}
	previous = item.Status
	item.Status = status
	return previous, nil
}

// Add appends an item to the collection
func (c *Collection) Add(item *models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	c.index[item.ID] = item
}

// Remove deletes an item from the collection
func (c *Collection) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[id]; !ok {
		return
	}
	delete(c.index, id)
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
}

// Replace swaps the entire item set, e.g. after a full re-sync
func (c *Collection) Replace(items []*models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]*models.Item, 0, len(items))
	c.index = make(map[string]*models.Item, len(items))
	for _, item := range items {
		c.items = append(c.items, item)
		c.index[item.ID] = item
	}
}

// Len returns the number of items
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
