package models

import "time"

// Item represents a single card on a kanban board: an activity or a project,
// depending on the board kind it belongs to. Only Status determines which
// column the item occupies; every other field is inert for board placement.
type Item struct {
	ID          string
	Kind        BoardKind
	Title       string
	Description string
	Status      string
	Priority    string
	Owner       string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID returns the item id, satisfying the quiet-output interface used by
// the CLI formatter
func (i *Item) GetID() string {
	return i.ID
}

// ItemUpdate carries the fields an item edit may change.
// Nil fields are left untouched; ClearDueDate removes the due date.
type ItemUpdate struct {
	Title        *string
	Description  *string
	Priority     *string
	Owner        *string
	DueDate      *time.Time
	ClearDueDate bool
}

// ItemSummary is a DTO for displaying items on the board.
// Contains only the fields the card view needs.
type ItemSummary struct {
	ID       string
	Title    string
	Status   string
	Priority string
	Owner    string
	DueDate  *time.Time
}

// Summary projects the item down to its card view fields
func (i *Item) Summary() *ItemSummary {
	return &ItemSummary{
		ID:       i.ID,
		Title:    i.Title,
		Status:   i.Status,
		Priority: i.Priority,
		Owner:    i.Owner,
		DueDate:  i.DueDate,
	}
}
