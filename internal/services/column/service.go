package column

import (
	"time"

	"github.com/quadro-app/quadro/internal/boardcfg"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/statusmap"
)

// Service defines the column configuration operations for one board
type Service interface {
	// Read operations
	Columns() []models.Column
	Mapper() *statusmap.Mapper
	Kind() models.BoardKind

	// Write operations
	AddColumn() models.Column
	RenameColumn(columnID, name string) error
	SetColumnColor(columnID, color string) error
	SetColumnStatus(columnID, status string) error
	RemoveColumn(columnID string) error
	ReorderColumn(fromIndex, toIndex int) error
}

// service implements Service interface
type service struct {
	store       *boardcfg.Store
	eventClient events.EventPublisher
}

// NewService creates a column service over a loaded column store
func NewService(store *boardcfg.Store, eventClient events.EventPublisher) Service {
	return &service{
		store:       store,
		eventClient: eventClient,
	}
}

// Columns returns the configured columns in display order
func (s *service) Columns() []models.Column {
	return s.store.Columns()
}

// Mapper builds a status mapper over the current column configuration.
// Callers should rebuild after every column mutation.
func (s *service) Mapper() *statusmap.Mapper {
	return statusmap.New(s.store.Kind(), s.store.Columns())
}

// Kind returns the board this service configures
func (s *service) Kind() models.BoardKind {
	return s.store.Kind()
}

// AddColumn appends a new column with generated id and default name/color
func (s *service) AddColumn() models.Column {
	column := s.store.Add()
	s.publishColumnsEvent()
	return column
}

// RenameColumn changes a column's display name
func (s *service) RenameColumn(columnID, name string) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}

	s.store.Update(columnID, boardcfg.ColumnUpdate{Name: &name})
	s.publishColumnsEvent()
	return nil
}

// SetColumnColor changes a column's color
func (s *service) SetColumnColor(columnID, color string) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}
	if !models.ValidColor(color) {
		return ErrUnknownColor
	}

	s.store.Update(columnID, boardcfg.ColumnUpdate{Color: &color})
	s.publishColumnsEvent()
	return nil
}

// SetColumnStatus rebinds a column to a different domain status
func (s *service) SetColumnStatus(columnID, status string) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}

	s.store.Update(columnID, boardcfg.ColumnUpdate{Status: &status})
	s.publishColumnsEvent()
	return nil
}

// RemoveColumn deletes a column; the last remaining column is protected
func (s *service) RemoveColumn(columnID string) error {
	if columnID == "" {
		return ErrInvalidColumnID
	}

	if err := s.store.Remove(columnID); err != nil {
		return err
	}
	s.publishColumnsEvent()
	return nil
}

// ReorderColumn moves a column to a new position
func (s *service) ReorderColumn(fromIndex, toIndex int) error {
	if err := s.store.Reorder(fromIndex, toIndex); err != nil {
		return err
	}
	s.publishColumnsEvent()
	return nil
}

// publishColumnsEvent notifies the daemon that this board's columns changed
func (s *service) publishColumnsEvent() {
	if s.eventClient == nil {
		return
	}

	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      events.EventColumnsChanged,
		Kind:      string(s.store.Kind()),
		Timestamp: time.Now(),
	}, 3)
}
