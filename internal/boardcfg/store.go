package boardcfg

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/quadro-app/quadro/internal/models"
)

// Store owns the ordered column list for one board kind.
// Every mutating operation re-persists the full list synchronously after
// the in-memory update; persistence failures are logged, never surfaced,
// so a broken disk cannot take the board down.
type Store struct {
	kind      models.BoardKind
	persister Persister

	mu      sync.Mutex
	columns []models.Column
}

// ColumnUpdate carries the optional fields of an update.
// Nil pointers mean "leave unchanged".
type ColumnUpdate struct {
	Name   *string
	Color  *string
	Status *string
}

// NewStore creates a column store for the given board kind.
// Call Load before using it.
func NewStore(kind models.BoardKind, persister Persister) *Store {
	return &Store{kind: kind, persister: persister}
}

// Load reads the persisted configuration. When the stored list is absent,
// empty, or unparsable, the hard-coded defaults are installed and persisted
// immediately. Load never fails.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	columns, err := s.persister.Load(s.kind)
	if err != nil || len(columns) == 0 {
		if err != nil {
			slog.Debug("falling back to default columns", "board", s.kind, "error", err)
		}
		s.columns = DefaultColumns(s.kind)
		s.persist()
		return
	}

	s.columns = columns
}

// Columns returns a copy of the column list in configured order
func (s *Store) Columns() []models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Add appends a new column with a generated unique id, default name and
// color, and a status equal to its id, then persists.
func (s *Store) Add() models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "column_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	column := models.Column{
		ID:     id,
		Name:   models.DefaultColumnName,
		Color:  models.DefaultColumnColor,
		Status: id,
	}

	s.columns = append(s.columns, column)
	s.persist()
	return column
}

// Update merges the provided fields into the matching column and persists.
// Unknown ids are a no-op.
func (s *Store) Update(id string, update ColumnUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.columns {
		if s.columns[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.columns[i].Name = *update.Name
		}
		if update.Color != nil {
			s.columns[i].Color = *update.Color
		}
		if update.Status != nil {
			s.columns[i].Status = *update.Status
		}
		s.persist()
		return
	}
}

// Remove deletes the column when more than one remains.
// Removing the last remaining column is rejected with ErrLastColumn before
// anything is persisted.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.columns {
		if s.columns[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ErrColumnNotFound
	}
	if len(s.columns) <= 1 {
		return models.ErrLastColumn
	}

	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)
	s.persist()
	return nil
}

// Reorder moves the column at fromIndex to toIndex, shifting the others.
// The relative order of untouched columns is preserved.
func (s *Store) Reorder(fromIndex, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromIndex < 0 || fromIndex >= len(s.columns) ||
		toIndex < 0 || toIndex >= len(s.columns) {
		return models.ErrColumnNotFound
	}
	if fromIndex == toIndex {
		return nil
	}

	moved := s.columns[fromIndex]
	rest := append(s.columns[:fromIndex:fromIndex], s.columns[fromIndex+1:]...)
	s.columns = append(rest[:toIndex:toIndex], append([]models.Column{moved}, rest[toIndex:]...)...)
	s.persist()
	return nil
}

// Kind returns the board kind this store serves
func (s *Store) Kind() models.BoardKind {
	return s.kind
}

// persist writes the current list; callers must hold s.mu
func (s *Store) persist() {
	if err := s.persister.Save(s.kind, s.columns); err != nil {
		slog.Warn("failed to persist column configuration", "board", s.kind, "error", err)
	}
}
