// Package boardcfg owns the per-board column configuration: an ordered list
// of named, colored columns persisted as one JSON array per board kind.
package boardcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quadro-app/quadro/internal/models"
)

// Persister reads and writes a board's column list under its storage key.
// It is injected into the store so tests can substitute a fake.
type Persister interface {
	Load(kind models.BoardKind) ([]models.Column, error)
	Save(kind models.BoardKind, columns []models.Column) error
}

// FileStore persists column configuration as JSON files in a directory,
// one file per board kind named after the board's storage key.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed persister rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Compile-time verification that *FileStore implements Persister
var _ Persister = (*FileStore)(nil)

func (f *FileStore) path(kind models.BoardKind) string {
	return filepath.Join(f.dir, kind.StorageKey()+".json")
}

// Load reads the stored column list for a board kind.
// A missing file is reported as os.ErrNotExist; malformed JSON as an
// unmarshal error. The store treats both as "install defaults".
func (f *FileStore) Load(kind models.BoardKind) ([]models.Column, error) {
	data, err := os.ReadFile(f.path(kind))
	if err != nil {
		return nil, err
	}

	var columns []models.Column
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse column configuration: %w", err)
	}
	return columns, nil
}

// Save writes the full column list for a board kind, creating the
// directory on first use.
func (f *FileStore) Save(kind models.BoardKind, columns []models.Column) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create board config directory: %w", err)
	}

	data, err := json.MarshalIndent(columns, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode column configuration: %w", err)
	}

	return os.WriteFile(f.path(kind), data, 0o644)
}
