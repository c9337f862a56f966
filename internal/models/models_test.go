package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Defined(t *testing.T) {
	if ErrLastColumn == nil {
		t.Error("ErrLastColumn should not be nil")
	}
	if ErrColumnNotFound == nil {
		t.Error("ErrColumnNotFound should not be nil")
	}
	if ErrMoveInFlight == nil {
		t.Error("ErrMoveInFlight should not be nil")
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrLastColumn, ErrColumnNotFound) {
		t.Error("ErrLastColumn should not equal ErrColumnNotFound")
	}
	if errors.Is(ErrItemNotFound, ErrColumnNotFound) {
		t.Error("ErrItemNotFound should not equal ErrColumnNotFound")
	}
}

// ============================================================================
// BoardKind Tests
// ============================================================================

func TestBoardKind_Valid(t *testing.T) {
	if !BoardActivities.Valid() {
		t.Error("BoardActivities should be valid")
	}
	if !BoardProjects.Valid() {
		t.Error("BoardProjects should be valid")
	}
	if BoardKind("leads").Valid() {
		t.Error("unknown kind should not be valid")
	}
}

func TestBoardKind_StorageKey(t *testing.T) {
	tests := []struct {
		kind     BoardKind
		expected string
	}{
		{BoardActivities, "kanban_columns"},
		{BoardProjects, "projects_kanban_columns"},
	}

	for _, tt := range tests {
		if got := tt.kind.StorageKey(); got != tt.expected {
			t.Errorf("StorageKey(%s) = %s, want %s", tt.kind, got, tt.expected)
		}
	}
}

// ============================================================================
// Column Tests
// ============================================================================

func TestColumn_CanonicalStatus(t *testing.T) {
	tests := []struct {
		name     string
		column   Column
		expected string
	}{
		{
			name:     "configured status wins",
			column:   Column{ID: "todo", Status: "pending"},
			expected: "pending",
		},
		{
			name:     "falls back to id when status unset",
			column:   Column{ID: "review"},
			expected: "review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.column.CanonicalStatus(); got != tt.expected {
				t.Errorf("CanonicalStatus() = %s, want %s", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Palette Tests
// ============================================================================

func TestColorHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gray", "#6B7280"},
		{"orange", "#F97316"},
		{"GREEN", "#22C55E"},
		{"#8B7355", "#8B7355"},
		{"mauve", "#6B7280"}, // unknown names fall back to gray
	}

	for _, tt := range tests {
		if got := ColorHex(tt.input); got != tt.expected {
			t.Errorf("ColorHex(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestItem_Summary(t *testing.T) {
	item := &Item{
		ID:       "a1",
		Kind:     BoardActivities,
		Title:    "Ligar para cliente",
		Status:   StatusPending,
		Priority: PriorityHigh,
		Owner:    "ana",
	}

	s := item.Summary()
	if s.ID != item.ID || s.Title != item.Title || s.Status != item.Status {
		t.Errorf("Summary() lost fields: %+v", s)
	}
}
