package models

// BoardKind identifies one of the two independent kanban boards.
// Each kind owns its own column configuration and item collection.
type BoardKind string

const (
	// BoardActivities is the day-to-day activities board
	BoardActivities BoardKind = "activities"
	// BoardProjects is the long-running projects board
	BoardProjects BoardKind = "projects"
)

// AllBoardKinds lists the boards in display order
var AllBoardKinds = []BoardKind{BoardActivities, BoardProjects}

// Valid reports whether the kind names a known board
func (k BoardKind) Valid() bool {
	return k == BoardActivities || k == BoardProjects
}

// StorageKey returns the fixed key under which the board's column
// configuration is persisted. One JSON array per board kind.
func (k BoardKind) StorageKey() string {
	if k == BoardProjects {
		return "projects_kanban_columns"
	}
	return "kanban_columns"
}

// Column represents a named, ordered bucket on a kanban board.
// Columns and items are joined only through the status field; there is no
// foreign key between them.
type Column struct {
	ID     string `json:"id"`     // unique within the board's column set
	Name   string `json:"name"`   // display label, user-editable
	Color  string `json:"color"`  // palette name or #RRGGBB
	Status string `json:"status"` // domain status this column represents
}

// CanonicalStatus returns the status the column stands for, falling back to
// the column id when no status is configured.
func (c Column) CanonicalStatus() string {
	if c.Status != "" {
		return c.Status
	}
	return c.ID
}
