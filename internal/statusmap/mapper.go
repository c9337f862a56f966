package statusmap

import "github.com/quadro-app/quadro/internal/models"

// Mapper resolves item statuses to columns and back for one board's
// current column configuration. It is a pure lookup structure; rebuild it
// whenever the column configuration changes.
type Mapper struct {
	columns   []models.Column
	canonical map[string]string // spelling -> canonical status
}

// New builds a mapper for the given board kind and column configuration
func New(kind models.BoardKind, columns []models.Column) *Mapper {
	cols := make([]models.Column, len(columns))
	copy(cols, columns)
	return &Mapper{
		columns:   cols,
		canonical: canonicalIndex(TableFor(kind)),
	}
}

// ColumnForStatus returns the id of the column an item with the given
// status belongs to. Exact matches on a column's configured status win;
// otherwise both sides are resolved through the synonym table. The first
// matching column in configured order is chosen. Statuses that match no
// column are unassigned: ok is false and the item renders in no column.
func (m *Mapper) ColumnForStatus(status string) (columnID string, ok bool) {
	for _, c := range m.columns {
		if c.CanonicalStatus() == status {
			return c.ID, true
		}
	}

	canonical, known := m.canonical[status]
	if !known {
		return "", false
	}
	for _, c := range m.columns {
		if m.resolve(c.CanonicalStatus()) == canonical {
			return c.ID, true
		}
	}
	return "", false
}

// StatusForColumn returns the canonical domain status a column represents:
// the synonym-resolved form of its configured status, falling back to the
// column id when no status is configured. Unknown column ids yield "".
func (m *Mapper) StatusForColumn(columnID string) string {
	for _, c := range m.columns {
		if c.ID == columnID {
			return m.resolve(c.CanonicalStatus())
		}
	}
	return ""
}

// resolve collapses a spelling into its canonical status, or returns it
// unchanged when it is not in the synonym table (custom columns).
func (m *Mapper) resolve(status string) string {
	if canonical, ok := m.canonical[status]; ok {
		return canonical
	}
	return status
}
