package board

import (
	"github.com/quadro-app/quadro/internal/models"
	"github.com/quadro-app/quadro/internal/statusmap"
)

// ColumnItems pairs a column with the items it currently holds
type ColumnItems struct {
	Column models.Column
	Items  []*models.ItemSummary
}

// Render projects (columns, items) into an ordered list of per-column item
// lists. For each column in configured order it includes every item whose
// mapped column equals that column's id; items keep their arrival order.
// Items whose status maps to no column are excluded entirely.
// Render never mutates its inputs.
func Render(columns []models.Column, mapper *statusmap.Mapper, items []*models.Item) []ColumnItems {
	grouped := make(map[string][]*models.ItemSummary, len(columns))
	for _, item := range items {
		columnID, ok := mapper.ColumnForStatus(item.Status)
		if !ok {
			continue
		}
		grouped[columnID] = append(grouped[columnID], item.Summary())
	}

	out := make([]ColumnItems, len(columns))
	for i, c := range columns {
		out[i] = ColumnItems{Column: c, Items: grouped[c.ID]}
	}
	return out
}
