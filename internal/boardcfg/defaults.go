package boardcfg

import "github.com/quadro-app/quadro/internal/models"

// DefaultColumns returns the hard-coded column set installed on first load
// (or after a parse failure) for a board kind. Labels follow the product's
// pt-BR naming.
func DefaultColumns(kind models.BoardKind) []models.Column {
	if kind == models.BoardProjects {
		return []models.Column{
			{ID: "planning", Name: "PLANEJAMENTO", Color: "#8B7355", Status: "planning"},
			{ID: "active", Name: "EM ANDAMENTO", Color: "#6B8E23", Status: "active"},
			{ID: "on_hold", Name: "PAUSADO", Color: "#CD853F", Status: "on_hold"},
			{ID: "completed", Name: "CONCLUÍDO", Color: "#556B2F", Status: "completed"},
			{ID: "cancelled", Name: "CANCELADO", Color: "#DC2626", Status: "cancelled"},
		}
	}

	return []models.Column{
		{ID: "todo", Name: "PENDENTE", Color: "gray", Status: "todo"},
		{ID: "doing", Name: "EM PROGRESSO", Color: "orange", Status: "doing"},
		{ID: "done", Name: "CONCLUÍDA", Color: "green", Status: "done"},
	}
}
