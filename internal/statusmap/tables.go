// Package statusmap translates between column identifiers and the domain
// status values carried by items. Historical status spellings ("todo",
// "open", "doing", ...) collapse into one canonical column through a
// declared synonym table per board kind.
package statusmap

import "github.com/quadro-app/quadro/internal/models"

// SynonymTable maps a canonical status to every spelling that resolves to
// it. The tables are data, not code: adding a synonym is an additive change.
type SynonymTable map[string][]string

var activityTable = SynonymTable{
	models.StatusPending:    {models.StatusPending, "todo", "open", "backlog"},
	models.StatusInProgress: {models.StatusInProgress, "doing"},
	models.StatusCompleted:  {models.StatusCompleted, "done"},
}

var projectTable = SynonymTable{
	models.StatusPlanning:  {models.StatusPlanning, "pending", "open"},
	models.StatusActive:    {models.StatusActive, "in_progress"},
	models.StatusOnHold:    {models.StatusOnHold, "paused"},
	models.StatusCompleted: {models.StatusCompleted, "done"},
	models.StatusCancelled: {models.StatusCancelled},
}

// TableFor returns the synonym table for a board kind
func TableFor(kind models.BoardKind) SynonymTable {
	if kind == models.BoardProjects {
		return projectTable
	}
	return activityTable
}

// canonicalIndex inverts a table into spelling -> canonical status
func canonicalIndex(table SynonymTable) map[string]string {
	index := make(map[string]string)
	for canonical, spellings := range table {
		for _, s := range spellings {
			index[s] = canonical
		}
	}
	return index
}
