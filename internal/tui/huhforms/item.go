package huhforms

import (
	"fmt"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/quadro-app/quadro/internal/models"
)

// ItemFormValues holds the editable item fields bound to the form
type ItemFormValues struct {
	Title       string
	Description string
	Priority    string
	Owner       string
	Due         string // YYYY-MM-DD, empty for none
}

// CreateItemForm creates a huh form for adding or editing an item.
// The same form serves both cases; isEdit only changes the heading.
func CreateItemForm(values *ItemFormValues, isEdit bool) *huh.Form {
	title := "New Item"
	if isEdit {
		title = "Edit Item"
	}

	if values.Priority == "" {
		values.Priority = models.DefaultPriority
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(title).
			Placeholder("Enter item title...").
			Value(&values.Title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			Value(&values.Description),
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(
				huh.NewOption("Low", models.PriorityLow),
				huh.NewOption("Medium", models.PriorityMedium),
				huh.NewOption("High", models.PriorityHigh),
			).
			Value(&values.Priority),
		huh.NewInput().
			Key("owner").
			Title("Owner").
			Placeholder("Who is responsible?").
			Value(&values.Owner),
		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Value(&values.Due).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				if _, err := time.Parse("2006-01-02", s); err != nil {
					return fmt.Errorf("use YYYY-MM-DD")
				}
				return nil
			}),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
