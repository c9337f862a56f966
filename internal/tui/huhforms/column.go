package huhforms

import (
	"charm.land/huh/v2"
	"github.com/quadro-app/quadro/internal/models"
)

// ColumnFormValues holds the editable column fields bound to the form
type ColumnFormValues struct {
	Name  string
	Color string
}

// CreateColumnForm creates a huh form for renaming a column and picking
// its color. No confirmation field is used - the form saves on completion.
func CreateColumnForm(values *ColumnFormValues, isEdit bool) *huh.Form {
	title := "New Column Name"
	if isEdit {
		title = "Rename Column"
	}

	if values.Color == "" {
		values.Color = models.DefaultColumnColor
	}

	colorOptions := make([]huh.Option[string], 0, len(models.PaletteNames())+1)
	for _, name := range models.PaletteNames() {
		colorOptions = append(colorOptions, huh.NewOption(name, name))
	}
	// Raw hex values configured outside the picker stay selectable
	if !contains(models.PaletteNames(), values.Color) {
		colorOptions = append(colorOptions, huh.NewOption(values.Color, values.Color))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(title).
			Placeholder("Enter column name...").
			Value(&values.Name),
		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(colorOptions...).
			Value(&values.Color),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
