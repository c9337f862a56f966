package theme

import "github.com/quadro-app/quadro/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	Title          string
	SelectedBorder string
	SelectedBg     string
	GrabbedBorder  string
	CardBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	Title = colors.Title
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	GrabbedBorder = colors.GrabbedBorder
	CardBg = colors.CardBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
