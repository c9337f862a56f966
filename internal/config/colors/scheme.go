package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "terra")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	GrabbedBorder  string `yaml:"grabbed_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "terra":
		return Terra()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.ColumnBackground == "" {
		c.ColumnBackground = preset.ColumnBackground
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Edit == "" {
		c.Edit = preset.Edit
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = preset.ColumnBorder
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.CardBackground == "" {
		c.CardBackground = preset.CardBackground
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.GrabbedBorder == "" {
		c.GrabbedBorder = preset.GrabbedBorder
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = preset.InfoBg
	}
	if c.WarningFg == "" {
		c.WarningFg = preset.WarningFg
	}
	if c.WarningBg == "" {
		c.WarningBg = preset.WarningBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = preset.ErrorBg
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
}

// MergeFrom overrides this scheme with any non-empty values from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.ColumnBackground != "" {
		c.ColumnBackground = other.ColumnBackground
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Edit != "" {
		c.Edit = other.Edit
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.ColumnBorder != "" {
		c.ColumnBorder = other.ColumnBorder
	}
	if other.CardBorder != "" {
		c.CardBorder = other.CardBorder
	}
	if other.CardBackground != "" {
		c.CardBackground = other.CardBackground
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.GrabbedBorder != "" {
		c.GrabbedBorder = other.GrabbedBorder
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.WarningFg != "" {
		c.WarningFg = other.WarningFg
	}
	if other.WarningBg != "" {
		c.WarningBg = other.WarningBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
}
