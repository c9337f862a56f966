package colors

// Default returns the default color scheme (blue theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#3B82F6",

		// Background
		Background:       "#1C1C1C",
		ColumnBackground: "#262626",

		// Semantic
		Create: "#22C55E",
		Edit:   "#3B82F6",
		Delete: "#EF4444",

		// UI elements
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#3B82F6",
		SelectedBg:     "#3A3A3A",
		GrabbedBorder:  "#F97316",

		// Text
		Title:  "#3B82F6",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#3B82F6",
		StatusBarText: "#D0D0D0",
	}
}
