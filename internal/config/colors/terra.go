package colors

// Terra returns an earthy color scheme that matches the project board's
// default column palette
func Terra() *ColorScheme {
	return &ColorScheme{
		Preset: "terra",

		// Primary
		Accent: "#8B7355",

		// Background
		Background:       "#1A1814",
		ColumnBackground: "#242019",

		// Semantic
		Create: "#6B8E23",
		Edit:   "#8B7355",
		Delete: "#DC2626",

		// UI elements
		ColumnBorder:   "#8B7355",
		CardBorder:     "#5A5248",
		CardBackground: "#242019",
		SelectedBorder: "#CD853F",
		SelectedBg:     "#38322A",
		GrabbedBorder:  "#CD853F",

		// Text
		Title:  "#CD853F",
		Subtle: "#5A5248",
		Normal: "#D6CFC2",

		// Notifications
		InfoFg:    "#6B8E23",
		InfoBg:    "#242019",
		WarningFg: "#CD853F",
		WarningBg: "#38322A",
		ErrorFg:   "#DC2626",
		ErrorBg:   "#38322A",

		// Status bar
		StatusBarBg:   "#556B2F",
		StatusBarText: "#D6CFC2",
	}
}
