package models

import "strings"

// palette maps the fixed set of named column colors to hex values.
// Columns may also carry a raw #RRGGBB value directly.
var palette = map[string]string{
	"gray":   "#6B7280",
	"blue":   "#3B82F6",
	"green":  "#22C55E",
	"orange": "#F97316",
	"red":    "#EF4444",
	"purple": "#8B5CF6",
	"yellow": "#FCD34D",
}

// ColorHex resolves a column color to a hex value.
// Raw hex values pass through; unknown names fall back to gray.
func ColorHex(color string) string {
	if strings.HasPrefix(color, "#") {
		return color
	}
	if hex, ok := palette[strings.ToLower(color)]; ok {
		return hex
	}
	return palette["gray"]
}

// ValidColor reports whether the value is a palette name or a raw hex color
func ValidColor(color string) bool {
	if strings.HasPrefix(color, "#") {
		return len(color) == 7 || len(color) == 4
	}
	_, ok := palette[strings.ToLower(color)]
	return ok
}

// PaletteNames returns the named colors available for column configuration,
// in a stable order suitable for pickers.
func PaletteNames() []string {
	return []string{"gray", "blue", "green", "orange", "red", "purple", "yellow"}
}
