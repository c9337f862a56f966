package config

import "github.com/quadro-app/quadro/internal/config/colors"

// ColorScheme is the theme section of the configuration
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (blue theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// TerraColorScheme returns the earthy project-board color scheme
func TerraColorScheme() colors.ColorScheme {
	return *colors.Terra()
}
