package glow

import (
	"image/color"

	"gradient-shine/internal/config"
)

// Theme is the flat palette behind the effects.
type Theme struct {
	Background color.RGBA
	Surface    color.RGBA
	Text       color.RGBA
}

var Themes = map[config.ThemeMode]Theme{
	config.ThemeLight: {
		Background: color.RGBA{245, 245, 247, 255},
		Surface:    color.RGBA{255, 255, 255, 255},
		Text:       color.RGBA{110, 110, 118, 255},
	},
	config.ThemeDark: {
		Background: color.RGBA{14, 14, 18, 255},
		Surface:    color.RGBA{28, 28, 33, 255},
		Text:       color.RGBA{150, 150, 162, 255},
	},
}

// ThemeFor falls back to the light theme for unknown modes.
func ThemeFor(mode config.ThemeMode) Theme {
	if t, ok := Themes[mode]; ok {
		return t
	}
	return Themes[config.ThemeLight]
}

// Placeholder is the hint text of the demo input field.
const Placeholder = "Ask anything..."
