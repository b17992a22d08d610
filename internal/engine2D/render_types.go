package engine2D

import (
	"gradient-shine/internal/config"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
)

// Renderer draws one frame of the demo scene: background aurora, glow
// containers and the input field they decorate.
type Renderer struct {
	Settings   config.Settings
	Driver     *motion.Driver
	Glow       *GlowRenderer
	Background *BackgroundAurora

	Width       int
	Height      int
	Field       glow.Rect
	Theme       glow.Theme
	Placeholder string
}
