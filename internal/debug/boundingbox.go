package debug

import (
	"gradient-shine/internal/engine2D"
	"gradient-shine/internal/glow"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var layerColors = [glow.LayerCount]rl.Color{
	rl.NewColor(0, 255, 0, 220),
	rl.NewColor(0, 200, 255, 200),
	rl.NewColor(255, 0, 255, 180),
}

// drawContainerBounds outlines a container box and the gradient ellipses
// of every layer at the current frame.
func (d *DebugOverlay) drawContainerBounds(c *glow.Container, field glow.Rect, boxCol rl.Color) {
	b := c.Bounds(field)
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(b.X), float32(b.Y), float32(b.W), float32(b.H)), 1, boxCol)

	frame := c.Stack.Frame()
	for l, layer := range frame.Layers {
		if !d.ShowLayers[l] {
			continue
		}
		for _, g := range layer.Background {
			cx := b.X + g.CX/100*b.W
			cy := b.Y + g.CY/100*b.H
			rx := g.EW / 100 * b.W * g.Fade / 100
			ry := g.EH / 100 * b.H * g.Fade / 100
			rl.DrawEllipseLines(int32(cx), int32(cy), float32(rx), float32(ry), layerColors[l])

			// centre marker
			rl.DrawRectangle(int32(cx-2), int32(cy-2), 4, 4, rl.Red)
		}
	}
}

// drawBlobBounds outlines every blob square at its animated position.
func (d *DebugOverlay) drawBlobBounds(r *engine2D.Renderer) {
	for _, n := range r.Background.Nodes() {
		if n == nil {
			continue
		}
		b := n.Bounds(float64(r.Width), float64(r.Height))
		rl.DrawRectangleLinesEx(b, 1, rl.NewColor(255, 255, 0, 150))
		rl.DrawRectangle(int32(b.X+b.Width/2-2), int32(b.Y+b.Height/2-2), 4, 4, rl.Red)
	}
}
