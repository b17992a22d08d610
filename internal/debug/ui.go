package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIContext lays out immediate-mode overlay text top to bottom.
type UIContext struct {
	X, Y       int
	BaseX      int
	LineHeight int
	FontHeight int
	MouseX     int
	MouseY     int
	Clicked    bool
}

func NewUIContext(x, y, lineHeight, fontHeight, mx, my int, clicked bool) *UIContext {
	return &UIContext{
		X:          x,
		Y:          y,
		BaseX:      x,
		LineHeight: lineHeight,
		FontHeight: fontHeight,
		MouseX:     mx,
		MouseY:     my,
		Clicked:    clicked,
	}
}

func (ui *UIContext) drawText(text string, x, y int32, color rl.Color) {
	rl.DrawText(text, x, y, int32(ui.FontHeight), color)
}

func (ui *UIContext) Label(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) IndentLabel(text string, indent int) {
	ui.drawText(text, int32(ui.X+indent), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

// ColorLabel prints text after a small swatch.
func (ui *UIContext) ColorLabel(text string, swatch rl.Color, indent int) {
	size := int32(ui.FontHeight - 4)
	rl.DrawRectangle(int32(ui.X+indent), int32(ui.Y+2), size, size, swatch)
	ui.drawText(text, int32(ui.X+indent)+size+6, int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

func (ui *UIContext) Header(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.NewColor(255, 220, 120, 255))
	ui.Y += ui.LineHeight
}

// Checkbox draws a toggle and reports whether it was clicked this frame.
func (ui *UIContext) Checkbox(label string, checked bool) bool {
	boxSize := int(float64(ui.FontHeight) * 0.8)
	boxX := ui.X + 5
	boxY := ui.Y + 2

	changed := false
	if ui.Clicked &&
		ui.MouseX >= boxX && ui.MouseX <= boxX+boxSize+100 &&
		ui.MouseY >= boxY && ui.MouseY <= boxY+boxSize {
		changed = true
	}

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.NewColor(150, 150, 150, 255))
	if checked {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.NewColor(100, 255, 100, 255))
	}
	ui.drawText(label, int32(ui.X+5+boxSize+5), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight

	return changed
}
