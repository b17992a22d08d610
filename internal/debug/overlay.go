package debug

import (
	"fmt"

	"gradient-shine/internal/config"
	"gradient-shine/internal/engine2D"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugOverlay shows the live geometry and loop state of the scene.
type DebugOverlay struct {
	Visible    bool
	ShowBounds bool
	ShowLayers [glow.LayerCount]bool
	ShowBlobs  bool
	PanelWidth int

	fontHeight int
	lineHeight int
}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		ShowBounds: true,
		ShowLayers: [glow.LayerCount]bool{true, true, true},
		ShowBlobs:  true,
		PanelWidth: 300,
		fontHeight: 14,
		lineHeight: 18,
	}
}

func (d *DebugOverlay) Toggle() {
	d.Visible = !d.Visible
	utils.Debug("Overlay: visible=%v", d.Visible)
}

// Draw renders the overlay on top of the scene. It must be called inside
// the frame's drawing block.
func (d *DebugOverlay) Draw(r *engine2D.Renderer) {
	if !d.Visible {
		return
	}

	if d.ShowBounds {
		d.drawContainerBounds(&r.Glow.Glow.Halo, r.Field, rl.NewColor(0, 255, 255, 160))
		d.drawContainerBounds(&r.Glow.Glow.Border, r.Field, rl.NewColor(255, 255, 255, 200))
	}
	if d.ShowBlobs {
		d.drawBlobBounds(r)
	}

	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft)

	rl.DrawRectangle(0, 0, int32(d.PanelWidth), int32(r.Height), rl.NewColor(0, 0, 0, 170))
	ui := NewUIContext(10, 10, d.lineHeight, d.fontHeight, int(mouse.X), int(mouse.Y), clicked)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)
	ui.IndentLabel(fmt.Sprintf("Pending callbacks: %d", r.Driver.Queue.Pending()), 10)
	p, rs := r.Driver.Hub.Listeners()
	ui.IndentLabel(fmt.Sprintf("Listeners: pointer %d, resize %d", p, rs), 10)
	ui.Separator()

	ui.Header("Glow:")
	st := r.Glow.Glow.Halo.Stack
	for l := 0; l < glow.LayerCount; l++ {
		tl := st.Timeline(l)
		state := "running"
		switch {
		case !tl.Running():
			state = "paused"
		case tl.Waiting():
			state = "delayed"
		}
		ui.IndentLabel(fmt.Sprintf("Layer %d: %.2f %s %s (%v)", l+1, tl.Position(), tl.Direction(), state, tl.Duration()), 10)
	}
	frame := st.Frame()
	for _, s := range frame.Shines {
		ui.IndentLabel(fmt.Sprintf("Shine %s: %.2f", s.Edge, s.Opacity), 10)
	}
	for i, name := range []string{"Show layer 1", "Show layer 2", "Show layer 3"} {
		if ui.Checkbox(name, d.ShowLayers[i]) {
			d.ShowLayers[i] = !d.ShowLayers[i]
		}
	}
	if ui.Checkbox("Show containers", d.ShowBounds) {
		d.ShowBounds = !d.ShowBounds
	}
	ui.Separator()

	ui.Header("Background:")
	bg := r.Background
	switch {
	case !bg.Enabled() && bg.Err() != nil:
		ui.IndentLabel("failed: see log", 10)
	case !bg.Enabled():
		ui.IndentLabel("disabled", 10)
	case bg.Mode() == config.ModeShader:
		if u, ok := bg.Uniforms(); ok {
			ui.IndentLabel(fmt.Sprintf("uTime: %.3f", u.Time), 10)
			ui.IndentLabel(fmt.Sprintf("uMouse: %.3f, %.3f", u.Mouse[0], u.Mouse[1]), 10)
			ui.IndentLabel(fmt.Sprintf("uResolution: %.0fx%.0f", u.Resolution[0], u.Resolution[1]), 10)
			for i, c := range u.ColorStops {
				r8, g8, b8 := c.Clamped().RGB255()
				ui.ColorLabel(fmt.Sprintf("stop %d %s", i, c.Hex()), rl.NewColor(r8, g8, b8, 255), 10)
			}
		}
	case bg.Mode() == config.ModeBlobs:
		anim := bg.Blobs()
		target, current := anim.Pointer()
		ui.IndentLabel(fmt.Sprintf("Ticks: %d", anim.Ticks()), 10)
		ui.IndentLabel(fmt.Sprintf("Pointer: %.3f, %.3f -> %.3f, %.3f", current.X, current.Y, target.X, target.Y), 10)
		for i, off := range anim.Offsets() {
			ui.IndentLabel(fmt.Sprintf("Blob %d: %+.1f, %+.1f", i+1, off.X, off.Y), 10)
		}
		if ui.Checkbox("Show blobs", d.ShowBlobs) {
			d.ShowBlobs = !d.ShowBlobs
		}
	}
}
