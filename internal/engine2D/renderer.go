package engine2D

import (
	"math"
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/engine2D/shader"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func NewRenderer(driver *motion.Driver, s config.Settings, width, height int) *Renderer {
	r := &Renderer{
		Settings:    s,
		Driver:      driver,
		Glow:        NewGlowRenderer(s),
		Background:  NewBackgroundAurora(driver, s, width, height),
		Placeholder: glow.Placeholder,
	}
	r.Theme = glow.ThemeFor(s.Theme)
	r.UpdateViewport(width, height)
	return r
}

// Load acquires the GPU programs. The glow is required; a background that
// fails to enable is logged and left off.
func (r *Renderer) Load() error {
	shader.InitDefaults()
	if err := r.Glow.Load(); err != nil {
		return err
	}
	if r.Settings.Background.Enabled {
		if err := r.Background.Enable(); err != nil {
			utils.Error("Renderer: %v", err)
		}
	}
	return nil
}

func (r *Renderer) Unload() {
	r.Background.Disable()
	r.Glow.Unload()
	shader.ReleaseDefaults()
}

// UpdateViewport lays the scene out for a new window size and tells every
// resize listener.
func (r *Renderer) UpdateViewport(width, height int) {
	if width == r.Width && height == r.Height {
		return
	}
	r.Width, r.Height = width, height
	r.Field = glow.FieldRect(float64(width), float64(height))
	r.Driver.Hub.EmitResize(motion.ResizeEvent{Width: width, Height: height})
}

// UpdateMouse forwards a pointer sample in window pixels.
func (r *Renderer) UpdateMouse(x, y float64) {
	r.Driver.Hub.EmitPointer(motion.PointerEvent{
		X: x, Y: y,
		Width: float64(r.Width), Height: float64(r.Height),
	})
}

// Apply installs new settings on every effect.
func (r *Renderer) Apply(s config.Settings) {
	r.Settings = s
	r.Theme = glow.ThemeFor(s.Theme)
	r.Glow.Glow.Update(s)
	if err := r.Background.Update(s); err != nil {
		utils.Error("Renderer: %v", err)
	}
}

// Update advances the glow loops; the background advances on its own frame
// callbacks.
func (r *Renderer) Update(dt time.Duration) {
	r.Glow.Glow.Advance(dt)
}

func (r *Renderer) Render() {
	rl.ClearBackground(r.Theme.Background)
	r.Background.Draw()
	r.Glow.Draw(r.Field)
	r.drawField()
}

func (r *Renderer) drawField() {
	f := r.Field
	if f.W <= 0 {
		return
	}
	rect := rl.NewRectangle(float32(f.X), float32(f.Y), float32(f.W), float32(f.H))
	roundness := float32(0)
	if m := math.Min(f.W, f.H); m > 0 {
		roundness = float32(math.Min(1, 2*r.Settings.Border.Radius/m))
	}
	rl.DrawRectangleRounded(rect, roundness, 16, r.Theme.Surface)

	fontSize := int32(18)
	rl.DrawText(r.Placeholder, int32(f.X)+20, int32(f.Y+(f.H-float64(fontSize))/2), fontSize, r.Theme.Text)
}
