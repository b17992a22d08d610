package raster

import (
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/field"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
)

// Scene is the headless counterpart of the window renderer. It drives the
// same frame queue and event hub from a clock it advances itself, so every
// frame it produces is reproducible.
type Scene struct {
	Settings    config.Settings
	Clock       *motion.MockTimeProvider
	Driver      *motion.Driver
	Glow        *glow.Glow
	Background  *field.Effect
	Theme       glow.Theme
	Field       glow.Rect
	Placeholder string

	width  int
	height int
}

func NewScene(s config.Settings, width, height int) *Scene {
	clock := motion.NewMockTimeProvider(time.Unix(0, 0))
	driver := motion.NewDriver(clock)
	sc := &Scene{
		Settings:    s,
		Clock:       clock,
		Driver:      driver,
		Glow:        glow.NewGlow(s),
		Background:  field.NewEffect(driver.Queue, driver.Hub, s, width, height),
		Theme:       glow.ThemeFor(s.Theme),
		Field:       glow.FieldRect(float64(width), float64(height)),
		Placeholder: glow.Placeholder,
		width:       width,
		height:      height,
	}
	if s.Background.Enabled {
		sc.Background.Enable()
	}
	return sc
}

func (sc *Scene) Size() (width, height int) { return sc.width, sc.height }

// Step advances the clock by dt and runs one frame. It returns the frame
// timestamp in milliseconds.
func (sc *Scene) Step(dt time.Duration) float64 {
	sc.Clock.Advance(dt)
	ts, elapsed := sc.Driver.Tick()
	sc.Glow.Advance(elapsed)
	return ts
}

func (sc *Scene) Resize(width, height int) {
	if width == sc.width && height == sc.height {
		return
	}
	sc.width, sc.height = width, height
	sc.Field = glow.FieldRect(float64(width), float64(height))
	sc.Driver.Hub.EmitResize(motion.ResizeEvent{Width: width, Height: height})
}

// Pointer feeds a pointer sample in scene pixels.
func (sc *Scene) Pointer(x, y float64) {
	sc.Driver.Hub.EmitPointer(motion.PointerEvent{
		X: x, Y: y,
		Width: float64(sc.width), Height: float64(sc.height),
	})
}

// Apply installs new settings. The background restarts when its mode
// changes and follows the enabled flag.
func (sc *Scene) Apply(s config.Settings) {
	sc.Settings = s
	sc.Theme = glow.ThemeFor(s.Theme)
	sc.Glow.Update(s)

	restart := sc.Background.Update(s)
	switch {
	case !s.Background.Enabled:
		sc.Background.Disable()
	case restart:
		sc.Background.Disable()
		sc.Background.Enable()
	default:
		sc.Background.Enable()
	}
}

// SetRunning pauses or resumes the glow loops.
func (sc *Scene) SetRunning(running bool) {
	sc.Settings.Animation.Running = running
	sc.Glow.SetRunning(running)
}

// Close stops the background loop and removes its listeners.
func (sc *Scene) Close() {
	sc.Background.Disable()
}

// Paint draws the current frame: theme backdrop, background aurora, glow
// containers and the field. p must have the scene's size.
func (sc *Scene) Paint(p *Painter) {
	p.Clear(sc.Theme.Background)
	sc.PaintBackground(p)
	p.PaintGlow(sc.Glow, sc.Field)
	p.PaintField(sc.Field, sc.Settings.Border.Radius, sc.Theme, sc.Placeholder)
}

// PaintBackground draws the aurora alone. Frames before the first tick
// draw nothing.
func (sc *Scene) PaintBackground(p *Painter) {
	bg := sc.Background
	if !bg.Enabled() {
		return
	}
	switch bg.Mode() {
	case config.ModeShader:
		if u, ok := bg.Uniforms(); ok {
			p.PaintShader(u)
		}
	case config.ModeBlobs:
		if blobs := bg.Blobs(); blobs != nil && blobs.Ticks() > 0 {
			p.PaintBlobs(blobs.Offsets(), bg.Colors(), bg.Settings())
		}
	}
}
