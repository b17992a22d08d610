package engine2D

import (
	"fmt"

	"gradient-shine/internal/config"
	"gradient-shine/internal/engine2D/shader"
	"gradient-shine/internal/field"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// blobScale is the resolution of the blob target relative to the viewport.
// The blur hides the difference.
const blobScale = 0.25

// BackgroundAurora is the full-viewport effect. It owns every GPU resource
// it acquires: Enable acquires, Disable releases, nothing survives between
// the two. Two instances never share state.
type BackgroundAurora struct {
	effect *field.Effect
	hub    *motion.Hub

	err         error
	failedMode  config.BackgroundMode
	unsubscribe func()

	// shader mode
	program rl.Shader
	params  shader.AuroraParameters

	// blob mode
	nodes  [len(motion.Blobs)]*BlobNode
	target *rl.RenderTexture2D
	blur   *shader.BlurEffect
}

func NewBackgroundAurora(driver *motion.Driver, s config.Settings, width, height int) *BackgroundAurora {
	return &BackgroundAurora{
		effect: field.NewEffect(driver.Queue, driver.Hub, s, width, height),
		hub:    driver.Hub,
	}
}

func (a *BackgroundAurora) Enabled() bool { return a.effect.Enabled() }

func (a *BackgroundAurora) Mode() config.BackgroundMode { return a.effect.Mode() }

// Err is the failure of the last Enable, nil once an Enable succeeded.
func (a *BackgroundAurora) Err() error { return a.err }

// Effect exposes the frame-driven state shared with the CPU painters.
func (a *BackgroundAurora) Effect() *field.Effect { return a.effect }

// Enable acquires the resources of the configured mode and starts the frame
// loop. A program that fails to compile is returned as an error and leaves
// the effect disabled.
func (a *BackgroundAurora) Enable() error {
	if a.effect.Enabled() {
		return nil
	}
	mode := a.effect.Mode()

	var err error
	switch mode {
	case config.ModeShader:
		err = a.acquireShader()
	case config.ModeBlobs:
		err = a.acquireBlobs()
	}
	if err != nil {
		a.release()
		a.err = fmt.Errorf("background aurora (%s): %w", mode, err)
		a.failedMode = mode
		return a.err
	}

	a.effect.Enable()
	if blobs := a.effect.Blobs(); blobs != nil {
		for i, n := range a.nodes {
			blobs.Attach(i, n)
		}
	}
	a.err = nil
	w, h := a.effect.Size()
	utils.Info("Aurora: Enabled (%s, %dx%d)", mode, w, h)
	return nil
}

func (a *BackgroundAurora) acquireShader() error {
	program, err := shader.LoadShader("aurora", nil)
	if err != nil {
		return err
	}
	a.program = program
	a.params = shader.ResolveAuroraLocations(program)
	return nil
}

func (a *BackgroundAurora) acquireBlobs() error {
	blur, err := shader.LoadBlurEffect()
	if err != nil {
		return err
	}
	a.blur = blur
	a.allocateTarget(a.effect.Size())

	slots := a.effect.Colors().Slots()
	for i := range a.nodes {
		a.nodes[i] = &BlobNode{Index: i, Color: blobColor(slots[i])}
	}
	a.unsubscribe = a.hub.OnResize(func(e motion.ResizeEvent) {
		a.allocateTarget(e.Width, e.Height)
	})
	return nil
}

// blobColor is the blob centre colour: the palette slot at alpha 0x55,
// premultiplied.
func blobColor(css string) rl.Color {
	c := utils.MustColor(css)
	const alpha = float32(0x55) / 255
	return rl.ColorFromNormalized(rl.NewVector4(float32(c.R)*alpha, float32(c.G)*alpha, float32(c.B)*alpha, alpha))
}

// allocateTarget sizes the blob target to a width×height viewport.
func (a *BackgroundAurora) allocateTarget(width, height int) {
	if a.target != nil {
		rl.UnloadRenderTexture(*a.target)
		a.target = nil
	}
	w := int32(float64(width) * blobScale)
	h := int32(float64(height) * blobScale)
	if w <= 0 || h <= 0 {
		return
	}
	rt := rl.LoadRenderTexture(w, h)
	rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
	a.target = &rt
}

// Disable stops the loop and releases everything Enable acquired. It is
// safe to call at any time, any number of times.
func (a *BackgroundAurora) Disable() {
	if !a.effect.Enabled() {
		return
	}
	if blobs := a.effect.Blobs(); blobs != nil {
		for i := range a.nodes {
			blobs.Detach(i)
		}
	}
	a.effect.Disable()
	a.release()
	utils.Info("Aurora: Disabled")
}

func (a *BackgroundAurora) release() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	shader.UnloadShader(a.program)
	a.program = rl.Shader{}

	for i := range a.nodes {
		a.nodes[i] = nil
	}
	if a.blur != nil {
		a.blur.Unload()
		a.blur = nil
	}
	if a.target != nil {
		rl.UnloadRenderTexture(*a.target)
		a.target = nil
	}
}

// Update applies new settings. A mode switch or toggling enabled goes
// through a full Disable/Enable cycle; other changes apply in place. A mode
// that failed to enable is not retried until the mode changes.
func (a *BackgroundAurora) Update(s config.Settings) error {
	prevColors := a.effect.Colors()
	restart := a.effect.Update(s)

	switch {
	case !s.Background.Enabled:
		a.Disable()
		return nil
	case !a.effect.Enabled():
		if a.err != nil && a.effect.Mode() == a.failedMode {
			return nil
		}
		return a.Enable()
	case restart:
		a.Disable()
		return a.Enable()
	}

	if colors := a.effect.Colors(); colors != prevColors {
		slots := colors.Slots()
		for i, n := range a.nodes {
			if n != nil {
				n.Color = blobColor(slots[i])
			}
		}
	}
	return nil
}

// Uniforms returns the values of the last shader frame.
func (a *BackgroundAurora) Uniforms() (field.Uniforms, bool) {
	return a.effect.Uniforms()
}

// Blobs exposes the animator in blob mode, nil otherwise.
func (a *BackgroundAurora) Blobs() *motion.BlobAnimator { return a.effect.Blobs() }

// Nodes returns the blob paint nodes in blob mode.
func (a *BackgroundAurora) Nodes() []*BlobNode {
	if a.effect.Blobs() == nil {
		return nil
	}
	return a.nodes[:]
}

// Draw paints the background onto the current framebuffer. Frames before
// the first tick draw nothing.
func (a *BackgroundAurora) Draw() {
	if !a.effect.Enabled() {
		return
	}
	width, height := a.effect.Size()
	dest := rl.NewRectangle(0, 0, float32(width), float32(height))

	switch a.effect.Mode() {
	case config.ModeShader:
		uniforms, ready := a.effect.Uniforms()
		if !ready {
			return
		}
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
		rl.BeginShaderMode(a.program)
		shader.ApplyAurora(a.program, &a.params, uniforms)
		shader.DrawQuad(dest)
		rl.EndShaderMode()
		rl.EndBlendMode()

	case config.ModeBlobs:
		blobs := a.effect.Blobs()
		if a.target == nil || blobs == nil || blobs.Ticks() == 0 {
			return
		}
		rl.BeginTextureMode(*a.target)
		rl.ClearBackground(rl.Blank)
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
		for _, n := range a.nodes {
			if n != nil {
				n.Draw(float64(width), float64(height), blobScale)
			}
		}
		rl.EndBlendMode()
		rl.EndTextureMode()

		bg := a.effect.Settings()
		result := a.blur.Apply(*a.target, float32(bg.Blur*blobScale))

		o := float32(bg.Opacity)
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
		shader.DrawRenderTexture(result, dest, rl.ColorFromNormalized(rl.NewVector4(o, o, o, o)))
		rl.EndBlendMode()
	}
}
