package engine2D

import (
	"fmt"
	"math"

	"gradient-shine/internal/config"
	"gradient-shine/internal/engine2D/shader"
	"gradient-shine/internal/glow"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GlowRenderer paints the two glow containers around an input field with
// the elliptical gradient program. The halo goes through an offscreen
// target so it can be blurred.
type GlowRenderer struct {
	Glow *glow.Glow

	program rl.Shader
	params  shader.GradientParameters
	blur    *shader.BlurEffect
	halo    *rl.RenderTexture2D
	loaded  bool
}

func NewGlowRenderer(s config.Settings) *GlowRenderer {
	return &GlowRenderer{Glow: glow.NewGlow(s)}
}

// Load compiles the gradient and blur programs. On failure nothing stays
// loaded.
func (g *GlowRenderer) Load() error {
	if g.loaded {
		return nil
	}
	program, err := shader.LoadShader("gradient", map[string]int{"MAX_GRADIENTS": shader.MaxGradients})
	if err != nil {
		return fmt.Errorf("glow: %w", err)
	}
	blur, err := shader.LoadBlurEffect()
	if err != nil {
		shader.UnloadShader(program)
		return fmt.Errorf("glow: %w", err)
	}
	g.program = program
	g.params = shader.ResolveGradientLocations(program)
	g.blur = blur
	g.loaded = true
	return nil
}

func (g *GlowRenderer) Unload() {
	if !g.loaded {
		return
	}
	shader.UnloadShader(g.program)
	g.program = rl.Shader{}
	g.blur.Unload()
	g.blur = nil
	if g.halo != nil {
		rl.UnloadRenderTexture(*g.halo)
		g.halo = nil
	}
	g.loaded = false
}

// Draw paints both containers around field, back to front.
func (g *GlowRenderer) Draw(field glow.Rect) {
	if !g.loaded {
		return
	}
	g.drawHalo(&g.Glow.Halo, field)

	border := &g.Glow.Border
	b := border.Bounds(field)
	g.drawContainer(border, b, border.Opacity)
}

func (g *GlowRenderer) drawHalo(c *glow.Container, field glow.Rect) {
	b := c.Bounds(field)
	if b.W <= 0 || b.H <= 0 || c.Opacity <= 0 {
		return
	}
	pad := math.Ceil(3 * c.Blur)
	w := int32(b.W + 2*pad)
	h := int32(b.H + 2*pad)
	if g.halo == nil || g.halo.Texture.Width != w || g.halo.Texture.Height != h {
		if g.halo != nil {
			rl.UnloadRenderTexture(*g.halo)
		}
		rt := rl.LoadRenderTexture(w, h)
		rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
		g.halo = &rt
	}

	rl.BeginTextureMode(*g.halo)
	rl.ClearBackground(rl.Blank)
	g.drawContainer(c, glow.Rect{X: pad, Y: pad, W: b.W, H: b.H}, 1)
	rl.EndTextureMode()

	result := g.blur.Apply(*g.halo, float32(c.Blur))

	o := float32(c.Opacity)
	dest := rl.NewRectangle(float32(b.X-pad), float32(b.Y-pad), float32(w), float32(h))
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	shader.DrawRenderTexture(result, dest, rl.ColorFromNormalized(rl.NewVector4(o, o, o, o)))
	rl.EndBlendMode()
}

// drawContainer paints the three layers and the shine lines of c into box
// on the current target.
func (g *GlowRenderer) drawContainer(c *glow.Container, box glow.Rect, opacity float64) {
	if box.W <= 0 || box.H <= 0 {
		return
	}
	frame := c.Stack.Frame()
	radii := [4]float32{
		float32(c.Radii.TopLeft), float32(c.Radii.TopRight),
		float32(c.Radii.BottomRight), float32(c.Radii.BottomLeft),
	}
	dest := rl.NewRectangle(float32(box.X), float32(box.Y), float32(box.W), float32(box.H))

	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	rl.BeginShaderMode(g.program)
	for _, layer := range frame.Layers {
		gl := GradientLayer(layer.Background.Resolve(), layer.Opacity*opacity)
		shader.ApplyGradient(g.program, &g.params, gl, dest.Width, dest.Height, radii)
		shader.DrawQuad(dest)
	}
	rl.EndShaderMode()
	rl.EndBlendMode()

	stops := glow.ShineStops(c.Stack.Colors())
	for _, s := range frame.Shines {
		DrawShine(box, s.Edge, stops, s.Opacity*opacity)
	}
}

// GradientLayer flattens resolved clauses for the gradient program.
func GradientLayer(paints []glow.Paint, opacity float64) shader.GradientLayer {
	layer := shader.GradientLayer{Opacity: float32(opacity)}
	for _, p := range paints {
		layer.Ellipses = append(layer.Ellipses, [4]float32{float32(p.CX), float32(p.CY), float32(p.EW), float32(p.EH)})
		layer.Colors = append(layer.Colors, [4]float32{float32(p.Color.R), float32(p.Color.G), float32(p.Color.B), float32(p.Alpha)})
		layer.Fades = append(layer.Fades, float32(p.Fade))
	}
	return layer
}

// DrawShine paints a 1px highlight along one edge of box. Horizontal lines
// run left to right, vertical ones bottom to top.
func DrawShine(box glow.Rect, edge glow.Direction, stops []glow.ColorStop, opacity float64) {
	if len(stops) < 2 || opacity <= 0 {
		return
	}
	colors := make([]rl.Color, len(stops))
	for i, s := range stops {
		a := float32(s.Alpha * opacity)
		colors[i] = rl.ColorFromNormalized(rl.NewVector4(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a))
	}

	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	defer rl.EndBlendMode()

	horizontal := edge == glow.Top || edge == glow.Bottom
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i].Pos, stops[i+1].Pos
		if horizontal {
			y := box.Y
			if edge == glow.Bottom {
				y = box.Y + box.H - 1
			}
			x0 := box.X + a*box.W
			x1 := box.X + b*box.W
			rl.DrawRectangleGradientH(int32(x0), int32(y), int32(math.Ceil(x1-x0)), 1, colors[i], colors[i+1])
			continue
		}
		x := box.X
		if edge == glow.Right {
			x = box.X + box.W - 1
		}
		yTop := box.Y + box.H - b*box.H
		yBottom := box.Y + box.H - a*box.H
		rl.DrawRectangleGradientV(int32(x), int32(yTop), 1, int32(math.Ceil(yBottom-yTop)), colors[i+1], colors[i])
	}
}
