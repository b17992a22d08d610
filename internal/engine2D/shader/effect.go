package shader

import (
	"fmt"

	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadedPass is one compiled blur axis with its resolved uniforms.
type LoadedPass struct {
	Name       string
	Shader     rl.Shader
	Parameters BlurParameters
}

// BlurEffect is a separable gaussian applied through two ping-pong render
// targets: horizontal into the first, vertical into the second.
type BlurEffect struct {
	Passes   [2]LoadedPass
	PingPong [2]*rl.RenderTexture2D
}

// LoadBlurEffect compiles both passes. On failure nothing stays loaded.
func LoadBlurEffect() (*BlurEffect, error) {
	effect := &BlurEffect{}
	for i, horizontal := range []int{1, 0} {
		combos := map[string]int{"HORIZONTAL": horizontal, "TAPS": BlurTaps}
		sh, err := LoadShader("blur", combos)
		if err != nil {
			effect.Unload()
			return nil, fmt.Errorf("blur pass %d: %w", i, err)
		}
		effect.Passes[i] = LoadedPass{
			Name:       fmt.Sprintf("blur[h=%d]", horizontal),
			Shader:     sh,
			Parameters: ResolveBlurLocations(sh),
		}
	}
	return effect, nil
}

// ensureTargets (re)allocates the ping-pong targets for a w×h source.
func (e *BlurEffect) ensureTargets(w, h int32) {
	if e.PingPong[0] != nil && e.PingPong[0].Texture.Width == w && e.PingPong[0].Texture.Height == h {
		return
	}
	e.releaseTargets()
	for i := range e.PingPong {
		rt := rl.LoadRenderTexture(w, h)
		rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
		rl.SetTextureWrap(rt.Texture, rl.WrapClamp)
		e.PingPong[i] = &rt
	}
	utils.Debug("Effect: Blur targets resized to %dx%d", w, h)
}

func (e *BlurEffect) releaseTargets() {
	for i, rt := range e.PingPong {
		if rt != nil {
			rl.UnloadRenderTexture(*rt)
			e.PingPong[i] = nil
		}
	}
}

// Apply blurs src with the given sigma in source pixels and returns the
// target holding the result. A sigma below half a pixel returns src.
func (e *BlurEffect) Apply(src rl.RenderTexture2D, sigma float32) rl.RenderTexture2D {
	if sigma < 0.5 {
		return src
	}
	w, h := src.Texture.Width, src.Texture.Height
	e.ensureTargets(w, h)

	input := src
	for i := range e.Passes {
		pass := &e.Passes[i]
		target := *e.PingPong[i]

		rl.BeginTextureMode(target)
		rl.ClearBackground(rl.Blank)
		rl.BeginShaderMode(pass.Shader)
		ApplyBlur(pass.Shader, &pass.Parameters, w, h, sigma)
		DrawRenderTexture(input, rl.NewRectangle(0, 0, float32(w), float32(h)), rl.White)
		rl.EndShaderMode()
		rl.EndTextureMode()

		input = target
	}
	return input
}

func (e *BlurEffect) Unload() {
	for i := range e.Passes {
		UnloadShader(e.Passes[i].Shader)
		e.Passes[i] = LoadedPass{}
	}
	e.releaseTargets()
}
