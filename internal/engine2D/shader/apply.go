package shader

import (
	"gradient-shine/internal/field"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ApplyAurora pushes every aurora uniform. It runs once per frame; nothing
// is assumed to persist in the program between frames.
func ApplyAurora(shader rl.Shader, parameters *AuroraParameters, u field.Uniforms) {
	if parameters.Time != -1 {
		rl.SetShaderValue(shader, parameters.Time, []float32{float32(u.Time)}, rl.ShaderUniformFloat)
	}
	if parameters.Amplitude != -1 {
		rl.SetShaderValue(shader, parameters.Amplitude, []float32{float32(u.Amplitude)}, rl.ShaderUniformFloat)
	}
	if parameters.ColorStops != -1 {
		stops := make([]float32, 0, 9)
		for _, c := range u.ColorStops {
			stops = append(stops, float32(c.R), float32(c.G), float32(c.B))
		}
		rl.SetShaderValueV(shader, parameters.ColorStops, stops, rl.ShaderUniformVec3, int32(len(u.ColorStops)))
	}
	if parameters.Resolution != -1 {
		rl.SetShaderValue(shader, parameters.Resolution, []float32{float32(u.Resolution[0]), float32(u.Resolution[1])}, rl.ShaderUniformVec2)
	}
	if parameters.Blend != -1 {
		rl.SetShaderValue(shader, parameters.Blend, []float32{float32(u.Blend)}, rl.ShaderUniformFloat)
	}
	if parameters.Opacity != -1 {
		rl.SetShaderValue(shader, parameters.Opacity, []float32{float32(u.Opacity)}, rl.ShaderUniformFloat)
	}
	if parameters.Mouse != -1 {
		rl.SetShaderValue(shader, parameters.Mouse, []float32{float32(u.Mouse[0]), float32(u.Mouse[1])}, rl.ShaderUniformVec2)
	}
}

// GradientLayer is one glow layer flattened for upload: ellipses as
// (cx, cy, ew, eh) in percent, straight-alpha colours, fades in percent.
type GradientLayer struct {
	Ellipses [][4]float32
	Colors   [][4]float32
	Fades    []float32
	Opacity  float32
}

// ApplyGradient uploads one glow layer for a container of the given size
// and corner radii (tl, tr, br, bl).
func ApplyGradient(shader rl.Shader, parameters *GradientParameters, layer GradientLayer, width, height float32, radii [4]float32) {
	n := len(layer.Ellipses)
	if n > MaxGradients {
		n = MaxGradients
	}

	if parameters.Size != -1 {
		rl.SetShaderValue(shader, parameters.Size, []float32{width, height}, rl.ShaderUniformVec2)
	}
	if parameters.Radii != -1 {
		rl.SetShaderValue(shader, parameters.Radii, radii[:], rl.ShaderUniformVec4)
	}
	if parameters.Count != -1 {
		rl.SetShaderValue(shader, parameters.Count, []float32{float32(n)}, rl.ShaderUniformFloat)
	}
	if parameters.Opacity != -1 {
		rl.SetShaderValue(shader, parameters.Opacity, []float32{layer.Opacity}, rl.ShaderUniformFloat)
	}
	if n == 0 {
		return
	}

	ellipses := make([]float32, 0, n*4)
	colors := make([]float32, 0, n*4)
	for i := 0; i < n; i++ {
		ellipses = append(ellipses, layer.Ellipses[i][:]...)
		colors = append(colors, layer.Colors[i][:]...)
	}
	if parameters.Ellipses != -1 {
		rl.SetShaderValueV(shader, parameters.Ellipses, ellipses, rl.ShaderUniformVec4, int32(n))
	}
	if parameters.Colors != -1 {
		rl.SetShaderValueV(shader, parameters.Colors, colors, rl.ShaderUniformVec4, int32(n))
	}
	if parameters.Fades != -1 {
		rl.SetShaderValueV(shader, parameters.Fades, layer.Fades[:n], rl.ShaderUniformFloat, int32(n))
	}
}

func ApplyBlur(shader rl.Shader, parameters *BlurParameters, width, height int32, sigma float32) {
	if parameters.Texel != -1 && width > 0 && height > 0 {
		rl.SetShaderValue(shader, parameters.Texel, []float32{1.0 / float32(width), 1.0 / float32(height)}, rl.ShaderUniformVec2)
	}
	if parameters.Sigma != -1 {
		rl.SetShaderValue(shader, parameters.Sigma, []float32{sigma}, rl.ShaderUniformFloat)
	}
}
