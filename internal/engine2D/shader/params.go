package shader

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxGradients bounds the per-layer clause count: one per direction.
const MaxGradients = 4

// BlurTaps is the number of samples on each side of a blur pass.
const BlurTaps = 24

// AuroraParameters are the uniform locations of the aurora program.
type AuroraParameters struct {
	Time       int32
	Amplitude  int32
	ColorStops int32
	Resolution int32
	Blend      int32
	Opacity    int32
	Mouse      int32
}

type GradientParameters struct {
	Size     int32
	Radii    int32
	Count    int32
	Ellipses int32
	Colors   int32
	Fades    int32
	Opacity  int32
}

type BlurParameters struct {
	Texel int32
	Sigma int32
}

// ResolveAuroraLocations queries the aurora program for all uniform
// locations. Missing uniforms resolve to -1 and are skipped when applied.
func ResolveAuroraLocations(shader rl.Shader) AuroraParameters {
	parameters := AuroraParameters{
		Time:       rl.GetShaderLocation(shader, "uTime"),
		Amplitude:  rl.GetShaderLocation(shader, "uAmplitude"),
		ColorStops: rl.GetShaderLocation(shader, "uColorStops"),
		Resolution: rl.GetShaderLocation(shader, "uResolution"),
		Blend:      rl.GetShaderLocation(shader, "uBlend"),
		Opacity:    rl.GetShaderLocation(shader, "uOpacity"),
		Mouse:      rl.GetShaderLocation(shader, "uMouse"),
	}

	// Some drivers only expose the first array element by its full name.
	if parameters.ColorStops == -1 {
		parameters.ColorStops = rl.GetShaderLocation(shader, "uColorStops[0]")
	}
	return parameters
}

func ResolveGradientLocations(shader rl.Shader) GradientParameters {
	parameters := GradientParameters{
		Size:     rl.GetShaderLocation(shader, "uSize"),
		Radii:    rl.GetShaderLocation(shader, "uRadii"),
		Count:    rl.GetShaderLocation(shader, "uCount"),
		Ellipses: rl.GetShaderLocation(shader, "uEllipse"),
		Colors:   rl.GetShaderLocation(shader, "uColor"),
		Fades:    rl.GetShaderLocation(shader, "uFade"),
		Opacity:  rl.GetShaderLocation(shader, "uOpacity"),
	}

	if parameters.Ellipses == -1 {
		parameters.Ellipses = rl.GetShaderLocation(shader, "uEllipse[0]")
	}
	if parameters.Colors == -1 {
		parameters.Colors = rl.GetShaderLocation(shader, "uColor[0]")
	}
	if parameters.Fades == -1 {
		parameters.Fades = rl.GetShaderLocation(shader, "uFade[0]")
	}
	return parameters
}

func ResolveBlurLocations(shader rl.Shader) BlurParameters {
	return BlurParameters{
		Texel: rl.GetShaderLocation(shader, "uTexel"),
		Sigma: rl.GetShaderLocation(shader, "uSigma"),
	}
}
