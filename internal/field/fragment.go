package field

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Uniforms is the full input of one aurora frame. Every value is pushed to
// the program each frame; nothing is cached on the GPU side.
type Uniforms struct {
	Time       float64
	Amplitude  float64
	ColorStops [3]colorful.Color
	Resolution [2]float64
	Blend      float64
	Opacity    float64
	Mouse      [2]float64
}

// RGBA is a premultiplied fragment colour, components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// ShaderTime converts a frame timestamp in milliseconds into the program's
// time uniform. Speed scales time, not noise frequency.
func ShaderTime(frameMs, speed float64) float64 {
	return frameMs * 0.01 * speed * 0.1
}

// Ramp breakpoints along the horizontal axis.
const (
	rampMid = 0.3
	rampEnd = 0.6
)

// Ramp is the three-stop horizontal colour ramp.
func Ramp(stops [3]colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return stops[0]
	case t < rampMid:
		return mix(stops[0], stops[1], t/rampMid)
	case t < rampEnd:
		return mix(stops[1], stops[2], (t-rampMid)/(rampEnd-rampMid))
	default:
		return stops[2]
	}
}

// mix is a component-wise GLSL mix, without any colour-space conversion.
func mix(a, b colorful.Color, t float64) colorful.Color {
	return colorful.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Shade evaluates the aurora at a fragment coordinate. Coordinates follow
// the GL convention: pixel centres, y growing upwards.
func Shade(u Uniforms, fragX, fragY float64) RGBA {
	if u.Resolution[0] <= 0 || u.Resolution[1] <= 0 {
		return RGBA{}
	}
	uvx := fragX / u.Resolution[0]
	uvy := fragY / u.Resolution[1]

	ramp := Ramp(u.ColorStops, uvx)

	n1 := Simplex2(uvx*2+u.Time*0.1+u.Mouse[0]*0.5, u.Time*0.25) * 0.5 * u.Amplitude
	n2 := Simplex2(uvx*3-u.Time*0.15+u.Mouse[0]*0.3, u.Time*0.2+10) * 0.5 * u.Amplitude
	height := math.Exp(n1 + n2*0.5)
	height = uvy*2 - height + 0.2 + u.Mouse[1]*0.2

	intensity := 0.6 * height
	const midPoint = 0.2
	alpha := Smoothstep(midPoint-u.Blend*0.5, midPoint+u.Blend*0.5, intensity)

	k := intensity * alpha * u.Opacity
	return RGBA{
		R: clamp01(ramp.R * k),
		G: clamp01(ramp.G * k),
		B: clamp01(ramp.B * k),
		A: clamp01(alpha * u.Opacity),
	}
}
