package glow

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gradient-shine/internal/config"
	"gradient-shine/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
)

// RadialGradient is one elliptical clause: a solid colour at the centre that
// fades to transparent at Fade percent of the ellipse.
type RadialGradient struct {
	Anchor
	Color string
	Fade  float64
}

func (g RadialGradient) String() string {
	return fmt.Sprintf("radial-gradient(ellipse %s%% %s%% at %s%% %s%%, %s 0%%, transparent %s%%)",
		num(g.EW), num(g.EH), num(g.CX), num(g.CY), g.Color, num(g.Fade))
}

// Composite stacks one gradient per active direction into a single paint
// layer, in the order of the active-direction list.
type Composite []RadialGradient

func (c Composite) String() string {
	parts := make([]string, len(c))
	for i, g := range c {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}

// Keyframes is the composite of one layer at start, middle and end.
type Keyframes [KeyframeCount]Composite

// LayerStyle is the colour and fade of one layer at each keyframe.
type LayerStyle struct {
	Colors [KeyframeCount]string
	Fades  [KeyframeCount]float64
}

// LayerStyles applies the per-layer colour policy: layer 1 keeps color1 and
// blooms its fade at the middle keyframe, layer 2 sweeps from color2 to
// color3 and back, layer 3 keeps color4 with a wider middle fade.
func LayerStyles(colors config.GradientColors) [LayerCount]LayerStyle {
	c := colors.Slots()
	return [LayerCount]LayerStyle{
		{Colors: [3]string{c[0], c[0], c[0]}, Fades: [3]float64{70, 75, 70}},
		{Colors: [3]string{c[1], c[2], c[1]}, Fades: [3]float64{60, 65, 60}},
		{Colors: [3]string{c[3], c[3], c[3]}, Fades: [3]float64{55, 60, 55}},
	}
}

// BuildComposite renders one layer of every anchor set at all three
// keyframes.
func BuildComposite(sets []AnchorSet, layer int, style LayerStyle) Keyframes {
	var out Keyframes
	for k := range out {
		comp := make(Composite, len(sets))
		for i, set := range sets {
			comp[i] = RadialGradient{
				Anchor: set.Layers[layer][k],
				Color:  style.Colors[k],
				Fade:   style.Fades[k],
			}
		}
		out[k] = comp
	}
	return out
}

// Backgrounds builds the keyframes of all three layers.
func Backgrounds(sets []AnchorSet, colors config.GradientColors) [LayerCount]Keyframes {
	styles := LayerStyles(colors)
	var out [LayerCount]Keyframes
	for l := range out {
		out[l] = BuildComposite(sets, l, styles[l])
	}
	return out
}

// ShineGradient is the highlight line fill for a shine at the given angle.
func ShineGradient(angle float64, colors config.GradientColors) string {
	c := colors.Slots()
	return fmt.Sprintf("linear-gradient(%sdeg, transparent 5%%, %s, %s, %s, transparent 95%%)",
		num(angle), withAlpha(c[0], 0x88), withAlpha(c[1], 0x66), withAlpha(c[2], 0x44))
}

// withAlpha writes c as #rrggbbaa with its own alpha scaled by a/255, so
// named and functional colours stay valid CSS.
func withAlpha(c string, a uint8) string {
	col, alpha, err := utils.ParseColor(c)
	if err != nil {
		return fmt.Sprintf("%s%02x", c, a)
	}
	return fmt.Sprintf("%s%02x", col.Clamped().Hex(), uint8(math.Round(alpha*float64(a))))
}

// ColorStop is one stop of a linear gradient, Pos in [0,1].
type ColorStop struct {
	Pos   float64
	Color colorful.Color
	Alpha float64
}

// ShineStops resolves ShineGradient into explicit stops. The three colour
// stops carry no position so they spread evenly between 5% and 95%.
func ShineStops(colors config.GradientColors) []ColorStop {
	c := colors.Slots()
	alphas := [3]float64{0x88, 0x66, 0x44}
	stops := []ColorStop{{Pos: 0.05}}
	for i := 0; i < 3; i++ {
		col, a, err := utils.ParseColor(c[i])
		if err != nil {
			col, a = colorful.Color{}, 0
		}
		stops = append(stops, ColorStop{
			Pos:   0.05 + 0.9*float64(i+1)/4,
			Color: col,
			Alpha: a * alphas[i] / 255,
		})
	}
	return append(stops, ColorStop{Pos: 0.95})
}

// Paint is one clause resolved to numbers for a rasterizer.
type Paint struct {
	Anchor
	Color colorful.Color
	Alpha float64
	Fade  float64
}

// Resolve parses every clause colour. Unparseable colours paint nothing.
func (c Composite) Resolve() []Paint {
	out := make([]Paint, 0, len(c))
	for _, g := range c {
		col, a, err := utils.ParseColor(g.Color)
		if err != nil {
			utils.Debug("Glow: %v", err)
			a = 0
		}
		out = append(out, Paint{Anchor: g.Anchor, Color: col, Alpha: a, Fade: g.Fade})
	}
	return out
}

// At evaluates the clause at (x, y) inside a w×h box, straight alpha.
func (p Paint) At(x, y, w, h float64) float64 {
	rx, ry := p.EW/100*w, p.EH/100*h
	if rx <= 0 || ry <= 0 || p.Fade <= 0 {
		return 0
	}
	dx := (x - p.CX/100*w) / rx
	dy := (y - p.CY/100*h) / ry
	d := math.Sqrt(dx*dx+dy*dy) / (p.Fade / 100)
	if d >= 1 {
		return 0
	}
	return p.Alpha * (1 - d)
}

// num prints the shortest decimal form of v.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
