package glow

import (
	"fmt"
	"strconv"
	"strings"

	"gradient-shine/internal/config"
)

// DebugCSS is the short "Live CSS" summary of the input-field glow.
func DebugCSS(s config.Settings) string {
	c := s.Colors.Normalize()
	speed := s.Animation.Speed

	var sb strings.Builder
	sb.WriteString("/* Aurora Glow — 4 animated radial-gradient layers */\n")
	sb.WriteString("/* Layer 1: Base horizon glow */\n")
	sb.WriteString("background: radial-gradient(\n  ellipse 80% 50% at 50% 110%,\n")
	fmt.Fprintf(&sb, "  %s 0%%, transparent 70%%);\n", c.Color1)
	fmt.Fprintf(&sb, "opacity: 0.7 → 1 → 0.7;  /* %ss loop */\n\n", num(speed))

	sb.WriteString("/* Layer 2: Aurora sweep */\n")
	sb.WriteString("background: radial-gradient(\n  ellipse 55% 45% at 15%→50%→85% 80%,\n")
	fmt.Fprintf(&sb, "  %s → %s);\n", c.Color2, c.Color3)
	fmt.Fprintf(&sb, "duration: %ss;\n\n", fixed1(speed*1.67))

	sb.WriteString("/* Layer 3: Counter sweep */\n")
	sb.WriteString("background: radial-gradient(\n  ellipse 50% 40% at 80%→45%→15% 85%,\n")
	fmt.Fprintf(&sb, "  %s);\n", c.Color1)
	fmt.Fprintf(&sb, "duration: %ss;\n\n", fixed1(speed*2))

	sb.WriteString("/* Layer 4: Top-edge shine */\n")
	sb.WriteString("background: linear-gradient(90deg,\n")
	fmt.Fprintf(&sb, "  transparent, %s88,\n  %s66, transparent);\n\n", c.Color1, c.Color2)

	sb.WriteString("/* Glow container */\n")
	fmt.Fprintf(&sb, "filter: blur(%spx);\n", num(s.Glow.Blur))
	fmt.Fprintf(&sb, "opacity: %s;\n", num(s.Glow.Intensity))
	fmt.Fprintf(&sb, "inset: -%spx;\n", num(s.Glow.Spread))
	fmt.Fprintf(&sb, "border-radius: %spx;", num(s.Border.Radius))
	return sb.String()
}

// KeyframesCSS renders a standalone stylesheet that reproduces the whole
// animated glow with @keyframes: both containers, three layers and one
// shine per active direction.
func KeyframesCSS(s config.Settings) string {
	sets := AnchorSets(s.Direction)
	colors := s.Colors.Normalize()
	bgs := Backgrounds(sets, colors)
	t := NewTimings(s.Animation.Speed)
	play := playState(s.Animation.Running)

	g := NewGlow(s)

	var sb strings.Builder
	sb.WriteString("/* Aurora Glow — generated stylesheet */\n\n")
	sb.WriteString(".aurora-field {\n  position: relative;\n")
	fmt.Fprintf(&sb, "  border-radius: %spx;\n}\n\n", num(s.Border.Radius))

	for i, c := range g.Containers() {
		fmt.Fprintf(&sb, ".aurora-%s-container {\n", c.Name)
		sb.WriteString("  position: absolute;\n")
		fmt.Fprintf(&sb, "  z-index: %d;\n", i)
		fmt.Fprintf(&sb, "  inset: -%spx -%spx -%spx -%spx;\n",
			num(c.Outset.Top), num(c.Outset.Right), num(c.Outset.Bottom), num(c.Outset.Left))
		fmt.Fprintf(&sb, "  border-radius: %spx %spx %spx %spx;\n",
			num(c.Radii.TopLeft), num(c.Radii.TopRight), num(c.Radii.BottomRight), num(c.Radii.BottomLeft))
		if c.Opacity != 1 {
			fmt.Fprintf(&sb, "  opacity: %s;\n", num(c.Opacity))
		}
		if c.Blur > 0 {
			fmt.Fprintf(&sb, "  filter: blur(%spx);\n", num(c.Blur))
		}
		sb.WriteString("  overflow: hidden;\n  pointer-events: none;\n}\n\n")
	}

	for l := 0; l < LayerCount; l++ {
		name := fmt.Sprintf("aurora-layer-%d", l+1)
		fmt.Fprintf(&sb, ".%s {\n  position: absolute;\n  inset: 0;\n  border-radius: inherit;\n", name)
		switch l {
		case Layer2:
			fmt.Fprintf(&sb, "  opacity: %s;\n", num(layer2Opacity))
		case Layer3:
			fmt.Fprintf(&sb, "  opacity: %s;\n", num(layer3Opacity))
		}
		writeAnimation(&sb, name, t.Layers[l], play)
		sb.WriteString("}\n\n")

		fmt.Fprintf(&sb, "@keyframes %s {\n", name)
		for k, comp := range bgs[l] {
			fmt.Fprintf(&sb, "  %d%% {\n    background: %s;\n", k*50, comp)
			if l == Layer1 {
				fmt.Fprintf(&sb, "    opacity: %s;\n", num(layer1Opacity[k]))
			}
			sb.WriteString("  }\n")
		}
		sb.WriteString("}\n\n")
	}

	for _, set := range sets {
		name := "aurora-shine-" + string(set.Direction)
		fmt.Fprintf(&sb, ".%s {\n  position: absolute;\n  border-radius: inherit;\n", name)
		fmt.Fprintf(&sb, "  background: %s;\n", ShineGradient(set.Shine.Angle, colors))
		switch set.Shine.Edge {
		case Top:
			sb.WriteString("  top: 0; left: 0; right: 0; height: 1px;\n")
		case Bottom:
			sb.WriteString("  bottom: 0; left: 0; right: 0; height: 1px;\n")
		case Left:
			sb.WriteString("  top: 0; bottom: 0; left: 0; width: 1px;\n")
		case Right:
			sb.WriteString("  top: 0; bottom: 0; right: 0; width: 1px;\n")
		}
		writeAnimation(&sb, "aurora-shine", t.Shine, play)
		sb.WriteString("}\n\n")
	}

	sb.WriteString("@keyframes aurora-shine {\n")
	for k, o := range shineOpacity {
		fmt.Fprintf(&sb, "  %d%% { opacity: %s; }\n", k*50, num(o))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func writeAnimation(sb *strings.Builder, name string, t Timing, play string) {
	fmt.Fprintf(sb, "  animation: %s %ss ease-in-out %ss infinite alternate;\n",
		name, num(t.Duration.Seconds()), num(t.Delay.Seconds()))
	fmt.Fprintf(sb, "  animation-play-state: %s;\n", play)
}

func fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
