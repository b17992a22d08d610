package glow

import (
	"fmt"
	"math"
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"
)

// Timing is the loop length and one-off start delay of an animated element.
type Timing struct {
	Duration time.Duration
	Delay    time.Duration
}

// Timings derives the per-layer loops from the animation speed (seconds).
type Timings struct {
	Layers [LayerCount]Timing
	Shine  Timing
}

func NewTimings(speed float64) Timings {
	return Timings{
		Layers: [LayerCount]Timing{
			{Duration: seconds(speed)},
			{Duration: seconds(speed * 1.67)},
			{Duration: seconds(speed * 2), Delay: seconds(speed * 0.15)},
		},
		Shine: Timing{Duration: seconds(speed * 0.8)},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Layer opacities. Only layer 1 and the shines animate theirs.
var (
	layer1Opacity = [KeyframeCount]float64{0.7, 1, 0.7}
	shineOpacity  = [KeyframeCount]float64{0.2, 0.7, 0.2}
)

const (
	layer2Opacity = 0.85
	layer3Opacity = 0.65
)

// LayerFrame is the evaluated state of one gradient layer.
type LayerFrame struct {
	Background Composite
	Opacity    float64
}

// ShineFrame is the evaluated state of one highlight line.
type ShineFrame struct {
	Shine
	Gradient string
	Opacity  float64
}

// Frame is everything a paint target needs to draw one container.
type Frame struct {
	Layers [LayerCount]LayerFrame
	Shines []ShineFrame
}

// Stack animates the three gradient layers and the shine lines of one
// container. Two containers need two stacks; timelines are never shared.
type Stack struct {
	sets        []AnchorSet
	colors      config.GradientColors
	direction   config.DirectionConfig
	backgrounds [LayerCount]Keyframes

	speed   float64
	running bool
	layers  [LayerCount]*motion.Timeline
	shines  []*motion.Timeline
}

func NewStack(settings config.Settings) *Stack {
	st := &Stack{}
	st.speed = settings.Animation.Speed
	st.running = settings.Animation.Running

	t := NewTimings(st.speed)
	for l := range st.layers {
		st.layers[l] = motion.NewTimeline(t.Layers[l].Duration, t.Layers[l].Delay, motion.EaseInOut)
		st.layers[l].SetRunning(st.running)
	}
	st.rebuild(settings.Colors, settings.Direction)
	return st
}

func (st *Stack) rebuild(colors config.GradientColors, dir config.DirectionConfig) {
	st.colors = colors.Normalize()
	st.direction = dir
	st.sets = AnchorSets(dir)
	st.backgrounds = Backgrounds(st.sets, st.colors)

	t := NewTimings(st.speed)
	// Shines are keyed by position in the active list, so surviving ones
	// keep their phase when a direction is added or removed.
	shines := make([]*motion.Timeline, len(st.sets))
	for i := range shines {
		if i < len(st.shines) {
			shines[i] = st.shines[i]
			continue
		}
		shines[i] = motion.NewTimeline(t.Shine.Duration, t.Shine.Delay, motion.EaseInOut)
		shines[i].SetRunning(st.running)
	}
	st.shines = shines
}

// Update applies new settings. Geometry and colours are rebuilt when they
// changed, loops are retimed keeping their phase when the speed changed.
func (st *Stack) Update(settings config.Settings) {
	if settings.Colors.Normalize() != st.colors || settings.Direction != st.direction {
		st.rebuild(settings.Colors, settings.Direction)
	}
	if settings.Animation.Speed != st.speed {
		st.speed = settings.Animation.Speed
		t := NewTimings(st.speed)
		for l, tl := range st.layers {
			tl.Retime(t.Layers[l].Duration, t.Layers[l].Delay)
		}
		for _, tl := range st.shines {
			tl.Retime(t.Shine.Duration, t.Shine.Delay)
		}
	}
	st.SetRunning(settings.Animation.Running)
}

// SetRunning pauses or resumes every loop. Pausing freezes the current
// frame; nothing is rewound.
func (st *Stack) SetRunning(running bool) {
	if running == st.running {
		return
	}
	st.running = running
	for _, tl := range st.layers {
		tl.SetRunning(running)
	}
	for _, tl := range st.shines {
		tl.SetRunning(running)
	}
	utils.Debug("Glow: playback %s", playState(running))
}

func (st *Stack) Running() bool { return st.running }

func (st *Stack) Advance(dt time.Duration) {
	for _, tl := range st.layers {
		tl.Advance(dt)
	}
	for _, tl := range st.shines {
		tl.Advance(dt)
	}
}

func (st *Stack) AnchorSets() []AnchorSet { return st.sets }

func (st *Stack) Backgrounds() [LayerCount]Keyframes { return st.backgrounds }

// Colors is the normalized palette the backgrounds were built from.
func (st *Stack) Colors() config.GradientColors { return st.colors }

// Timeline exposes the loop of layer l for inspection.
func (st *Stack) Timeline(l int) *motion.Timeline { return st.layers[l] }

// Frame evaluates every layer and shine at the current loop positions.
func (st *Stack) Frame() Frame {
	var f Frame
	for l, tl := range st.layers {
		seg, frac := tl.Sample(KeyframeCount)
		kf := st.backgrounds[l]
		f.Layers[l].Background = interpolateComposite(kf[seg], kf[seg+1], frac)
	}
	f.Layers[Layer1].Opacity = st.layers[Layer1].Scalar(layer1Opacity[:]...)
	f.Layers[Layer2].Opacity = layer2Opacity
	f.Layers[Layer3].Opacity = layer3Opacity

	f.Shines = make([]ShineFrame, len(st.sets))
	for i, set := range st.sets {
		f.Shines[i] = ShineFrame{
			Shine:    set.Shine,
			Gradient: ShineGradient(set.Shine.Angle, st.colors),
			Opacity:  st.shines[i].Scalar(shineOpacity[:]...),
		}
	}
	return f
}

func interpolateComposite(a, b Composite, t float64) Composite {
	out := make(Composite, len(a))
	for i := range a {
		out[i] = RadialGradient{
			Anchor: Anchor{
				CX: motion.Lerp(a[i].CX, b[i].CX, t),
				CY: motion.Lerp(a[i].CY, b[i].CY, t),
				EW: motion.Lerp(a[i].EW, b[i].EW, t),
				EH: motion.Lerp(a[i].EH, b[i].EH, t),
			},
			Color: MixColor(a[i].Color, b[i].Color, t),
			Fade:  motion.Lerp(a[i].Fade, b[i].Fade, t),
		}
	}
	return out
}

// MixColor blends two CSS colours in linear RGB and their alpha linearly.
// The result is #rrggbbaa when either end is translucent. Colours that
// cannot be parsed switch over at the halfway point instead.
func MixColor(a, b string, t float64) string {
	switch {
	case a == b || t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, alphaA, errA := utils.ParseColor(a)
	cb, alphaB, errB := utils.ParseColor(b)
	if errA != nil || errB != nil {
		if t < 0.5 {
			return a
		}
		return b
	}
	hex := ca.BlendLinearRgb(cb, t).Clamped().Hex()
	if alphaA >= 1 && alphaB >= 1 {
		return hex
	}
	alpha := motion.Lerp(alphaA, alphaB, t)
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(math.Max(0, math.Min(1, alpha))*255)))
}

func playState(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}
