package field

import (
	"gradient-shine/internal/config"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
)

// Feed produces the uniforms of consecutive frames. It owns the pointer
// smoothing of one shader effect instance.
type Feed struct {
	filter     *motion.PointerFilter
	resolution [2]float64
}

func NewFeed(width, height int) *Feed {
	f := &Feed{filter: motion.NewPointerFilter(motion.ShaderSmoothing)}
	f.Resize(width, height)
	return f
}

func (f *Feed) Resize(width, height int) {
	f.resolution = [2]float64{float64(width), float64(height)}
}

func (f *Feed) Resolution() (width, height float64) {
	return f.resolution[0], f.resolution[1]
}

// Pointer records the latest raw pointer sample.
func (f *Feed) Pointer(e motion.PointerEvent) {
	f.filter.SetTarget(e.Normalized())
}

// Smoothed is the current filtered pointer position.
func (f *Feed) Smoothed() motion.Vec2 { return f.filter.Current }

func (f *Feed) Reset() { f.filter.Reset() }

// Next steps the pointer filter once and assembles the uniforms for the
// frame at frameMs.
func (f *Feed) Next(frameMs float64, colors config.GradientColors, bg config.BackgroundSettings) Uniforms {
	m := f.filter.Step()
	return Uniforms{
		Time:       ShaderTime(frameMs, bg.Speed),
		Amplitude:  bg.Amplitude,
		ColorStops: ColorStops(colors),
		Resolution: f.resolution,
		Blend:      bg.Blend,
		Opacity:    bg.Opacity,
		Mouse:      MouseUniform(m, bg.MouseFollow),
	}
}

// MouseUniform scales the smoothed pointer by the follow strength and flips
// y to the GL orientation.
func MouseUniform(smoothed motion.Vec2, follow float64) [2]float64 {
	return [2]float64{smoothed.X * follow, -smoothed.Y * follow}
}

// ColorStops takes the first three palette slots as ramp stops.
func ColorStops(colors config.GradientColors) [3]colorful.Color {
	s := colors.Slots()
	return [3]colorful.Color{utils.MustColor(s[0]), utils.MustColor(s[1]), utils.MustColor(s[2])}
}
