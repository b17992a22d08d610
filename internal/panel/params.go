package panel

import (
	"math"
	"strconv"

	"gradient-shine/internal/config"
)

// Param is one adjustable number of the settings.
type Param struct {
	Label    string
	Min, Max float64
	Step     float64
	Get      func(*config.Settings) float64
	Set      func(*config.Settings, float64)
}

// Adjust moves the value by steps increments, clamped to the range and
// rounded to the step.
func (p Param) Adjust(s *config.Settings, steps int) {
	v := p.Get(s) + float64(steps)*p.Step
	v = math.Round(v/p.Step) * p.Step
	p.Set(s, math.Max(p.Min, math.Min(p.Max, v)))
}

// Fraction is the position of the value inside its range, in [0,1].
func (p Param) Fraction(s *config.Settings) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (p.Get(s)-p.Min)/(p.Max-p.Min)))
}

func (p Param) Format(s *config.Settings) string {
	decimals := 0
	if p.Step < 1 {
		decimals = len(strconv.FormatFloat(p.Step, 'f', -1, 64)) - 2
	}
	return strconv.FormatFloat(p.Get(s), 'f', decimals, 64)
}

// floatParam edits the float64 field that field points at.
func floatParam(label string, lo, hi, step float64, field func(*config.Settings) *float64) Param {
	return Param{
		Label: label, Min: lo, Max: hi, Step: step,
		Get: func(s *config.Settings) float64 { return *field(s) },
		Set: func(s *config.Settings, v float64) { *field(s) = v },
	}
}

// intParam edits an integer field, rounding on the way in.
func intParam(label string, lo, hi float64, field func(*config.Settings) *int) Param {
	return Param{
		Label: label, Min: lo, Max: hi, Step: 1,
		Get: func(s *config.Settings) float64 { return float64(*field(s)) },
		Set: func(s *config.Settings, v float64) { *field(s) = int(math.Round(v)) },
	}
}

// Section groups the parameters of one effect.
type Section int

const (
	SectionInput Section = iota
	SectionBackground
	sectionCount
)

func (s Section) String() string {
	if s == SectionBackground {
		return "Background Aurora"
	}
	return "Input Field"
}

// Params lists the adjustable numbers of a section with the ranges of the
// settings clamp.
func Params(section Section) []Param {
	if section == SectionBackground {
		return []Param{
			floatParam("Opacity", 0, 1, 0.05, func(s *config.Settings) *float64 { return &s.Background.Opacity }),
			floatParam("Blur", 20, 200, 5, func(s *config.Settings) *float64 { return &s.Background.Blur }),
			floatParam("Mouse follow", 0, 1, 0.05, func(s *config.Settings) *float64 { return &s.Background.MouseFollow }),
			floatParam("Speed", 0.1, 5, 0.1, func(s *config.Settings) *float64 { return &s.Background.Speed }),
			floatParam("Amplitude", 0, 3, 0.1, func(s *config.Settings) *float64 { return &s.Background.Amplitude }),
			floatParam("Blend", 0, 1, 0.05, func(s *config.Settings) *float64 { return &s.Background.Blend }),
		}
	}
	return []Param{
		floatParam("Intensity", 0, 1, 0.05, func(s *config.Settings) *float64 { return &s.Glow.Intensity }),
		floatParam("Spread", 0, 60, 1, func(s *config.Settings) *float64 { return &s.Glow.Spread }),
		floatParam("Glow blur", 0, 80, 1, func(s *config.Settings) *float64 { return &s.Glow.Blur }),
		floatParam("Speed", 0.5, 15, 0.5, func(s *config.Settings) *float64 { return &s.Animation.Speed }),
		floatParam("Border width", 1, 8, 1, func(s *config.Settings) *float64 { return &s.Border.Width }),
		floatParam("Radius", 0, 32, 1, func(s *config.Settings) *float64 { return &s.Border.Radius }),
		floatParam("Edge top", 0, 12, 1, func(s *config.Settings) *float64 { return &s.Border.Top }),
		floatParam("Edge right", 0, 12, 1, func(s *config.Settings) *float64 { return &s.Border.Right }),
		floatParam("Edge bottom", 0, 12, 1, func(s *config.Settings) *float64 { return &s.Border.Bottom }),
		floatParam("Edge left", 0, 12, 1, func(s *config.Settings) *float64 { return &s.Border.Left }),
		intParam("Offset X", -50, 50, func(s *config.Settings) *int { return &s.Direction.X }),
		intParam("Offset Y", -50, 50, func(s *config.Settings) *int { return &s.Direction.Y }),
	}
}
