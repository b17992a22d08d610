package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPreset = errors.New("unknown preset")

// InputPreset restyles the input-field glow.
type InputPreset struct {
	Name   string
	Colors GradientColors
	Glow   GlowSettings
	Speed  float64
}

// AuroraPreset restyles the background aurora.
type AuroraPreset struct {
	Name        string
	Colors      GradientColors
	Opacity     float64
	Blur        float64
	MouseFollow float64
}

var InputPresets = []InputPreset{
	{
		Name:   "Vision Blue",
		Colors: GradientColors{Color1: "#4285f4", Color2: "#9b72cb", Color3: "#d96570", Color4: "#4285f4"},
		Glow:   GlowSettings{Intensity: 0.4, Spread: 15, Blur: 20},
		Speed:  3,
	},
	{
		Name:   "AMG Fire",
		Colors: GradientColors{Color1: "#ff6b35", Color2: "#f7c948", Color3: "#e84393", Color4: "#ff6b35"},
		Glow:   GlowSettings{Intensity: 0.5, Spread: 20, Blur: 25},
		Speed:  4,
	},
	{
		Name:   "Neon Green",
		Colors: GradientColors{Color1: "#00ff87", Color2: "#60efff", Color3: "#00ff87", Color4: "#60efff"},
		Glow:   GlowSettings{Intensity: 0.6, Spread: 20, Blur: 30},
		Speed:  2,
	},
	{
		Name:   "Monochrome",
		Colors: GradientColors{Color1: "#888888", Color2: "#cccccc", Color3: "#888888", Color4: "#cccccc"},
		Glow:   GlowSettings{Intensity: 0.3, Spread: 10, Blur: 15},
		Speed:  5,
	},
	{
		Name:   "Merlin Echo",
		Colors: GradientColors{Color1: "#00c9ff", Color2: "#92fe9d", Color3: "#ff00ff", Color4: "#00c9ff"},
		Glow:   GlowSettings{Intensity: 0.5, Spread: 25, Blur: 35},
		Speed:  6,
	},
}

var AuroraPresets = []AuroraPreset{
	{
		Name:        "Northern Lights",
		Colors:      GradientColors{Color1: "#00ff87", Color2: "#60efff", Color3: "#0ea5e9", Color4: "#22d3ee"},
		Opacity:     0.35,
		Blur:        80,
		MouseFollow: 0.6,
	},
	{
		Name:        "Sunset Blaze",
		Colors:      GradientColors{Color1: "#ff6b35", Color2: "#f7c948", Color3: "#e84393", Color4: "#fd79a8"},
		Opacity:     0.3,
		Blur:        90,
		MouseFollow: 0.4,
	},
	{
		Name:        "Ocean Deep",
		Colors:      GradientColors{Color1: "#0077b6", Color2: "#00b4d8", Color3: "#0096c7", Color4: "#48cae4"},
		Opacity:     0.35,
		Blur:        100,
		MouseFollow: 0.3,
	},
	{
		Name:        "Cosmic Purple",
		Colors:      GradientColors{Color1: "#7c3aed", Color2: "#a78bfa", Color3: "#c084fc", Color4: "#e879f9"},
		Opacity:     0.3,
		Blur:        85,
		MouseFollow: 0.7,
	},
	{
		Name:        "Minimal Frost",
		Colors:      GradientColors{Color1: "#94a3b8", Color2: "#cbd5e1", Color3: "#e2e8f0", Color4: "#94a3b8"},
		Opacity:     0.2,
		Blur:        120,
		MouseFollow: 0.2,
	},
}

func FindInputPreset(name string) (InputPreset, error) {
	for _, p := range InputPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return InputPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func FindAuroraPreset(name string) (AuroraPreset, error) {
	for _, p := range AuroraPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return AuroraPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyInputPreset overwrites colors, glow and speed. Running state,
// border and direction are left alone.
func (s *Settings) ApplyInputPreset(p InputPreset) {
	s.Colors = p.Colors.Normalize()
	s.Glow = p.Glow
	s.Animation.Speed = p.Speed
}

func (s *Settings) ApplyAuroraPreset(p AuroraPreset) {
	s.Colors = p.Colors.Normalize()
	s.Background.Opacity = p.Opacity
	s.Background.Blur = p.Blur
	s.Background.MouseFollow = p.MouseFollow
}

// ApplyPreset looks the name up in both tables, input presets first.
func (s *Settings) ApplyPreset(name string) error {
	if p, err := FindInputPreset(name); err == nil {
		s.ApplyInputPreset(p)
		return nil
	}
	p, err := FindAuroraPreset(name)
	if err != nil {
		return err
	}
	s.ApplyAuroraPreset(p)
	return nil
}
