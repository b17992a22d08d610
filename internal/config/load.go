package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gradient-shine/internal/utils"
)

// Load reads a settings file on top of Default, so absent keys keep their
// default values. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("decode settings %s: %w", path, err)
	}

	settings.Colors = settings.Colors.Normalize()
	for _, warning := range settings.Clamp() {
		utils.Warn("Config: %s", warning)
	}
	utils.Info("Config: loaded %s", path)
	return settings, nil
}

func Save(path string, settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := utils.EnsureParentDir(path); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

type bound struct {
	name     string
	value    *float64
	min, max float64
}

func clampBounds(bounds []bound) []string {
	var warnings []string
	for _, b := range bounds {
		v := *b.value
		if v < b.min {
			*b.value = b.min
		} else if v > b.max {
			*b.value = b.max
		} else {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s=%g out of range [%g, %g], using %g", b.name, v, b.min, b.max, *b.value))
	}
	return warnings
}

// Clamp forces every numeric setting into the range the control panel
// allows, replaces palette slots that are not CSS colours with the
// defaults and reports what it changed.
func (s *Settings) Clamp() []string {
	warnings := clampBounds([]bound{
		{"glow.intensity", &s.Glow.Intensity, 0, 1},
		{"glow.spread", &s.Glow.Spread, 0, 60},
		{"glow.blur", &s.Glow.Blur, 0, 80},
		{"border.width", &s.Border.Width, 1, 8},
		{"border.radius", &s.Border.Radius, 0, 32},
		{"border.top", &s.Border.Top, 0, 12},
		{"border.right", &s.Border.Right, 0, 12},
		{"border.bottom", &s.Border.Bottom, 0, 12},
		{"border.left", &s.Border.Left, 0, 12},
		{"animation.speed", &s.Animation.Speed, 0.5, 15},
		{"background.opacity", &s.Background.Opacity, 0, 1},
		{"background.blur", &s.Background.Blur, 20, 200},
		{"background.speed", &s.Background.Speed, 0.1, 5},
		{"background.amplitude", &s.Background.Amplitude, 0, 3},
		{"background.blend", &s.Background.Blend, 0, 1},
		{"background.mouseFollow", &s.Background.MouseFollow, 0, 1},
	})

	clampOffset := func(name string, v *int) {
		if *v < -50 || *v > 50 {
			old := *v
			*v = max(-50, min(50, *v))
			warnings = append(warnings, fmt.Sprintf("%s=%d out of range [-50, 50], using %d", name, old, *v))
		}
	}
	clampOffset("direction.x", &s.Direction.X)
	clampOffset("direction.y", &s.Direction.Y)

	switch s.Background.Mode {
	case ModeShader, ModeBlobs:
	case "":
		s.Background.Mode = ModeShader
	default:
		warnings = append(warnings, fmt.Sprintf("background.mode=%q unknown, using %q", s.Background.Mode, ModeShader))
		s.Background.Mode = ModeShader
	}

	switch s.Theme {
	case ThemeLight, ThemeDark:
	default:
		s.Theme = ThemeLight
	}

	warnings = append(warnings, s.Colors.replaceInvalid()...)

	return warnings
}

func (c *GradientColors) replaceInvalid() []string {
	def := Default().Colors
	var warnings []string
	check := func(name string, value *string, fallback string) {
		if *value == "" {
			return
		}
		if _, _, err := utils.ParseColor(*value); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a colour, using %q", name, *value, fallback))
			*value = fallback
		}
	}
	check("colors.color1", &c.Color1, def.Color1)
	check("colors.color2", &c.Color2, def.Color2)
	check("colors.color3", &c.Color3, def.Color3)
	// the fourth slot mirrors the first
	check("colors.color4", &c.Color4, c.Color1)
	return warnings
}
