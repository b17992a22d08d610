package config

// GradientColors is the palette shared by the glow and the background aurora.
type GradientColors struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Color3 string `json:"color3"`
	Color4 string `json:"color4,omitempty"`
}

// Normalize fills empty slots so the palette is always fully populated.
// The fourth slot mirrors the first, like the input field's --color-4.
func (c GradientColors) Normalize() GradientColors {
	def := Default().Colors
	if c.Color1 == "" {
		c.Color1 = def.Color1
	}
	if c.Color2 == "" {
		c.Color2 = def.Color2
	}
	if c.Color3 == "" {
		c.Color3 = def.Color3
	}
	if c.Color4 == "" {
		c.Color4 = c.Color1
	}
	return c
}

// Slots returns the normalized palette in slot order.
func (c GradientColors) Slots() [4]string {
	n := c.Normalize()
	return [4]string{n.Color1, n.Color2, n.Color3, n.Color4}
}

type GlowSettings struct {
	Intensity float64 `json:"intensity"`
	Spread    float64 `json:"spread"`
	Blur      float64 `json:"blur"`
}

type AnimationSettings struct {
	Speed   float64 `json:"speed"`
	Running bool    `json:"running"`
}

type BorderSettings struct {
	Width  float64 `json:"width"`
	Radius float64 `json:"radius"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// DirectionConfig selects the edges the glow emanates from. X and Y shift
// every anchor, in percentage points.
type DirectionConfig struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
}

// None reports whether no edge is selected.
func (d DirectionConfig) None() bool {
	return !d.Top && !d.Right && !d.Bottom && !d.Left
}

type BackgroundMode string

const (
	ModeShader BackgroundMode = "shader"
	ModeBlobs  BackgroundMode = "blobs"
)

// BackgroundSettings drives the full-viewport aurora. Speed, Amplitude and
// Blend only apply to the shader mode.
type BackgroundSettings struct {
	Enabled     bool           `json:"enabled"`
	Mode        BackgroundMode `json:"mode"`
	Opacity     float64        `json:"opacity"`
	Blur        float64        `json:"blur"`
	Speed       float64        `json:"speed"`
	Amplitude   float64        `json:"amplitude"`
	Blend       float64        `json:"blend"`
	MouseFollow float64        `json:"mouseFollow"`
}

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

type Settings struct {
	Theme      ThemeMode          `json:"theme"`
	Colors     GradientColors     `json:"colors"`
	Glow       GlowSettings       `json:"glow"`
	Animation  AnimationSettings  `json:"animation"`
	Border     BorderSettings     `json:"border"`
	Direction  DirectionConfig    `json:"direction"`
	Background BackgroundSettings `json:"background"`
}

func Default() Settings {
	return Settings{
		Theme: ThemeLight,
		Colors: GradientColors{
			Color1: "#0078d6",
			Color2: "#800080",
			Color3: "#ffffff",
			Color4: "#0078d6",
		},
		Glow:      GlowSettings{Intensity: 0.4, Spread: 15, Blur: 20},
		Animation: AnimationSettings{Speed: 3, Running: true},
		Border:    BorderSettings{Width: 2, Radius: 8},
		Direction: DirectionConfig{Bottom: true},
		Background: BackgroundSettings{
			Enabled:     true,
			Mode:        ModeShader,
			Opacity:     0.3,
			Blur:        80,
			Speed:       1,
			Amplitude:   1,
			Blend:       0.5,
			MouseFollow: 0.5,
		},
	}
}
