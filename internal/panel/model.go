package panel

import (
	"fmt"
	"io"

	"gradient-shine/internal/config"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the control panel: every tunable of the glow and the aurora,
// the preset tables, CSS export and saving.
type Model struct {
	Settings config.Settings
	Path     string

	// Clipboard and Saver are swapped out by tests.
	Clipboard func(string) error
	Saver     func(string, config.Settings) error

	section Section
	cursor  int
	preset  [sectionCount]int
	status  string
	width   int
	height  int
	quit    bool
}

// New builds a panel editing s, saved to path.
func New(s config.Settings, path string) Model {
	s.Colors = s.Colors.Normalize()
	s.Clamp()
	return Model{
		Settings:  s,
		Path:      path,
		Clipboard: clipboard.WriteAll,
		Saver:     config.Save,
		preset:    [sectionCount]int{-1, -1},
	}
}

func (m Model) Section() Section { return m.section }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Status() string { return m.status }

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool { return m.quit }

// Params are the parameters of the current section.
func (m Model) Params() []Param { return Params(m.section) }

// CSS is what the copy key puts on the clipboard: the glow stylesheet for
// the input section, the blob script for the background section.
func (m Model) CSS() string {
	if m.section == SectionBackground {
		return motion.BlobCSS(m.Settings.Colors, m.Settings.Background)
	}
	return glow.DebugCSS(m.Settings)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		m = m.handleKey(msg.String())
		if m.quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleKey(key string) Model {
	params := m.Params()
	switch key {
	case "q", "ctrl+c", "esc":
		m.quit = true
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(params)) % len(params)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(params)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "H":
		m.adjust(-10)
	case "L":
		m.adjust(10)
	case "tab":
		m.section = (m.section + 1) % sectionCount
		m.cursor = 0
	case "p":
		m.cyclePreset(1)
	case "P":
		m.cyclePreset(-1)
	case "1":
		m.Settings.Direction.Top = !m.Settings.Direction.Top
		m.status = "Toggled top edge"
	case "2":
		m.Settings.Direction.Right = !m.Settings.Direction.Right
		m.status = "Toggled right edge"
	case "3":
		m.Settings.Direction.Bottom = !m.Settings.Direction.Bottom
		m.status = "Toggled bottom edge"
	case "4":
		m.Settings.Direction.Left = !m.Settings.Direction.Left
		m.status = "Toggled left edge"
	case " ":
		m.Settings.Animation.Running = !m.Settings.Animation.Running
		if m.Settings.Animation.Running {
			m.status = "Animation running"
		} else {
			m.status = "Animation paused"
		}
	case "b":
		m.Settings.Background.Enabled = !m.Settings.Background.Enabled
		m.status = fmt.Sprintf("Background %s", onOff(m.Settings.Background.Enabled))
	case "m":
		if m.Settings.Background.Mode == config.ModeBlobs {
			m.Settings.Background.Mode = config.ModeShader
		} else {
			m.Settings.Background.Mode = config.ModeBlobs
		}
		m.status = fmt.Sprintf("Background mode %s", m.Settings.Background.Mode)
	case "t":
		if m.Settings.Theme == config.ThemeDark {
			m.Settings.Theme = config.ThemeLight
		} else {
			m.Settings.Theme = config.ThemeDark
		}
		m.status = fmt.Sprintf("Theme %s", m.Settings.Theme)
	case "c":
		m.copyCSS()
	case "s":
		m.save()
	case "r":
		running := m.Settings.Animation.Running
		m.Settings = config.Default()
		m.Settings.Animation.Running = running
		m.preset = [sectionCount]int{-1, -1}
		m.status = "Reset to defaults"
	}
	return m
}

func (m *Model) adjust(steps int) {
	params := m.Params()
	if m.cursor >= len(params) {
		m.cursor = 0
	}
	p := params[m.cursor]
	p.Adjust(&m.Settings, steps)
	for _, warning := range m.Settings.Clamp() {
		utils.Warn("Panel: %s", warning)
	}
	m.status = fmt.Sprintf("%s = %s", p.Label, p.Format(&m.Settings))
}

// cyclePreset steps through the section's preset table. From a custom
// state the first step lands on the first or the last entry.
func (m *Model) cyclePreset(dir int) {
	n := len(config.InputPresets)
	if m.section == SectionBackground {
		n = len(config.AuroraPresets)
	}
	i := m.preset[m.section]
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = (i + dir + n) % n
	}
	m.preset[m.section] = i

	if m.section == SectionBackground {
		p := config.AuroraPresets[i]
		m.Settings.ApplyAuroraPreset(p)
		m.status = "Preset " + p.Name
	} else {
		p := config.InputPresets[i]
		m.Settings.ApplyInputPreset(p)
		m.status = "Preset " + p.Name
	}
	m.Settings.Clamp()
}

// PresetName is the preset last applied in the current section, or empty.
func (m Model) PresetName() string {
	i := m.preset[m.section]
	if i < 0 {
		return ""
	}
	if m.section == SectionBackground {
		return config.AuroraPresets[i].Name
	}
	return config.InputPresets[i].Name
}

func (m *Model) copyCSS() {
	if err := m.Clipboard(m.CSS()); err != nil {
		utils.Warn("Panel: clipboard: %v", err)
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "CSS copied to clipboard"
}

func (m *Model) save() {
	if m.Path == "" {
		m.status = "No settings path"
		return
	}
	if err := m.Saver(m.Path, m.Settings); err != nil {
		utils.Error("Panel: %v", err)
		m.status = "Save failed: " + err.Error()
		return
	}
	utils.Info("Panel: saved %s", m.Path)
	m.status = "Saved " + m.Path
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Main runs the panel full screen and returns the final settings.
func Main(s config.Settings, path string) (config.Settings, error) {
	utils.Info("--- Control Panel Start ---")
	defer utils.RedirectOutput(io.Discard)()

	p := tea.NewProgram(New(s, path), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return s, fmt.Errorf("panel: %w", err)
	}
	return final.(Model).Settings, nil
}
