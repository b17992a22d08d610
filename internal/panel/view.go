package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0078d6"))
	sectionStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(14)
	selectedStyle = lipgloss.NewStyle().Width(14).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#800080"))
	valueStyle    = lipgloss.NewStyle().Width(7).Padding(0, 1)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#800080")).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c9ff"))
)

func (m Model) View() string {
	if m.quit {
		return ""
	}

	var left strings.Builder
	left.WriteString(titleStyle.Render("Gradient Shine"))
	left.WriteString("\n\n")
	for s := Section(0); s < sectionCount; s++ {
		name := s.String()
		if s == m.section {
			name = sectionStyle.Render("▸ " + name)
		} else {
			name = faintStyle.Render("  " + name)
		}
		left.WriteString(name + "\n")
	}
	left.WriteString("\n")
	for i, p := range m.Params() {
		left.WriteString(m.paramLine(i, p))
		left.WriteString("\n")
	}
	left.WriteString("\n")
	left.WriteString(m.togglesView())

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.swatches(),
		"",
		boxStyle.Render(m.cssPreview()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "   ", right)
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		statusStyle.Render(m.status),
		faintStyle.Render(helpText),
	)
}

const helpText = "↑/↓ select  ←/→ adjust (H/L ×10)  tab section  p/P preset  1-4 edges  space run  b bg  m mode  t theme  c copy  s save  r reset  q quit"

func (m Model) paramLine(i int, p Param) string {
	label := labelStyle.Render(p.Label)
	if i == m.cursor {
		label = selectedStyle.Render(p.Label)
	}
	return label + valueStyle.Render(p.Format(&m.Settings)) + Bar(p.Fraction(&m.Settings), barWidth)
}

// Bar renders fraction as a fixed width meter.
func Bar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) togglesView() string {
	d := m.Settings.Direction
	edge := func(key, name string, on bool) string {
		if on {
			return sectionStyle.Render(key + " " + name)
		}
		return faintStyle.Render(key + " " + name)
	}
	bg := "off"
	if m.Settings.Background.Enabled {
		bg = string(m.Settings.Background.Mode)
	}
	run := "paused"
	if m.Settings.Animation.Running {
		run = "running"
	}
	preset := m.PresetName()
	if preset == "" {
		preset = "custom"
	}
	return fmt.Sprintf("Edges  %s %s %s %s\nAnimation %s   Background %s   Theme %s\nPreset %s",
		edge("1", "top", d.Top), edge("2", "right", d.Right), edge("3", "bottom", d.Bottom), edge("4", "left", d.Left),
		run, bg, m.Settings.Theme, preset)
}

func (m Model) swatches() string {
	slots := m.Settings.Colors.Slots()
	parts := make([]string, 0, len(slots))
	for _, hex := range slots {
		parts = append(parts, lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")+" "+faintStyle.Render(hex)+"  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// cssPreview trims the export to what fits beside the parameters.
func (m Model) cssPreview() string {
	lines := strings.Split(strings.TrimRight(m.CSS(), "\n"), "\n")
	limit := 18
	if m.height > 0 {
		limit = max(4, m.height-14)
	}
	if len(lines) > limit {
		lines = append(lines[:limit], fmt.Sprintf("… %d more lines (c to copy)", len(lines)-limit))
	}
	return strings.Join(lines, "\n")
}
