package panel

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gradient-shine/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	copied string
	saved  []string
	fail   error
}

func newTestModel(rec *recorder) Model {
	m := New(config.Default(), "/tmp/settings.json")
	m.Clipboard = func(s string) error {
		if rec.fail != nil {
			return rec.fail
		}
		rec.copied = s
		return nil
	}
	m.Saver = func(path string, _ config.Settings) error {
		if rec.fail != nil {
			return rec.fail
		}
		rec.saved = append(rec.saved, path)
		return nil
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestAdjustStepsAndClamps(t *testing.T) {
	m := newTestModel(&recorder{})

	m = press(t, m, "right")
	if math.Abs(m.Settings.Glow.Intensity-0.45) > 1e-9 {
		t.Errorf("expected intensity 0.45, got %v", m.Settings.Glow.Intensity)
	}
	m = press(t, m, "L", "L")
	if m.Settings.Glow.Intensity != 1 {
		t.Errorf("expected intensity clamped to 1, got %v", m.Settings.Glow.Intensity)
	}
	if !strings.HasPrefix(m.Status(), "Intensity = 1") {
		t.Errorf("unexpected status %q", m.Status())
	}

	m = press(t, m, "down", "H", "H", "H", "H", "H", "H", "H")
	if m.Settings.Glow.Spread != 0 {
		t.Errorf("expected spread clamped to 0, got %v", m.Settings.Glow.Spread)
	}
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(&recorder{})
	m = press(t, m, "up")
	if m.Cursor() != len(Params(SectionInput))-1 {
		t.Errorf("expected cursor on the last parameter, got %d", m.Cursor())
	}
	m = press(t, m, "j")
	if m.Cursor() != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.Cursor())
	}
}

func TestOffsetParamsStayIntegers(t *testing.T) {
	m := newTestModel(&recorder{})
	params := Params(SectionInput)
	for i, p := range params {
		if p.Label == "Offset X" {
			m.cursor = i
		}
	}
	m = press(t, m, "left", "left", "left")
	if m.Settings.Direction.X != -3 {
		t.Errorf("expected offset -3, got %d", m.Settings.Direction.X)
	}
	m = press(t, m, "H", "H", "H", "H", "H", "H")
	if m.Settings.Direction.X != -50 {
		t.Errorf("expected offset clamped to -50, got %d", m.Settings.Direction.X)
	}
}

func TestSectionSwitchAdjustsBackground(t *testing.T) {
	m := newTestModel(&recorder{})
	m = press(t, m, "down", "tab")
	if m.Section() != SectionBackground || m.Cursor() != 0 {
		t.Fatalf("expected background section at cursor 0, got %v/%d", m.Section(), m.Cursor())
	}
	m = press(t, m, "right")
	if math.Abs(m.Settings.Background.Opacity-0.35) > 1e-9 {
		t.Errorf("expected opacity 0.35, got %v", m.Settings.Background.Opacity)
	}
	m = press(t, m, "tab")
	if m.Section() != SectionInput {
		t.Errorf("expected tab to wrap to the input section")
	}
}

func TestPresetsCycleInBothDirections(t *testing.T) {
	m := newTestModel(&recorder{})
	if m.PresetName() != "" {
		t.Fatalf("expected no preset at start, got %q", m.PresetName())
	}

	m = press(t, m, "p")
	first := config.InputPresets[0]
	if m.PresetName() != first.Name || m.Settings.Glow != first.Glow {
		t.Errorf("expected %s applied, got %q %+v", first.Name, m.PresetName(), m.Settings.Glow)
	}
	m = press(t, m, "P")
	last := config.InputPresets[len(config.InputPresets)-1]
	if m.PresetName() != last.Name || m.Settings.Animation.Speed != last.Speed {
		t.Errorf("expected %s applied, got %q", last.Name, m.PresetName())
	}

	m = press(t, m, "tab", "P")
	aurora := config.AuroraPresets[len(config.AuroraPresets)-1]
	if m.PresetName() != aurora.Name || m.Settings.Background.Blur != aurora.Blur {
		t.Errorf("expected %s applied, got %q", aurora.Name, m.PresetName())
	}
}

func TestToggles(t *testing.T) {
	m := newTestModel(&recorder{})
	m = press(t, m, "1", "3", " ", "b", "m", "t")

	d := m.Settings.Direction
	if !d.Top || d.Bottom {
		t.Errorf("expected top on and bottom off, got %+v", d)
	}
	if m.Settings.Animation.Running {
		t.Errorf("expected space to pause")
	}
	if m.Settings.Background.Enabled {
		t.Errorf("expected b to disable the background")
	}
	if m.Settings.Background.Mode != config.ModeBlobs {
		t.Errorf("expected blobs mode, got %s", m.Settings.Background.Mode)
	}
	if m.Settings.Theme != config.ThemeDark {
		t.Errorf("expected dark theme, got %s", m.Settings.Theme)
	}

	m = press(t, m, "r")
	if m.Settings.Background != config.Default().Background || m.Settings.Direction != config.Default().Direction {
		t.Errorf("expected reset to restore defaults")
	}
	if m.Settings.Animation.Running {
		t.Errorf("expected reset to keep the paused state")
	}
}

func TestCopyPicksSectionCSS(t *testing.T) {
	rec := &recorder{}
	m := newTestModel(rec)

	m = press(t, m, "c")
	if !strings.Contains(rec.copied, "Aurora Glow") {
		t.Errorf("expected the glow summary, got %q", rec.copied)
	}
	if m.Status() != "CSS copied to clipboard" {
		t.Errorf("unexpected status %q", m.Status())
	}

	m = press(t, m, "tab", "c")
	if rec.copied != m.CSS() || !strings.Contains(rec.copied, "Background Aurora") {
		t.Errorf("expected the blob export for the background section")
	}

	rec.fail = errors.New("no clipboard")
	m = press(t, m, "c")
	if !strings.HasPrefix(m.Status(), "Copy failed") {
		t.Errorf("expected copy failure in status, got %q", m.Status())
	}
}

func TestSave(t *testing.T) {
	rec := &recorder{}
	m := newTestModel(rec)
	m = press(t, m, "s")
	if len(rec.saved) != 1 || rec.saved[0] != "/tmp/settings.json" {
		t.Errorf("expected one save to the settings path, got %v", rec.saved)
	}

	m.Path = ""
	m = press(t, m, "s")
	if len(rec.saved) != 1 || m.Status() != "No settings path" {
		t.Errorf("expected no save without a path, got %v %q", rec.saved, m.Status())
	}

	m.Path = "/tmp/x.json"
	rec.fail = errors.New("read-only")
	m = press(t, m, "s")
	if !strings.HasPrefix(m.Status(), "Save failed") {
		t.Errorf("expected save failure in status, got %q", m.Status())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(&recorder{})
		var msg tea.KeyMsg
		if k == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		next, cmd := m.Update(msg)
		if !next.(Model).Quitting() || cmd == nil {
			t.Errorf("expected %s to quit", k)
		}
	}
}

func TestViewShowsParamsAndStatus(t *testing.T) {
	m := newTestModel(&recorder{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = press(t, next.(Model), "right")

	out := m.View()
	for _, want := range []string{"Gradient Shine", "Intensity", "Offset Y", "Intensity = 0.45", "#0078d6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0.5, 4); got != "██░░" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := Bar(2, 3); got != "███" {
		t.Errorf("expected a full bar, got %q", got)
	}
	if got := Bar(-1, 2); got != "░░" {
		t.Errorf("expected an empty bar, got %q", got)
	}
}
