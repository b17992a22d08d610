package term

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/raster"
	"gradient-shine/internal/utils"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the redraw period of Run, about 60 frames per second.
const FrameInterval = 16 * time.Millisecond

// halfBlock paints the upper half of a cell in the foreground colour and
// the lower half in the background colour.
const halfBlock = '▀'

// View draws the background aurora into a terminal. Every cell carries two
// vertically stacked pixels, so a cols×rows terminal is a cols×2·rows
// scene, close to square pixels.
type View struct {
	screen  tcell.Screen
	scene   *raster.Scene
	painter *raster.Painter

	running    bool
	showStatus bool
	frames     int
	fps        float64
	fpsWindow  time.Duration
	fpsFrames  int
}

// New builds a view on an initialized screen.
func New(screen tcell.Screen, s config.Settings) (*View, error) {
	cols, rows := screen.Size()
	w, h := pixelSize(cols, rows)
	painter, err := raster.NewPainter(w, h)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	utils.Debug("Term: %dx%d cells, %dx%d pixels", cols, rows, w, h)
	return &View{
		screen:     screen,
		scene:      raster.NewScene(s, w, h),
		painter:    painter,
		running:    true,
		showStatus: true,
	}, nil
}

func pixelSize(cols, rows int) (w, h int) {
	return max(1, cols), max(1, rows*2)
}

func (v *View) Scene() *raster.Scene { return v.scene }

func (v *View) Running() bool { return v.running }

// Frames counts the frames drawn so far.
func (v *View) Frames() int { return v.frames }

// Close stops the background loop. The caller still owns the screen.
func (v *View) Close() {
	v.scene.Close()
}

// HandleEvent applies one terminal event. It reports whether the view
// should quit.
func (v *View) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		v.scene.Pointer(float64(x)+0.5, (float64(y)+0.5)*2)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.resize(cols, rows)
		v.screen.Sync()
	}
	return false
}

func (v *View) handleRune(r rune) (quit bool) {
	s := v.scene.Settings
	switch r {
	case 'q':
		return true
	case ' ':
		v.running = !v.running
		utils.Debug("Term: running=%v", v.running)
	case 'b':
		s.Background.Enabled = !s.Background.Enabled
		v.scene.Apply(s)
	case 'm':
		if v.scene.Background.Mode() == config.ModeBlobs {
			s.Background.Mode = config.ModeShader
		} else {
			s.Background.Mode = config.ModeBlobs
		}
		v.scene.Apply(s)
	case 't':
		if s.Theme == config.ThemeDark {
			s.Theme = config.ThemeLight
		} else {
			s.Theme = config.ThemeDark
		}
		v.scene.Apply(s)
	case 'h':
		v.showStatus = !v.showStatus
	}
	return false
}

func (v *View) resize(cols, rows int) {
	w, h := pixelSize(cols, rows)
	if pw, ph := v.painter.Size(); pw == w && ph == h {
		return
	}
	painter, err := raster.NewPainter(w, h)
	if err != nil {
		utils.Error("Term: %v", err)
		return
	}
	v.painter = painter
	v.scene.Resize(w, h)
}

// Frame advances the scene by dt while running and redraws the screen.
func (v *View) Frame(dt time.Duration) {
	if v.running {
		v.scene.Step(dt)
	}
	v.painter.Clear(v.scene.Theme.Background)
	v.scene.PaintBackground(v.painter)
	Blit(v.screen, v.painter.Image())
	if v.showStatus {
		v.drawStatus()
	}
	v.screen.Show()

	v.frames++
	v.fpsFrames++
	v.fpsWindow += dt
	if v.fpsWindow >= time.Second {
		v.fps = float64(v.fpsFrames) / v.fpsWindow.Seconds()
		v.fpsFrames, v.fpsWindow = 0, 0
	}
}

// Blit copies img onto the screen two pixel rows per cell row. Pixels are
// taken as opaque.
func Blit(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	b := img.Bounds()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols && cx < b.Dx(); cx++ {
			top := pixelColor(img, cx, cy*2)
			bottom := pixelColor(img, cx, cy*2+1)
			screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func pixelColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *View) drawStatus() {
	state := "running"
	if !v.running {
		state = "paused"
	}
	bg := "off"
	if v.scene.Background.Enabled() {
		bg = string(v.scene.Background.Mode())
	}
	line := fmt.Sprintf(" %s | %s | %.0f fps | space pause  m mode  b background  t theme  h hide  q quit ", bg, state, v.fps)

	cols, rows := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
}

// Run polls terminal events and redraws every FrameInterval until a quit
// key or ctx ends.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			v.Frame(dt)
		}
	}
}

// Main initializes the terminal, runs the view and restores the terminal
// on every exit path.
func Main(ctx context.Context, s config.Settings) error {
	utils.Info("--- Terminal Aurora Start ---")
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()
	defer utils.RedirectOutput(io.Discard)()

	v, err := New(screen, s)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run(ctx)
}
