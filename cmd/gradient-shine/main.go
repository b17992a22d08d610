package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/engine2D/shader"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/panel"
	"gradient-shine/internal/raster"
	"gradient-shine/internal/term"
	"gradient-shine/internal/utils"

	"github.com/atotto/clipboard"
)

const usage = `Usage: gradient-shine [flags] <command> [command flags]

Commands:
  run       open the animated window (default)
  term      draw the background aurora in the terminal
  panel     edit the settings in the terminal control panel
  css       print the glow or blob stylesheet
  snapshot  render one frame to a PNG without a window
  capture   record frames to an lz4 capture file
  presets   list the built-in presets

Flags:
`

type globalFlags struct {
	configPath    string
	debug         bool
	logLevel      string
	shaderDir     string
	globalPointer bool
	preset        string
}

func main() {
	var g globalFlags
	flag.StringVar(&g.configPath, "config", "", "Path to the settings file")
	flag.BoolVar(&g.debug, "debug", false, "Enable verbose debug logging")
	flag.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&g.shaderDir, "shader-dir", "", "Directory searched for shader sources before the built-in ones")
	flag.BoolVar(&g.globalPointer, "global-pointer", false, "Follow the X11 root pointer instead of window mouse events")
	flag.StringVar(&g.preset, "preset", "", "Apply a named preset on top of the settings")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := utils.ParseLevel(g.logLevel)
	if err != nil {
		utils.Error("%v", err)
		os.Exit(2)
	}
	utils.CurrentLevel = level
	utils.DebugMode = g.debug
	shader.OverrideDir = g.shaderDir

	cmd, args := "run", flag.Args()
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	if err := dispatch(cmd, args, g); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
}

func dispatch(cmd string, args []string, g globalFlags) error {
	if cmd == "presets" {
		printPresets(os.Stdout)
		return nil
	}

	path := utils.ResolveConfigPath(g.configPath)
	s, err := loadSettings(path, g.preset)
	if err != nil {
		return err
	}

	switch cmd {
	case "run":
		return runWindow(args, s, g)
	case "term":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Main(ctx, s)
	case "panel":
		if path == "" {
			path = utils.ConfigSearchPaths()[0]
		}
		_, err := panel.Main(s, path)
		return err
	case "css":
		return runCSS(args, s)
	case "snapshot":
		return runSnapshot(args, s)
	case "capture":
		return runCapture(args, s)
	}
	flag.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

// loadSettings reads path, or the defaults when no settings file exists.
func loadSettings(path, preset string) (config.Settings, error) {
	s, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return s, err
		}
		utils.Warn("Config: %v, using defaults", err)
		s = config.Default()
	}
	if preset != "" {
		if err := s.ApplyPreset(preset); err != nil {
			return s, err
		}
		utils.Info("Config: applied preset %s", preset)
	}
	return s, nil
}

func runWindow(args []string, s config.Settings, g globalFlags) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	width := fs.Int("width", 1280, "Window width")
	height := fs.Int("height", 720, "Window height")
	if err := fs.Parse(args); err != nil {
		return err
	}

	utils.Info("--- Gradient Shine Start ---")
	window, err := NewWindow(s, *width, *height, g.globalPointer)
	if err != nil {
		return err
	}
	defer window.Close()

	utils.Info("Starting render loop...")
	window.Run()
	return nil
}

func runCSS(args []string, s config.Settings) error {
	fs := flag.NewFlagSet("css", flag.ExitOnError)
	kind := fs.String("kind", "keyframes", "Stylesheet: keyframes, debug or blobs")
	copyOut := fs.Bool("copy", false, "Copy the stylesheet to the clipboard instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var css string
	switch *kind {
	case "keyframes":
		css = glow.KeyframesCSS(s)
	case "debug":
		css = glow.DebugCSS(s)
	case "blobs":
		css = motion.BlobCSS(s.Colors, s.Background)
	default:
		return fmt.Errorf("unknown stylesheet %q", *kind)
	}

	if *copyOut {
		if err := clipboard.WriteAll(css); err != nil {
			return fmt.Errorf("copy stylesheet: %w", err)
		}
		utils.Info("CSS: copied %s stylesheet", *kind)
		return nil
	}
	_, err := fmt.Fprintln(os.Stdout, css)
	return err
}

func sceneFlags(fs *flag.FlagSet) (width, height *int, pointerX, pointerY *float64) {
	width = fs.Int("width", 1280, "Frame width")
	height = fs.Int("height", 720, "Frame height")
	pointerX = fs.Float64("pointer-x", -1, "Pointer x in pixels, negative for none")
	pointerY = fs.Float64("pointer-y", -1, "Pointer y in pixels, negative for none")
	return
}

func newScene(s config.Settings, width, height int, px, py float64) (*raster.Scene, *raster.Painter, error) {
	p, err := raster.NewPainter(width, height)
	if err != nil {
		return nil, nil, err
	}
	sc := raster.NewScene(s, width, height)
	if px >= 0 && py >= 0 {
		sc.Pointer(px, py)
	}
	return sc, p, nil
}

func runSnapshot(args []string, s config.Settings) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	width, height, px, py := sceneFlags(fs)
	out := fs.String("out", "gradient-shine.png", "Output PNG path")
	at := fs.Duration("at", 2*time.Second, "Animation time of the frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, p, err := newScene(s, *width, *height, *px, *py)
	if err != nil {
		return err
	}
	defer sc.Close()

	for elapsed := time.Duration(0); elapsed < *at; elapsed += term.FrameInterval {
		sc.Step(term.FrameInterval)
	}
	sc.Paint(p)
	return p.SavePNG(*out)
}

func runCapture(args []string, s config.Settings) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	width, height, px, py := sceneFlags(fs)
	out := fs.String("out", "gradient-shine.gscap", "Output capture path")
	frames := fs.Int("frames", 120, "Number of frames")
	interval := fs.Duration("interval", term.FrameInterval, "Time between frames")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, p, err := newScene(s, *width, *height, *px, *py)
	if err != nil {
		return err
	}
	defer sc.Close()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create capture: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	cw, err := raster.NewCaptureWriter(w, *width, *height)
	if err != nil {
		return err
	}
	if err := raster.Record(sc, p, cw, *frames, *interval); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write capture: %w", err)
	}
	utils.Info("Capture: wrote %s", *out)
	return nil
}

func printPresets(w io.Writer) {
	fmt.Fprintln(w, "Input presets:")
	for _, p := range config.InputPresets {
		c := p.Colors.Slots()
		fmt.Fprintf(w, "  %-16s %s %s %s %s  intensity %.2f  speed %gs\n", p.Name, c[0], c[1], c[2], c[3], p.Glow.Intensity, p.Speed)
	}
	fmt.Fprintln(w, "Aurora presets:")
	for _, p := range config.AuroraPresets {
		c := p.Colors.Slots()
		fmt.Fprintf(w, "  %-16s %s %s %s %s  opacity %.2f  blur %gpx\n", p.Name, c[0], c[1], c[2], c[3], p.Opacity, p.Blur)
	}
}
