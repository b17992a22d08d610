package main

import (
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/debug"
	"gradient-shine/internal/engine2D"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	renderer      *engine2D.Renderer
	driver        *motion.Driver
	debugOverlay  *debug.DebugOverlay
	lastFrameTime time.Time

	// globalPointer follows the X11 root pointer for windows that never
	// receive motion events, like a desktop background.
	globalPointer *utils.GlobalPointer
	lastMouse     rl.Vector2
}

// NewWindow opens the raylib window and loads the renderer into it.
func NewWindow(s config.Settings, width, height int, globalPointer bool) (*Window, error) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(width), int32(height), "Gradient Shine")

	driver := motion.NewDriver(engine2D.NewRaylibTimeProvider())
	renderer := engine2D.NewRenderer(driver, s, rl.GetScreenWidth(), rl.GetScreenHeight())
	if err := renderer.Load(); err != nil {
		rl.CloseWindow()
		return nil, err
	}

	window := &Window{
		renderer:      renderer,
		driver:        driver,
		debugOverlay:  debug.NewDebugOverlay(),
		lastFrameTime: time.Now(),
	}
	if globalPointer {
		window.globalPointer = &utils.GlobalPointer{}
	}
	return window, nil
}

func (window *Window) Run() {
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

// Close releases the GPU resources and the window.
func (window *Window) Close() {
	window.renderer.Unload()
	utils.CloseX11()
	rl.CloseWindow()
}

func (window *Window) Update() {
	currentTime := time.Now()
	deltaTime := currentTime.Sub(window.lastFrameTime)
	window.lastFrameTime = currentTime

	if rl.IsWindowResized() {
		window.renderer.UpdateViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	window.updateMouse()

	// Frame callbacks of the background run here, before the glow advances.
	window.driver.Tick()
	window.renderer.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeySpace) {
		s := window.renderer.Settings
		s.Animation.Running = !s.Animation.Running
		window.renderer.Apply(s)
		utils.Debug("Window: running=%v", s.Animation.Running)
	}
	if rl.IsKeyPressed(rl.KeyB) {
		s := window.renderer.Settings
		s.Background.Enabled = !s.Background.Enabled
		window.renderer.Apply(s)
	}
	if rl.IsKeyPressed(rl.KeyM) {
		s := window.renderer.Settings
		if s.Background.Mode == config.ModeBlobs {
			s.Background.Mode = config.ModeShader
		} else {
			s.Background.Mode = config.ModeBlobs
		}
		window.renderer.Apply(s)
	}
	if rl.IsKeyPressed(rl.KeyF8) {
		window.debugOverlay.Toggle()
	}
}

// updateMouse emits a pointer sample only when the position moved, like a
// browser's mousemove.
func (window *Window) updateMouse() {
	mPos := rl.GetMousePosition()
	if window.globalPointer != nil {
		if x, y, _, _, ok := window.globalPointer.Position(); ok {
			wPos := rl.GetWindowPosition()
			mPos = rl.NewVector2(float32(x)-wPos.X, float32(y)-wPos.Y)
		}
	}
	if mPos == window.lastMouse {
		return
	}
	window.lastMouse = mPos
	window.renderer.UpdateMouse(float64(mPos.X), float64(mPos.Y))
}

func (window *Window) Draw() {
	window.renderer.Render()
	window.debugOverlay.Draw(window.renderer)
}
