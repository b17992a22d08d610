package field

import (
	"gradient-shine/internal/config"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"
)

// Effect is the frame-driven side of one background aurora instance: the
// uniform feed in shader mode, the blob animator in blob mode. Everything it
// registers on the queue and the hub between Enable and Disable is removed
// again by Disable. Paint targets wrap it and add their own resources.
type Effect struct {
	queue *motion.FrameQueue
	hub   *motion.Hub

	settings config.BackgroundSettings
	colors   config.GradientColors
	width    int
	height   int

	enabled     bool
	mode        config.BackgroundMode
	ticket      motion.Ticket
	unsubscribe []func()

	feed     *Feed
	uniforms Uniforms
	ready    bool
	frames   int

	blobs *motion.BlobAnimator
}

func NewEffect(queue *motion.FrameQueue, hub *motion.Hub, s config.Settings, width, height int) *Effect {
	return &Effect{
		queue:    queue,
		hub:      hub,
		settings: s.Background,
		colors:   s.Colors.Normalize(),
		width:    width,
		height:   height,
	}
}

// ResolveMode maps unknown modes to the shader, the default rendering.
func ResolveMode(m config.BackgroundMode) config.BackgroundMode {
	if m == config.ModeBlobs {
		return config.ModeBlobs
	}
	return config.ModeShader
}

func (e *Effect) Enabled() bool                       { return e.enabled }
func (e *Effect) Settings() config.BackgroundSettings { return e.settings }
func (e *Effect) Colors() config.GradientColors       { return e.colors }
func (e *Effect) Size() (width, height int)           { return e.width, e.height }

// Mode is the running mode while enabled, the configured one otherwise.
func (e *Effect) Mode() config.BackgroundMode {
	if e.enabled {
		return e.mode
	}
	return ResolveMode(e.settings.Mode)
}

// Frames counts shader frames produced since the last Enable.
func (e *Effect) Frames() int { return e.frames }

// Enable subscribes the listeners of the configured mode and requests the
// first frame. Calling it on an enabled effect does nothing.
func (e *Effect) Enable() {
	if e.enabled {
		return
	}
	e.mode = ResolveMode(e.settings.Mode)
	e.enabled = true

	e.unsubscribe = append(e.unsubscribe, e.hub.OnResize(func(ev motion.ResizeEvent) {
		e.width, e.height = ev.Width, ev.Height
		if e.feed != nil {
			e.feed.Resize(ev.Width, ev.Height)
		}
	}))

	switch e.mode {
	case config.ModeShader:
		e.feed = NewFeed(e.width, e.height)
		e.ready = false
		e.frames = 0
		e.unsubscribe = append(e.unsubscribe, e.hub.OnPointer(e.feed.Pointer))
		e.ticket = e.queue.Request(e.frame)
	case config.ModeBlobs:
		e.blobs = motion.NewBlobAnimator(e.queue, e.hub, e.settings.MouseFollow)
		e.blobs.Enable()
	}
	utils.Debug("Aurora: %s loop started", e.mode)
}

func (e *Effect) frame(ts float64) {
	if !e.enabled || e.feed == nil {
		return
	}
	e.uniforms = e.feed.Next(ts, e.colors, e.settings)
	e.ready = true
	e.frames++
	e.ticket = e.queue.Request(e.frame)
}

// Disable cancels the pending frame, removes every listener and drops the
// motion state. It is safe to call repeatedly.
func (e *Effect) Disable() {
	if !e.enabled {
		return
	}
	if e.ticket != 0 {
		e.queue.Cancel(e.ticket)
		e.ticket = 0
	}
	for _, unsubscribe := range e.unsubscribe {
		unsubscribe()
	}
	e.unsubscribe = nil

	if e.blobs != nil {
		e.blobs.Disable()
		e.blobs = nil
	}
	e.feed = nil
	e.ready = false
	e.enabled = false
	utils.Debug("Aurora: %s loop stopped", e.mode)
}

// Update installs new settings. It reports whether the change needs a full
// Disable/Enable cycle, which is the case for a mode switch while enabled.
// Everything else applies in place.
func (e *Effect) Update(s config.Settings) (restart bool) {
	e.settings = s.Background
	e.colors = s.Colors.Normalize()
	if e.blobs != nil {
		e.blobs.SetMouseFollow(e.settings.MouseFollow)
	}
	return e.enabled && ResolveMode(e.settings.Mode) != e.mode
}

// Uniforms returns the values of the last shader frame and whether one has
// been produced since Enable.
func (e *Effect) Uniforms() (Uniforms, bool) {
	return e.uniforms, e.ready
}

// Blobs is the animator in blob mode while enabled, nil otherwise.
func (e *Effect) Blobs() *motion.BlobAnimator { return e.blobs }
