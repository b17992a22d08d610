package motion

import "math"

// BlobConfig holds the hand-tuned oscillation of one background blob.
type BlobConfig struct {
	FreqX, FreqY   float64 // radians per millisecond
	PhaseX, PhaseY float64
	AmpX, AmpY     float64 // pixels
	MouseMul       float64
	Size           float64 // percent of viewport width
}

var Blobs = [4]BlobConfig{
	{FreqX: 0.0003, FreqY: 0.0004, PhaseX: 0, PhaseY: 1.2, AmpX: 120, AmpY: 80, MouseMul: 0.6, Size: 60},
	{FreqX: 0.00035, FreqY: 0.00025, PhaseX: 2.1, PhaseY: 0.5, AmpX: 100, AmpY: 100, MouseMul: 0.8, Size: 55},
	{FreqX: 0.00025, FreqY: 0.00035, PhaseX: 4.0, PhaseY: 3.1, AmpX: 90, AmpY: 110, MouseMul: 1.0, Size: 65},
	{FreqX: 0.0004, FreqY: 0.0003, PhaseX: 1.5, PhaseY: 4.5, AmpX: 110, AmpY: 90, MouseMul: 0.4, Size: 50},
}

// MouseMagnitude converts the normalized smoothed pointer into pixels.
const MouseMagnitude = 200

// Offset evaluates the blob translation at t milliseconds, given the
// pointer contribution already scaled to pixels.
func (b BlobConfig) Offset(t float64, mouse Vec2) Vec2 {
	return Vec2{
		X: math.Sin(t*b.FreqX+b.PhaseX)*b.AmpX + mouse.X*b.MouseMul,
		Y: math.Cos(t*b.FreqY+b.PhaseY)*b.AmpY + mouse.Y*b.MouseMul,
	}
}

// MouseOffset scales a smoothed pointer position by the follow strength.
func MouseOffset(current Vec2, mouseFollow float64) Vec2 {
	return current.Scale(mouseFollow * MouseMagnitude)
}

// BlobRect places blob i in a viewport before any translation. It returns
// the top-left corner and the side length, all in pixels.
func BlobRect(i int, viewW, viewH float64) (x, y, size float64) {
	size = Blobs[i].Size / 100 * viewW
	switch i {
	case 0:
		return -0.1 * viewW, -0.1 * viewH, size
	case 1:
		return viewW - size + 0.1*viewW, -0.1 * viewH, size
	case 2:
		return 0.25 * viewW, viewH - size + 0.15*viewH, size
	default:
		return -0.05 * viewW, 0.2 * viewH, size
	}
}

// Translator is a paint node that accepts a 2D translation.
type Translator interface {
	Translate(x, y float64)
}

// BlobAnimator owns the per-frame state of one blob background: the pointer
// filter, the frame ticket and the listener subscription. Nothing is shared
// between two animators.
type BlobAnimator struct {
	queue *FrameQueue
	hub   *Hub

	filter      *PointerFilter
	mouseFollow float64
	targets     [len(Blobs)]Translator
	offsets     [len(Blobs)]Vec2

	enabled     bool
	ticket      Ticket
	start       float64
	started     bool
	unsubscribe func()
	ticks       int
}

func NewBlobAnimator(queue *FrameQueue, hub *Hub, mouseFollow float64) *BlobAnimator {
	return &BlobAnimator{
		queue:       queue,
		hub:         hub,
		filter:      NewPointerFilter(BlobSmoothing),
		mouseFollow: mouseFollow,
	}
}

// Attach binds blob i to a paint node. A nil node detaches it.
func (a *BlobAnimator) Attach(i int, t Translator) {
	if i >= 0 && i < len(a.targets) {
		a.targets[i] = t
	}
}

func (a *BlobAnimator) Detach(i int) { a.Attach(i, nil) }

func (a *BlobAnimator) SetMouseFollow(f float64) { a.mouseFollow = f }

func (a *BlobAnimator) Enabled() bool { return a.enabled }

// Ticks counts frame callbacks run since construction.
func (a *BlobAnimator) Ticks() int { return a.ticks }

func (a *BlobAnimator) Offsets() [len(Blobs)]Vec2 { return a.offsets }

func (a *BlobAnimator) Pointer() (target, current Vec2) {
	return a.filter.Target, a.filter.Current
}

func (a *BlobAnimator) Enable() {
	if a.enabled {
		return
	}
	a.enabled = true
	a.started = false
	if a.hub != nil {
		a.unsubscribe = a.hub.OnPointer(func(e PointerEvent) {
			a.filter.SetTarget(e.Normalized())
		})
	}
	a.ticket = a.queue.Request(a.frame)
}

// Disable stops scheduling, drops the pointer listener and zeroes the
// motion state. A later Enable starts a fresh loop from t=0.
func (a *BlobAnimator) Disable() {
	if a.enabled {
		a.queue.Cancel(a.ticket)
		if a.unsubscribe != nil {
			a.unsubscribe()
			a.unsubscribe = nil
		}
		a.enabled = false
		a.ticket = 0
	}
	a.filter.Reset()
	a.offsets = [len(Blobs)]Vec2{}
}

func (a *BlobAnimator) frame(ts float64) {
	if !a.enabled {
		return
	}
	if !a.started {
		a.start = ts
		a.started = true
	}
	t := ts - a.start

	mouse := MouseOffset(a.filter.Step(), a.mouseFollow)
	for i, cfg := range Blobs {
		off := cfg.Offset(t, mouse)
		a.offsets[i] = off
		if target := a.targets[i]; target != nil {
			target.Translate(off.X, off.Y)
		}
	}

	a.ticks++
	a.ticket = a.queue.Request(a.frame)
}
