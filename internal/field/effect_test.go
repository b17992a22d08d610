package field

import (
	"testing"

	"gradient-shine/internal/config"
	"gradient-shine/internal/motion"
)

func newTestEffect(mode config.BackgroundMode) (*Effect, *motion.FrameQueue, *motion.Hub) {
	s := config.Default()
	s.Background.Mode = mode
	q := motion.NewFrameQueue()
	h := motion.NewHub()
	return NewEffect(q, h, s, 800, 600), q, h
}

func TestEffectShaderLifecycle(t *testing.T) {
	e, q, h := newTestEffect(config.ModeShader)

	if _, ok := e.Uniforms(); ok {
		t.Errorf("expected no uniforms before the first frame")
	}
	e.Enable()
	e.Enable()
	if p, r := h.Listeners(); p != 1 || r != 1 {
		t.Errorf("expected 1 pointer and 1 resize listener, got %d and %d", p, r)
	}
	if q.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", q.Pending())
	}

	h.EmitResize(motion.ResizeEvent{Width: 400, Height: 200})
	q.Tick(1000)
	q.Tick(1016)

	u, ok := e.Uniforms()
	if !ok || e.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d (ready=%v)", e.Frames(), ok)
	}
	if u.Resolution != [2]float64{400, 200} {
		t.Errorf("expected resized resolution, got %v", u.Resolution)
	}
	if u.Time != ShaderTime(1016, e.Settings().Speed) {
		t.Errorf("expected time from the frame timestamp, got %v", u.Time)
	}

	e.Disable()
	e.Disable()
	if p, r := h.Listeners(); p != 0 || r != 0 {
		t.Errorf("expected listeners removed, got %d and %d", p, r)
	}
	q.Tick(1032)
	if q.Pending() != 0 || e.Frames() != 2 {
		t.Errorf("expected no frames after disable, pending=%d frames=%d", q.Pending(), e.Frames())
	}
	if _, ok := e.Uniforms(); ok {
		t.Errorf("expected uniforms reset by disable")
	}
}

func TestEffectPointerReachesMouseUniform(t *testing.T) {
	e, q, h := newTestEffect(config.ModeShader)
	e.Enable()

	h.EmitPointer(motion.PointerEvent{X: 800, Y: 600, Width: 800, Height: 600})
	q.Tick(0)

	u, _ := e.Uniforms()
	// one filter step of 0.03 towards (0.5, 0.5), scaled by follow 0.5, y flipped
	if u.Mouse[0] <= 0 || u.Mouse[1] >= 0 {
		t.Errorf("expected mouse uniform in (+, -), got %v", u.Mouse)
	}
	want := 0.5 * 0.03 * 0.5
	if d := u.Mouse[0] - want; d > 1e-12 || d < -1e-12 {
		t.Errorf("expected mouse x %v, got %v", want, u.Mouse[0])
	}
	e.Disable()
}

func TestEffectBlobLifecycle(t *testing.T) {
	e, q, h := newTestEffect(config.ModeBlobs)
	e.Enable()

	if e.Blobs() == nil {
		t.Fatalf("expected a blob animator in blob mode")
	}
	q.Tick(0)
	q.Tick(16)
	if e.Blobs().Ticks() != 2 {
		t.Errorf("expected 2 blob ticks, got %d", e.Blobs().Ticks())
	}

	e.Disable()
	if e.Blobs() != nil {
		t.Errorf("expected animator dropped on disable")
	}
	if p, r := h.Listeners(); p != 0 || r != 0 {
		t.Errorf("expected listeners removed, got %d and %d", p, r)
	}
	if q.Pending() != 0 {
		t.Errorf("expected no pending frames, got %d", q.Pending())
	}
}

func TestEffectUpdateReportsModeSwitch(t *testing.T) {
	e, _, _ := newTestEffect(config.ModeShader)
	s := config.Default()

	s.Background.Mode = config.ModeBlobs
	if e.Update(s) {
		t.Errorf("expected no restart while disabled")
	}
	if e.Mode() != config.ModeBlobs {
		t.Errorf("expected configured mode blobs, got %s", e.Mode())
	}

	e.Enable()
	s.Background.Opacity = 0.9
	if e.Update(s) {
		t.Errorf("expected opacity change to apply in place")
	}
	s.Background.Mode = "unknown"
	if !e.Update(s) {
		t.Errorf("expected unknown mode (shader) to require a restart from blobs")
	}
	if e.Mode() != config.ModeBlobs {
		t.Errorf("expected running mode to stay blobs until restarted, got %s", e.Mode())
	}
	e.Disable()
}
