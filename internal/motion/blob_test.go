package motion

import (
	"math"
	"strings"
	"testing"

	"gradient-shine/internal/config"
)

type recordingNode struct {
	x, y  float64
	calls int
}

func (n *recordingNode) Translate(x, y float64) {
	n.x, n.y = x, y
	n.calls++
}

func TestPointerFilterConverges(t *testing.T) {
	f := NewPointerFilter(BlobSmoothing)
	f.SetTarget(Vec2{X: 0.5, Y: -0.5})

	for k := 1; k <= 50; k++ {
		cur := f.Step()
		want := 0.5 * (1 - math.Pow(1-BlobSmoothing, float64(k)))
		if math.Abs(cur.X-want) > 1e-12 || math.Abs(cur.Y+want) > 1e-12 {
			t.Fatalf("step %d: expected ±%v, got %+v", k, want, cur)
		}
	}
}

func TestPointerFilterAtRestIsIdempotent(t *testing.T) {
	f := NewPointerFilter(ShaderSmoothing)
	f.Target = Vec2{X: 0.2, Y: 0.1}
	f.Current = f.Target
	for i := 0; i < 5; i++ {
		if got := f.Step(); !got.Equal(f.Target) {
			t.Fatalf("Expected filter at rest to stay put, got %+v", got)
		}
	}
}

func TestPointerFilterLastSampleWins(t *testing.T) {
	f := NewPointerFilter(1)
	f.SetTarget(Vec2{X: 0.1})
	f.SetTarget(Vec2{X: -0.3})
	if got := f.Step(); got.X != -0.3 {
		t.Errorf("Expected last sample to win, got %v", got.X)
	}
}

func TestBlobOffsetAtRest(t *testing.T) {
	// With no pointer input blob 0 starts at sin(0)*120, cos(1.2)*80
	off := Blobs[0].Offset(0, Vec2{})
	if math.Abs(off.X) > 1e-12 {
		t.Errorf("Expected x=0, got %v", off.X)
	}
	if want := math.Cos(1.2) * 80; math.Abs(off.Y-want) > 1e-12 {
		t.Errorf("Expected y=%v, got %v", want, off.Y)
	}

	mouse := MouseOffset(Vec2{X: 0.5, Y: 0}, 0.5)
	if mouse.X != 50 {
		t.Errorf("Expected 50px pointer contribution, got %v", mouse.X)
	}
	withMouse := Blobs[2].Offset(0, mouse)
	if want := math.Sin(4.0)*90 + 50; math.Abs(withMouse.X-want) > 1e-12 {
		t.Errorf("Expected %v, got %v", want, withMouse.X)
	}
}

func TestBlobAnimatorLifecycle(t *testing.T) {
	q := NewFrameQueue()
	h := NewHub()
	a := NewBlobAnimator(q, h, 0.5)

	nodes := make([]*recordingNode, len(Blobs))
	for i := range nodes {
		nodes[i] = &recordingNode{}
		a.Attach(i, nodes[i])
	}
	a.Detach(3)

	a.Enable()
	a.Enable() // idempotent
	if q.Pending() != 1 {
		t.Fatalf("Expected a single scheduled frame, got %d", q.Pending())
	}
	if p, _ := h.Listeners(); p != 1 {
		t.Fatalf("Expected one pointer listener, got %d", p)
	}

	h.EmitPointer(PointerEvent{X: 800, Y: 300, Width: 800, Height: 600})
	q.Tick(1000)
	q.Tick(1016)

	if a.Ticks() != 2 {
		t.Errorf("Expected 2 ticks, got %d", a.Ticks())
	}
	if nodes[0].calls != 2 || nodes[3].calls != 0 {
		t.Errorf("Expected attached node moved twice and detached node untouched, got %d and %d",
			nodes[0].calls, nodes[3].calls)
	}

	target, current := a.Pointer()
	if target.X != 0.5 || current.X <= 0 || current.X >= 0.5 {
		t.Errorf("Expected smoothed pointer between 0 and target, got target=%+v current=%+v", target, current)
	}

	a.Disable()
	if q.Pending() != 0 {
		t.Errorf("Expected no scheduled frame after disable, got %d", q.Pending())
	}
	if p, _ := h.Listeners(); p != 0 {
		t.Errorf("Expected listener removed, got %d", p)
	}
	target, current = a.Pointer()
	if !target.Equal(Vec2{}) || !current.Equal(Vec2{}) {
		t.Errorf("Expected pointer state reset, got %+v %+v", target, current)
	}

	q.Tick(1032)
	if a.Ticks() != 2 {
		t.Errorf("Expected tick count to stop at 2, got %d", a.Ticks())
	}
}

func TestBlobAnimatorRestartsFromZero(t *testing.T) {
	q := NewFrameQueue()
	a := NewBlobAnimator(q, NewHub(), 0)
	node := &recordingNode{}
	a.Attach(0, node)

	a.Enable()
	q.Tick(5000)
	first := a.Offsets()[0]

	q.Tick(7000)
	a.Disable()
	a.Enable()
	q.Tick(9000)

	if got := a.Offsets()[0]; !got.Equal(first) {
		t.Errorf("Expected restart at t=0 offset %+v, got %+v", first, got)
	}
	if want := Blobs[0].Offset(0, Vec2{}); !first.Equal(want) {
		t.Errorf("Expected first frame at t=0, got %+v want %+v", first, want)
	}
}

func TestBlobAnimatorWithoutTargets(t *testing.T) {
	q := NewFrameQueue()
	a := NewBlobAnimator(q, nil, 1)
	a.Enable()
	q.Tick(0)
	q.Tick(16)
	if a.Ticks() != 2 {
		t.Errorf("Expected loop to run without targets, got %d ticks", a.Ticks())
	}
	a.Disable()
}

func TestBlobRectPlacement(t *testing.T) {
	x, y, size := BlobRect(1, 1000, 800)
	if size != 550 {
		t.Errorf("Expected 55vw side, got %v", size)
	}
	// right: -10% puts the right edge 100px past the viewport
	if x+size != 1100 || y != -80 {
		t.Errorf("Expected right edge at 1100 and top at -80, got x=%v y=%v", x, y)
	}
}

func TestBlobCSS(t *testing.T) {
	colors := config.GradientColors{Color1: "#111111", Color2: "#222222", Color3: "#333333"}
	bg := config.BackgroundSettings{Opacity: 0.5, Blur: 80, MouseFollow: 0.3}
	css := BlobCSS(colors, bg)

	for _, want := range []string{
		"opacity: 0.5;",
		"filter: blur(80px);",
		"#33333355 0%",
		"const mouseFollow = 0.3;",
		"(mouseTarget.x - mouseCurrent.x) * 0.02;",
		"freqX: 0.00035",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("Expected CSS to contain %q", want)
		}
	}
	// fourth blob falls back to the first color
	if !strings.Contains(css, ".bg-aurora-blob--3 {\n  top: 20%; left: -5%;\n  width: 50vw; height: 50vw;\n  background: radial-gradient(circle,\n    #11111155") {
		t.Error("Expected blob 3 to reuse color1")
	}
}
