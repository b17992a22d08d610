package field

import (
	"math"
	"testing"

	"gradient-shine/internal/config"
	"gradient-shine/internal/motion"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSimplexRangeAndDeterminism(t *testing.T) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 200; i++ {
		for j := 0; j < 200; j++ {
			x, y := float64(i)*0.173-17, float64(j)*0.131-13
			v := Simplex2(x, y)
			if v != Simplex2(x, y) {
				t.Fatalf("Expected deterministic noise at (%v, %v)", x, y)
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo < -1.05 || hi > 1.05 {
		t.Errorf("Expected noise within [-1, 1], got [%v, %v]", lo, hi)
	}
	if hi-lo < 1 {
		t.Errorf("Expected noise to vary, got [%v, %v]", lo, hi)
	}
}

func TestSimplexZeroAtLatticeOrigin(t *testing.T) {
	// Every corner gradient is dotted with a zero offset at the origin's
	// own corner, and the two other corners are out of reach.
	if v := Simplex2(0, 0); math.Abs(v) > 1e-12 {
		t.Errorf("Expected 0 at origin, got %v", v)
	}
}

func TestSimplexContinuity(t *testing.T) {
	const step = 1e-4
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.0371
		a, b := Simplex2(x, 1.7), Simplex2(x+step, 1.7)
		if math.Abs(a-b) > 0.01 {
			t.Fatalf("Expected continuous noise near x=%v, jumped %v", x, a-b)
		}
	}
}

func TestMod289MatchesGLSL(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		290:  1,
		-1:   288,
		-289: 0,
	}
	for in, want := range cases {
		if got := mod289(in); got != want {
			t.Errorf("mod289(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestShaderTime(t *testing.T) {
	if got := ShaderTime(1000, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected 1 at 1000ms speed 1, got %v", got)
	}
	if got := ShaderTime(1000, 2.5); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Expected speed to scale time, got %v", got)
	}
}

func TestRampBreakpoints(t *testing.T) {
	stops := [3]colorful.Color{{R: 1}, {G: 1}, {B: 1}}

	cases := []struct {
		t    float64
		want colorful.Color
	}{
		{0, colorful.Color{R: 1}},
		{0.15, colorful.Color{R: 0.5, G: 0.5}},
		{0.3, colorful.Color{G: 1}},
		{0.45, colorful.Color{G: 0.5, B: 0.5}},
		{0.6, colorful.Color{B: 1}},
		{0.9, colorful.Color{B: 1}},
	}
	for _, c := range cases {
		got := Ramp(stops, c.t)
		if math.Abs(got.R-c.want.R) > 1e-9 || math.Abs(got.G-c.want.G) > 1e-9 || math.Abs(got.B-c.want.B) > 1e-9 {
			t.Errorf("Ramp(%v) = %+v, want %+v", c.t, got, c.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if Smoothstep(0, 1, -1) != 0 || Smoothstep(0, 1, 2) != 1 {
		t.Error("Expected clamped ends")
	}
	if v := Smoothstep(0, 1, 0.5); v != 0.5 {
		t.Errorf("Expected 0.5 at midpoint, got %v", v)
	}
	if Smoothstep(0.2, 0.2, 0.1) != 0 || Smoothstep(0.2, 0.2, 0.3) != 1 {
		t.Error("Expected hard step when edges meet")
	}
}

func baseUniforms() Uniforms {
	return Uniforms{
		Time:       3.2,
		Amplitude:  1,
		ColorStops: [3]colorful.Color{{R: 0.2, G: 0.4, B: 1}, {R: 1, B: 1}, {R: 1, G: 1, B: 1}},
		Resolution: [2]float64{320, 200},
		Blend:      0.5,
		Opacity:    1,
	}
}

func TestShadePremultipliedAndOpacity(t *testing.T) {
	u := baseUniforms()
	for y := 0.5; y < 200; y += 13 {
		for x := 0.5; x < 320; x += 17 {
			c := Shade(u, x, y)
			for _, v := range []float64{c.R, c.G, c.B} {
				if v > c.A+1e-9 && c.A < 1 {
					// premultiplied: a channel can only exceed alpha when
					// intensity > 1, which needs full alpha
					t.Fatalf("Expected premultiplied colour at (%v,%v), got %+v", x, y, c)
				}
			}
		}
	}

	half := u
	half.Opacity = 0.5
	a, b := Shade(u, 100.5, 180.5), Shade(half, 100.5, 180.5)
	if math.Abs(b.A-a.A*0.5) > 1e-9 || math.Abs(b.R-a.R*0.5) > 1e-9 {
		t.Errorf("Expected opacity to scale output, got %+v vs %+v", a, b)
	}

	zero := u
	zero.Opacity = 0
	if c := Shade(zero, 10, 10); c != (RGBA{}) {
		t.Errorf("Expected nothing at zero opacity, got %+v", c)
	}
}

func TestShadeBrighterTowardsTop(t *testing.T) {
	u := baseUniforms()
	bottom := Shade(u, 160, 1)
	top := Shade(u, 160, 199)
	if top.A < bottom.A {
		t.Errorf("Expected the aurora to sit at the top, got top=%v bottom=%v", top.A, bottom.A)
	}
	if bottom.A != 0 {
		t.Errorf("Expected transparent bottom row, got %v", bottom.A)
	}
}

func TestShadeWithoutResolution(t *testing.T) {
	u := baseUniforms()
	u.Resolution = [2]float64{}
	if c := Shade(u, 1, 1); c != (RGBA{}) {
		t.Errorf("Expected empty fragment, got %+v", c)
	}
}

func TestFeedNext(t *testing.T) {
	f := NewFeed(800, 600)
	colors := config.GradientColors{Color1: "#ff0000", Color2: "#00ff00", Color3: "#0000ff"}
	bg := config.Default().Background
	bg.MouseFollow = 1
	bg.Speed = 2

	u := f.Next(500, colors, bg)
	if u.Mouse != [2]float64{0, 0} {
		t.Errorf("Expected resting pointer, got %v", u.Mouse)
	}
	if u.Resolution != [2]float64{800, 600} {
		t.Errorf("Unexpected resolution %v", u.Resolution)
	}
	if math.Abs(u.Time-1) > 1e-12 {
		t.Errorf("Expected time 1, got %v", u.Time)
	}
	if !u.ColorStops[2].AlmostEqualRgb(colorful.Color{B: 1}) {
		t.Errorf("Unexpected third stop %+v", u.ColorStops[2])
	}

	f.Pointer(motion.PointerEvent{X: 800, Y: 600, Width: 800, Height: 600})
	u = f.Next(516, colors, bg)
	if math.Abs(u.Mouse[0]-0.5*motion.ShaderSmoothing) > 1e-12 {
		t.Errorf("Expected one filter step towards 0.5, got %v", u.Mouse[0])
	}
	if u.Mouse[1] >= 0 {
		t.Errorf("Expected y flipped for GL, got %v", u.Mouse[1])
	}

	f.Resize(1024, 768)
	f.Reset()
	if w, h := f.Resolution(); w != 1024 || h != 768 {
		t.Errorf("Expected new resolution, got %vx%v", w, h)
	}
	if !f.Smoothed().Equal(motion.Vec2{}) {
		t.Errorf("Expected reset pointer, got %+v", f.Smoothed())
	}
}
