package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"gradient-shine/internal/config"
	"gradient-shine/internal/field"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"

	"github.com/lucasb-eyer/go-colorful"
)

func TestCompositeAtFirstClauseOnTop(t *testing.T) {
	anchor := glow.Anchor{CX: 50, CY: 50, EW: 50, EH: 50}
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	paints := []glow.Paint{
		{Anchor: anchor, Color: red, Alpha: 1, Fade: 100},
		{Anchor: anchor, Color: blue, Alpha: 1, Fade: 100},
	}

	c := CompositeAt(paints, 50, 50, 100, 100)
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("expected opaque red at the centre, got %+v", c)
	}

	// halfway out both clauses are at alpha 0.5: red over blue
	c = CompositeAt(paints, 75, 50, 100, 100)
	if math.Abs(c.R-0.5) > 1e-9 || math.Abs(c.B-0.25) > 1e-9 || math.Abs(c.A-0.75) > 1e-9 {
		t.Errorf("expected red over blue, got %+v", c)
	}

	if c := CompositeAt(paints, 0, 0, 100, 100); c != (field.RGBA{}) {
		t.Errorf("expected transparent outside every ellipse, got %+v", c)
	}
}

func TestToRGBAKeepsPremultipliedInvariant(t *testing.T) {
	c := toRGBA(field.RGBA{R: 0.9, G: 0.2, B: 1.4, A: 0.5})
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Errorf("expected channels bounded by alpha, got %v", c)
	}
	if c.A != 128 {
		t.Errorf("expected alpha 128, got %d", c.A)
	}
}

func TestBlobPatternFalloff(t *testing.T) {
	if r := BlobRadius(100); math.Abs(r-50*math.Sqrt2*0.7) > 1e-9 {
		t.Errorf("expected 70%% of the corner distance, got %v", r)
	}

	p := newBlobPattern(colorful.Color{R: 1, G: 1, B: 1}, 0, 0, 100)
	centre := p.at(50, 50)
	if math.Abs(centre.A-BlobAlpha) > 1e-9 || centre.R != centre.A {
		t.Errorf("expected white at alpha 0x55 in the centre, got %+v", centre)
	}
	if edge := p.at(50+p.radius, 50); edge.A != 0 {
		t.Errorf("expected transparent at the gradient end, got %+v", edge)
	}
	half := p.at(50+p.radius/2, 50)
	if math.Abs(half.A-BlobAlpha/2) > 1e-9 {
		t.Errorf("expected half alpha halfway, got %+v", half)
	}
}

func TestBlobPlacementAddsOffset(t *testing.T) {
	x0, y0, s0 := motion.BlobRect(2, 1000, 800)
	x, y, s := BlobPlacement(2, motion.Vec2{X: 10, Y: -5}, 1000, 800)
	if x != x0+10 || y != y0-5 || s != s0 {
		t.Errorf("expected translated rect, got (%v, %v, %v)", x, y, s)
	}
}

func TestFitCorners(t *testing.T) {
	c := FitCorners(100, 20, glow.Corners{TopLeft: 15, TopRight: 15, BottomRight: 15, BottomLeft: 15})
	if math.Abs(c.TopLeft-10) > 1e-9 || math.Abs(c.BottomRight-10) > 1e-9 {
		t.Errorf("expected radii scaled to 10, got %+v", c)
	}

	in := glow.Corners{TopLeft: 4, TopRight: 8, BottomRight: 2, BottomLeft: 0}
	if c := FitCorners(100, 100, in); c != in {
		t.Errorf("expected fitting radii untouched, got %+v", c)
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestBlurKeepsFlatImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	c := color.RGBA{60, 30, 90, 120}
	fill(img, c)

	out := Blur(img, 8)
	if out.Bounds() != img.Bounds() {
		t.Fatalf("expected same bounds, got %v", out.Bounds())
	}
	got := out.RGBAAt(20, 15)
	if absDiff(got.R, c.R) > 1 || absDiff(got.A, c.A) > 1 {
		t.Errorf("expected flat colour %v to survive, got %v", c, got)
	}

	if Blur(img, 0.2) != img {
		t.Errorf("expected tiny sigma to return the source")
	}
}

func TestBlurSpreadsEnergy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 28; y < 36; y++ {
		for x := 28; x < 36; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	out := Blur(img, 8)
	if a := out.RGBAAt(32, 32).A; a == 0 || a == 255 {
		t.Errorf("expected softened centre, got alpha %d", a)
	}
	if out.RGBAAt(24, 32).A == 0 {
		t.Errorf("expected energy outside the square")
	}
	if out.RGBAAt(0, 0).A != 0 {
		t.Errorf("expected far corner to stay transparent")
	}
}

func TestFade(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fill(img, color.RGBA{200, 100, 50, 200})
	Fade(img, 0.5)
	if got := img.RGBAAt(1, 1); got != (color.RGBA{100, 50, 25, 100}) {
		t.Errorf("expected halved pixel, got %v", got)
	}
	Fade(img, 0)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("expected cleared pixel, got %v", got)
	}
}

func testUniforms(w, h int) field.Uniforms {
	s := config.Default()
	return field.NewFeed(w, h).Next(1234, s.Colors.Normalize(), s.Background)
}

func TestShadeImageMatchesFragmentShader(t *testing.T) {
	const w, h = 24, 16
	u := testUniforms(w, h)

	serial := ShadeImage(u, w, h, 1)
	parallel := ShadeImage(u, w, h, 4)
	if !bytes.Equal(serial.Pix, parallel.Pix) {
		t.Fatalf("expected worker count not to change the result")
	}

	for _, p := range [][2]int{{0, 0}, {5, 3}, {w - 1, h - 1}} {
		x, y := p[0], p[1]
		want := toRGBA(field.Shade(u, float64(x)+0.5, float64(h-y)-0.5))
		if got := serial.RGBAAt(x, y); got != want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
		}
	}
}

func TestShadeImageScalesToResolution(t *testing.T) {
	u := testUniforms(48, 32)
	small := ShadeImage(u, 24, 16, 2)
	want := toRGBA(field.Shade(u, 1, 31))
	if got := small.RGBAAt(0, 0); got != want {
		t.Errorf("expected half-size image to sample the full resolution, got %v want %v", got, want)
	}
}

func TestContainerImageIsClippedToCorners(t *testing.T) {
	g := glow.NewGlow(config.Default())
	img := ContainerImage(&g.Border, 100, 40, glow.Rect{W: 100, H: 40})

	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("expected corner outside the radius to stay empty, got alpha %d", a)
	}
	var total int
	for i := 3; i < len(img.Pix); i += 4 {
		total += int(img.Pix[i])
	}
	if total == 0 {
		t.Errorf("expected the layers to paint something")
	}
}

func TestSceneShaderFrameAndClose(t *testing.T) {
	sc := NewScene(config.Default(), 64, 48)
	if p, r := sc.Driver.Hub.Listeners(); p != 1 || r != 1 {
		t.Errorf("expected shader listeners, got %d pointer and %d resize", p, r)
	}

	if ts := sc.Step(16 * time.Millisecond); ts != 16 {
		t.Errorf("expected timestamp 16, got %v", ts)
	}
	if _, ok := sc.Background.Uniforms(); !ok {
		t.Fatalf("expected uniforms after the first step")
	}

	p, err := NewPainter(64, 48)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sc.Paint(p)
	if got := p.Image().RGBAAt(0, 0); got == sc.Theme.Background {
		t.Errorf("expected the aurora over the backdrop at the top edge")
	}

	sc.Close()
	if p, r := sc.Driver.Hub.Listeners(); p != 0 || r != 0 {
		t.Errorf("expected no listeners after close, got %d and %d", p, r)
	}
	if sc.Driver.Queue.Pending() != 0 {
		t.Errorf("expected no pending frames after close")
	}
}

func TestSceneApplySwitchesMode(t *testing.T) {
	sc := NewScene(config.Default(), 64, 48)
	defer sc.Close()

	s := sc.Settings
	s.Background.Mode = config.ModeBlobs
	sc.Apply(s)
	if sc.Background.Mode() != config.ModeBlobs || sc.Background.Blobs() == nil {
		t.Fatalf("expected blob mode running, got %s", sc.Background.Mode())
	}
	sc.Step(16 * time.Millisecond)
	sc.Step(16 * time.Millisecond)
	if n := sc.Background.Blobs().Ticks(); n != 2 {
		t.Errorf("expected 2 blob ticks, got %d", n)
	}

	s.Background.Enabled = false
	sc.Apply(s)
	if sc.Background.Enabled() {
		t.Errorf("expected background disabled")
	}
	if p, r := sc.Driver.Hub.Listeners(); p != 0 || r != 0 {
		t.Errorf("expected no listeners, got %d and %d", p, r)
	}
}

func TestSceneResizeMovesField(t *testing.T) {
	sc := NewScene(config.Default(), 800, 600)
	defer sc.Close()
	sc.Resize(1280, 720)
	if sc.Field != glow.FieldRect(1280, 720) {
		t.Errorf("expected field recentred, got %+v", sc.Field)
	}
	sc.Step(16 * time.Millisecond)
	u, _ := sc.Background.Uniforms()
	if u.Resolution != [2]float64{1280, 720} {
		t.Errorf("expected resolution to follow the resize, got %v", u.Resolution)
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	const w, h = 16, 8
	var buf bytes.Buffer
	cw, err := NewCaptureWriter(&buf, w, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(flat, color.RGBA{10, 20, 30, 40})
	noise := image.NewRGBA(image.Rect(0, 0, w, h))
	rand.New(rand.NewSource(1)).Read(noise.Pix)

	if err := cw.WriteFrame(16, flat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cw.WriteFrame(32, noise); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", cw.Frames())
	}

	cr, err := NewCaptureReader(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw, gh := cr.Size(); gw != w || gh != h {
		t.Errorf("expected %dx%d, got %dx%d", w, h, gw, gh)
	}

	f1, err := cr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f1.Timestamp != 16 || !f1.Compressed || !bytes.Equal(f1.Image.Pix, flat.Pix) {
		t.Errorf("expected compressed flat frame at 16ms, got ts=%v compressed=%v", f1.Timestamp, f1.Compressed)
	}

	f2, err := cr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f2.Timestamp != 32 || f2.Compressed || !bytes.Equal(f2.Image.Pix, noise.Pix) {
		t.Errorf("expected raw noise frame at 32ms, got ts=%v compressed=%v", f2.Timestamp, f2.Compressed)
	}

	if _, err := cr.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestCaptureRejectsBadStreams(t *testing.T) {
	var bad bytes.Buffer
	writeString(&bad, "NOTACAPTURE")
	if _, err := NewCaptureReader(&bad); !errors.Is(err, ErrBadCapture) {
		t.Errorf("expected ErrBadCapture for wrong magic, got %v", err)
	}

	var buf bytes.Buffer
	cw, _ := NewCaptureWriter(&buf, 4, 4)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := cw.WriteFrame(0, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cut := bytes.NewReader(buf.Bytes()[:buf.Len()-3])
	cr, err := NewCaptureReader(cut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cr.Next(); !errors.Is(err, ErrBadCapture) {
		t.Errorf("expected ErrBadCapture for a truncated frame, got %v", err)
	}

	if err := cw.WriteFrame(0, image.NewRGBA(image.Rect(0, 0, 2, 2))); err == nil {
		t.Errorf("expected size mismatch to fail")
	}
}

func TestRecord(t *testing.T) {
	const w, h = 32, 24
	sc := NewScene(config.Default(), w, h)
	defer sc.Close()
	p, err := NewPainter(w, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	cw, err := NewCaptureWriter(&buf, w, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Record(sc, p, cw, 3, 20*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cr, err := NewCaptureReader(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []float64{20, 40, 60} {
		f, err := cr.Next()
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", i, err)
		}
		if f.Timestamp != want {
			t.Errorf("frame %d: expected timestamp %v, got %v", i, want, f.Timestamp)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
