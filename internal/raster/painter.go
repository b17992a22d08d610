package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"gradient-shine/internal/config"
	"gradient-shine/internal/field"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"
	"gradient-shine/internal/utils"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// BlobScale is the resolution of the blob layer relative to the viewport.
const BlobScale = 0.25

const placeholderSize = 18

var (
	fontOnce sync.Once
	fontData *truetype.Font
	fontErr  error
)

func placeholderFace() (font.Face, error) {
	fontOnce.Do(func() {
		fontData, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", fontErr)
	}
	return truetype.NewFace(fontData, &truetype.Options{
		Size:    placeholderSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Painter draws the scene on the CPU into an RGBA image. Colours are
// premultiplied throughout, matching the GPU path.
type Painter struct {
	dc     *gg.Context
	width  int
	height int
	face   font.Face

	// Workers bounds the goroutines shading the background.
	Workers int
}

func NewPainter(width, height int) (*Painter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	face, err := placeholderFace()
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return &Painter{
		dc:      gg.NewContext(width, height),
		width:   width,
		height:  height,
		face:    face,
		Workers: runtime.NumCPU(),
	}, nil
}

func (p *Painter) Size() (width, height int) { return p.width, p.height }

func (p *Painter) Image() *image.RGBA {
	return p.dc.Image().(*image.RGBA)
}

func (p *Painter) SavePNG(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	utils.Info("Raster: Saved %dx%d snapshot to %s", p.width, p.height, path)
	return nil
}

func (p *Painter) Clear(c color.Color) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

// PaintShader composites one aurora frame over the target.
func (p *Painter) PaintShader(u field.Uniforms) {
	p.dc.DrawImage(ShadeImage(u, p.width, p.height, p.Workers), 0, 0)
}

// ShadeImage evaluates the aurora for every pixel of a w×h image. Rows are
// split into bands shaded concurrently by at most workers goroutines.
func ShadeImage(u field.Uniforms, w, h, workers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	if workers < 1 {
		workers = 1
	}
	sx := u.Resolution[0] / float64(w)
	sy := u.Resolution[1] / float64(h)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	band := (h + workers*4 - 1) / (workers * 4)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		wg.Add(1)
		sem <- struct{}{}
		go func(y0, y1 int) {
			defer wg.Done()
			defer func() { <-sem }()
			for y := y0; y < y1; y++ {
				// fragment coordinates grow upwards
				fy := (float64(h-y) - 0.5) * sy
				for x := 0; x < w; x++ {
					img.SetRGBA(x, y, toRGBA(field.Shade(u, (float64(x)+0.5)*sx, fy)))
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	return img
}

// PaintBlobs composites the blob variant of the background.
func (p *Painter) PaintBlobs(offsets [len(motion.Blobs)]motion.Vec2, colors config.GradientColors, bg config.BackgroundSettings) {
	p.dc.DrawImage(BlobImage(offsets, colors, bg, p.width, p.height), 0, 0)
}

// BlobImage paints the four blobs at BlobScale, blurs and fades them, and
// scales the result up to w×h.
func BlobImage(offsets [len(motion.Blobs)]motion.Vec2, colors config.GradientColors, bg config.BackgroundSettings, w, h int) *image.RGBA {
	sw := max(1, int(float64(w)*BlobScale))
	sh := max(1, int(float64(h)*BlobScale))
	dc := gg.NewContext(sw, sh)

	slots := colors.Slots()
	for i := range motion.Blobs {
		x, y, size := BlobPlacement(i, offsets[i], float64(w), float64(h))
		x, y, size = x*BlobScale, y*BlobScale, size*BlobScale
		dc.SetFillStyle(newBlobPattern(utils.MustColor(slots[i]), x, y, size))
		dc.DrawRectangle(x, y, size, size)
		dc.Fill()
	}

	small := Blur(dc.Image().(*image.RGBA), bg.Blur*BlobScale)
	Fade(small, bg.Opacity)
	return Resize(small, w, h)
}

// PaintGlow draws both containers of g around fieldRect, back to front.
func (p *Painter) PaintGlow(g *glow.Glow, fieldRect glow.Rect) {
	for _, c := range g.Containers() {
		p.paintContainer(c, fieldRect)
	}
}

func (p *Painter) paintContainer(c *glow.Container, fieldRect glow.Rect) {
	b := c.Bounds(fieldRect)
	if b.W <= 0 || b.H <= 0 || c.Opacity <= 0 {
		return
	}
	pad := math.Ceil(3 * c.Blur)
	w := int(math.Ceil(b.W + 2*pad))
	h := int(math.Ceil(b.H + 2*pad))

	img := ContainerImage(c, w, h, glow.Rect{X: pad, Y: pad, W: b.W, H: b.H})
	img = Blur(img, c.Blur)
	Fade(img, c.Opacity)
	p.dc.DrawImage(img, int(math.Round(b.X-pad)), int(math.Round(b.Y-pad)))
}

// ContainerImage paints the layers and shines of c into box on a fresh
// w×h image, clipped to the container's rounded corners.
func ContainerImage(c *glow.Container, w, h int, box glow.Rect) *image.RGBA {
	dc := gg.NewContext(w, h)
	RoundedPath(dc, box, c.Radii)
	dc.Clip()

	frame := c.Stack.Frame()
	for _, layer := range frame.Layers {
		dc.SetFillStyle(&layerPattern{paints: layer.Background.Resolve(), box: box, opacity: layer.Opacity})
		dc.DrawRectangle(box.X, box.Y, box.W, box.H)
		dc.Fill()
	}

	stops := glow.ShineStops(c.Stack.Colors())
	for _, s := range frame.Shines {
		paintShine(dc, box, s.Edge, stops, s.Opacity)
	}
	return dc.Image().(*image.RGBA)
}

// paintShine draws a 1px highlight along one edge of box. Horizontal lines
// run left to right, vertical ones bottom to top.
func paintShine(dc *gg.Context, box glow.Rect, edge glow.Direction, stops []glow.ColorStop, opacity float64) {
	if len(stops) < 2 || opacity <= 0 {
		return
	}
	var grad gg.Gradient
	var x, y, w, h float64
	switch edge {
	case glow.Top, glow.Bottom:
		grad = gg.NewLinearGradient(box.X, 0, box.X+box.W, 0)
		x, y, w, h = box.X, box.Y, box.W, 1
		if edge == glow.Bottom {
			y = box.Y + box.H - 1
		}
	default:
		grad = gg.NewLinearGradient(0, box.Y+box.H, 0, box.Y)
		x, y, w, h = box.X, box.Y, 1, box.H
		if edge == glow.Right {
			x = box.X + box.W - 1
		}
	}
	for _, s := range stops {
		a := s.Alpha * opacity
		grad.AddColorStop(s.Pos, toRGBA(field.RGBA{R: s.Color.R * a, G: s.Color.G * a, B: s.Color.B * a, A: a}))
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

// FitCorners scales radii down uniformly until adjacent corners fit along
// every side, the way CSS resolves overlapping border radii.
func FitCorners(w, h float64, c glow.Corners) glow.Corners {
	f := 1.0
	fit := func(side, a, b float64) {
		if a+b > 0 {
			f = math.Min(f, side/(a+b))
		}
	}
	fit(w, c.TopLeft, c.TopRight)
	fit(w, c.BottomLeft, c.BottomRight)
	fit(h, c.TopLeft, c.BottomLeft)
	fit(h, c.TopRight, c.BottomRight)
	f = math.Max(f, 0)
	return glow.Corners{
		TopLeft:     c.TopLeft * f,
		TopRight:    c.TopRight * f,
		BottomRight: c.BottomRight * f,
		BottomLeft:  c.BottomLeft * f,
	}
}

// RoundedPath adds r with per-corner radii to the current path.
func RoundedPath(dc *gg.Context, r glow.Rect, corners glow.Corners) {
	c := FitCorners(r.W, r.H, corners)
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H

	dc.NewSubPath()
	dc.MoveTo(x0+c.TopLeft, y0)
	dc.LineTo(x1-c.TopRight, y0)
	dc.DrawArc(x1-c.TopRight, y0+c.TopRight, c.TopRight, -math.Pi/2, 0)
	dc.LineTo(x1, y1-c.BottomRight)
	dc.DrawArc(x1-c.BottomRight, y1-c.BottomRight, c.BottomRight, 0, math.Pi/2)
	dc.LineTo(x0+c.BottomLeft, y1)
	dc.DrawArc(x0+c.BottomLeft, y1-c.BottomLeft, c.BottomLeft, math.Pi/2, math.Pi)
	dc.LineTo(x0, y0+c.TopLeft)
	dc.DrawArc(x0+c.TopLeft, y0+c.TopLeft, c.TopLeft, math.Pi, 3*math.Pi/2)
	dc.ClosePath()
}

// PaintField draws the input field surface and its placeholder.
func (p *Painter) PaintField(f glow.Rect, radius float64, theme glow.Theme, placeholder string) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	p.dc.SetColor(theme.Surface)
	p.dc.DrawRoundedRectangle(f.X, f.Y, f.W, f.H, math.Min(radius, math.Min(f.W, f.H)/2))
	p.dc.Fill()

	p.dc.SetFontFace(p.face)
	p.dc.SetColor(theme.Text)
	p.dc.DrawStringAnchored(placeholder, f.X+20, f.Y+f.H/2, 0, 0.35)
}
