package raster

import (
	"image/color"
	"math"

	"gradient-shine/internal/field"
	"gradient-shine/internal/glow"
	"gradient-shine/internal/motion"

	"github.com/lucasb-eyer/go-colorful"
)

// CompositeAt evaluates a stack of clauses at (x, y) inside a w×h box. The
// first clause is painted on top, as in a CSS background list. The result
// is premultiplied.
func CompositeAt(paints []glow.Paint, x, y, w, h float64) field.RGBA {
	var out field.RGBA
	for i := len(paints) - 1; i >= 0; i-- {
		p := paints[i]
		a := p.At(x, y, w, h)
		if a <= 0 {
			continue
		}
		out = over(field.RGBA{R: p.Color.R * a, G: p.Color.G * a, B: p.Color.B * a, A: a}, out)
	}
	return out
}

// over composites premultiplied src onto dst.
func over(src, dst field.RGBA) field.RGBA {
	k := 1 - src.A
	return field.RGBA{
		R: src.R + dst.R*k,
		G: src.G + dst.G*k,
		B: src.B + dst.B*k,
		A: src.A + dst.A*k,
	}
}

// toRGBA quantizes a premultiplied colour.
func toRGBA(c field.RGBA) color.RGBA {
	q := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	a := q(c.A)
	r, g, b := q(c.R), q(c.G), q(c.B)
	// premultiplied channels never exceed alpha
	if r > a {
		r = a
	}
	if g > a {
		g = a
	}
	if b > a {
		b = a
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// layerPattern fills one gradient layer of a container whose box starts at
// (X, Y) on the target.
type layerPattern struct {
	paints  []glow.Paint
	box     glow.Rect
	opacity float64
}

func (p *layerPattern) ColorAt(x, y int) color.Color {
	c := CompositeAt(p.paints, float64(x)+0.5-p.box.X, float64(y)+0.5-p.box.Y, p.box.W, p.box.H)
	return toRGBA(scale(c, p.opacity))
}

func scale(c field.RGBA, k float64) field.RGBA {
	return field.RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}

// BlobAlpha is the centre alpha of a background blob, the 0x55 suffix of
// its CSS colour.
const BlobAlpha = float64(0x55) / 255

// blobPattern is radial-gradient(circle, <color>55 0%, transparent 70%)
// over a square box, premultiplied.
type blobPattern struct {
	color  colorful.Color
	cx, cy float64
	radius float64
}

// BlobRadius is the end of a blob's circle gradient: 70% of the distance
// from the centre to the farthest corner of a size×size box.
func BlobRadius(size float64) float64 {
	return size / 2 * math.Sqrt2 * 0.7
}

func newBlobPattern(c colorful.Color, x, y, size float64) *blobPattern {
	return &blobPattern{color: c, cx: x + size/2, cy: y + size/2, radius: BlobRadius(size)}
}

func (p *blobPattern) ColorAt(x, y int) color.Color {
	return toRGBA(p.at(float64(x)+0.5, float64(y)+0.5))
}

func (p *blobPattern) at(x, y float64) field.RGBA {
	if p.radius <= 0 {
		return field.RGBA{}
	}
	d := math.Hypot(x-p.cx, y-p.cy) / p.radius
	if d >= 1 {
		return field.RGBA{}
	}
	a := BlobAlpha * (1 - d)
	return field.RGBA{R: p.color.R * a, G: p.color.G * a, B: p.color.B * a, A: a}
}

// BlobPlacement is the translated box of blob i in a viewW×viewH viewport.
func BlobPlacement(i int, offset motion.Vec2, viewW, viewH float64) (x, y, size float64) {
	x, y, size = motion.BlobRect(i, viewW, viewH)
	return x + offset.X, y + offset.Y, size
}
