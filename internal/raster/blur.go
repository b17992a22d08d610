package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Blur approximates a gaussian of the given sigma by resampling src down
// and back up with bilinear kernels. The downscale factor follows sigma, so
// wide blurs cost less than narrow ones. A sigma below half a pixel
// returns src unchanged.
func Blur(src *image.RGBA, sigma float64) *image.RGBA {
	if sigma < 0.5 {
		return src
	}
	b := src.Bounds()
	factor := math.Max(1, sigma/2)
	sw := int(math.Max(1, math.Round(float64(b.Dx())/factor)))
	sh := int(math.Max(1, math.Round(float64(b.Dy())/factor)))

	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.BiLinear.Scale(small, small.Bounds(), src, b, draw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.BiLinear.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out
}

// Resize resamples src to w×h.
func Resize(src image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	return out
}

// Fade multiplies every premultiplied pixel of img by opacity in place.
func Fade(img *image.RGBA, opacity float64) {
	if opacity >= 1 {
		return
	}
	if opacity <= 0 {
		for i := range img.Pix {
			img.Pix[i] = 0
		}
		return
	}
	for i, v := range img.Pix {
		img.Pix[i] = uint8(math.Round(float64(v) * opacity))
	}
}
