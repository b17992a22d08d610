package engine2D

import (
	"gradient-shine/internal/motion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlobNode is the paint node of one background blob. The animator moves it
// through Translate; Draw paints it at its layout position plus that offset.
type BlobNode struct {
	Index  int
	Color  rl.Color
	Offset motion.Vec2
}

func (n *BlobNode) Translate(x, y float64) {
	n.Offset = motion.Vec2{X: x, Y: y}
}

// Bounds is the blob square in viewport pixels, translation included.
func (n *BlobNode) Bounds(viewW, viewH float64) rl.Rectangle {
	x, y, size := motion.BlobRect(n.Index, viewW, viewH)
	return rl.NewRectangle(float32(x+n.Offset.X), float32(y+n.Offset.Y), float32(size), float32(size))
}

// Draw paints the blob fill scaled by scale: a circle fading to
// transparent at 70% of the corner distance. Color must be premultiplied.
func (n *BlobNode) Draw(viewW, viewH, scale float64) {
	b := n.Bounds(viewW, viewH)
	cx := (float64(b.X) + float64(b.Width)/2) * scale
	cy := (float64(b.Y) + float64(b.Height)/2) * scale
	radius := float64(b.Width) / 2 * 1.41421356 * 0.7 * scale
	rl.DrawCircleGradient(int32(cx), int32(cy), float32(radius), n.Color, rl.Blank)
}
