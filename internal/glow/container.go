package glow

import (
	"math"
	"time"

	"gradient-shine/internal/config"
)

// Insets extend a container outward past the field it decorates, in px.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Corners holds per-corner radii in CSS order.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Rect is an axis-aligned box in px.
type Rect struct {
	X, Y, W, H float64
}

// Container is one clipped box the layer stack paints into.
type Container struct {
	Name    string
	Outset  Insets
	Radii   Corners
	Opacity float64
	Blur    float64
	Stack   *Stack
}

// Bounds grows the field rectangle by the container outsets.
func (c *Container) Bounds(field Rect) Rect {
	return Rect{
		X: field.X - c.Outset.Left,
		Y: field.Y - c.Outset.Top,
		W: field.W + c.Outset.Left + c.Outset.Right,
		H: field.H + c.Outset.Top + c.Outset.Bottom,
	}
}

func glowGeometry(c *Container, s config.Settings) {
	spread := s.Glow.Spread
	r := s.Border.Radius + spread
	c.Outset = Insets{spread, spread, spread, spread}
	c.Radii = Corners{r, r, r, r}
	c.Opacity = s.Glow.Intensity
	c.Blur = s.Glow.Blur
}

func borderGeometry(c *Container, s config.Settings) {
	b := s.Border
	c.Outset = Insets{b.Top, b.Right, b.Bottom, b.Left}
	c.Radii = Corners{b.Radius + b.Top, b.Radius + b.Right, b.Radius + b.Bottom, b.Radius + b.Left}
	c.Opacity = 1
	c.Blur = 0
}

// Glow is the full input-field effect: a blurred glow container behind the
// field and a crisp border container on top of it. Each owns its own stack.
type Glow struct {
	Halo   Container
	Border Container
}

func NewGlow(s config.Settings) *Glow {
	g := &Glow{
		Halo:   Container{Name: "glow", Stack: NewStack(s)},
		Border: Container{Name: "border", Stack: NewStack(s)},
	}
	glowGeometry(&g.Halo, s)
	borderGeometry(&g.Border, s)
	return g
}

func (g *Glow) Update(s config.Settings) {
	glowGeometry(&g.Halo, s)
	borderGeometry(&g.Border, s)
	g.Halo.Stack.Update(s)
	g.Border.Stack.Update(s)
}

func (g *Glow) SetRunning(running bool) {
	g.Halo.Stack.SetRunning(running)
	g.Border.Stack.SetRunning(running)
}

func (g *Glow) Advance(dt time.Duration) {
	g.Halo.Stack.Advance(dt)
	g.Border.Stack.Advance(dt)
}

// Containers returns both containers back to front.
func (g *Glow) Containers() []*Container {
	return []*Container{&g.Halo, &g.Border}
}

// Input field layout inside a viewport.
const (
	FieldMaxWidth = 640
	FieldHeight   = 56
	FieldMargin   = 48
)

// FieldRect centres the input field in a viewW×viewH viewport. Narrow
// viewports shrink it down to zero width, never below.
func FieldRect(viewW, viewH float64) Rect {
	w := math.Min(FieldMaxWidth, viewW-2*FieldMargin)
	if w < 0 {
		w = 0
	}
	return Rect{
		X: (viewW - w) / 2,
		Y: (viewH - FieldHeight) / 2,
		W: w,
		H: FieldHeight,
	}
}
