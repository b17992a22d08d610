package motion

// PointerEvent is a raw pointer sample in surface pixels together with the
// surface size it was measured against.
type PointerEvent struct {
	X, Y          float64
	Width, Height float64
}

// Normalized maps the sample to [-0.5, 0.5] on both axes, centre at zero.
func (e PointerEvent) Normalized() Vec2 {
	if e.Width <= 0 || e.Height <= 0 {
		return Vec2{}
	}
	return Vec2{X: e.X/e.Width - 0.5, Y: e.Y/e.Height - 0.5}
}

type ResizeEvent struct {
	Width, Height int
}

type (
	PointerListener func(PointerEvent)
	ResizeListener  func(ResizeEvent)
)

// Hub fans window events out to the effects that subscribed to them. Every
// subscription returns the function that removes it.
type Hub struct {
	nextID  int
	pointer map[int]PointerListener
	resize  map[int]ResizeListener
}

func NewHub() *Hub {
	return &Hub{
		pointer: make(map[int]PointerListener),
		resize:  make(map[int]ResizeListener),
	}
}

func (h *Hub) OnPointer(l PointerListener) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.pointer[id] = l
	return func() { delete(h.pointer, id) }
}

func (h *Hub) OnResize(l ResizeListener) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.resize[id] = l
	return func() { delete(h.resize, id) }
}

func (h *Hub) EmitPointer(e PointerEvent) {
	for _, l := range h.pointer {
		l(e)
	}
}

func (h *Hub) EmitResize(e ResizeEvent) {
	for _, l := range h.resize {
		l(e)
	}
}

// Listeners reports how many pointer and resize listeners are attached.
func (h *Hub) Listeners() (pointer, resize int) {
	return len(h.pointer), len(h.resize)
}
