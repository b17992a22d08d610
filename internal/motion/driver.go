package motion

import "time"

// Driver pumps one frame queue from one clock and carries the event hub of
// the same surface. Every surface owns one and calls Tick once per
// displayed frame.
type Driver struct {
	Clock *FrameClock
	Queue *FrameQueue
	Hub   *Hub

	lastTimestamp float64
}

func NewDriver(provider TimeProvider) *Driver {
	return &Driver{
		Clock: NewFrameClock(provider),
		Queue: NewFrameQueue(),
		Hub:   NewHub(),
	}
}

// Tick runs the frame callbacks registered so far and reports the frame
// timestamp and the time since the previous tick.
func (d *Driver) Tick() (timestampMs float64, dt time.Duration) {
	timestampMs, dt = d.Clock.Tick()
	d.lastTimestamp = timestampMs
	d.Queue.Tick(timestampMs)
	return timestampMs, dt
}

// Timestamp is the value passed to the most recent tick.
func (d *Driver) Timestamp() float64 { return d.lastTimestamp }
