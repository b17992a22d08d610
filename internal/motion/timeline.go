package motion

import (
	"math"
	"time"
)

type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Timeline plays a keyframe list forward then backward forever, like a CSS
// animation with `alternate infinite`. It only moves when Advance is called,
// so a paused timeline keeps its position and resumes from it.
type Timeline struct {
	duration time.Duration
	delay    time.Duration
	ease     Easing

	delayLeft   time.Duration
	passElapsed time.Duration
	passes      int
	direction   Direction
	running     bool
}

func NewTimeline(duration, delay time.Duration, ease Easing) *Timeline {
	if ease == nil {
		ease = Linear
	}
	return &Timeline{
		duration:  duration,
		delay:     delay,
		ease:      ease,
		delayLeft: delay,
		running:   true,
	}
}

func (tl *Timeline) Duration() time.Duration { return tl.duration }
func (tl *Timeline) Delay() time.Duration    { return tl.delay }
func (tl *Timeline) Direction() Direction    { return tl.direction }
func (tl *Timeline) Running() bool           { return tl.running }

// Passes counts completed one-way passes.
func (tl *Timeline) Passes() int { return tl.passes }

// Waiting reports whether the start delay is still being consumed.
func (tl *Timeline) Waiting() bool { return tl.delayLeft > 0 }

func (tl *Timeline) SetRunning(running bool) {
	tl.running = running
}

func (tl *Timeline) Advance(dt time.Duration) {
	if !tl.running || dt <= 0 || tl.duration <= 0 {
		return
	}

	if tl.delayLeft > 0 {
		if dt < tl.delayLeft {
			tl.delayLeft -= dt
			return
		}
		dt -= tl.delayLeft
		tl.delayLeft = 0
	}

	tl.passElapsed += dt
	if tl.passElapsed >= tl.duration {
		n := tl.passElapsed / tl.duration
		tl.passElapsed -= n * tl.duration
		tl.passes += int(n)
		if n%2 == 1 {
			if tl.direction == Forward {
				tl.direction = Reverse
			} else {
				tl.direction = Forward
			}
		}
	}
}

// Progress is the linear fraction of the current pass.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		return 0
	}
	return float64(tl.passElapsed) / float64(tl.duration)
}

// Position is the linear location in the keyframe list, 0 at the first
// keyframe and 1 at the last, whichever way the current pass runs.
func (tl *Timeline) Position() float64 {
	p := tl.Progress()
	if tl.direction == Reverse {
		return 1 - p
	}
	return p
}

// Sample locates the current point among n evenly spaced keyframes. It
// returns the segment start index and the eased fraction towards seg+1.
// Easing is applied per segment in the direction of travel.
func (tl *Timeline) Sample(n int) (seg int, frac float64) {
	if n < 2 {
		return 0, 0
	}
	segments := float64(n - 1)

	q := tl.Progress() * segments
	s := int(math.Floor(q))
	if s >= n-1 {
		s = n - 2
	}
	local := tl.ease(q - float64(s))

	if tl.direction == Reverse {
		return n - 2 - s, 1 - local
	}
	return s, local
}

// Scalar interpolates evenly spaced numeric keyframes.
func (tl *Timeline) Scalar(values ...float64) float64 {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return values[0]
	}
	seg, frac := tl.Sample(len(values))
	return Lerp(values[seg], values[seg+1], frac)
}

// Retime changes duration and delay while keeping the fraction of the
// current pass.
func (tl *Timeline) Retime(duration, delay time.Duration) {
	if duration == tl.duration && delay == tl.delay {
		return
	}
	frac := tl.Progress()
	if tl.delayLeft > 0 {
		consumed := tl.delay - tl.delayLeft
		tl.delayLeft = max(delay-consumed, 0)
	}
	tl.duration = duration
	tl.delay = delay
	tl.passElapsed = time.Duration(frac * float64(duration))
}

// Reset rewinds to the first keyframe with the full start delay.
func (tl *Timeline) Reset() {
	tl.delayLeft = tl.delay
	tl.passElapsed = 0
	tl.passes = 0
	tl.direction = Forward
}
