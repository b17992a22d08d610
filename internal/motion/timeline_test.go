package motion

import (
	"math"
	"testing"
	"time"
)

const tolerance = 1e-9

func TestCubicBezierEndpointsAndSymmetry(t *testing.T) {
	if v := EaseInOut(0); v != 0 {
		t.Errorf("Expected 0 at start, got %v", v)
	}
	if v := EaseInOut(1); v != 1 {
		t.Errorf("Expected 1 at end, got %v", v)
	}
	if v := EaseInOut(0.5); math.Abs(v-0.5) > 1e-6 {
		t.Errorf("Expected 0.5 at midpoint, got %v", v)
	}

	for _, x := range []float64{0.1, 0.25, 0.4, 0.7, 0.9} {
		a, b := EaseInOut(x), 1-EaseInOut(1-x)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("Expected symmetric curve at %v: %v vs %v", x, a, b)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("Expected monotonic curve, dropped at %d: %v < %v", i, v, prev)
		}
		prev = v
	}

	linear := CubicBezier(0.25, 0.25, 0.75, 0.75)
	if v := linear(0.3); math.Abs(v-0.3) > 1e-6 {
		t.Errorf("Expected diagonal curve to be linear, got %v", v)
	}
}

func TestTimelineMirrorsAfterEachPass(t *testing.T) {
	tl := NewTimeline(time.Second, 0, Linear)

	tl.Advance(500 * time.Millisecond)
	if tl.Direction() != Forward || math.Abs(tl.Position()-0.5) > tolerance {
		t.Errorf("Expected forward at 0.5, got %v at %v", tl.Direction(), tl.Position())
	}

	tl.Advance(750 * time.Millisecond)
	if tl.Direction() != Reverse {
		t.Fatalf("Expected reverse after first pass, got %v", tl.Direction())
	}
	if math.Abs(tl.Position()-0.75) > tolerance {
		t.Errorf("Expected position 0.75 on the way back, got %v", tl.Position())
	}

	tl.Advance(time.Second)
	if tl.Direction() != Forward || math.Abs(tl.Position()-0.25) > tolerance {
		t.Errorf("Expected forward at 0.25, got %v at %v", tl.Direction(), tl.Position())
	}
	if tl.Passes() != 2 {
		t.Errorf("Expected 2 passes, got %d", tl.Passes())
	}

	// Two full passes in one step land on the same direction.
	tl.Advance(2 * time.Second)
	if tl.Direction() != Forward || math.Abs(tl.Position()-0.25) > tolerance {
		t.Errorf("Expected forward at 0.25 after two passes, got %v at %v", tl.Direction(), tl.Position())
	}
}

func TestTimelineDelayConsumedOnce(t *testing.T) {
	tl := NewTimeline(time.Second, 450*time.Millisecond, Linear)

	tl.Advance(400 * time.Millisecond)
	if !tl.Waiting() || tl.Position() != 0 {
		t.Errorf("Expected still waiting at position 0, got waiting=%v pos=%v", tl.Waiting(), tl.Position())
	}

	tl.Advance(150 * time.Millisecond)
	if tl.Waiting() {
		t.Error("Expected delay to be consumed")
	}
	if math.Abs(tl.Position()-0.1) > tolerance {
		t.Errorf("Expected position 0.1, got %v", tl.Position())
	}

	tl.Advance(1900 * time.Millisecond)
	if tl.Direction() != Forward || math.Abs(tl.Position()-0.0) > tolerance {
		t.Errorf("Expected no second delay, got %v at %v", tl.Direction(), tl.Position())
	}
}

func TestTimelinePauseKeepsPosition(t *testing.T) {
	tl := NewTimeline(time.Second, 0, EaseInOut)
	tl.Advance(300 * time.Millisecond)
	before := tl.Position()

	tl.SetRunning(false)
	tl.Advance(5 * time.Second)
	if tl.Position() != before {
		t.Errorf("Expected paused position %v, got %v", before, tl.Position())
	}

	tl.SetRunning(true)
	tl.Advance(100 * time.Millisecond)
	if math.Abs(tl.Position()-0.4) > tolerance {
		t.Errorf("Expected resume from 0.3 to 0.4, got %v", tl.Position())
	}
}

func TestTimelineSampleThreeKeyframes(t *testing.T) {
	tl := NewTimeline(time.Second, 0, Linear)

	cases := []struct {
		advance time.Duration
		seg     int
		frac    float64
		value   float64
	}{
		{0, 0, 0, 0.7},
		{250 * time.Millisecond, 0, 0.5, 0.85},
		{250 * time.Millisecond, 1, 0, 1},
		{250 * time.Millisecond, 1, 0.5, 0.85},
		// reverse pass: halfway back through the second segment
		{500 * time.Millisecond, 1, 0.5, 0.85},
	}

	for i, c := range cases {
		tl.Advance(c.advance)
		seg, frac := tl.Sample(3)
		if seg != c.seg || math.Abs(frac-c.frac) > tolerance {
			t.Errorf("case %d: expected (%d, %v), got (%d, %v)", i, c.seg, c.frac, seg, frac)
		}
		if v := tl.Scalar(0.7, 1, 0.7); math.Abs(v-c.value) > tolerance {
			t.Errorf("case %d: expected value %v, got %v", i, c.value, v)
		}
	}
}

func TestTimelineEndOfPassHitsLastKeyframe(t *testing.T) {
	tl := NewTimeline(time.Second, 0, EaseInOut)
	tl.Advance(999999 * time.Microsecond)
	if v := tl.Scalar(0.2, 0.7, 0.2); math.Abs(v-0.2) > 1e-4 {
		t.Errorf("Expected to approach the last keyframe, got %v", v)
	}
	tl.Advance(time.Microsecond)
	if v := tl.Scalar(0.2, 0.7, 0.2); math.Abs(v-0.2) > tolerance {
		t.Errorf("Expected continuous value at the turn, got %v", v)
	}
}

func TestTimelineRetimeKeepsFraction(t *testing.T) {
	tl := NewTimeline(2*time.Second, 0, Linear)
	tl.Advance(500 * time.Millisecond)
	tl.Retime(4*time.Second, 0)
	if math.Abs(tl.Position()-0.25) > tolerance {
		t.Errorf("Expected fraction 0.25 after retime, got %v", tl.Position())
	}
	if tl.Duration() != 4*time.Second {
		t.Errorf("Expected 4s duration, got %v", tl.Duration())
	}

	waiting := NewTimeline(time.Second, 300*time.Millisecond, Linear)
	waiting.Advance(100 * time.Millisecond)
	waiting.Retime(time.Second, 150*time.Millisecond)
	waiting.Advance(50 * time.Millisecond)
	if waiting.Waiting() {
		t.Error("Expected shortened delay to be consumed")
	}
}

func TestTimelineReset(t *testing.T) {
	tl := NewTimeline(time.Second, 200*time.Millisecond, Linear)
	tl.Advance(1700 * time.Millisecond)
	tl.Reset()
	if tl.Position() != 0 || tl.Direction() != Forward || !tl.Waiting() || tl.Passes() != 0 {
		t.Errorf("Expected fresh timeline, got pos=%v dir=%v waiting=%v", tl.Position(), tl.Direction(), tl.Waiting())
	}
}
