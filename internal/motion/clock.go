package motion

import (
	"sync"
	"time"
)

// TimeProvider abstracts wall-clock reads so frame loops can be driven by
// tests.
type TimeProvider interface {
	Now() time.Time
}

type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider { return &MonotonicTimeProvider{} }

func (MonotonicTimeProvider) Now() time.Time { return time.Now() }

type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// FrameClock turns a TimeProvider into frame timestamps (milliseconds since
// the clock origin) and per-frame deltas.
type FrameClock struct {
	provider TimeProvider
	origin   time.Time
	last     time.Time
}

func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	now := provider.Now()
	return &FrameClock{provider: provider, origin: now, last: now}
}

// Tick returns the timestamp of the new frame and the time since the
// previous Tick.
func (c *FrameClock) Tick() (timestampMs float64, dt time.Duration) {
	now := c.provider.Now()
	dt = now.Sub(c.last)
	c.last = now
	return float64(now.Sub(c.origin)) / float64(time.Millisecond), dt
}
