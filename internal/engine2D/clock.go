package engine2D

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibTimeProvider reads the window's monotonic timer, so frame
// timestamps follow the same clock raylib uses for its frame pacing.
type RaylibTimeProvider struct {
	epoch time.Time
}

func NewRaylibTimeProvider() *RaylibTimeProvider {
	return &RaylibTimeProvider{epoch: time.Now().Add(-time.Duration(rl.GetTime() * float64(time.Second)))}
}

func (p *RaylibTimeProvider) Now() time.Time {
	return p.epoch.Add(time.Duration(rl.GetTime() * float64(time.Second)))
}
