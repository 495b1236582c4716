// Package clock separates the two notions of time a scripted sequence cares
// about: wall-clock time, which keeps running while gameplay is frozen, and
// pausable game time, which stops while the world is frozen.
package clock

import "time"

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// Real is the monotonic wall clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to. Used by tests and the
// headless simulator, which advance it by one frame per tick.
type Manual struct {
	now time.Time
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now = m.now.Add(d)
	}
}
