package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableStopsGameTimeOnly(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wall := NewManual(start)
	p := NewPausable(wall)

	wall.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), p.Now())

	p.Freeze()
	wall.Advance(3 * time.Second)
	assert.True(t, p.Frozen())
	assert.Equal(t, start.Add(time.Second), p.Now(), "game time holds while frozen")
	assert.Equal(t, start.Add(4*time.Second), p.RealTime(), "wall time keeps running")
	assert.Equal(t, 3*time.Second, p.TotalFrozen())

	p.Unfreeze()
	wall.Advance(time.Second)
	assert.False(t, p.Frozen())
	assert.Equal(t, start.Add(2*time.Second), p.Now())
}

func TestPausableFreezeIsIdempotent(t *testing.T) {
	wall := NewManual(time.Unix(0, 0))
	p := NewPausable(wall)

	p.Freeze()
	wall.Advance(time.Second)
	p.Freeze()
	wall.Advance(time.Second)
	p.Unfreeze()
	p.Unfreeze()

	assert.Equal(t, 1, p.Freezes())
	assert.Equal(t, 2*time.Second, p.TotalFrozen())
}

func TestManualIgnoresNegativeAdvance(t *testing.T) {
	m := NewManual(time.Unix(10, 0))
	m.Advance(-time.Second)
	assert.Equal(t, time.Unix(10, 0), m.Now())
}
