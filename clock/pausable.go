package clock

import (
	"sync"
	"time"
)

// Pausable is the game-time clock and the process-wide world-freeze toggle.
// Game time is wall time minus every span spent frozen.
type Pausable struct {
	mu sync.RWMutex

	wall      Clock
	start     time.Time
	frozen    bool
	frozenAt  time.Time
	totalHeld time.Duration
	freezes   int
}

// NewPausable builds a game clock on top of a wall-time source.
func NewPausable(wall Clock) *Pausable {
	if wall == nil {
		wall = Real{}
	}
	return &Pausable{wall: wall, start: wall.Now()}
}

// Now returns current game time (stops advancing while frozen).
func (p *Pausable) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.frozen {
		return p.start.Add(p.frozenAt.Sub(p.start) - p.totalHeld)
	}
	return p.start.Add(p.wall.Now().Sub(p.start) - p.totalHeld)
}

// RealTime returns wall-clock time, unaffected by freezing.
func (p *Pausable) RealTime() time.Time {
	return p.wall.Now()
}

// Freeze stops game time. Calling it while frozen does nothing.
func (p *Pausable) Freeze() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.frozen {
		return
	}
	p.frozen = true
	p.frozenAt = p.wall.Now()
	p.freezes++
}

// Unfreeze resumes game time. Calling it while running does nothing.
func (p *Pausable) Unfreeze() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.frozen {
		return
	}
	p.totalHeld += p.wall.Now().Sub(p.frozenAt)
	p.frozen = false
	p.frozenAt = time.Time{}
}

// Frozen reports whether gameplay time is currently stopped.
func (p *Pausable) Frozen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frozen
}

// Freezes counts how many times the clock went from running to frozen.
func (p *Pausable) Freezes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.freezes
}

// TotalFrozen returns the cumulative frozen duration, including the current span.
func (p *Pausable) TotalFrozen() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	total := p.totalHeld
	if p.frozen {
		total += p.wall.Now().Sub(p.frozenAt)
	}
	return total
}
