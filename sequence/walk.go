package sequence

import "github.com/jakecoffman/cp"

// Walk drives an actor toward a fixed point at constant speed, one velocity
// write per tick, until it is within tolerance or stops closing in. Convergence depends on the
// physics step integrating the velocity between ticks, not on frame rate.
type Walk struct {
	actor     Actor
	target    cp.Vector
	speed     float64
	tolerance float64

	started bool
	arrived bool
	ticks   int
	// last is the distance seen by the previous moving tick, negative before
	// the first one.
	last float64
}

// NewWalk captures the target position once; a target moving mid-walk is not
// followed.
func NewWalk(actor Actor, target cp.Vector, speed float64) *Walk {
	return &Walk{
		actor:     actor,
		target:    target,
		speed:     speed,
		tolerance: ArrivalTolerance,
		last:      -1,
	}
}

// Tick runs one iteration and reports whether the actor has arrived.
func (w *Walk) Tick() bool {
	if w.arrived {
		return true
	}
	if !w.started {
		w.started = true
		// Movement is handed back for the walk only; arrival revokes it.
		w.actor.SetCanMove(true)
	}

	pos := w.actor.Position()
	d := pos.Distance(w.target)
	// A step longer than the tolerance window can hop across the target
	// forever; stop as soon as a tick brings the actor no closer.
	stalled := w.last >= 0 && d >= w.last
	if d > w.tolerance && !stalled {
		w.last = d
		dir := w.target.Sub(pos).Normalize()
		w.actor.SetVelocity(dir.Mult(w.speed))
		w.actor.SetMoveDirection(dir.X, dir.Y)
		w.actor.SetMoving(true)
		w.ticks++
		return false
	}

	w.actor.SetVelocity(cp.Vector{})
	w.actor.SetMoving(false)
	w.actor.SetCanMove(false)
	w.arrived = true
	return true
}

// Arrived reports whether the walk has finished.
func (w *Walk) Arrived() bool {
	return w.arrived
}

// Ticks counts the ticks that wrote a movement velocity.
func (w *Walk) Ticks() int {
	return w.ticks
}

func (w *Walk) Target() cp.Vector {
	return w.target
}
