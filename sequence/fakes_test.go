package sequence

import (
	"time"

	"github.com/jakecoffman/cp"
)

const frame = time.Second / 60

// callLog records collaborator side effects in the order they happen.
type callLog struct {
	calls []string
}

func (l *callLog) add(s string) {
	l.calls = append(l.calls, s)
}

func (l *callLog) count(s string) int {
	n := 0
	for _, c := range l.calls {
		if c == s {
			n++
		}
	}
	return n
}

type fakeActor struct {
	log       *callLog
	pos       cp.Vector
	vel       cp.Vector
	movable   bool
	canMove   bool
	canAttack bool
	moving    bool
	dirX      float64
	dirY      float64

	velocityWrites  int
	movingVelWrites int
	animWrites      int
	walking         bool
}

func (a *fakeActor) Position() cp.Vector { return a.pos }
func (a *fakeActor) Movable() bool       { return a.movable }
func (a *fakeActor) SetCanMove(v bool)   { a.canMove = v }
func (a *fakeActor) SetCanAttack(v bool) { a.canAttack = v }

func (a *fakeActor) SetVelocity(v cp.Vector) {
	a.vel = v
	a.velocityWrites++
	if v != (cp.Vector{}) {
		a.movingVelWrites++
	}
}

func (a *fakeActor) SetMoving(v bool) {
	a.moving = v
	if v {
		a.animWrites++
		if !a.walking && a.log != nil {
			a.log.add("walk")
		}
		a.walking = true
	}
}

func (a *fakeActor) SetMoveDirection(x, y float64) {
	a.dirX, a.dirY = x, y
	a.animWrites++
}

// integrate stands in for the physics step.
func (a *fakeActor) integrate(dt time.Duration) {
	a.pos = a.pos.Add(a.vel.Mult(dt.Seconds()))
}

type fakeCamera struct{ log *callLog }

func (c *fakeCamera) Focus(Anchor)     { c.log.add("focus") }
func (c *fakeCamera) ReturnToDefault() { c.log.add("camera-return") }

type fakeDoor struct{ log *callLog }

func (d *fakeDoor) TriggerOpen() { d.log.add("door-open") }

type fakeTime struct {
	log    *callLog
	frozen bool
}

func (t *fakeTime) Freeze() {
	t.frozen = true
	t.log.add("freeze")
}

func (t *fakeTime) Unfreeze() {
	t.frozen = false
	t.log.add("unfreeze")
}

type fakeScenes struct {
	log    *callLog
	loaded []string
}

func (s *fakeScenes) Load(id string) {
	s.loaded = append(s.loaded, id)
	s.log.add("load:" + id)
}

type rig struct {
	log    *callLog
	actor  *fakeActor
	camera *fakeCamera
	door   *fakeDoor
	time   *fakeTime
	scenes *fakeScenes
}

func newRig() *rig {
	l := &callLog{}
	return &rig{
		log:    l,
		actor:  &fakeActor{log: l, movable: true, canMove: true, canAttack: true},
		camera: &fakeCamera{log: l},
		door:   &fakeDoor{log: l},
		time:   &fakeTime{log: l},
		scenes: &fakeScenes{log: l},
	}
}

func (r *rig) refs() References {
	return References{
		Actor:       r.actor,
		Door:        r.door,
		DoorAnchor:  Point{X: 10, Y: 0},
		WalkTarget:  Point{X: 5, Y: 0},
		Camera:      r.camera,
		TimeControl: r.time,
		Scenes:      r.scenes,
	}
}
