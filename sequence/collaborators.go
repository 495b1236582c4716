package sequence

import "github.com/jakecoffman/cp"

// Actor is the player-controlled entity the sequence takes over.
type Actor interface {
	Position() cp.Vector
	// Movable reports whether the actor has a velocity-driven body.
	Movable() bool
	SetCanMove(bool)
	SetCanAttack(bool)
	SetVelocity(cp.Vector)
	SetMoving(bool)
	SetMoveDirection(x, y float64)
}

// Anchor is a spatial point that may move, read when needed.
type Anchor interface {
	Position() cp.Vector
}

// Door is fire-and-forget: nothing reports when the open animation ends.
type Door interface {
	TriggerOpen()
}

type Camera interface {
	Focus(target Anchor)
	ReturnToDefault()
}

// TimeControl toggles the process-wide world freeze. Both calls are idempotent.
type TimeControl interface {
	Freeze()
	Unfreeze()
}

// SceneLoader replaces the current scene. The running sequence does not
// survive the load.
type SceneLoader interface {
	Load(sceneID string)
}

// References are the collaborators a controller signals. Every field is
// optional; a nil field degrades the step that needs it.
type References struct {
	Actor       Actor
	Door        Door
	DoorAnchor  Anchor
	WalkTarget  Anchor
	Camera      Camera
	TimeControl TimeControl
	Scenes      SceneLoader
}

// Point is a fixed Anchor.
type Point cp.Vector

func (p Point) Position() cp.Vector {
	return cp.Vector(p)
}
