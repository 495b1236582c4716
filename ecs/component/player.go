package component

// PlayerTag marks the single player-controlled actor.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// PlayerControl holds the capability flags gameplay input systems respect.
// Scripted sequences flip them to take the actor away from the player.
type PlayerControl struct {
	CanMove   bool
	CanAttack bool
	MoveSpeed float64
}

var PlayerControlComponent = NewComponent[PlayerControl]()
