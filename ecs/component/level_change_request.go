package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the outer game loop to load a different scene.
//
// Systems only emit data; the game loop owns IO and world reinitialization.
type LevelChangeRequest struct {
	TargetScene string
	// Source names the system that asked for the change (debug only).
	Source string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
