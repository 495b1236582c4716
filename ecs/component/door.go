package component

// Door is a triggerable gate. Opened flips once its open animation has played.
type Door struct {
	// OpenFrames is how long the open animation plays before Opened flips.
	OpenFrames int
	Opened     bool
	Triggers   int
}

// Door animator states.
const (
	DoorClosedState = "closed"
	DoorOpenState   = "open"
)

var DoorComponent = NewComponent[Door]()
