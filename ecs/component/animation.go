package component

// Animator mirrors an animation state machine's parameter block. Systems write
// parameters and triggers; AnimationSystem consumes triggers and picks states.
type Animator struct {
	Current  string
	Bools    map[string]bool
	Floats   map[string]float64
	Triggers map[string]bool
	// OnTrigger maps a trigger name to the state it enters.
	OnTrigger map[string]string
	// Frames counts ticks spent in Current.
	Frames int
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = make(map[string]bool)
	}
	a.Bools[name] = v
}

func (a *Animator) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = make(map[string]float64)
	}
	a.Floats[name] = v
}

func (a *Animator) SetTrigger(name string) {
	if a.Triggers == nil {
		a.Triggers = make(map[string]bool)
	}
	a.Triggers[name] = true
}

var AnimatorComponent = NewComponent[Animator]()

// Animator parameter names shared by the player rig.
const (
	AnimParamIsMoving = "isMoving"
	AnimParamMoveX    = "moveX"
	AnimParamMoveY    = "moveY"
	AnimTriggerOpen   = "OpenDoor"
)

// EnterState switches to state, restarting the frame count on change.
func (a *Animator) EnterState(state string) {
	if a.Current == state {
		return
	}
	a.Current = state
	a.Frames = 0
}
