package sequence

// State is the controller's run state. Running never returns to Idle: the
// scene transition ends the process context instead.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Step identifies a point in the fixed step list.
type Step int

const (
	StepNone Step = iota
	StepFreeze
	StepFocusCamera
	StepOpenDoor
	StepReturnCamera
	StepUnfreeze
	StepWalk
	StepPreTransition
	StepSceneTransition
	StepDone
)

var stepNames = [...]string{
	StepNone:            "none",
	StepFreeze:          "freeze",
	StepFocusCamera:     "focus-camera",
	StepOpenDoor:        "open-door",
	StepReturnCamera:    "return-camera",
	StepUnfreeze:        "unfreeze",
	StepWalk:            "walk",
	StepPreTransition:   "pre-transition",
	StepSceneTransition: "scene-transition",
	StepDone:            "done",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// StepEvent is reported when the controller enters a step.
type StepEvent struct {
	Step    Step
	Skipped bool
}
