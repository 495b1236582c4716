package sequence

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cutscene/clock"
)

// LogPrefix starts every line the sequence logs.
const LogPrefix = "[BossDefeatSequence] "

// StepObserver is called each time the controller enters a step.
type StepObserver func(ev StepEvent, at time.Time)

type Option func(*Controller)

// WithClock sets the wall clock waits are measured on.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.clock = c
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(ctrl *Controller) {
		if l != nil {
			ctrl.logger = l
		}
	}
}

// WithLogOutput logs to w with the default prefix.
func WithLogOutput(w io.Writer) Option {
	return WithLogger(log.New(w, LogPrefix, 0))
}

func WithStepObserver(fn StepObserver) Option {
	return func(ctrl *Controller) {
		ctrl.observer = fn
	}
}

// Controller runs the boss-defeat sequence at most once.
type Controller struct {
	cfg      Config
	refs     References
	clock    clock.Clock
	logger   *log.Logger
	observer StepObserver

	state   State
	step    Step
	entered bool
	wakeAt  time.Time
	walk    *Walk
}

// NewController builds an idle controller. cfg is used as given; callers
// validate it first (see Config.Validate).
func NewController(cfg Config, refs References, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		refs:   refs,
		clock:  clock.Real{},
		logger: log.New(os.Stderr, LogPrefix, log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartBossDefeatSequence is the external trigger surface.
func (c *Controller) StartBossDefeatSequence() {
	c.Start()
}

// Start begins the sequence and reports whether this call started it. Calls
// while a run is in progress (or finished) are ignored. Steps up to the first
// suspension run before Start returns; the rest run from Update.
func (c *Controller) Start() bool {
	if c.state == Running {
		return false
	}
	c.state = Running
	c.step = StepFreeze
	c.entered = false
	c.logger.Printf("starting boss defeat sequence")
	c.advance()
	return true
}

// Update advances the sequence by one scheduling tick.
func (c *Controller) Update() {
	if c.state != Running {
		return
	}
	c.advance()
}

func (c *Controller) State() State {
	return c.state
}

// Step returns the step in progress, StepNone before the first start.
func (c *Controller) Step() Step {
	return c.step
}

// Done reports whether every step has run.
func (c *Controller) Done() bool {
	return c.step == StepDone
}

func (c *Controller) Config() Config {
	return c.cfg
}

// Walk returns the active or finished walk, nil if the walk step has not
// started or was skipped.
func (c *Controller) Walk() *Walk {
	return c.walk
}

// Reconfigure swaps the tunables. It is refused once the sequence started.
func (c *Controller) Reconfigure(cfg Config) error {
	if c.state == Running {
		return ErrRunning
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *Controller) advance() {
	for c.state == Running && c.step != StepDone {
		if !c.entered {
			c.entered = true
			c.wakeAt = time.Time{}
			skipped := !c.enter(c.step)
			if c.observer != nil {
				c.observer(StepEvent{Step: c.step, Skipped: skipped}, c.clock.Now())
			}
		}
		if !c.ready() {
			return
		}
		c.step++
		c.entered = false
	}
}

// ready reports whether the current step's wake condition holds.
func (c *Controller) ready() bool {
	if c.step == StepWalk && c.walk != nil && !c.walk.Arrived() {
		return c.walk.Tick()
	}
	if c.wakeAt.IsZero() {
		return true
	}
	return !c.clock.Now().Before(c.wakeAt)
}

func (c *Controller) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	c.wakeAt = c.clock.Now().Add(d)
}

// enter performs a step's side effects and arms its wake condition. It
// returns false when the step degraded to a skip.
func (c *Controller) enter(step Step) bool {
	switch step {
	case StepFreeze:
		return c.freeze()
	case StepFocusCamera:
		if c.refs.DoorAnchor == nil || c.refs.Camera == nil {
			c.warnf("door anchor or camera not available, skipping camera focus")
			return false
		}
		c.refs.Camera.Focus(c.refs.DoorAnchor)
		c.wait(c.cfg.CameraFocusSettle)
		return true
	case StepOpenDoor:
		// The wait stands in for an animation-complete signal the door does
		// not provide, so it runs even without a door.
		defer c.wait(c.cfg.DoorOpenDuration)
		if c.refs.Door == nil {
			c.warnf("door not found, waiting anyway")
			return false
		}
		c.refs.Door.TriggerOpen()
		c.logger.Printf("triggered door open")
		return true
	case StepReturnCamera:
		if c.refs.Camera == nil {
			c.warnf("camera not available, skipping camera return")
			return false
		}
		c.refs.Camera.ReturnToDefault()
		c.wait(c.cfg.CameraReturnSettle)
		return true
	case StepUnfreeze:
		if c.refs.TimeControl != nil {
			c.refs.TimeControl.Unfreeze()
		}
		c.wait(c.cfg.PreWalkDelay)
		return true
	case StepWalk:
		return c.startWalk()
	case StepPreTransition:
		c.wait(c.cfg.PreTransitionDelay)
		return true
	case StepSceneTransition:
		return c.loadNextScene()
	}
	return false
}

func (c *Controller) freeze() bool {
	if a := c.refs.Actor; a != nil {
		a.SetCanMove(false)
		a.SetCanAttack(false)
		if a.Movable() {
			a.SetVelocity(cp.Vector{})
		}
		a.SetMoving(false)
	} else {
		c.warnf("actor not found, only freezing the world")
	}
	if c.refs.TimeControl != nil {
		c.refs.TimeControl.Freeze()
	}
	return true
}

func (c *Controller) startWalk() bool {
	a := c.refs.Actor
	if c.refs.WalkTarget == nil || a == nil || !a.Movable() {
		c.warnf("walk target or movable actor not found, skipping walk")
		return false
	}
	c.walk = NewWalk(a, c.refs.WalkTarget.Position(), c.cfg.WalkSpeed)
	c.logger.Printf("actor walking to %v", c.walk.Target())
	return true
}

func (c *Controller) loadNextScene() bool {
	if c.cfg.NextScene == "" {
		c.warnf("next scene name is not set, no scene transition")
		return false
	}
	if c.refs.Scenes == nil {
		c.warnf("scene loader not available, cannot load %q", c.cfg.NextScene)
		return false
	}
	c.logger.Printf("loading scene %q", c.cfg.NextScene)
	c.refs.Scenes.Load(c.cfg.NextScene)
	return true
}

func (c *Controller) warnf(format string, args ...any) {
	c.logger.Printf("warn: "+format, args...)
}
