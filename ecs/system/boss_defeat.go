package system

import (
	"log"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/sequence"
)

const bossDefeatSource = "boss_defeat"

// BossDefeatSystem owns the boss defeat sequence of one world. References are
// resolved once, when the system is built.
type BossDefeatSystem struct {
	ctrl *sequence.Controller
	refs sequence.References
}

// NewBossDefeatSystem binds the camera and scene services of w, then resolves
// whatever refs leaves unset. time may be nil, in which case the sequence
// runs without a world freeze.
func NewBossDefeatSystem(w *ecs.World, cfg sequence.Config, refs sequence.References, logger *log.Logger, opts ...sequence.Option) *BossDefeatSystem {
	if refs.Camera == nil {
		if _, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			refs.Camera = NewCameraService(w)
		}
	}
	if refs.Scenes == nil {
		refs.Scenes = NewSceneService(w, bossDefeatSource)
	}
	refs = ResolveReferences(w, refs, logger)

	if logger != nil {
		opts = append([]sequence.Option{sequence.WithLogger(logger)}, opts...)
	}
	return &BossDefeatSystem{
		ctrl: sequence.NewController(cfg, refs, opts...),
		refs: refs,
	}
}

func (s *BossDefeatSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	s.ctrl.Update()
}

// StartBossDefeatSequence starts the sequence; repeated calls are ignored.
func (s *BossDefeatSystem) StartBossDefeatSequence() {
	if s == nil {
		return
	}
	s.ctrl.StartBossDefeatSequence()
}

func (s *BossDefeatSystem) Controller() *sequence.Controller {
	if s == nil {
		return nil
	}
	return s.ctrl
}

func (s *BossDefeatSystem) References() sequence.References {
	if s == nil {
		return sequence.References{}
	}
	return s.refs
}
