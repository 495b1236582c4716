package system

import (
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
)

// TransitionSystem hands pending level change requests to the game loop.
// Only the first request in a frame is honored.
type TransitionSystem struct {
	onLoad func(target string)
}

func NewTransitionSystem(onLoad func(target string)) *TransitionSystem {
	return &TransitionSystem{onLoad: onLoad}
}

func (ts *TransitionSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	var target string
	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(e ecs.Entity, req *component.LevelChangeRequest) {
		if target == "" {
			target = req.TargetScene
		}
		w.DestroyEntity(e)
	})
	if target != "" && ts.onLoad != nil {
		ts.onLoad(target)
	}
}
