package system

import (
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
)

// AnimationSystem consumes animator triggers and advances the frame counter
// of the current state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		for trigger, set := range anim.Triggers {
			if !set {
				continue
			}
			delete(anim.Triggers, trigger)
			if next, ok := anim.OnTrigger[trigger]; ok {
				anim.EnterState(next)
			}
		}

		if anim.Current == "" {
			anim.Current = "idle"
		}
		if anim.Current == "idle" || anim.Current == "walk" {
			if anim.Bools[component.AnimParamIsMoving] {
				anim.EnterState("walk")
			} else {
				anim.EnterState("idle")
			}
		}
		anim.Frames++
	})
}
