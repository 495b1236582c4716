package system

import (
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
)

// DoorSystem marks a door opened once its open animation has run for
// OpenFrames ticks. It must run after AnimationSystem.
type DoorSystem struct{}

func NewDoorSystem() *DoorSystem {
	return &DoorSystem{}
}

func (ds *DoorSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.DoorComponent.Kind(), component.AnimatorComponent.Kind(), func(e ecs.Entity, door *component.Door, anim *component.Animator) {
		if door.Opened || anim.Current != component.DoorOpenState {
			return
		}
		if anim.Frames >= door.OpenFrames {
			door.Opened = true
		}
	})
}
