package entity

import (
	"fmt"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/prefabs"
)

const defaultDoorOpenFrames = 30

func NewDoor(w *ecs.World, spec prefabs.DoorSpec) (ecs.Entity, error) {
	name := spec.Name
	if name == "" {
		name = component.NameDoorParent
	}
	openFrames := spec.OpenFrames
	if openFrames <= 0 {
		openFrames = defaultDoorOpenFrames
	}

	door := w.CreateEntity()
	if err := ecs.Add(w, door, component.NameComponent.Kind(), component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("door: add name: %w", err)
	}
	if err := SetEntityTransform(w, door, spec.Position.X, spec.Position.Y); err != nil {
		return 0, fmt.Errorf("door: %w", err)
	}
	if err := ecs.Add(w, door, component.DoorComponent.Kind(), component.Door{OpenFrames: openFrames}); err != nil {
		return 0, fmt.Errorf("door: add door: %w", err)
	}
	if err := ecs.Add(w, door, component.AnimatorComponent.Kind(), component.Animator{
		Current:   component.DoorClosedState,
		OnTrigger: map[string]string{component.AnimTriggerOpen: component.DoorOpenState},
	}); err != nil {
		return 0, fmt.Errorf("door: add animator: %w", err)
	}
	return door, nil
}

func NewWalkTarget(w *ecs.World, pos prefabs.Vec2Spec) (ecs.Entity, error) {
	target := w.CreateEntity()
	if err := ecs.Add(w, target, component.WalkTargetComponent.Kind(), component.WalkTarget{}); err != nil {
		return 0, fmt.Errorf("walk target: add tag: %w", err)
	}
	if err := ecs.Add(w, target, component.NameComponent.Kind(), component.Name{Value: component.NameWalkTarget}); err != nil {
		return 0, fmt.Errorf("walk target: add name: %w", err)
	}
	if err := SetEntityTransform(w, target, pos.X, pos.Y); err != nil {
		return 0, fmt.Errorf("walk target: %w", err)
	}
	return target, nil
}
