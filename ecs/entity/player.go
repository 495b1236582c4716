package entity

import (
	"fmt"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	player := w.CreateEntity()
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if spec.Name != "" {
		if err := ecs.Add(w, player, component.NameComponent.Kind(), component.Name{Value: spec.Name}); err != nil {
			return 0, fmt.Errorf("player: add name: %w", err)
		}
	}
	if err := SetEntityTransform(w, player, spec.Position.X, spec.Position.Y); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerControlComponent.Kind(), component.PlayerControl{
		CanMove:   true,
		CanAttack: true,
		MoveSpeed: spec.MoveSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add control: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimatorComponent.Kind(), component.Animator{Current: "idle"}); err != nil {
		return 0, fmt.Errorf("player: add animator: %w", err)
	}

	if spec.NoBody {
		return player, nil
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), component.PhysicsBody{
		Width:  spec.Width,
		Height: spec.Height,
		Mass:   spec.Mass,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	return player, nil
}

// SetEntityTransform places e at x, y with unit scale.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.Transform{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	return nil
}
