package entity

import (
	"fmt"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/prefabs"
)

func NewBoss(w *ecs.World, spec prefabs.BossSpec) (ecs.Entity, error) {
	health := spec.Health
	if health <= 0 {
		health = 1
	}

	boss := w.CreateEntity()
	if err := ecs.Add(w, boss, component.BossComponent.Kind(), component.Boss{
		DisplayName:    spec.Name,
		DialogueFrames: spec.DialogueFrames,
	}); err != nil {
		return 0, fmt.Errorf("boss: add boss: %w", err)
	}
	if err := ecs.Add(w, boss, component.BossRuntimeComponent.Kind(), component.BossRuntime{}); err != nil {
		return 0, fmt.Errorf("boss: add runtime: %w", err)
	}
	if err := ecs.Add(w, boss, component.HealthComponent.Kind(), component.Health{Initial: health, Current: health}); err != nil {
		return 0, fmt.Errorf("boss: add health: %w", err)
	}
	if spec.Name != "" {
		if err := ecs.Add(w, boss, component.NameComponent.Kind(), component.Name{Value: spec.Name}); err != nil {
			return 0, fmt.Errorf("boss: add name: %w", err)
		}
	}
	if err := SetEntityTransform(w, boss, spec.Position.X, spec.Position.Y); err != nil {
		return 0, fmt.Errorf("boss: %w", err)
	}
	return boss, nil
}
