package entity

import (
	"fmt"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	target := spec.Target
	if target == "" {
		target = "player"
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), component.Camera{
		TargetName: target,
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := SetEntityTransform(w, camera, 0, 0); err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}
