package system

import (
	"github.com/milk9111/cutscene/common"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
)

// CameraSystem eases the camera transform toward its target entity, or toward
// a focus point while one is requested.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity = 0
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, cs.camEntity, component.CameraFocusRequestComponent.Kind()); ok {
		if req.Release {
			cam.Focused = false
		} else {
			cam.Focused = true
			cam.FocusX, cam.FocusY = req.X, req.Y
		}
		ecs.Remove(w, cs.camEntity, component.CameraFocusRequestComponent.Kind())
	}

	var goalX, goalY float64
	if cam.Focused {
		goalX, goalY = cam.FocusX, cam.FocusY
	} else {
		if !w.IsAlive(cs.targetEntity) {
			cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
		}
		target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
		if !ok {
			return
		}
		goalX, goalY = target.X, target.Y
	}

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	camTransform.X = common.Lerp(camTransform.X, goalX, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, goalY, smooth)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "" || name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
		return 0
	}
	return findEntityByName(w, name)
}

func findEntityByName(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if found == 0 && n.Value == name {
			found = e
		}
	})
	return found
}
