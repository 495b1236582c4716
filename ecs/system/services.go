package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/sequence"
)

// ActorHandle drives a player entity on behalf of a scripted sequence.
// Every call is a no-op once the entity is gone.
type ActorHandle struct {
	w *ecs.World
	e ecs.Entity
}

func NewActorHandle(w *ecs.World, e ecs.Entity) ActorHandle {
	return ActorHandle{w: w, e: e}
}

func (a ActorHandle) Entity() ecs.Entity { return a.e }

func (a ActorHandle) Position() cp.Vector {
	if pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		return pb.Body.Position()
	}
	if t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

func (a ActorHandle) Movable() bool {
	pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind())
	return ok && !pb.Static
}

func (a ActorHandle) SetCanMove(v bool) {
	if pc, ok := ecs.Get(a.w, a.e, component.PlayerControlComponent.Kind()); ok {
		pc.CanMove = v
	}
}

func (a ActorHandle) SetCanAttack(v bool) {
	if pc, ok := ecs.Get(a.w, a.e, component.PlayerControlComponent.Kind()); ok {
		pc.CanAttack = v
	}
}

func (a ActorHandle) SetVelocity(v cp.Vector) {
	pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Static {
		return
	}
	pb.Velocity = v
	if pb.Body != nil {
		pb.Body.SetVelocityVector(v)
	}
}

func (a ActorHandle) SetMoving(v bool) {
	if anim, ok := ecs.Get(a.w, a.e, component.AnimatorComponent.Kind()); ok {
		anim.SetBool(component.AnimParamIsMoving, v)
	}
}

func (a ActorHandle) SetMoveDirection(x, y float64) {
	if anim, ok := ecs.Get(a.w, a.e, component.AnimatorComponent.Kind()); ok {
		anim.SetFloat(component.AnimParamMoveX, x)
		anim.SetFloat(component.AnimParamMoveY, y)
	}
}

// EntityAnchor reads an entity's transform each time it is asked.
type EntityAnchor struct {
	w *ecs.World
	e ecs.Entity
}

func NewEntityAnchor(w *ecs.World, e ecs.Entity) EntityAnchor {
	return EntityAnchor{w: w, e: e}
}

func (a EntityAnchor) Position() cp.Vector {
	if t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

// DoorHandle fires a door's open animation trigger.
type DoorHandle struct {
	w *ecs.World
	e ecs.Entity
}

func NewDoorHandle(w *ecs.World, e ecs.Entity) DoorHandle {
	return DoorHandle{w: w, e: e}
}

func (d DoorHandle) TriggerOpen() {
	if door, ok := ecs.Get(d.w, d.e, component.DoorComponent.Kind()); ok {
		door.Triggers++
	}
	if anim, ok := ecs.Get(d.w, d.e, component.AnimatorComponent.Kind()); ok {
		anim.SetTrigger(component.AnimTriggerOpen)
	}
}

// Anchor is the door's own transform.
func (d DoorHandle) Anchor() EntityAnchor {
	return EntityAnchor{w: d.w, e: d.e}
}

// CameraService turns focus calls into camera focus requests.
type CameraService struct {
	w *ecs.World
}

func NewCameraService(w *ecs.World) CameraService {
	return CameraService{w: w}
}

func (c CameraService) Focus(target sequence.Anchor) {
	if target == nil {
		return
	}
	p := target.Position()
	c.request(component.CameraFocusRequest{X: p.X, Y: p.Y})
}

func (c CameraService) ReturnToDefault() {
	c.request(component.CameraFocusRequest{Release: true})
}

func (c CameraService) request(req component.CameraFocusRequest) {
	camEntity, ok := ecs.First(c.w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	_ = ecs.Add(c.w, camEntity, component.CameraFocusRequestComponent.Kind(), req)
}

// SceneService emits level change requests for the game loop to act on.
type SceneService struct {
	w      *ecs.World
	source string
}

func NewSceneService(w *ecs.World, source string) SceneService {
	return SceneService{w: w, source: source}
}

func (s SceneService) Load(sceneID string) {
	if s.w == nil {
		return
	}
	req := s.w.CreateEntity()
	_ = ecs.Add(s.w, req, component.LevelChangeRequestComponent.Kind(), component.LevelChangeRequest{
		TargetScene: sceneID,
		Source:      s.source,
	})
}
