package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
)

// TicksPerSecond is the fixed update rate the game loop runs at.
const TicksPerSecond = 60

// Freezer reports whether gameplay time is stopped.
type Freezer interface {
	Frozen() bool
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// PhysicsSystem integrates bodies in a top-down Chipmunk space and writes
// their positions back to transforms. It does not step while frozen.
type PhysicsSystem struct {
	space  *cp.Space
	freeze Freezer
	dt     float64

	entities map[ecs.Entity]*bodyInfo
}

func NewPhysicsSystem(freeze Freezer) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		freeze:   freeze,
		dt:       1.0 / TicksPerSecond,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.ensureBodies(w)
	if ps.freeze != nil && ps.freeze.Frozen() {
		return
	}
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureBodies(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; ok && pb.Body != nil {
			return
		}

		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}

		var body *cp.Body
		if pb.Static {
			body = cp.NewStaticBody()
		} else {
			body = cp.NewBody(mass, cp.INFINITY)
		}
		body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		ps.space.AddBody(body)
		if !pb.Static {
			body.SetVelocityVector(pb.Velocity)
		}

		var shape *cp.Shape
		if pb.Width > 0 && pb.Height > 0 {
			shape = cp.NewBox(body, pb.Width, pb.Height, 0)
			shape.SetSensor(true)
			ps.space.AddShape(shape)
		}

		pb.Body = body
		pb.Shape = shape
		ps.entities[e] = &bodyInfo{body: body, shape: shape, static: pb.Static}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Static {
			return
		}
		p := pb.Body.Position()
		t.X, t.Y = p.X, p.Y
		pb.Velocity = pb.Body.Velocity()
	})
}
