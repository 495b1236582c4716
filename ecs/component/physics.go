package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body is created by the physics system on first sight when nil.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
	Mass   float64
	Static bool
	// Velocity is the last velocity written by gameplay code. It seeds the
	// body when the physics system creates it.
	Velocity cp.Vector
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
