package component

// Name is a scene-unique lookup key, the ECS analogue of a game object name.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

// Well-known names used by fallback reference lookup.
const (
	NameDoorParent = "DoorParent"
	NameWalkTarget = "WalkTarget"
)
