package system

import (
	"log"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/sequence"
)

// ResolveReferences fills the unset actor, door, door anchor and walk target
// from well-known lookups in w. Anything still missing is logged; the
// sequence degrades around it.
func ResolveReferences(w *ecs.World, refs sequence.References, logger *log.Logger) sequence.References {
	if logger == nil {
		logger = log.Default()
	}

	if refs.Actor == nil {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			refs.Actor = NewActorHandle(w, e)
		} else {
			logger.Printf("warn: player not found")
		}
	}

	if refs.Door == nil {
		door := findEntityByName(w, component.NameDoorParent)
		if door.Valid() {
			refs.Door = NewDoorHandle(w, door)
		} else {
			logger.Printf("warn: door %q not found", component.NameDoorParent)
		}
	}

	if refs.DoorAnchor == nil {
		if d, ok := refs.Door.(DoorHandle); ok {
			refs.DoorAnchor = d.Anchor()
		}
		if refs.DoorAnchor == nil {
			logger.Printf("warn: door anchor not found")
		}
	}

	if refs.WalkTarget == nil {
		target, ok := ecs.First(w, component.WalkTargetComponent.Kind())
		if !ok {
			target = findEntityByName(w, component.NameWalkTarget)
		}
		if target.Valid() {
			refs.WalkTarget = NewEntityAnchor(w, target)
		} else {
			logger.Printf("warn: walk target %q not found", component.NameWalkTarget)
		}
	}

	return refs
}
