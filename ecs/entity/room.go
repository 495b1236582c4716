package entity

import (
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/prefabs"
)

// Room holds the entities built from a RoomSpec. Sections the spec leaves
// out stay zero.
type Room struct {
	Name       string
	Player     ecs.Entity
	Door       ecs.Entity
	WalkTarget ecs.Entity
	Camera     ecs.Entity
	Boss       ecs.Entity
}

func BuildRoom(w *ecs.World, spec prefabs.RoomSpec) (Room, error) {
	room := Room{Name: spec.Name}
	var err error

	if spec.Player != nil {
		if room.Player, err = NewPlayer(w, *spec.Player); err != nil {
			return room, err
		}
	}
	if spec.Door != nil {
		if room.Door, err = NewDoor(w, *spec.Door); err != nil {
			return room, err
		}
	}
	if spec.WalkTarget != nil {
		if room.WalkTarget, err = NewWalkTarget(w, *spec.WalkTarget); err != nil {
			return room, err
		}
	}
	if spec.Camera != nil {
		if room.Camera, err = NewCamera(w, *spec.Camera); err != nil {
			return room, err
		}
	}
	if spec.Boss != nil {
		if room.Boss, err = NewBoss(w, *spec.Boss); err != nil {
			return room, err
		}
	}
	return room, nil
}
