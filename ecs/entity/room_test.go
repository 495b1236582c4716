package entity

import (
	"testing"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomFromEmbeddedSpec(t *testing.T) {
	spec, err := prefabs.LoadRoomSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	room, err := BuildRoom(w, spec)
	require.NoError(t, err)

	for name, e := range map[string]ecs.Entity{
		"player": room.Player, "door": room.Door, "walk target": room.WalkTarget,
		"camera": room.Camera, "boss": room.Boss,
	} {
		assert.True(t, w.IsAlive(e), name)
	}

	pc, ok := ecs.Get(w, room.Player, component.PlayerControlComponent.Kind())
	require.True(t, ok)
	assert.True(t, pc.CanMove)
	assert.True(t, pc.CanAttack)
	assert.True(t, ecs.Has(w, room.Player, component.PhysicsBodyComponent.Kind()))

	name, ok := ecs.Get(w, room.Door, component.NameComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.NameDoorParent, name.Value)

	anim, ok := ecs.Get(w, room.Door, component.AnimatorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "closed", anim.Current)
	assert.Equal(t, "open", anim.OnTrigger[component.AnimTriggerOpen])

	hp, ok := ecs.Get(w, room.Boss, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 3, hp.Current)
}

func TestBuildRoomSkipsMissingSections(t *testing.T) {
	w := ecs.NewWorld()
	room, err := BuildRoom(w, prefabs.RoomSpec{
		Player: &prefabs.PlayerSpec{NoBody: true},
	})
	require.NoError(t, err)

	assert.True(t, w.IsAlive(room.Player))
	assert.False(t, ecs.Has(w, room.Player, component.PhysicsBodyComponent.Kind()))
	assert.False(t, room.Door.Valid())
	assert.False(t, room.WalkTarget.Valid())
	assert.False(t, room.Camera.Valid())
	assert.False(t, room.Boss.Valid())
}

func TestNewDoorDefaults(t *testing.T) {
	w := ecs.NewWorld()
	door, err := NewDoor(w, prefabs.DoorSpec{})
	require.NoError(t, err)

	d, ok := ecs.Get(w, door, component.DoorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, defaultDoorOpenFrames, d.OpenFrames)

	name, ok := ecs.Get(w, door, component.NameComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.NameDoorParent, name.Value)
}
