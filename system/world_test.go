package system

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/milk9111/cutscene/clock"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	ecssystem "github.com/milk9111/cutscene/ecs/system"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/milk9111/cutscene/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / ecssystem.TicksPerSecond

func newTestWorld(t *testing.T, follow bool) (*World, *clock.Manual, *bytes.Buffer) {
	t.Helper()
	seq, err := prefabs.LoadSequenceSpec()
	require.NoError(t, err)
	cfg, err := seq.Config()
	require.NoError(t, err)
	rule, err := ecssystem.LoadTriggerRule(seq.TriggerScript)
	require.NoError(t, err)

	wall := clock.NewManual(time.Unix(0, 0))
	var buf bytes.Buffer
	w, err := NewWorld("", Options{
		Config:            cfg,
		Rule:              rule,
		Clock:             wall,
		Logger:            log.New(&buf, "", 0),
		FollowTransitions: follow,
	})
	require.NoError(t, err)
	return w, wall, &buf
}

func TestWorldLoadsBossRoom(t *testing.T) {
	w, _, _ := newTestWorld(t, false)
	assert.Equal(t, BossRoom, w.Scene)
	require.NotNil(t, w.Controller())
	assert.Equal(t, sequence.Idle, w.Controller().State())
	assert.True(t, w.ECS.IsAlive(w.Room.Boss))
}

func TestWorldFollowsSceneTransition(t *testing.T) {
	w, wall, buf := newTestWorld(t, true)

	w.BossDefeat.StartBossDefeatSequence()
	for i := 0; i < 2000 && w.Scene == BossRoom; i++ {
		wall.Advance(frame)
		require.NoError(t, w.Update())
	}

	assert.Equal(t, "level_2", w.Scene)
	assert.Equal(t, []string{"level_2"}, w.Transitions())
	assert.Nil(t, w.Controller())
	assert.False(t, w.GameClock.Frozen())
	_, ok := ecs.First(w.ECS, component.PlayerTagComponent.Kind())
	assert.True(t, ok)
	assert.Contains(t, buf.String(), `loaded scene "level_2"`)
}

func TestWorldRecordsTransitionWithoutFollowing(t *testing.T) {
	w, wall, _ := newTestWorld(t, false)
	w.BossDefeat.StartBossDefeatSequence()
	for i := 0; i < 2000 && len(w.Transitions()) == 0; i++ {
		wall.Advance(frame)
		require.NoError(t, w.Update())
	}
	require.NoError(t, w.Update())
	assert.Equal(t, BossRoom, w.Scene)
	assert.Equal(t, []string{"level_2"}, w.Transitions())
	assert.True(t, w.Controller().Done())
}

func TestWorldSetConfigRefusedWhileRunning(t *testing.T) {
	w, _, _ := newTestWorld(t, false)

	cfg := sequence.DefaultConfig()
	cfg.WalkSpeed = 5
	require.NoError(t, w.SetConfig(cfg))
	assert.Equal(t, 5.0, w.Controller().Config().WalkSpeed)

	w.BossDefeat.StartBossDefeatSequence()
	cfg.WalkSpeed = 1
	assert.ErrorIs(t, w.SetConfig(cfg), sequence.ErrRunning)

	cfg.WalkSpeed = 0
	assert.ErrorIs(t, w.SetConfig(cfg), sequence.ErrInvalidConfig)
}

func TestWorldUnknownScene(t *testing.T) {
	_, err := NewWorld("missing_scene", Options{Logger: log.New(&bytes.Buffer{}, "", 0)})
	assert.Error(t, err)
}

func TestWorldReloadReleasesFreeze(t *testing.T) {
	w, wall, buf := newTestWorld(t, false)

	w.BossDefeat.StartBossDefeatSequence()
	for i := 0; i < 10; i++ {
		wall.Advance(frame)
		require.NoError(t, w.Update())
	}
	require.True(t, w.GameClock.Frozen())
	require.Equal(t, sequence.StepFocusCamera, w.Controller().Step())

	require.NoError(t, w.Load(BossRoom))
	assert.False(t, w.GameClock.Frozen())
	assert.Equal(t, sequence.Idle, w.Controller().State())
	assert.Contains(t, buf.String(), "resuming game time")

	pb, ok := ecs.Get(w.ECS, w.Room.Player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	require.Nil(t, pb.Body, "bodies are created on the first physics step")
	pb.Velocity.X = 3
	tf, ok := ecs.Get(w.ECS, w.Room.Player, component.TransformComponent.Kind())
	require.True(t, ok)
	startX := tf.X
	for i := 0; i < 120; i++ {
		wall.Advance(frame)
		require.NoError(t, w.Update())
	}
	tf, ok = ecs.Get(w.ECS, w.Room.Player, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, startX+6, tf.X, 0.1, "physics steps again after the reload")
}
