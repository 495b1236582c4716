package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/cutscene/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSequenceSpec(t *testing.T) {
	spec, err := LoadSequenceSpec()
	require.NoError(t, err)

	cfg, err := spec.Config()
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.WalkSpeed)
	assert.Equal(t, 1500*time.Millisecond, cfg.DoorOpenDuration)
	assert.Equal(t, "level_2", cfg.NextScene)
	assert.Equal(t, "boss_defeat_trigger.tengo", spec.TriggerScript)
}

func TestEmbeddedRoomSpec(t *testing.T) {
	room, err := LoadRoomSpec()
	require.NoError(t, err)

	require.NotNil(t, room.Player)
	require.NotNil(t, room.Door)
	require.NotNil(t, room.WalkTarget)
	assert.Equal(t, "DoorParent", room.Door.Name)
	assert.Equal(t, 20.0, room.WalkTarget.X)
}

func TestSequenceSpecDefaultsAndOverrides(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg sequence.Config)
		wantErr bool
	}{
		{
			name: "omitted_waits_keep_defaults",
			yaml: "name: x\nnext_scene: s\n",
			check: func(t *testing.T, cfg sequence.Config) {
				assert.Equal(t, sequence.DefaultConfig().PreWalkDelay, cfg.PreWalkDelay)
				assert.Equal(t, 2.0, cfg.WalkSpeed)
			},
		},
		{
			name: "explicit_zero_wait",
			yaml: "delay_after_door_open: 0\ndelay_before_scene_transition: 0.25\n",
			check: func(t *testing.T, cfg sequence.Config) {
				assert.Zero(t, cfg.PreWalkDelay)
				assert.Equal(t, 250*time.Millisecond, cfg.PreTransitionDelay)
				assert.Empty(t, cfg.NextScene)
			},
		},
		{
			name:    "negative_speed",
			yaml:    "walk_speed: -3\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seq.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			spec, err := LoadSpecFile[SequenceSpec](path)
			require.NoError(t, err)
			cfg, err := spec.Config()
			if tt.wantErr {
				assert.ErrorIs(t, err, sequence.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadSpecFileErrors(t *testing.T) {
	_, err := LoadSpecFile[SequenceSpec](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("walk_speed: [oops"), 0o644))
	_, err = LoadSpecFile[SequenceSpec](path)
	assert.ErrorContains(t, err, "unmarshal")
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"boss_defeat_trigger.tengo", "scripts/boss_defeat_trigger.tengo", "prefabs/scripts/boss_defeat_trigger.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "fire")
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boss_defeat.yaml"), []byte("walk_speed: 3\n"), 0o644))

	select {
	case ch := <-w.Changes:
		assert.Equal(t, Change{Name: "boss_defeat.yaml", Kind: ChangeSpec}, ch)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ChangeSpec, classify("a/b.YML"))
	assert.Equal(t, ChangeScript, classify("x.tengo"))
	assert.Equal(t, ChangeKind(0), classify("x.png"))
}
