package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/cutscene/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Execute(args)
	return out.String(), errOut.String(), err
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sequence.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func stepNames(r simReport) []sequence.Step {
	out := make([]sequence.Step, 0, len(r.Steps))
	for _, s := range r.Steps {
		out = append(out, s.Step)
	}
	return out
}

func TestRunSimulationFullRoom(t *testing.T) {
	r, err := runSimulation(simOptions{Door: true, Camera: true, WalkTarget: true, MaxSeconds: 60})
	require.NoError(t, err)

	assert.True(t, r.Done)
	assert.Equal(t, []string{"level_2"}, r.Transitions)
	assert.Equal(t, []sequence.Step{
		sequence.StepFreeze, sequence.StepFocusCamera, sequence.StepOpenDoor, sequence.StepReturnCamera,
		sequence.StepUnfreeze, sequence.StepWalk, sequence.StepPreTransition, sequence.StepSceneTransition,
	}, stepNames(r))
	for _, s := range r.Steps {
		assert.False(t, s.Skipped, s.Step.String())
	}
	assert.InDelta(t, 20, r.Player[0], sequence.ArrivalTolerance)
	assert.Empty(t, r.Warnings)

	// focus 1s, door 1.5s, camera 0.5s, then the pre-walk delay.
	assert.InDelta(t, 3.0, r.Steps[4].At.Seconds(), 0.1)
	assert.InDelta(t, 4.0, r.Steps[5].At.Seconds(), 0.15)
}

func TestRunSimulationDegrades(t *testing.T) {
	r, err := runSimulation(simOptions{Door: false, Camera: false, WalkTarget: true, NoScene: true, MaxSeconds: 60})
	require.NoError(t, err)

	assert.True(t, r.Done)
	assert.Empty(t, r.Transitions)
	skipped := map[sequence.Step]bool{}
	for _, s := range r.Steps {
		skipped[s.Step] = s.Skipped
	}
	assert.True(t, skipped[sequence.StepFocusCamera])
	assert.True(t, skipped[sequence.StepOpenDoor])
	assert.True(t, skipped[sequence.StepReturnCamera])
	assert.True(t, skipped[sequence.StepSceneTransition])
	assert.False(t, skipped[sequence.StepWalk])
	assert.Contains(t, r.Warnings, "door not found, waiting anyway")
	assert.Contains(t, r.Warnings, "next scene name is not set, no scene transition")
}

func TestRunSimulationFight(t *testing.T) {
	r, err := runSimulation(simOptions{Door: true, Camera: true, WalkTarget: true, Fight: true, MaxSeconds: 60})
	require.NoError(t, err)

	assert.True(t, r.Done)
	require.NotEmpty(t, r.Steps)
	// The boss dialogue runs before the freeze.
	assert.GreaterOrEqual(t, r.Steps[0].At.Seconds(), 1.4)
}

func TestRunSimulationFastWalkFinishes(t *testing.T) {
	path := writeSpec(t, "walk_speed: 25.0\nnext_scene: level_2\n")
	r, err := runSimulation(simOptions{ConfigPath: path, Door: true, Camera: true, WalkTarget: true, MaxSeconds: 120})
	require.NoError(t, err)

	assert.True(t, r.Done)
	assert.Equal(t, []string{"level_2"}, r.Transitions)
	assert.InDelta(t, 20, r.Player[0], 25.0/60)
	assert.Less(t, r.Walk, 60)
}

func TestSimulateCommand(t *testing.T) {
	out, _, err := execute(t, "simulate", "--scene", "level_3")
	require.NoError(t, err)
	assert.Contains(t, out, "Boss defeat sequence")
	assert.Contains(t, out, "scene-transition")
	assert.Contains(t, out, "scene: level_3")
}

func TestSimulateCommandTimesOut(t *testing.T) {
	_, _, err := execute(t, "simulate", "--max-seconds", "1")
	code, ok := IsExitError(err)
	require.True(t, ok)
	assert.Equal(t, 2, code)
}

func TestSimulateCommandReadsEnv(t *testing.T) {
	t.Setenv("CUTSCENE_DOOR", "false")
	out, _, err := execute(t, "simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "door not found, waiting anyway")
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:    "embedded",
			wantOut: "walk speed 2.00",
		},
		{
			name:    "missing scene warns",
			spec:    "walk_speed: 3\n",
			wantOut: "next scene is not set",
		},
		{
			name:    "unknown scene warns",
			spec:    "next_scene: level_9\n",
			wantOut: `next scene "level_9" is not a known level`,
		},
		{
			name:     "negative wait fails",
			spec:     "door_open_duration: -1\nnext_scene: level_2\n",
			wantCode: 1,
			wantErr:  "door open duration must not be negative",
		},
		{
			name:     "bad yaml fails",
			spec:     "walk_speed: [",
			wantCode: 1,
			wantErr:  "unmarshal",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := []string{"validate"}
			if tc.spec != "" {
				args = append(args, "--config", writeSpec(t, tc.spec))
			}
			out, errOut, err := execute(t, args...)
			if tc.wantCode != 0 {
				code, ok := IsExitError(err)
				require.True(t, ok)
				assert.Equal(t, tc.wantCode, code)
				assert.Contains(t, errOut, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tc.wantOut)
		})
	}
}
