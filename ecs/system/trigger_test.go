package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startCounter int

func (c *startCounter) StartBossDefeatSequence() { *c++ }

func TestEmbeddedTriggerRule(t *testing.T) {
	spec, err := prefabs.LoadSequenceSpec()
	require.NoError(t, err)
	rule, err := LoadTriggerRule(spec.TriggerScript)
	require.NoError(t, err)

	tests := []struct {
		name string
		ev   ecs.Event
		want bool
	}{
		{"boss defeated", ecs.Event{Type: ecs.EventBossDefeated}, true},
		{"boss damaged", ecs.Event{Type: ecs.EventBossDamaged, Data: map[string]any{"hp": 0}}, false},
		{"dialogue after boss", ecs.Event{Type: ecs.EventDialogueEnd, Data: map[string]any{"after_boss": true}}, true},
		{"other dialogue", ecs.Event{Type: ecs.EventDialogueEnd, Data: map[string]any{"after_boss": false}}, false},
		{"dialogue without data", ecs.Event{Type: ecs.EventDialogueEnd}, false},
		{"unrelated", ecs.Event{Type: "door_opened"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rule.Fires(tc.ev)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTriggerRuleCompileError(t *testing.T) {
	_, err := NewTriggerRule("broken.tengo", []byte("fire := ("))
	assert.Error(t, err)
}

func TestNilTriggerRuleFiresOnBossDefeated(t *testing.T) {
	var rule *TriggerRule
	got, err := rule.Fires(ecs.Event{Type: ecs.EventBossDefeated})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = rule.Fires(ecs.Event{Type: ecs.EventBossDamaged})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestTriggerSystemStartsTarget(t *testing.T) {
	rule, err := NewTriggerRule("inline", []byte(`fire := event == "go"`))
	require.NoError(t, err)

	var started startCounter
	w := ecs.NewWorld()
	ts := NewTriggerSystem(rule, &started, nil)

	w.Events().Push(ecs.Event{Type: "wait"})
	ts.Update(w)
	assert.Equal(t, startCounter(0), started)

	w.Events().Push(ecs.Event{Type: "go"})
	ts.Update(w)
	assert.Equal(t, startCounter(1), started)
}

func TestTriggerSystemLogsRuntimeErrors(t *testing.T) {
	rule, err := NewTriggerRule("inline", []byte(`fire := data.hp + "x" > 0`))
	require.NoError(t, err)

	var buf bytes.Buffer
	var started startCounter
	w := ecs.NewWorld()
	ts := NewTriggerSystem(rule, &started, log.New(&buf, "", 0))

	w.Events().Push(ecs.Event{Type: ecs.EventBossDamaged, Data: map[string]any{"hp": 1}})
	ts.Update(w)
	assert.Equal(t, startCounter(0), started)
	assert.Contains(t, buf.String(), "trigger: event \"boss_damaged\"")
}
