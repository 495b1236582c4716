package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/prefabs"
)

// Starter is anything a trigger can start.
type Starter interface {
	StartBossDefeatSequence()
}

// TriggerRule is a compiled tengo script that reads the globals `event` and
// `data` and sets `fire`.
type TriggerRule struct {
	name     string
	compiled *tengo.Compiled
}

func NewTriggerRule(name string, src []byte) (*TriggerRule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("event", "")
	_ = script.Add("data", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("trigger rule %q: %w", name, err)
	}
	return &TriggerRule{name: name, compiled: compiled}, nil
}

// LoadTriggerRule compiles a script from the prefab script directory.
func LoadTriggerRule(name string) (*TriggerRule, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return NewTriggerRule(name, src)
}

func (r *TriggerRule) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Fires runs the rule against one event.
func (r *TriggerRule) Fires(ev ecs.Event) (bool, error) {
	if r == nil || r.compiled == nil {
		return ev.Type == ecs.EventBossDefeated, nil
	}
	data := ev.Data
	if data == nil {
		data = map[string]any{}
	}
	if err := r.compiled.Set("event", ev.Type); err != nil {
		return false, err
	}
	if err := r.compiled.Set("data", data); err != nil {
		return false, err
	}
	if err := r.compiled.Run(); err != nil {
		return false, fmt.Errorf("trigger rule %q: %w", r.name, err)
	}
	if !r.compiled.IsDefined("fire") {
		return false, nil
	}
	return r.compiled.Get("fire").Bool(), nil
}

// TriggerSystem watches the frame's world events and starts its target when
// the rule fires. A nil rule fires on boss_defeated only.
type TriggerSystem struct {
	rule   *TriggerRule
	target Starter
	logger *log.Logger
}

func NewTriggerSystem(rule *TriggerRule, target Starter, logger *log.Logger) *TriggerSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &TriggerSystem{rule: rule, target: target, logger: logger}
}

// SetRule swaps the rule, e.g. after a script reload.
func (ts *TriggerSystem) SetRule(rule *TriggerRule) {
	if ts == nil {
		return
	}
	ts.rule = rule
}

func (ts *TriggerSystem) Update(w *ecs.World) {
	if ts == nil || w == nil || ts.target == nil {
		return
	}
	for _, ev := range w.Events().Pending() {
		fire, err := ts.rule.Fires(ev)
		if err != nil {
			ts.logger.Printf("trigger: event %q: %v", ev.Type, err)
			continue
		}
		if fire {
			ts.target.StartBossDefeatSequence()
		}
	}
}
