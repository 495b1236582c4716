package system

import (
	"log"

	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/solarlune/gocoro"
)

// BossScriptSystem runs one coroutine per boss: wait for its health to run
// out, play the defeat dialogue, then announce boss_defeated.
type BossScriptSystem struct {
	logger  *log.Logger
	world   *ecs.World
	scripts map[ecs.Entity]*bossScript
}

type bossScript struct {
	entity    ecs.Entity
	coroutine gocoro.Coroutine
}

func NewBossScriptSystem(logger *log.Logger) *BossScriptSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &BossScriptSystem{logger: logger, scripts: make(map[ecs.Entity]*bossScript)}
}

func (bs *BossScriptSystem) Update(w *ecs.World) {
	if bs == nil || w == nil {
		return
	}
	bs.world = w

	for e, script := range bs.scripts {
		if !w.IsAlive(e) && !script.coroutine.Running() {
			delete(bs.scripts, e)
		}
	}

	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, boss *component.Boss) {
		if _, ok := bs.scripts[e]; ok {
			return
		}
		script := &bossScript{entity: e, coroutine: gocoro.NewCoroutine()}
		if err := script.coroutine.Run(bs.defeatScript(e)); err != nil {
			bs.logger.Printf("boss %s: start script: %v", e, err)
			return
		}
		bs.scripts[e] = script
	})

	for _, script := range bs.scripts {
		if script.coroutine.Running() {
			script.coroutine.Update()
		}
	}
}

// Stop ends every boss coroutine. The system must not be updated afterwards.
func (bs *BossScriptSystem) Stop() {
	if bs == nil {
		return
	}
	for e, script := range bs.scripts {
		script.coroutine.Stop()
		delete(bs.scripts, e)
	}
}

func (bs *BossScriptSystem) defeatScript(e ecs.Entity) func(exe *gocoro.Execution) {
	return func(exe *gocoro.Execution) {
		// A stopped coroutine resumes off the game loop; it must leave the
		// world alone.
		if err := exe.YieldFunc(func() bool { return exe.Stopped() || bs.bossDown(e) }); err != nil || exe.Stopped() {
			return
		}

		name := ""
		frames := 0
		if boss, ok := ecs.Get(bs.world, e, component.BossComponent.Kind()); ok {
			name = boss.DisplayName
			frames = boss.DialogueFrames
		}
		if rt, ok := ecs.Get(bs.world, e, component.BossRuntimeComponent.Kind()); ok {
			rt.Dead = true
		}
		bs.logger.Printf("boss %q down, dialogue for %d frames", name, frames)

		if err := exe.YieldTicks(frames); err != nil || exe.Stopped() {
			return
		}

		if !bs.world.IsAlive(e) {
			return
		}
		if rt, ok := ecs.Get(bs.world, e, component.BossRuntimeComponent.Kind()); ok {
			rt.Reported = true
		}
		bs.world.Events().Push(ecs.Event{
			Type: ecs.EventBossDefeated,
			Data: map[string]any{"boss": name},
		})
	}
}

func (bs *BossScriptSystem) bossDown(e ecs.Entity) bool {
	if !bs.world.IsAlive(e) {
		return true
	}
	hp, ok := ecs.Get(bs.world, e, component.HealthComponent.Kind())
	return ok && hp.Current <= 0
}

// DamageBoss takes amount off the first boss's health and reports it as a
// boss_damaged event. It returns the remaining health.
func DamageBoss(w *ecs.World, amount int) (int, bool) {
	e, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return 0, false
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || hp.Current <= 0 {
		return 0, false
	}
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	w.Events().Push(ecs.Event{
		Type: ecs.EventBossDamaged,
		Data: map[string]any{"hp": hp.Current},
	})
	return hp.Current, true
}

// PlayerAttack is the player's hit on the boss. It does nothing while the
// player's attacks are revoked.
func PlayerAttack(w *ecs.World, amount int) (int, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, false
	}
	if ctl, ok := ecs.Get(w, player, component.PlayerControlComponent.Kind()); !ok || !ctl.CanAttack {
		return 0, false
	}
	return DamageBoss(w, amount)
}
