package system

import (
	"fmt"
	"log"
	"os"

	"github.com/milk9111/cutscene/clock"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/entity"
	ecssystem "github.com/milk9111/cutscene/ecs/system"
	"github.com/milk9111/cutscene/levels"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/milk9111/cutscene/sequence"
)

// BossRoom is the scene id of the prefab boss arena.
const BossRoom = "boss_room"

type Options struct {
	// Config tunes the sequence. The zero value means sequence.DefaultConfig.
	Config sequence.Config
	// Rule decides which events start the sequence; nil fires on
	// boss_defeated only.
	Rule *ecssystem.TriggerRule
	// Clock measures sequence waits. Defaults to the wall clock.
	Clock    clock.Clock
	Logger   *log.Logger
	Observer sequence.StepObserver
	// Room overrides the layout of the boss room.
	Room *prefabs.RoomSpec
	// FollowTransitions loads a requested scene on the next Update instead
	// of only recording the request.
	FollowTransitions bool
}

// World owns scene loading, transition handling and the systems of the
// loaded room.
type World struct {
	ECS        *ecs.World
	Room       entity.Room
	Scene      string
	GameClock  *clock.Pausable
	BossDefeat *ecssystem.BossDefeatSystem
	Trigger    *ecssystem.TriggerSystem

	opts        Options
	scheduler   *ecs.Scheduler
	bossScripts *ecssystem.BossScriptSystem
	transitions []string
	pending     string
}

// NewWorld creates a world and loads the requested scene.
func NewWorld(scene string, opts Options) (*World, error) {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if opts.Config == (sequence.Config{}) {
		opts.Config = sequence.DefaultConfig()
	}
	w := &World{opts: opts, GameClock: clock.NewPausable(opts.Clock)}
	if err := w.Load(scene); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the ECS world with a fresh build of scene. Anything running
// in the previous scene, the boss defeat sequence included, is dropped and
// its world freeze released.
func (w *World) Load(scene string) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if scene == "" {
		scene = BossRoom
	}
	spec, err := w.roomSpec(scene)
	if err != nil {
		return err
	}

	ecsWorld := ecs.NewWorld()
	room, err := entity.BuildRoom(ecsWorld, spec)
	if err != nil {
		return fmt.Errorf("build %s: %w", scene, err)
	}

	w.unloadScene()
	w.ECS = ecsWorld
	w.Room = room
	w.Scene = scene
	w.pending = ""
	w.BossDefeat = nil
	w.Trigger = nil

	logger := w.opts.Logger
	var systems []ecs.System
	if room.Boss.Valid() {
		seqLogger := log.New(logger.Writer(), sequence.LogPrefix, logger.Flags())
		opts := []sequence.Option{sequence.WithClock(w.opts.Clock)}
		if w.opts.Observer != nil {
			opts = append(opts, sequence.WithStepObserver(w.opts.Observer))
		}
		w.BossDefeat = ecssystem.NewBossDefeatSystem(ecsWorld, w.opts.Config, sequence.References{TimeControl: w.GameClock}, seqLogger, opts...)
		w.Trigger = ecssystem.NewTriggerSystem(w.opts.Rule, w.BossDefeat, logger)
		w.bossScripts = ecssystem.NewBossScriptSystem(logger)
		systems = append(systems, w.bossScripts, w.Trigger, w.BossDefeat)
	}
	systems = append(systems,
		ecssystem.NewPhysicsSystem(w.GameClock),
		ecssystem.NewAnimationSystem(),
		ecssystem.NewDoorSystem(),
		ecssystem.NewCameraSystem(),
		ecssystem.NewTransitionSystem(w.requestTransition),
	)
	w.scheduler = ecs.NewScheduler(systems...)
	logger.Printf("loaded scene %q", scene)
	return nil
}

// unloadScene stops the previous scene's boss coroutines and ends a freeze
// its sequence left behind; the game clock outlives scenes.
func (w *World) unloadScene() {
	if w.bossScripts != nil {
		w.bossScripts.Stop()
		w.bossScripts = nil
	}
	if w.GameClock.Frozen() {
		w.opts.Logger.Printf("scene %q unloaded while frozen, resuming game time", w.Scene)
		w.GameClock.Unfreeze()
	}
}

// Update advances one tick, first switching scenes if one was requested.
func (w *World) Update() error {
	if w == nil || w.scheduler == nil {
		return nil
	}
	if w.pending != "" {
		if err := w.Load(w.pending); err != nil {
			w.pending = ""
			return err
		}
	}
	w.scheduler.Update(w.ECS)
	return nil
}

// Transitions lists every scene change requested so far.
func (w *World) Transitions() []string {
	if w == nil {
		return nil
	}
	return w.transitions
}

// Controller is the boss defeat sequence of the current scene, nil if the
// scene has no boss.
func (w *World) Controller() *sequence.Controller {
	if w == nil || w.BossDefeat == nil {
		return nil
	}
	return w.BossDefeat.Controller()
}

// SetConfig applies new tunables to future loads and, while it is idle, to
// the current sequence.
func (w *World) SetConfig(cfg sequence.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.opts.Config = cfg
	if ctrl := w.Controller(); ctrl != nil {
		return ctrl.Reconfigure(cfg)
	}
	return nil
}

func (w *World) SetRule(rule *ecssystem.TriggerRule) {
	w.opts.Rule = rule
	if w.Trigger != nil {
		w.Trigger.SetRule(rule)
	}
}

func (w *World) requestTransition(target string) {
	w.transitions = append(w.transitions, target)
	if w.opts.FollowTransitions {
		w.pending = target
	}
}

func (w *World) roomSpec(scene string) (prefabs.RoomSpec, error) {
	if scene == BossRoom {
		if w.opts.Room != nil {
			return *w.opts.Room, nil
		}
		return prefabs.LoadRoomSpec()
	}
	return levels.Load(scene)
}
