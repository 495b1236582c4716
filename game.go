package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/cutscene/common"
	"github.com/milk9111/cutscene/ecs/render"
	ecssystem "github.com/milk9111/cutscene/ecs/system"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/milk9111/cutscene/sequence"
	"github.com/milk9111/cutscene/system"
)

type Game struct {
	frames int
	debug  bool

	configPath    string
	triggerScript string
	input         *Input
	world         *system.World
	renderer      *render.RenderSystem
	hud           *HUD
	watcher       *prefabs.Watcher
}

func NewGame(configPath string, debug bool) (*Game, error) {
	seq, err := loadSequenceSpec(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := seq.Config()
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("config: %s", w)
	}

	rule, err := ecssystem.LoadTriggerRule(seq.TriggerScript)
	if err != nil {
		log.Printf("trigger rule unavailable, falling back to boss_defeated: %v", err)
		rule = nil
	}

	world, err := system.NewWorld(system.BossRoom, system.Options{
		Config:            cfg,
		Rule:              rule,
		Logger:            log.Default(),
		FollowTransitions: true,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:         debug,
		configPath:    configPath,
		triggerScript: seq.TriggerScript,
		input:         NewInput(),
		world:         world,
		renderer:      render.NewRenderSystem(debug),
		hud:           NewHUD(),
	}

	dirs := []string{prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts")}
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	if watcher, err := prefabs.NewWatcher(dirs...); err != nil {
		log.Printf("prefab hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.pollReloads()

	if g.input.DebugToggled {
		g.debug = !g.debug
		g.renderer.Debug = g.debug
	}
	if g.input.RestartPressed {
		if err := g.world.Load(system.BossRoom); err != nil {
			return err
		}
	}
	if g.input.AttackPressed {
		if hp, ok := ecssystem.PlayerAttack(g.world.ECS, 1); ok {
			log.Printf("boss hit, %d hp left", hp)
		}
	}

	if err := g.world.Update(); err != nil {
		return err
	}
	g.hud.Refresh(g.world)
	g.hud.UI.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world.ECS, screen)
	g.hud.UI.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, common.BaseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// pollReloads applies pending prefab edits without blocking the frame.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeScript:
		if change.Name != filepath.Base(g.triggerScript) {
			return
		}
		rule, err := ecssystem.LoadTriggerRule(change.Name)
		if err != nil {
			log.Printf("reload %s: %v", change.Name, err)
			return
		}
		g.world.SetRule(rule)
		log.Printf("reloaded trigger rule %s", change.Name)
	case prefabs.ChangeSpec:
		if change.Name == prefabs.RoomFile {
			log.Printf("%s changed, press R to rebuild the room", change.Name)
			return
		}
		if change.Name != prefabs.SequenceFile && (g.configPath == "" || change.Name != filepath.Base(g.configPath)) {
			return
		}
		seq, err := loadSequenceSpec(g.configPath)
		if err != nil {
			log.Printf("reload %s: %v", change.Name, err)
			return
		}
		cfg, err := seq.Config()
		if err == nil {
			err = g.world.SetConfig(cfg)
		}
		switch {
		case errors.Is(err, sequence.ErrRunning):
			log.Printf("reload %s: sequence running, new settings apply after restart", change.Name)
		case err != nil:
			log.Printf("reload %s: %v", change.Name, err)
		default:
			if at, ok := prefabs.ModTime(prefabs.SequenceFile); ok {
				log.Printf("reloaded %s (modified %s)", change.Name, at.Format("15:04:05"))
			} else {
				log.Printf("reloaded %s", change.Name)
			}
		}
	}
}

func loadSequenceSpec(path string) (prefabs.SequenceSpec, error) {
	if path != "" {
		return prefabs.LoadSpecFile[prefabs.SequenceSpec](path)
	}
	return prefabs.LoadSequenceSpec()
}
