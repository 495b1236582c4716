package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ecssystem "github.com/milk9111/cutscene/ecs/system"
)

func main() {
	configPath := flag.String("config", "", "sequence spec yaml (defaults to the embedded prefab)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("cutscene")
	ebiten.SetTPS(ecssystem.TicksPerSecond)

	game, err := NewGame(*configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
