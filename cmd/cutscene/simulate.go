package main

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/milk9111/cutscene/clock"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	ecssystem "github.com/milk9111/cutscene/ecs/system"
	"github.com/milk9111/cutscene/prefabs"
	"github.com/milk9111/cutscene/sequence"
	"github.com/milk9111/cutscene/system"
	"github.com/spf13/cobra"
)

const frame = time.Second / ecssystem.TicksPerSecond

// simOptions shape the simulated room and how the sequence is started.
type simOptions struct {
	ConfigPath string
	Door       bool
	Camera     bool
	WalkTarget bool
	// Scene replaces next_scene when set.
	Scene   string
	NoScene bool
	// Fight starts the sequence by killing the boss instead of calling the
	// trigger surface directly.
	Fight      bool
	MaxSeconds float64
}

type stepRecord struct {
	Step    sequence.Step
	Skipped bool
	At      time.Duration
}

// simReport is what one headless run observed.
type simReport struct {
	Steps       []stepRecord
	Transitions []string
	Frames      int
	Done        bool
	Elapsed     time.Duration
	Player      [2]float64
	Walk        int
	Warnings    []string
	Log         string
}

func newSimulateCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the sequence at 60 ticks per second on a simulated clock",
		Long: `Build the boss room, start the boss defeat sequence and run it to the
scene transition on a simulated clock, then print when each step began.

Leave parts of the room out to see how the sequence degrades:
  cutscene simulate --door=false --camera=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			opts := simOptions{
				ConfigPath: app.v.GetString("config"),
				Door:       app.v.GetBool("door"),
				Camera:     app.v.GetBool("camera"),
				WalkTarget: app.v.GetBool("walk-target"),
				Scene:      app.v.GetString("scene"),
				NoScene:    app.v.GetBool("no-scene"),
				Fight:      app.v.GetBool("fight"),
				MaxSeconds: app.v.GetFloat64("max-seconds"),
			}
			report, err := runSimulation(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, renderReport(report, app.v.GetBool("verbose")))
			if !report.Done {
				return NewExitError(2)
			}
			return nil
		},
	}
	cmd.Flags().Bool("door", true, "place the door in the room")
	cmd.Flags().Bool("camera", true, "place the camera in the room")
	cmd.Flags().Bool("walk-target", true, "place the walk target in the room")
	cmd.Flags().String("scene", "", "override the scene loaded at the end")
	cmd.Flags().Bool("no-scene", false, "clear the scene loaded at the end")
	cmd.Flags().Bool("fight", false, "start by defeating the boss instead of calling the trigger")
	cmd.Flags().Float64("max-seconds", 60, "give up after this much simulated time")
	cmd.Flags().BoolP("verbose", "v", false, "print the sequence log")
	return cmd
}

func runSimulation(opts simOptions) (simReport, error) {
	var report simReport

	seq, err := loadSequenceSpec(opts.ConfigPath)
	if err != nil {
		return report, err
	}
	if opts.Scene != "" {
		seq.NextScene = opts.Scene
	}
	if opts.NoScene {
		seq.NextScene = ""
	}
	cfg, err := seq.Config()
	if err != nil {
		return report, err
	}
	rule, err := ecssystem.LoadTriggerRule(seq.TriggerScript)
	if err != nil {
		return report, err
	}

	room, err := prefabs.LoadRoomSpec()
	if err != nil {
		return report, err
	}
	if !opts.Door {
		room.Door = nil
	}
	if !opts.Camera {
		room.Camera = nil
	}
	if !opts.WalkTarget {
		room.WalkTarget = nil
	}

	start := time.Unix(0, 0)
	wall := clock.NewManual(start)
	var logs bytes.Buffer
	world, err := system.NewWorld(system.BossRoom, system.Options{
		Config: cfg,
		Rule:   rule,
		Clock:  wall,
		Logger: log.New(&logs, "", 0),
		Room:   &room,
		Observer: func(ev sequence.StepEvent, at time.Time) {
			report.Steps = append(report.Steps, stepRecord{Step: ev.Step, Skipped: ev.Skipped, At: at.Sub(start)})
		},
	})
	if err != nil {
		return report, err
	}
	ctrl := world.Controller()
	if ctrl == nil {
		return report, fmt.Errorf("room %q has no boss", room.Name)
	}

	if opts.Fight {
		for {
			if _, ok := ecssystem.PlayerAttack(world.ECS, 1); !ok {
				break
			}
		}
	} else {
		world.BossDefeat.StartBossDefeatSequence()
	}

	maxFrames := int(opts.MaxSeconds * ecssystem.TicksPerSecond)
	for report.Frames < maxFrames && !ctrl.Done() {
		wall.Advance(frame)
		if err := world.Update(); err != nil {
			return report, err
		}
		report.Frames++
	}

	report.Done = ctrl.Done()
	report.Elapsed = wall.Now().Sub(start)
	report.Transitions = world.Transitions()
	if t, ok := ecs.Get(world.ECS, world.Room.Player, component.TransformComponent.Kind()); ok {
		report.Player = [2]float64{t.X, t.Y}
	}
	if walk := ctrl.Walk(); walk != nil {
		report.Walk = walk.Ticks()
	}
	report.Log = logs.String()
	for _, line := range strings.Split(report.Log, "\n") {
		if i := strings.Index(line, "warn: "); i >= 0 {
			report.Warnings = append(report.Warnings, line[i+len("warn: "):])
		}
	}
	return report, nil
}

func loadSequenceSpec(path string) (prefabs.SequenceSpec, error) {
	if path != "" {
		return prefabs.LoadSpecFile[prefabs.SequenceSpec](path)
	}
	return prefabs.LoadSequenceSpec()
}
