package prefabs

import (
	"fmt"
	"os"
	"time"

	"github.com/milk9111/cutscene/sequence"
	"gopkg.in/yaml.v3"
)

const (
	SequenceFile = "boss_defeat.yaml"
	RoomFile     = "boss_room.yaml"
)

// LoadSpec decodes an embedded (or disk-overridden) prefab file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

// LoadSpecFile decodes a spec from an explicit path outside the prefab tree.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	return decodeSpec[T](path, data)
}

func decodeSpec[T any](name string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// SequenceSpec is the authoring form of sequence.Config. Waits are seconds;
// an omitted wait keeps its default.
type SequenceSpec struct {
	Name               string   `yaml:"name"`
	WalkSpeed          float64  `yaml:"walk_speed"`
	CameraFocusSettle  *float64 `yaml:"camera_focus_settle"`
	DoorOpenDuration   *float64 `yaml:"door_open_duration"`
	CameraReturnSettle *float64 `yaml:"camera_return_settle"`
	PreWalkDelay       *float64 `yaml:"delay_after_door_open"`
	PreTransitionDelay *float64 `yaml:"delay_before_scene_transition"`
	NextScene          string   `yaml:"next_scene"`
	TriggerScript      string   `yaml:"trigger_script"`
}

func LoadSequenceSpec() (SequenceSpec, error) {
	return LoadSpec[SequenceSpec](SequenceFile)
}

// Config converts the spec into validated tunables.
func (s SequenceSpec) Config() (sequence.Config, error) {
	cfg := sequence.DefaultConfig()
	if s.WalkSpeed != 0 {
		cfg.WalkSpeed = s.WalkSpeed
	}
	setSeconds(&cfg.CameraFocusSettle, s.CameraFocusSettle)
	setSeconds(&cfg.DoorOpenDuration, s.DoorOpenDuration)
	setSeconds(&cfg.CameraReturnSettle, s.CameraReturnSettle)
	setSeconds(&cfg.PreWalkDelay, s.PreWalkDelay)
	setSeconds(&cfg.PreTransitionDelay, s.PreTransitionDelay)
	cfg.NextScene = s.NextScene

	if err := cfg.Validate(); err != nil {
		return sequence.Config{}, fmt.Errorf("prefabs: sequence %q: %w", s.Name, err)
	}
	return cfg, nil
}

func setSeconds(dst *time.Duration, seconds *float64) {
	if seconds == nil {
		return
	}
	*dst = time.Duration(*seconds * float64(time.Second))
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Name      string   `yaml:"name"`
	Position  Vec2Spec `yaml:"position"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	Mass      float64  `yaml:"mass"`
	MoveSpeed float64  `yaml:"move_speed"`
	// NoBody builds the player without a physics body (no movement capability).
	NoBody bool `yaml:"no_body"`
}

type DoorSpec struct {
	Name       string   `yaml:"name"`
	Position   Vec2Spec `yaml:"position"`
	OpenFrames int      `yaml:"open_frames"`
}

type CameraSpec struct {
	Target     string  `yaml:"target"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type BossSpec struct {
	Name           string   `yaml:"name"`
	Position       Vec2Spec `yaml:"position"`
	Health         int      `yaml:"health"`
	DialogueFrames int      `yaml:"dialogue_frames"`
}

// RoomSpec lays out the boss arena. Nil sections are left out of the world,
// which is how missing-collaborator setups are authored.
type RoomSpec struct {
	Name       string      `yaml:"name"`
	Player     *PlayerSpec `yaml:"player"`
	Door       *DoorSpec   `yaml:"door"`
	WalkTarget *Vec2Spec   `yaml:"walk_target"`
	Camera     *CameraSpec `yaml:"camera"`
	Boss       *BossSpec   `yaml:"boss"`
}

func LoadRoomSpec() (RoomSpec, error) {
	return LoadSpec[RoomSpec](RoomFile)
}
