package sequence

import (
	"errors"
	"fmt"
	"time"
)

// ArrivalTolerance is the distance at which a walk counts as arrived.
const ArrivalTolerance = 0.1

var (
	ErrInvalidConfig = errors.New("sequence: invalid config")
	ErrRunning       = errors.New("sequence: already running")
)

// Config holds the sequence tunables. A controller reads it but never changes
// it while running.
type Config struct {
	WalkSpeed float64

	CameraFocusSettle  time.Duration
	DoorOpenDuration   time.Duration
	CameraReturnSettle time.Duration
	PreWalkDelay       time.Duration
	PreTransitionDelay time.Duration

	// NextScene is the scene loaded by the last step. Empty skips the load.
	NextScene string
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:          2.0,
		CameraFocusSettle:  time.Second,
		DoorOpenDuration:   1500 * time.Millisecond,
		CameraReturnSettle: 500 * time.Millisecond,
		PreWalkDelay:       time.Second,
		PreTransitionDelay: time.Second,
	}
}

// Validate rejects values no run could honour. An empty NextScene is not an
// error, see Warnings.
func (c Config) Validate() error {
	var errs []error
	if c.WalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: walk speed must be positive, got %v", ErrInvalidConfig, c.WalkSpeed))
	}
	waits := []struct {
		name string
		d    time.Duration
	}{
		{"camera focus settle", c.CameraFocusSettle},
		{"door open duration", c.DoorOpenDuration},
		{"camera return settle", c.CameraReturnSettle},
		{"pre-walk delay", c.PreWalkDelay},
		{"pre-transition delay", c.PreTransitionDelay},
	}
	for _, w := range waits {
		if w.d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidConfig, w.name, w.d))
		}
	}
	return errors.Join(errs...)
}

// Warnings lists authoring mistakes that are legal but leave the game stuck.
func (c Config) Warnings() []string {
	var out []string
	if c.NextScene == "" {
		out = append(out, "next scene is not set; the sequence will end without a scene transition")
	}
	return out
}
