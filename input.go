package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the frame's edge-triggered commands. The player character is
// not steered by hand in this build; the boss defeat sequence drives it.
type Input struct {
	// AttackPressed is true on the frame the attack key or button went down.
	AttackPressed bool
	// RestartPressed reloads the boss room.
	RestartPressed bool
	// DebugToggled flips the debug overlay.
	DebugToggled bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyK)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyF3)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight) {
		i.AttackPressed = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.RestartPressed = true
	}
}
