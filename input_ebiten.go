package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sandkeep/input"
)

// ebitenInput reads keyboard, mouse and the first gamepad once per tick.
type ebitenInput struct {
	current input.Snapshot
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{}
}

// Snapshot returns the state read by the last poll.
func (i *ebitenInput) Snapshot() input.Snapshot {
	return i.current
}

func (i *ebitenInput) poll() {
	const stickDeadzone = 0.3

	held := map[string]bool{
		input.KeyForward:    ebiten.IsKeyPressed(ebiten.KeyW),
		input.KeyBack:       ebiten.IsKeyPressed(ebiten.KeyS),
		input.KeyLeft:       ebiten.IsKeyPressed(ebiten.KeyA),
		input.KeyRight:      ebiten.IsKeyPressed(ebiten.KeyD),
		input.KeyOrbitLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyQ),
		input.KeyOrbitRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyE),
		input.KeyOrbitUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		input.KeyOrbitDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	primary := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	_, wheel := ebiten.Wheel()

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		held[input.KeyLeft] = held[input.KeyLeft] || lx < -stickDeadzone
		held[input.KeyRight] = held[input.KeyRight] || lx > stickDeadzone
		held[input.KeyForward] = held[input.KeyForward] || ly < -stickDeadzone
		held[input.KeyBack] = held[input.KeyBack] || ly > stickDeadzone

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		held[input.KeyOrbitLeft] = held[input.KeyOrbitLeft] || rx < -stickDeadzone
		held[input.KeyOrbitRight] = held[input.KeyOrbitRight] || rx > stickDeadzone

		primary = primary || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	i.current = input.Snapshot{Held: held, Primary: primary, Zoom: wheel, Pause: pause}
}
