package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "roomcrawl/pkg/engine/input"
)

// keyCodes maps polled keys to the raw codes the input bindings understand
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyZ, "z"},
	{ebiten.KeyEscape, "escape"},
}

// padCodes maps standard layout gamepad buttons to raw codes
var padCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
}

// pollHeld returns every bound key and gamepad button held this frame
func pollHeld(held []engineinput.RawInput) []engineinput.RawInput {
	held = held[:0]
	for _, k := range keyCodes {
		if ebiten.IsKeyPressed(k.key) {
			held = append(held, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: k.code})
		}
	}

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range padCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
				held = append(held, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: b.code})
			}
		}
	}
	return held
}

// crankTurn returns the crank rotation in degrees from the mouse wheel
func crankTurn() float64 {
	_, dy := ebiten.Wheel()
	return dy * crankDegreesPerNotch
}

// tilt stands in for the accelerometer: the cursor offset from the screen
// centre, each axis in [-1, 1]
func tilt() engineinput.Vec3 {
	x, y := ebiten.CursorPosition()
	v := engineinput.Vec3{
		X: clampUnit(float64(x-ScreenWidth/2) / (ScreenWidth / 2)),
		Y: clampUnit(float64(y-ScreenHeight/2) / (ScreenHeight / 2)),
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
