package input

import "sort"

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Buttons is a bitmask of handheld buttons.
type Buttons uint8

// Button bits
const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonB
	ButtonA

	ButtonNone Buttons = 0
)

// Has returns true if every button in mask is set
func (b Buttons) Has(mask Buttons) bool {
	return mask != 0 && b&mask == mask
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "gamepad_a").
type RawInput struct {
	Device Device
	Code   string
}

// bindings maps raw codes to buttons. Multiple codes may point to the same button.
var bindings = map[string]Buttons{
	// D-pad (arrows, WASD, Vim)
	"arrow_left":  ButtonLeft,
	"a":           ButtonLeft,
	"h":           ButtonLeft,
	"arrow_right": ButtonRight,
	"d":           ButtonRight,
	"l":           ButtonRight,
	"arrow_up":    ButtonUp,
	"w":           ButtonUp,
	"k":           ButtonUp,
	"arrow_down":  ButtonDown,
	"s":           ButtonDown,
	"j":           ButtonDown,

	"x":      ButtonA,
	"enter":  ButtonA,
	"z":      ButtonB,
	"escape": ButtonB,

	"gamepad_dpad_left":  ButtonLeft,
	"gamepad_dpad_right": ButtonRight,
	"gamepad_dpad_up":    ButtonUp,
	"gamepad_dpad_down":  ButtonDown,
	"gamepad_a":          ButtonA, // A button / Cross
	"gamepad_b":          ButtonB, // B button / Circle
}

// ButtonFor maps a raw input to the button it is bound to
func ButtonFor(ev RawInput) Buttons {
	return bindings[ev.Code]
}

// Collect folds the raw inputs held this frame into a button mask
func Collect(held []RawInput) Buttons {
	var b Buttons
	for _, ev := range held {
		b |= ButtonFor(ev)
	}
	return b
}

// BoundCodes returns every code bound to b, sorted.
func BoundCodes(b Buttons) []string {
	var codes []string
	for code, bound := range bindings {
		if bound == b {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
