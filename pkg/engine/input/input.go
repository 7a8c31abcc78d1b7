// Package input turns per-frame device state into a handheld-style snapshot:
// a button bitmask, a crank and an accelerometer.
package input

import "math"

// Vec3 is an accelerometer reading
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns the component-wise difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Snapshot is the input state of one frame
type Snapshot struct {
	Current  Buttons // held this frame
	Pushed   Buttons // went down since the last frame
	Released Buttons // went up since the last frame

	CrankAngle float64 // degrees, [0,360)
	CrankDelta float64 // degrees turned since the last frame

	Accel Vec3
}

// DPad returns the sign of the d-pad on each axis
func (s Snapshot) DPad() (dx, dy int) {
	if s.Current.Has(ButtonLeft) {
		dx--
	}
	if s.Current.Has(ButtonRight) {
		dx++
	}
	if s.Current.Has(ButtonUp) {
		dy--
	}
	if s.Current.Has(ButtonDown) {
		dy++
	}
	return dx, dy
}

// Tracker derives edge-triggered buttons and crank deltas across frames
type Tracker struct {
	prev       Buttons
	crankAngle float64
}

// Next builds the snapshot for a frame from the held buttons, the absolute
// crank angle in degrees and the accelerometer reading
func (t *Tracker) Next(current Buttons, crankAngle float64, accel Vec3) Snapshot {
	crankAngle = normalizeAngle(crankAngle)
	s := Snapshot{
		Current:    current,
		Pushed:     current &^ t.prev,
		Released:   t.prev &^ current,
		CrankAngle: crankAngle,
		CrankDelta: angleDelta(t.crankAngle, crankAngle),
		Accel:      accel,
	}
	t.prev = current
	t.crankAngle = crankAngle
	return s
}

// Turn advances the crank by delta degrees and returns the new absolute angle
func (t *Tracker) Turn(delta float64) float64 {
	return normalizeAngle(t.crankAngle + delta)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// angleDelta returns the shortest signed turn from a to b, in (-180,180]
func angleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
