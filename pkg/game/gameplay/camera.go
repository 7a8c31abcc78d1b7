package gameplay

import (
	"roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/room"
)

// Camera defaults
const (
	cameraFollowRate = 3.5
)

// DefaultCameraOffset places the player slightly up and left of the screen center
var DefaultCameraOffset = world.Coord{X: 200, Y: 120}

// Camera eases the draw offset towards the player, offset by an
// accelerometer peek
type Camera struct {
	Offset [2]float64
	Target [2]float64
	Peek   [2]float64

	accelCenter input.Vec3
}

// targetFor returns the camera target for a player at pos
func (c *Camera) targetFor(pos world.Coord) [2]float64 {
	return [2]float64{
		float64(DefaultCameraOffset.X-pos.X-room.TileSizePx) - c.Peek[0],
		float64(DefaultCameraOffset.Y-pos.Y-room.TileSizePx) - c.Peek[1],
	}
}

// Reset snaps the camera onto the player and recalibrates the peek
func (c *Camera) Reset(pos world.Coord, accel input.Vec3) {
	c.Calibrate(accel)
	c.Peek = [2]float64{}
	c.Target = c.targetFor(pos)
	c.Offset = c.Target
}

// Calibrate takes accel as the neutral accelerometer reading
func (c *Camera) Calibrate(accel input.Vec3) {
	c.accelCenter = accel
}

// Update recalibrates while the crank turns, then eases towards the player
func (c *Camera) Update(snap input.Snapshot, pos world.Coord, dt float64) {
	if snap.CrankDelta != 0 {
		c.Calibrate(snap.Accel)
	}
	tilt := snap.Accel.Sub(c.accelCenter)
	c.Peek = [2]float64{tilt.X * room.TileSizePx, tilt.Y * room.TileSizePx}

	c.Target = c.targetFor(pos)
	follow := cameraFollowRate * dt
	for i := range c.Offset {
		c.Offset[i] += (c.Target[i] - c.Offset[i]) * follow
	}
}

// EnterRoom shifts the camera along the crossed axis so the new room scrolls
// in from the side the player came through
func (c *Camera) EnterRoom(dir world.Direction, pos world.Coord) {
	switch dir {
	case world.Left:
		c.Offset[0] = float64(DefaultCameraOffset.X - (pos.X + room.TileSizePx*2))
	case world.Right:
		c.Offset[0] = float64(DefaultCameraOffset.X - pos.X)
	case world.Up:
		c.Offset[1] = float64(DefaultCameraOffset.Y - (pos.Y + room.TileSizePx*2))
	case world.Down:
		c.Offset[1] = float64(DefaultCameraOffset.Y - pos.Y)
	}
}

// DrawOffset returns the offset rounded down to whole pixels
func (c *Camera) DrawOffset() world.Coord {
	return world.Coord{X: int(c.Offset[0]), Y: int(c.Offset[1])}
}
