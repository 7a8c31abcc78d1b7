// Package gameplay provides core game logic for player movement, the camera and
// the session lifecycle.
package gameplay

import (
	"math"

	"roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// Movement tuning, in pixels per second
const (
	SpeedMin = 125
	SpeedMax = 250
	AccelMin = 15
	AccelMax = 30

	// CollisionPx is the edge of the player's collision box
	CollisionPx = 16

	bounceFactor = -0.95
)

// MoveKind describes what a movement step did
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveWalked
	MoveBounced
	MoveChangedRoom
)

func (k MoveKind) String() string {
	switch k {
	case MoveWalked:
		return "walked"
	case MoveBounced:
		return "bounced"
	case MoveChangedRoom:
		return "changed room"
	default:
		return "none"
	}
}

// MoveResult is the outcome of one movement step
type MoveResult struct {
	Kind MoveKind
	Dir  world.Direction // door direction when Kind is MoveChangedRoom
}

// Mover integrates player velocity and resolves collisions against the current room
type Mover struct {
	Velocity world.Coord // px/s
}

// crankBoost returns the fraction of the speed range added by turning the crank
func crankBoost(crankDelta, dt float64) float64 {
	return math.Pow(crankDelta, 2) * dt
}

// TargetSpeed returns the top speed and acceleration step for a frame
func TargetSpeed(crankDelta, dt float64) (speed, accel int) {
	boost := crankBoost(crankDelta, dt)
	speed = SpeedMin + int(float64(SpeedMax-SpeedMin)*boost)
	accel = AccelMin + int(float64(AccelMax-AccelMin)*boost)
	if speed > SpeedMax {
		speed = SpeedMax
	}
	if accel > AccelMax {
		accel = AccelMax
	}
	return speed, accel
}

// approach moves v towards target by at most step
func approach(v, target, step int) int {
	if v < target {
		v += step
		if v > target {
			v = target
		}
	} else if v > target {
		v -= step
		if v < target {
			v = target
		}
	}
	return v
}

// collisionProbes returns the four tiles sampled for a player at pos. The box
// sits at the player's feet, so the probes cover the lower half of the sprite.
func collisionProbes(pos world.Coord) [4]world.Coord {
	cx, cy := pos.X+room.TileOffsetPx, pos.Y+room.TileOffsetPx
	half := CollisionPx / 2
	return [4]world.Coord{
		{X: (cx - half) / room.TileSizePx, Y: (cy + half) / room.TileSizePx},
		{X: (cx + half) / room.TileSizePx, Y: (cy + CollisionPx) / room.TileSizePx},
		{X: (cx - half) / room.TileSizePx, Y: (cy + CollisionPx) / room.TileSizePx},
		{X: (cx + half) / room.TileSizePx, Y: (cy + half) / room.TileSizePx},
	}
}

// Step advances the player by one frame. A non-walkable probe bounces the
// player back without moving; a door probe past the room edge carries the
// player into the neighbouring room.
func (m *Mover) Step(g *state.Game, snap input.Snapshot, dt float64) MoveResult {
	p := g.Player()
	if p == nil || g.CurrentRoom == nil {
		return MoveResult{Kind: MoveNone}
	}

	speed, accel := TargetSpeed(snap.CrankDelta, dt)
	dx, dy := snap.DPad()
	m.Velocity.X = approach(m.Velocity.X, speed*dx, accel)
	m.Velocity.Y = approach(m.Velocity.Y, speed*dy, accel)

	delta := world.Coord{
		X: int(float64(m.Velocity.X) * dt),
		Y: int(float64(m.Velocity.Y) * dt),
	}
	if delta.X == 0 && delta.Y == 0 {
		return MoveResult{Kind: MoveNone}
	}

	newPos := p.PositionPx.Add(delta)
	res := MoveResult{Kind: MoveWalked}
	w, h := g.CurrentRoom.Width(), g.CurrentRoom.Height()
	maxX, maxY := (w-1)*room.TileSizePx, (h-1)*room.TileSizePx

	var flags room.Flags
	for _, probe := range collisionProbes(newPos) {
		flags = g.CurrentRoom.TileFlags(probe.X, probe.Y)

		// a blocked probe wins over any door handling
		if !flags.Has(room.FlagWalkable) {
			m.bounce()
			return MoveResult{Kind: MoveBounced}
		}

		dir := world.NoDirection
		switch {
		case flags.Has(room.FlagDoorHorizontal) && (newPos.X >= maxX || newPos.X <= 0):
			if probe.X == 0 {
				dir, newPos.X = world.Left, maxX
			} else if probe.X == w-1 {
				dir, newPos.X = world.Right, 0
			}
		case flags.Has(room.FlagDoorVertical) && (newPos.Y >= maxY || newPos.Y <= 0):
			if probe.Y == 0 {
				dir, newPos.Y = world.Up, maxY
			} else if probe.Y == h-1 {
				dir, newPos.Y = world.Down, 0
			}
		default:
			continue
		}

		if dir != world.NoDirection {
			next := g.Level.Neighbor(g.CurrentRoom.Coord, dir)
			if next == nil {
				m.bounce()
				return MoveResult{Kind: MoveBounced}
			}
			idx := g.Level.Index(next.Coord)
			if err := g.SetCurrentRoom(idx); err != nil {
				m.bounce()
				return MoveResult{Kind: MoveBounced}
			}
			res = MoveResult{Kind: MoveChangedRoom, Dir: dir}
		}
		g.SetPlayerRoom(g.CurrentRoomIndex)
		break
	}

	p.PositionPx = newPos
	return res
}

func (m *Mover) bounce() {
	m.Velocity.X = int(float64(m.Velocity.X) * bounceFactor)
	m.Velocity.Y = int(float64(m.Velocity.Y) * bounceFactor)
}
