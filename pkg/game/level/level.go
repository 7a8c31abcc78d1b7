// Package level holds the fixed arena of rooms that make up one level.
package level

import (
	"fmt"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
)

// Level geometry
const (
	Width     = 16
	Height    = 16
	RoomCount = Width * Height
)

// Level is a Width×Height arena of rooms addressed by (x,y) or x + y*Width
type Level struct {
	rooms *world.Grid[*room.Room]
}

// New creates a level with every room allocated and filled with the default tile
func New() *Level {
	l := &Level{rooms: world.NewGrid[*room.Room](Width, Height)}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			l.rooms.Set(x, y, room.New(world.Coord{X: x, Y: y}))
		}
	}
	return l
}

// Width returns the number of room columns
func (l *Level) Width() int {
	return l.rooms.Width()
}

// Height returns the number of room rows
func (l *Level) Height() int {
	return l.rooms.Height()
}

// RoomCount returns the number of rooms
func (l *Level) RoomCount() int {
	return l.rooms.Len()
}

// Contains reports whether c is a room coordinate of this level
func (l *Level) Contains(c world.Coord) bool {
	return l.rooms.IsValidPosition(c.X, c.Y)
}

// RoomAt returns the room at c, or nil if c is outside the level
func (l *Level) RoomAt(c world.Coord) *room.Room {
	r, _ := l.rooms.Get(c.X, c.Y)
	return r
}

// Room returns the room with the given index, or nil if out of range
func (l *Level) Room(index int) *room.Room {
	if index < 0 || index >= l.rooms.Len() {
		return nil
	}
	c := l.rooms.CoordOf(index)
	return l.rooms.At(c.X, c.Y)
}

// Index returns the room index of c. Panics if c is outside the level.
func (l *Level) Index(c world.Coord) int {
	return l.rooms.Index(c.X, c.Y)
}

// CoordOf returns the coordinate of a room index
func (l *Level) CoordOf(index int) (world.Coord, error) {
	if index < 0 || index >= l.rooms.Len() {
		return world.Coord{}, fmt.Errorf("room index %d outside level of %d rooms", index, l.rooms.Len())
	}
	return l.rooms.CoordOf(index), nil
}

// Neighbor returns the room adjacent to c in dir, or nil at the level edge
func (l *Level) Neighbor(c world.Coord, dir world.Direction) *room.Room {
	n, ok := l.rooms.Neighbor(c, dir)
	if !ok {
		return nil
	}
	return l.rooms.At(n.X, n.Y)
}

// Adjacent returns the four neighbours of c indexed Left, Up, Right, Down;
// missing neighbours are nil
func (l *Level) Adjacent(c world.Coord) [world.DirectionCount]*room.Room {
	var adj [world.DirectionCount]*room.Room
	for _, dir := range world.AllDirections() {
		adj[dir] = l.Neighbor(c, dir)
	}
	return adj
}

// DoorsFor returns which doors of the room at c lead to another room
func (l *Level) DoorsFor(c world.Coord) maze.Doors {
	var doors maze.Doors
	for _, dir := range world.AllDirections() {
		_, ok := l.rooms.Neighbor(c, dir)
		doors[dir] = ok
	}
	return doors
}

// ForEachRoom visits rooms column by column (x-major), the generation order
func (l *Level) ForEachRoom(fn func(c world.Coord, r *room.Room)) {
	for x := 0; x < l.rooms.Width(); x++ {
		for y := 0; y < l.rooms.Height(); y++ {
			fn(world.Coord{X: x, Y: y}, l.rooms.At(x, y))
		}
	}
}
