package maze

import "roomcrawl/pkg/engine/world"

// Doors holds the activation flag of each door, indexed by path index
// (Left, Up, Right, Down).
type Doors [PathCount]bool

// Count returns the number of active doors
func (d Doors) Count() int {
	n := 0
	for _, active := range d {
		if active {
			n++
		}
	}
	return n
}

// DoorStub is the interior starting cell of a door's walk
type DoorStub struct {
	Path int
	Dir  world.Direction
	Pos  world.Coord
}

// PathDirection returns the door direction owning path index p
func PathDirection(p int) world.Direction {
	return world.Direction(p)
}

// Stubs returns the four door stubs of a width×height grid: the cells one step
// inside the middle of each edge.
func Stubs(width, height int) [PathCount]DoorStub {
	midX, midY := width/2, height/2
	return [PathCount]DoorStub{
		{Path: 0, Dir: world.Left, Pos: world.Coord{X: 1, Y: midY}},
		{Path: 1, Dir: world.Up, Pos: world.Coord{X: midX, Y: 1}},
		{Path: 2, Dir: world.Right, Pos: world.Coord{X: width - 2, Y: midY}},
		{Path: 3, Dir: world.Down, Pos: world.Coord{X: midX, Y: height - 2}},
	}
}
