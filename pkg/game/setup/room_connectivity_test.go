package setup

import (
	"testing"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
)

var floor = room.Tile{Bitmap: room.BitmapFloor00, Flags: room.FlagWalkable}

// TestDoorsConnected_BlockChokepoint verifies that cutting the only corridor
// between two doors disconnects them.
func TestDoorsConnected_BlockChokepoint(t *testing.T) {
	r := room.New(world.Coord{})
	doors := maze.Doors{true, false, true, false}
	tiles := room.DoorTiles(room.Width, room.Height)

	// a straight corridor between the left and right doors
	y := tiles[world.Left].Y
	for x := 0; x < room.Width; x++ {
		r.SetTile(x, y, floor)
	}
	if !DoorsConnected(r, doors) {
		t.Fatal("corridor should connect the doors")
	}

	r.SetTile(room.Width/2, y, room.DefaultTile)
	if DoorsConnected(r, doors) {
		t.Error("a cut corridor should not connect the doors")
	}
}

func TestDoorsConnected_ClosedDoorTile(t *testing.T) {
	r := room.New(world.Coord{})
	if !DoorsConnected(r, maze.Doors{}) {
		t.Error("no doors is trivially connected")
	}
	if DoorsConnected(r, maze.Doors{false, true, false, false}) {
		t.Error("a wall on the door tile should fail")
	}
}

func TestReachableRooms_ClosedDoor(t *testing.T) {
	lvl := level.New()
	// Nothing is walkable: only the start room is reached.
	if got := ReachableRooms(lvl, world.Coord{X: 3, Y: 3}).Size(); got != 1 {
		t.Errorf("ReachableRooms on a blank level = %d, want 1", got)
	}
	if got := ReachableRooms(lvl, world.Coord{X: -1, Y: 0}).Size(); got != 0 {
		t.Errorf("ReachableRooms outside the level = %d, want 0", got)
	}
}

func TestReachableRooms_ThroughRooms(t *testing.T) {
	lvl := level.New()
	tiles := room.DoorTiles(room.Width, room.Height)
	left, right := tiles[world.Left], tiles[world.Right]

	a := lvl.RoomAt(world.Coord{X: 3, Y: 3})
	b := lvl.RoomAt(world.Coord{X: 4, Y: 3})
	c := lvl.RoomAt(world.Coord{X: 5, Y: 3})
	a.SetTile(right.X, right.Y, floor)
	b.SetTile(left.X, left.Y, floor)
	b.SetTile(right.X, right.Y, floor)
	c.SetTile(left.X, left.Y, floor)

	// b's doors are open but nothing joins them inside the room
	reached := ReachableRooms(lvl, a.Coord)
	if reached.Size() != 2 || !reached.Has(b.Coord) {
		t.Fatalf("reached %d rooms, want the start room and its right neighbour", reached.Size())
	}

	for x := 0; x < room.Width; x++ {
		b.SetTile(x, left.Y, floor)
	}
	reached = ReachableRooms(lvl, a.Coord)
	if reached.Size() != 3 || !reached.Has(c.Coord) {
		t.Errorf("reached %d rooms after joining b's doors, want 3", reached.Size())
	}
}
