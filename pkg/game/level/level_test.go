package level

import (
	"testing"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
)

func TestDoorsFor(t *testing.T) {
	l := New()
	tests := []struct {
		name string
		at   world.Coord
		want maze.Doors
	}{
		{"top-left corner", world.Coord{X: 0, Y: 0}, maze.Doors{false, false, true, true}},
		{"bottom-right corner", world.Coord{X: Width - 1, Y: Height - 1}, maze.Doors{true, true, false, false}},
		{"left edge", world.Coord{X: 0, Y: 7}, maze.Doors{false, true, true, true}},
		{"top edge", world.Coord{X: 4, Y: 0}, maze.Doors{true, false, true, true}},
		{"interior", world.Coord{X: 5, Y: 9}, maze.Doors{true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.DoorsFor(tt.at); got != tt.want {
				t.Errorf("DoorsFor(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestRoomLookups(t *testing.T) {
	l := New()
	if l.RoomCount() != RoomCount {
		t.Fatalf("RoomCount() = %d, want %d", l.RoomCount(), RoomCount)
	}

	c := world.Coord{X: 3, Y: 2}
	idx := l.Index(c)
	if idx != 3+2*Width {
		t.Errorf("Index(%v) = %d, want %d", c, idx, 3+2*Width)
	}
	if l.Room(idx) != l.RoomAt(c) {
		t.Error("Room(index) and RoomAt(coord) disagree")
	}
	if got := l.RoomAt(c).Coord; got != c {
		t.Errorf("room coord = %v, want %v", got, c)
	}
	back, err := l.CoordOf(idx)
	if err != nil || back != c {
		t.Errorf("CoordOf(%d) = %v, %v; want %v", idx, back, err, c)
	}

	if l.RoomAt(world.Coord{X: -1, Y: 0}) != nil || l.RoomAt(world.Coord{X: Width, Y: 0}) != nil {
		t.Error("RoomAt outside the level should be nil")
	}
	if l.Room(-1) != nil || l.Room(RoomCount) != nil {
		t.Error("Room with an out of range index should be nil")
	}
	if _, err := l.CoordOf(RoomCount); err == nil {
		t.Error("CoordOf out of range should fail")
	}
}

func TestAdjacent(t *testing.T) {
	l := New()
	adj := l.Adjacent(world.Coord{X: 0, Y: 0})
	if adj[world.Left] != nil || adj[world.Up] != nil {
		t.Error("corner room should have no left or up neighbour")
	}
	if adj[world.Right] != l.RoomAt(world.Coord{X: 1, Y: 0}) {
		t.Error("right neighbour mismatch")
	}
	if adj[world.Down] != l.RoomAt(world.Coord{X: 0, Y: 1}) {
		t.Error("down neighbour mismatch")
	}
}

func TestForEachRoom_XMajor(t *testing.T) {
	l := New()
	var order []world.Coord
	l.ForEachRoom(func(c world.Coord, _ *room.Room) {
		order = append(order, c)
	})
	if len(order) != RoomCount {
		t.Fatalf("visited %d rooms, want %d", len(order), RoomCount)
	}
	if order[1] != (world.Coord{X: 0, Y: 1}) {
		t.Errorf("second room visited = %v, want [0,1]", order[1])
	}
}
