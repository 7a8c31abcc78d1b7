package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
)

// DoorsConnected returns true if every active door tile of r is walkable and
// all of them are mutually reachable over walkable tiles. Zero or one door is
// trivially connected.
func DoorsConnected(r *room.Room, doors maze.Doors) bool {
	tiles := room.DoorTiles(r.Width(), r.Height())

	var reached mapset.Set[world.Coord]
	first := true
	for p, pos := range tiles {
		if !doors[p] {
			continue
		}
		if !r.TileFlags(pos.X, pos.Y).Has(room.FlagWalkable) {
			return false
		}
		if first {
			reached = r.Reachable(pos)
			first = false
			continue
		}
		if !reached.Has(pos) {
			return false
		}
	}
	return true
}

// ReachableRooms walks the level from the room at start, crossing from a room
// to its neighbour when both facing door tiles are walkable and the exit door
// is reachable from the door the room was entered by.
func ReachableRooms(lvl *level.Level, start world.Coord) mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	r := lvl.RoomAt(start)
	if r == nil {
		return visited
	}

	type visit struct {
		at   world.Coord
		from world.Coord // door tile the room was entered by
		seed bool        // start room, entered from its own player tiles
	}

	q := queue.New[visit]()
	q.Enqueue(visit{at: start, seed: true})
	visited.Put(start)

	for !q.Empty() {
		cur := q.Dequeue()
		r := lvl.RoomAt(cur.at)
		doorTiles := room.DoorTiles(r.Width(), r.Height())

		var inside mapset.Set[world.Coord]
		if !cur.seed {
			inside = r.Reachable(cur.from)
		}

		for _, dir := range world.AllDirections() {
			n := lvl.Neighbor(cur.at, dir)
			if n == nil || visited.Has(n.Coord) {
				continue
			}

			exit := doorTiles[dir]
			if !r.TileFlags(exit.X, exit.Y).Has(room.FlagWalkable) {
				continue
			}
			if !cur.seed && !inside.Has(exit) {
				continue
			}

			entry := doorTiles[dir.Opposite()]
			if !n.TileFlags(entry.X, entry.Y).Has(room.FlagWalkable) {
				continue
			}

			visited.Put(n.Coord)
			q.Enqueue(visit{at: n.Coord, from: entry})
		}
	}
	return visited
}
