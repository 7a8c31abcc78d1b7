package room

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"roomcrawl/pkg/engine/world"
)

// Room geometry
const (
	Width  = 16
	Height = 16

	// TileSizePx is the edge of one tile in pixels
	TileSizePx = 40
	// TileOffsetPx centers sprites on a tile
	TileOffsetPx = TileSizePx / 2

	// MaxLocalEntities is the capacity of a room's local entity list
	MaxLocalEntities = 4
)

// ErrTooManyEntities is returned when a room's local entity list is full
var ErrTooManyEntities = errors.New("room: local entity list full")

// Entity is a drawable object positioned in room pixels
type Entity struct {
	PositionPx world.Coord
	Bitmap     Bitmap
}

// Room is one Width×Height tile grid of the level
type Room struct {
	Coord    world.Coord // position in the level
	tiles    *world.Grid[Tile]
	entities []Entity
}

// New creates a room at the given level coordinate filled with DefaultTile
func New(coord world.Coord) *Room {
	return &Room{
		Coord:    coord,
		tiles:    world.NewFilledGrid(Width, Height, DefaultTile),
		entities: make([]Entity, 0, MaxLocalEntities),
	}
}

// Width returns the number of tile columns
func (r *Room) Width() int {
	return r.tiles.Width()
}

// Height returns the number of tile rows
func (r *Room) Height() int {
	return r.tiles.Height()
}

// Tile returns the tile at x, y, or false if out of bounds
func (r *Room) Tile(x, y int) (Tile, bool) {
	return r.tiles.Get(x, y)
}

// SetTile stores a tile. Panics if out of bounds.
func (r *Room) SetTile(x, y int, t Tile) {
	r.tiles.Set(x, y, t)
}

// TileFlags returns the flags of the tile at x, y. Out of bounds positions
// have no flags, so they are neither walkable nor doors.
func (r *Room) TileFlags(x, y int) Flags {
	t, ok := r.tiles.Get(x, y)
	if !ok {
		return FlagNone
	}
	return t.Flags
}

// ForEachTile iterates over all tiles row by row
func (r *Room) ForEachTile(fn func(x, y int, t Tile)) {
	r.tiles.ForEach(fn)
}

// Clear resets every tile to DefaultTile and drops local entities
func (r *Room) Clear() {
	r.tiles.Fill(DefaultTile)
	r.entities = r.entities[:0]
}

// AddEntity appends a local entity
func (r *Room) AddEntity(e Entity) error {
	if len(r.entities) >= MaxLocalEntities {
		return fmt.Errorf("room %v: %w", r.Coord, ErrTooManyEntities)
	}
	r.entities = append(r.entities, e)
	return nil
}

// Entities returns the local entities in insertion order
func (r *Room) Entities() []Entity {
	return r.entities
}

// Reachable returns every walkable tile 4-connected to from.
// The result is empty if from is not walkable.
func (r *Room) Reachable(from world.Coord) mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	if !r.TileFlags(from.X, from.Y).Has(FlagWalkable) {
		return visited
	}

	q := queue.New[world.Coord]()
	q.Enqueue(from)
	visited.Put(from)
	for !q.Empty() {
		cur := q.Dequeue()
		for _, dir := range world.AllDirections() {
			n, ok := r.tiles.Neighbor(cur, dir)
			if !ok || visited.Has(n) || !r.TileFlags(n.X, n.Y).Has(FlagWalkable) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return visited
}

// WalkableCount returns the number of walkable tiles
func (r *Room) WalkableCount() int {
	n := 0
	r.tiles.ForEach(func(_, _ int, t Tile) {
		if t.Walkable() {
			n++
		}
	})
	return n
}

// DoorTiles returns the four edge-center door positions indexed by path
// (Left, Up, Right, Down), whether or not the doors are active.
func DoorTiles(width, height int) [4]world.Coord {
	return [4]world.Coord{
		{X: 0, Y: height / 2},
		{X: width / 2, Y: 0},
		{X: width - 1, Y: height / 2},
		{X: width / 2, Y: height - 1},
	}
}
