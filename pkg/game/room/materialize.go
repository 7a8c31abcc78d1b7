package room

import (
	"errors"
	"fmt"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/maze"
)

// ErrUnresolvedCell is returned when a carved grid holds a value that is
// neither a border, a closed cell nor a path.
var ErrUnresolvedCell = errors.New("room: unresolved cell in carved grid")

// Player start selection: after the first walkable cell, each later one
// replaces the candidate when rng.Intn(startRollRange) >= startRollKeep.
const (
	startRollRange = 100
	startRollKeep  = 80
)

// Wall family thresholds by open-neighbour count
const (
	tableOpenSides = 4
	crateOpenSides = 3
)

// Materializer converts a carved cell grid into room tiles
type Materializer struct {
	rng maze.RandomSource
}

// NewMaterializer creates a materializer drawing start rolls from rng
func NewMaterializer(rng maze.RandomSource) *Materializer {
	return &Materializer{rng: rng}
}

// Materialize writes the tiles for grid into r and overrides the active door
// tiles. When playerStart is set it also picks a walkable start tile and
// returns it with ok=true.
func (m *Materializer) Materialize(r *Room, grid *maze.CellGrid, doors maze.Doors, playerStart bool) (start world.Coord, ok bool, err error) {
	w, h := grid.Width(), grid.Height()
	if w != r.Width() || h != r.Height() {
		return start, false, fmt.Errorf("room %v: grid %dx%d does not match room %dx%d", r.Coord, w, h, r.Width(), r.Height())
	}

	// x-major scan; the start roll order depends on it
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := grid.At(x, y)
			switch {
			case c.IsPath():
				r.SetTile(x, y, Tile{Bitmap: FloorBitmap(c.Path()), Flags: FlagWalkable})
				if playerStart && (!ok || m.rng.Intn(startRollRange) >= startRollKeep) {
					start = world.Coord{X: x, Y: y}
					ok = true
				}
			case c == maze.CellClosed || c == maze.CellBorder:
				r.SetTile(x, y, Tile{Bitmap: wallBitmap(openSides(grid, x, y)), Flags: FlagNone})
			default:
				return start, false, fmt.Errorf("room %v at [%d,%d]: %w (%v)", r.Coord, x, y, ErrUnresolvedCell, c)
			}
		}
	}

	for p, pos := range DoorTiles(w, h) {
		if !doors[p] {
			continue
		}
		r.SetTile(pos.X, pos.Y, doorTile(maze.PathDirection(p)))
	}

	return start, ok, nil
}

// openSides counts the neighbours of (x,y) that read as open space. The cells
// one step inside each edge count as open on that side; other neighbours must
// be path cells, and neighbours outside the grid never count.
func openSides(grid *maze.CellGrid, x, y int) int {
	w, h := grid.Width(), grid.Height()
	n := 0
	if x == 1 || isPathAt(grid, x-1, y) {
		n++
	}
	if x == w-2 || isPathAt(grid, x+1, y) {
		n++
	}
	if y == 1 || isPathAt(grid, x, y-1) {
		n++
	}
	if y == h-2 || isPathAt(grid, x, y+1) {
		n++
	}
	return n
}

func isPathAt(grid *maze.CellGrid, x, y int) bool {
	c, ok := grid.Get(x, y)
	return ok && c.IsPath()
}

func wallBitmap(open int) Bitmap {
	switch {
	case open >= tableOpenSides:
		return BitmapTable
	case open >= crateOpenSides:
		return BitmapCrate
	default:
		return BitmapWall
	}
}

func doorTile(dir world.Direction) Tile {
	if dir == world.Left || dir == world.Right {
		return Tile{Bitmap: BitmapDoorH, Flags: FlagWalkable | FlagDoorHorizontal}
	}
	return Tile{Bitmap: BitmapDoorV, Flags: FlagWalkable | FlagDoorVertical}
}
