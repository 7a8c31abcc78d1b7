package room

import (
	"fmt"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/maze"
)

// Populated describes a successfully generated room
type Populated struct {
	Maze     maze.Result
	Start    world.Coord // player start tile, valid when HasStart
	HasStart bool
}

// Generator carves and materializes rooms. It reuses one cell grid between
// rooms, so it must not be shared across goroutines.
type Generator struct {
	carver       *maze.Carver
	materializer *Materializer
	grid         *maze.CellGrid
}

// NewGenerator creates a generator for Width×Height rooms drawing all
// randomness from rng
func NewGenerator(rng maze.RandomSource) *Generator {
	return &Generator{
		carver:       maze.NewCarver(rng),
		materializer: NewMaterializer(rng),
		grid:         maze.NewCellGrid(Width, Height),
	}
}

// SetWalkLimit caps the carver's walk stack. Zero restores the default.
func (g *Generator) SetWalkLimit(limit int) {
	g.carver.WalkLimit = limit
}

// Populate clears r and fills it with a freshly carved layout for the given
// doors. On error r is left cleared and must be populated again before use.
func (g *Generator) Populate(r *Room, doors maze.Doors, playerStart bool) (Populated, error) {
	r.Clear()

	res, err := g.carver.Carve(g.grid, doors)
	if err != nil {
		r.Clear()
		return Populated{Maze: res}, fmt.Errorf("room %v: %w", r.Coord, err)
	}

	start, ok, err := g.materializer.Materialize(r, g.grid, doors, playerStart)
	if err != nil {
		r.Clear()
		return Populated{Maze: res}, err
	}

	return Populated{Maze: res, Start: start, HasStart: ok}, nil
}

// Grid returns the cell grid of the last carve, for debugging dumps
func (g *Generator) Grid() *maze.CellGrid {
	return g.grid
}
