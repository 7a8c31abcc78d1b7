// Package maze carves connected walkable layouts into a room-sized cell grid.
//
// Generation runs on a transient CellGrid: the perimeter and a few random interior
// cells are stamped Border, every active door stub is stamped with its path index,
// and a randomized depth-first walk is grown from each stub until it links into
// another path's territory.
package maze

import (
	"fmt"

	"roomcrawl/pkg/engine/world"
)

// Cell is the generation-time state of one grid position
type Cell int8

// Cell values. Path cells carry the index of the walk that resolved them.
const (
	CellBorder Cell = -2
	CellClosed Cell = -1
	CellPath0  Cell = 0
	CellPath1  Cell = 1
	CellPath2  Cell = 2
	CellPath3  Cell = 3
)

// PathCount is the number of door paths a room can have
const PathCount = 4

// PathCell returns the cell value for path index p
func PathCell(p int) Cell {
	return Cell(p)
}

// IsPath returns true if the cell was resolved by a walk
func (c Cell) IsPath() bool {
	return c >= CellPath0 && c <= CellPath3
}

// Path returns the path index of a resolved cell, or -1
func (c Cell) Path() int {
	if !c.IsPath() {
		return -1
	}
	return int(c)
}

func (c Cell) String() string {
	switch {
	case c == CellBorder:
		return "Border"
	case c == CellClosed:
		return "Closed"
	case c.IsPath():
		return fmt.Sprintf("Path%d", int(c))
	default:
		return fmt.Sprintf("Cell(%d)", int8(c))
	}
}

// RandomSource is the subset of *rand.Rand used by generation
type RandomSource interface {
	Intn(n int) int
}

// CellGrid is the per-room grid of cells used during generation
type CellGrid struct {
	*world.Grid[Cell]
}

// NewCellGrid creates a grid with every cell Closed
func NewCellGrid(width, height int) *CellGrid {
	return &CellGrid{Grid: world.NewFilledGrid(width, height, CellClosed)}
}

// Reset sets every cell back to Closed
func (g *CellGrid) Reset() {
	g.Fill(CellClosed)
}

// StampPerimeter sets the four boundary edges to Border
func (g *CellGrid) StampPerimeter() {
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		g.Set(x, 0, CellBorder)
		g.Set(x, h-1, CellBorder)
	}
	for y := 0; y < h; y++ {
		g.Set(0, y, CellBorder)
		g.Set(w-1, y, CellBorder)
	}
}

// StampInteriorBorders stamps up to (width+height)/8 - 1 extra Border cells at
// random interior positions to break up open space. Stamps may land on the same
// cell. A stamp on a door stub is dropped so the stub always opens onto its door.
// Returns the number of stamps attempted.
func (g *CellGrid) StampInteriorBorders(rng RandomSource) int {
	w, h := g.Width(), g.Height()
	limit := (w + h) / 8
	if limit <= 0 || w < 3 || h < 3 {
		return 0
	}

	stubs := Stubs(w, h)
	count := rng.Intn(limit)
stamps:
	for i := 0; i < count; i++ {
		pos := world.Coord{X: 1 + rng.Intn(w-2), Y: 1 + rng.Intn(h-2)}
		for _, s := range stubs {
			if s.Pos == pos {
				continue stamps
			}
		}
		g.Set(pos.X, pos.Y, CellBorder)
	}
	return count
}

// CountPaths returns how many cells are resolved to each path index
func (g *CellGrid) CountPaths() [PathCount]int {
	var counts [PathCount]int
	g.ForEach(func(x, y int, c Cell) {
		if c.IsPath() {
			counts[c.Path()]++
		}
	})
	return counts
}

// String renders the grid with one character per cell, for debugging and tests
func (g *CellGrid) String() string {
	buf := make([]byte, 0, (g.Width()+1)*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch c := g.At(x, y); {
			case c == CellBorder:
				buf = append(buf, '#')
			case c == CellClosed:
				buf = append(buf, '+')
			case c.IsPath():
				buf = append(buf, byte('0'+c.Path()))
			default:
				buf = append(buf, '?')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
