// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Grid is a fixed-size 2D array of values addressed by (x, y).
// Storage is a flat slice indexed by x + y*width; all neighbour access goes
// through bounds-checked helpers.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, filled with the zero value
func NewGrid[T any](width, height int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(width, height)
	return g
}

// NewFilledGrid creates a new grid with every cell set to fill
func NewFilledGrid[T any](width, height int, fill T) *Grid[T] {
	g := NewGrid[T](width, height)
	g.Fill(fill)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid[T]) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]T, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the number of cells in the grid
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid[T]) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the interior (not on the perimeter)
func (g *Grid[T]) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Index converts a position into its flat index. Panics if out of bounds.
func (g *Grid[T]) Index(x, y int) int {
	if !g.IsValidPosition(x, y) {
		panic(fmt.Sprintf("grid position (%d,%d) out of bounds %dx%d", x, y, g.width, g.height))
	}
	return x + y*g.width
}

// CoordOf converts a flat index back into a position
func (g *Grid[T]) CoordOf(index int) Coord {
	return Coord{X: index % g.width, Y: index / g.width}
}

// At returns the value at the given position. Panics if out of bounds.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.Index(x, y)]
}

// Get returns the value at the given position, or false if out of bounds
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.IsValidPosition(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[x+y*g.width], true
}

// Ptr returns a pointer to the value at the given position, or nil if out of bounds
func (g *Grid[T]) Ptr(x, y int) *T {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.cells[x+y*g.width]
}

// Set stores a value at the given position. Panics if out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.Index(x, y)] = v
}

// Fill sets every cell to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Neighbor returns the position adjacent to c in the given direction, or false
// if it falls outside the grid
func (g *Grid[T]) Neighbor(c Coord, dir Direction) (Coord, bool) {
	if !dir.IsValid() {
		return c, false
	}
	n := c.Step(dir)
	return n, g.IsValidPosition(n.X, n.Y)
}

// ForEach iterates over all cells row by row, calling fn for each
func (g *Grid[T]) ForEach(fn func(x, y int, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[x+y*g.width])
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
