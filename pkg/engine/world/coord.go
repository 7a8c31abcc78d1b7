package world

import "fmt"

// Coord is an integer position, used both for grid cells and pixel positions
type Coord struct {
	X int
	Y int
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Scale multiplies both components by n
func (c Coord) Scale(n int) Coord {
	return Coord{X: c.X * n, Y: c.Y * n}
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}
