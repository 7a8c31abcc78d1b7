package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/stack"

	"roomcrawl/pkg/engine/world"
)

var (
	// ErrInvalidDirection is returned when a walk picks a direction that is not a cardinal.
	ErrInvalidDirection = errors.New("maze: invalid chosen direction")
	// ErrInvalidCell is returned when a walk reads a cell value outside the Cell enum.
	ErrInvalidCell = errors.New("maze: invalid cell value")
	// ErrDisconnected is returned when an active door path could not be linked into the maze.
	ErrDisconnected = errors.New("maze: door paths not connected")
	// ErrStranded is wrapped by ErrDisconnected when a walk backtracked to its stub with nowhere left to go.
	ErrStranded = errors.New("maze: walk stranded")
	// ErrWalkLimit is wrapped by ErrDisconnected when a walk hit the step limit.
	ErrWalkLimit = errors.New("maze: walk limit reached")
)

// WalkOutcome describes how a single walk ended
type WalkOutcome int

const (
	// WalkLinked means the walk touched another component and merged with it.
	WalkLinked WalkOutcome = iota
	// WalkSatisfied means the path was already connected to every other active path.
	WalkSatisfied
	// WalkStranded means the walk backtracked past its stub.
	WalkStranded
	// WalkLimitReached means the walk stack hit the step limit.
	WalkLimitReached
)

func (o WalkOutcome) String() string {
	switch o {
	case WalkLinked:
		return "linked"
	case WalkSatisfied:
		return "satisfied"
	case WalkStranded:
		return "stranded"
	case WalkLimitReached:
		return "limit"
	default:
		return "unknown"
	}
}

// Walk records one walk of the carver
type Walk struct {
	Path     int
	Outcome  WalkOutcome
	Steps    int // cells pushed onto the walk stack
	LinkedTo int // path index touched on link, -1 otherwise
}

// Result describes a carve
type Result struct {
	First           int  // first path index in rotation order
	Reversed        bool // whether the rotation was reversed
	InteriorBorders int  // extra border stamps attempted
	Walks           []Walk
	Connections     ConnectionTable
}

// Order returns the path indices in the order they were walked
func (r Result) Order() []int {
	order := make([]int, len(r.Walks))
	for i, w := range r.Walks {
		order[i] = w.Path
	}
	return order
}

// walkStep is one entry of the walk stack
type walkStep struct {
	pos     world.Coord
	arrived world.Direction
}

// Carver grows randomized depth-first walks from each active door stub until
// every active path is linked into a single network.
type Carver struct {
	rng RandomSource

	// WalkLimit caps the walk stack length. Zero means width*height.
	WalkLimit int
}

// NewCarver creates a carver drawing randomness from rng
func NewCarver(rng RandomSource) *Carver {
	return &Carver{rng: rng}
}

// Carve resets grid and carves a maze connecting the active doors.
// On error the grid holds the partial result and must not be materialized.
func (c *Carver) Carve(grid *CellGrid, doors Doors) (Result, error) {
	var res Result

	// 1. initialization
	grid.Reset()
	grid.StampPerimeter()
	res.InteriorBorders = grid.StampInteriorBorders(c.rng)

	stubs := Stubs(grid.Width(), grid.Height())
	res.First = c.rng.Intn(PathCount)
	for i := 0; i < PathCount; i++ {
		p := (res.First + i) % PathCount
		if !doors[p] {
			continue
		}
		grid.Set(stubs[p].Pos.X, stubs[p].Pos.Y, PathCell(p))
	}

	res.Reversed = c.rng.Intn(2) == 1
	table := NewConnectionTable()

	// 2. one walk per active path, in rotated order
	for i := 0; i < PathCount; i++ {
		p := (res.First + i) % PathCount
		if res.Reversed {
			p = PathCount - 1 - p
		}
		if !doors[p] {
			continue
		}

		if table.AllConnected(doors) {
			res.Walks = append(res.Walks, Walk{Path: p, Outcome: WalkSatisfied, LinkedTo: -1})
			continue
		}

		w, err := c.walk(grid, stubs[p], &table)
		res.Walks = append(res.Walks, w)
		if err != nil {
			res.Connections = table
			return res, fmt.Errorf("path %d: %w", p, err)
		}
	}

	res.Connections = table

	// 3. every active path must now be in one network
	if !table.AllConnected(doors) {
		return res, disconnectedError(res)
	}
	return res, nil
}

// walk runs a single depth-first walk from stub for path p
func (c *Carver) walk(grid *CellGrid, stub DoorStub, table *ConnectionTable) (Walk, error) {
	p := stub.Path
	limit := c.WalkLimit
	if limit <= 0 {
		limit = grid.Len()
	}

	w := Walk{Path: p, LinkedTo: -1}
	steps := stack.New[walkStep]()
	steps.Push(walkStep{pos: stub.Pos, arrived: world.NoDirection})

	var candidates [world.DirectionCount]world.Direction

	for steps.Size() > 0 {
		cur := steps.Peek()
		// resolved for good; re-marking on backtrack is a no-op
		grid.Set(cur.pos.X, cur.pos.Y, PathCell(p))

		n := 0
		for _, dir := range world.AllDirections() {
			if dir == cur.arrived.Opposite() {
				continue
			}
			next, ok := grid.Neighbor(cur.pos, dir)
			if !ok {
				continue
			}

			v := grid.At(next.X, next.Y)
			switch {
			case v == CellClosed:
				candidates[n] = dir
				n++
			case v == CellBorder:
			case v.IsPath() && table.SameNetwork(v.Path(), p):
				// loop: own territory, treated like a wall
			case v.IsPath():
				table.Link(p, v.Path())
				w.Outcome = WalkLinked
				w.LinkedTo = v.Path()
				return w, nil
			default:
				return w, fmt.Errorf("%w: %v at %v", ErrInvalidCell, v, next)
			}
		}

		if n == 0 {
			// dead end, backtrack one
			steps.Pop()
			continue
		}

		// only checked once the stop conditions above have been ruled out
		if steps.Size() >= limit {
			w.Outcome = WalkLimitReached
			return w, nil
		}

		chosen := candidates[0]
		if n > 1 {
			chosen = candidates[c.rng.Intn(n)]
		}

		next, err := advance(cur.pos, chosen)
		if err != nil {
			return w, err
		}
		steps.Push(walkStep{pos: next, arrived: chosen})
		w.Steps++
	}

	w.Outcome = WalkStranded
	return w, nil
}

// advance moves pos one cell in dir
func advance(pos world.Coord, dir world.Direction) (world.Coord, error) {
	switch dir {
	case world.Left, world.Up, world.Right, world.Down:
		return pos.Step(dir), nil
	default:
		return pos, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
}

// disconnectedError names the first walk that failed to link
func disconnectedError(res Result) error {
	for _, w := range res.Walks {
		switch w.Outcome {
		case WalkStranded:
			return fmt.Errorf("%w: path %d: %w", ErrDisconnected, w.Path, ErrStranded)
		case WalkLimitReached:
			return fmt.Errorf("%w: path %d: %w", ErrDisconnected, w.Path, ErrWalkLimit)
		}
	}
	return ErrDisconnected
}
