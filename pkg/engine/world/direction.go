package world

// Direction represents a cardinal direction
type Direction int

// Direction constants. The order is also the evaluation order used by
// generators when several neighbours are considered.
const (
	NoDirection Direction = iota - 1
	Left
	Up
	Right
	Down
)

// DirectionCount is the number of cardinal directions
const DirectionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Up, Right, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case NoDirection:
		return "None"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}
