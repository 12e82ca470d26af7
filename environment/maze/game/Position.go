package game

import "fmt"

// Position is a (row, column) location on a map. Row 0 is the top row
// of the map and column 0 its leftmost column.
type Position struct {
	Row, Col int
}

// Add returns the Position one cell away from p in direction d
func (p Position) Add(d Direction) Position {
	switch d {
	case North:
		return Position{p.Row - 1, p.Col}
	case South:
		return Position{p.Row + 1, p.Col}
	case West:
		return Position{p.Row, p.Col - 1}
	case East:
		return Position{p.Row, p.Col + 1}
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is a cardinal direction of movement. The integer values of
// the moving directions are the discrete actions that select them.
type Direction int

const (
	North Direction = iota
	South
	West
	East
	Stay
)

// Actions is the number of legal movement actions
const Actions int = 4

// DirectionFor returns the Direction selected by a discrete action.
// Actions outside [0, Actions) select no direction, in which case ok
// is false and the returned Direction is Stay.
func DirectionFor(action int) (d Direction, ok bool) {
	if action < 0 || action >= Actions {
		return Stay, false
	}
	return Direction(action), true
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Stay"
	}
}

// Heading is the horizontal direction a Patroller travels in
type Heading int

const (
	HeadingEast Heading = iota
	HeadingWest
)

// InitialHeading returns the starting Heading of a patroller drawn with
// the given map character: even character codes start east, odd
// character codes start west.
func InitialHeading(char byte) Heading {
	if char%2 == 0 {
		return HeadingEast
	}
	return HeadingWest
}

// NextHeading returns the heading a patroller takes given the walls on
// either side of it. A wall to the east forces a westward heading, then
// a wall to the west forces an eastward heading, so that a patroller
// walled in on both sides heads east.
func NextHeading(h Heading, wallWest, wallEast bool) Heading {
	if wallEast {
		h = HeadingWest
	}
	if wallWest {
		h = HeadingEast
	}
	return h
}

// Direction returns the movement Direction of the Heading
func (h Heading) Direction() Direction {
	if h == HeadingWest {
		return West
	}
	return East
}

func (h Heading) String() string {
	if h == HeadingWest {
		return "West"
	}
	return "East"
}
