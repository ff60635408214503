package grid

import "fmt"

// Direction is one of the four cardinal headings.
type Direction uint8

// The declaration order is also the enumeration order of Directions, which
// every search uses for neighbour expansion.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var deltas = [4]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Directions returns all four directions in a fixed order.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// Delta returns the unit offset of a single step in d.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Step returns the point one step from p in direction d.
func (d Direction) Step(p Point) Point {
	return p.Add(deltas[d])
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// TurnLeft rotates d a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String renders d as one of ^ v < >.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection decodes one of ^ v < >.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}
