package direction

import (
	"image"
)

// Direction is one of the four cardinal directions in grid space
// (origin top-left, y grows downward).
//
// The numeric order Up, Left, Down, Right is the rotation order; turning
// left is +1 and turning right is -1.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

var (
	leftOf  = [4]Direction{Left, Down, Right, Up}
	rightOf = [4]Direction{Right, Up, Left, Down}
	reverse = [4]Direction{Down, Right, Up, Left}

	units = [4]image.Point{
		{X: 0, Y: -1},
		{X: -1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 0},
	}

	names = [4]string{"up", "left", "down", "right"}
)

// All returns the four directions in rotation order.
func All() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// Valid returns if d is one of the four directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// LeftOf is d turned a quarter to the left
func (d Direction) LeftOf() Direction {
	return leftOf[d]
}

// RightOf is d turned a quarter to the right
func (d Direction) RightOf() Direction {
	return rightOf[d]
}

// Reverse is d turned around
func (d Direction) Reverse() Direction {
	return reverse[d]
}

// Unit is the one step displacement of d
func (d Direction) Unit() image.Point {
	return units[d]
}

// Step returns p moved n steps along d.
func (d Direction) Step(p image.Point, n int) image.Point {
	return p.Add(units[d].Mul(n))
}

// String returns the name of d
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return names[d]
}
