package grid

import (
	"image"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside a Space.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Space is a rectangular block of integer coordinates starting at (0,0)
// addressed row-major, top-left first.
type Space struct {
	Width  int
	Height int
}

// Vertices returns the vertex space of a grid of width x height cells.
func Vertices(width, height int) Space {
	return Space{Width: width + 1, Height: height + 1}
}

// Cells returns the cell space of a grid of width x height cells.
func Cells(width, height int) Space {
	return Space{Width: width, Height: height}
}

// Len is the number of coordinates in the space
func (s Space) Len() int {
	return s.Width * s.Height
}

// Contains returns if p sits inside the space
func (s Space) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// OnEdge returns if p is on the outer ring of the space.
func (s Space) OnEdge(p image.Point) bool {
	return p.X == 0 || p.X == s.Width-1 || p.Y == 0 || p.Y == s.Height-1
}

// Index returns the linear index of p, y * width + x.
func (s Space) Index(p image.Point) (int, error) {
	if !s.Contains(p) {
		return -1, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d", p.X, p.Y, s.Width, s.Height)
	}
	return p.Y*s.Width + p.X, nil
}

// Coord is the inverse of Index.
func (s Space) Coord(i int) (image.Point, error) {
	if i < 0 || i >= s.Len() {
		return image.Point{}, errors.Wrapf(ErrOutOfBounds, "index %d in %dx%d", i, s.Width, s.Height)
	}
	return image.Pt(i%s.Width, i/s.Width), nil
}
