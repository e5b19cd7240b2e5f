package citygrid

import (
	"image"

	"github.com/voidshard/citygrid/internal/grid"
)

// Streets holds the pattern of streets inside each block (grid cell).
//
// Cells are indexed row-major from the top left (see CellIndex). A cell
// has streets if Patterns has an entry for it, which requires avenues
// along at least two of its sides.
type Streets struct {
	Patterns map[int]StreetsPattern

	avenues *AvenueGrid
	cells   grid.Space
}

// NewStreets prepares street classification over the given avenues.
func NewStreets(avenues *AvenueGrid) *Streets {
	size := avenues.grid.Size()
	return &Streets{
		Patterns: map[int]StreetsPattern{},
		avenues:  avenues,
		cells:    grid.Cells(size.Width, size.Height),
	}
}

// CellIndex returns the key in Patterns of grid cell p
func (s *Streets) CellIndex(p image.Point) (int, error) {
	return s.cells.Index(p)
}

// Pattern returns the streets pattern of cell p, if any.
func (s *Streets) Pattern(p image.Point) (StreetsPattern, bool, error) {
	index, err := s.cells.Index(p)
	if err != nil {
		return 0, false, err
	}
	pattern, ok := s.Patterns[index]
	return pattern, ok, nil
}

// Generate classifies every cell. Generate may be called again, it
// reads the avenues only & always produces the same result for them.
func (s *Streets) Generate() error {
	s.Patterns = map[int]StreetsPattern{}

	for y := 0; y < s.cells.Height; y++ {
		for x := 0; x < s.cells.Width; x++ {
			p := image.Pt(x, y)

			sides, err := s.sides(p)
			if err != nil {
				return err
			}

			pattern, ok := classify(sides)
			if !ok {
				continue
			}

			index, err := s.cells.Index(p)
			if err != nil {
				return err
			}
			s.Patterns[index] = pattern
		}
	}

	return nil
}

// blockSides records which sides of a cell run along an avenue
type blockSides struct {
	up, right, bottom, left bool
}

// sides reads the avenues around cell p from its top left & bottom right
// corners; between them they see all four sides.
func (s *Streets) sides(p image.Point) (blockSides, error) {
	b := blockSides{}

	topLeft, ok, err := s.avenues.Intersection(p)
	if err != nil {
		return b, err
	}
	if ok {
		b.up = topLeft.Right
		b.left = topLeft.Down
	}

	bottomRight, ok, err := s.avenues.Intersection(p.Add(image.Pt(1, 1)))
	if err != nil {
		return b, err
	}
	if ok {
		b.right = bottomRight.Up
		b.bottom = bottomRight.Left
	}

	return b, nil
}

// classify picks the pattern for a cell with the given avenue sides.
// Order matters, first match wins.
func classify(b blockSides) (StreetsPattern, bool) {
	switch {
	case b.up && b.bottom:
		return Vertical, true
	case b.right && b.left:
		return Horizontal, true
	case b.up && b.right:
		return LTopRight, true
	case b.right && b.bottom:
		return LRightBottom, true
	case b.bottom && b.left:
		return LBottomLeft, true
	case b.left && b.up:
		return LLeftTop, true
	}
	return 0, false
}
