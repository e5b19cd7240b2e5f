package citygrid

import (
	"image"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

const (
	// DefaultCellSize is the width & height of a grid cell in world tiles
	DefaultCellSize = 16

	// DefaultMaxOffset is how far (in tiles) the grid may be shifted off
	// the world centre
	DefaultMaxOffset = 5
)

// WorldSettings places a grid over a world of Width x Height tiles,
// leaving roughly one cell of margin around it.
// It satisfies the Grid interface.
type WorldSettings struct {
	Width  int
	Height int

	CellSize   int
	GridWidth  int
	GridHeight int

	// top left of the grid in world tiles
	Offset image.Point
}

// NewWorldSettings works out the grid for a world of width x height tiles.
// The grid is centred and then jittered by up to maxOffset tiles on each
// axis using rng.
func NewWorldSettings(width, height, cellSize, maxOffset int, rng *rand.Rand) (*WorldSettings, error) {
	if cellSize < 1 {
		return nil, errors.Errorf("cell size must be positive, got %d", cellSize)
	}
	if maxOffset < 0 {
		maxOffset = 0
	}

	gw := (width - cellSize*2) / cellSize
	gh := (height - cellSize*2) / cellSize
	if gw < 2 || gh < 2 {
		return nil, errors.Wrapf(ErrGridTooSmall, "world %dx%d with cells of %d gives %dx%d", width, height, cellSize, gw, gh)
	}

	ox := (width - gw*cellSize) / 2
	oy := (height - gh*cellSize) / 2
	ox += rng.Intn(maxOffset*2+1) - maxOffset
	oy += rng.Intn(maxOffset*2+1) - maxOffset

	// the last vertex must still land inside the world
	ox = essentials.MaxInt(0, essentials.MinInt(ox, width-1-gw*cellSize))
	oy = essentials.MaxInt(0, essentials.MinInt(oy, height-1-gh*cellSize))

	return &WorldSettings{
		Width:      width,
		Height:     height,
		CellSize:   cellSize,
		GridWidth:  gw,
		GridHeight: gh,
		Offset:     image.Pt(ox, oy),
	}, nil
}

// GridToWorld returns the world tile of grid vertex p
func (w *WorldSettings) GridToWorld(p image.Point) image.Point {
	return w.Offset.Add(p.Mul(w.CellSize))
}

// Size returns the grid dimensions
func (w *WorldSettings) Size() GridSize {
	return GridSize{Width: w.GridWidth, Height: w.GridHeight, CellSize: w.CellSize}
}

// CellBounds returns the world area covered by grid cell p.
func (w *WorldSettings) CellBounds(p image.Point) image.Rectangle {
	min := w.GridToWorld(p)
	return image.Rect(min.X, min.Y, min.X+w.CellSize, min.Y+w.CellSize)
}
