package citygrid

import (
	"image"
)

// HeatField tells citygrid how "hot" (dense, busy, desirable) the world is at
// a given location. Hotter places get more avenues.
type HeatField interface {
	// Heat at world tile x,y in [0,1]. Tiles outside the world should
	// return 0.
	Heat(x, y int) float64
}

// HeatFunc adapts a plain function to a HeatField.
type HeatFunc func(x, y int) float64

// Heat calls f(x, y)
func (f HeatFunc) Heat(x, y int) float64 {
	return f(x, y)
}

// Grid describes how the avenue grid sits over the world.
// The grid has Width x Height cells and so (Width+1) x (Height+1) vertices.
type Grid interface {
	// GridToWorld maps a grid vertex (or a cell's top left vertex) to
	// a world tile.
	GridToWorld(p image.Point) image.Point

	// Size returns the grid dimensions (in cells) & the size of a cell
	// in world tiles.
	Size() GridSize
}

// GridSize is the read-only sizing of a Grid.
type GridSize struct {
	Width    int
	Height   int
	CellSize int
}
