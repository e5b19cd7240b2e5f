package citygrid

import (
	"log"
)

// HeatSettings configures the heat field generated when New is not handed
// one. See internal/heat for the algorithm.
type HeatSettings struct {
	// Scale sets the resolution of the generated heat, which is computed
	// over 2^Scale+1 points square & then stretched over the world.
	Scale int

	// MinHeat is the heat at the world edges, MaxHeat the heat at the
	// world centre. Values may sit outside [0,1]; the result is clamped,
	// so pushing them out widens the cold & hot areas.
	MinHeat float64
	MaxHeat float64
}

// Config holds configuration for a given city.
type Config struct {
	// Width & Height of the world in tiles, required.
	// The grid needs at least 2x2 cells after a margin of a cell on
	// each side; so at least 4 * CellSize in each dimension.
	Width  int
	Height int

	// CellSize is the width & height of a grid cell (block) in tiles.
	// DefaultCellSize if not set.
	CellSize int

	// MaxOffset is how far (in tiles) the grid is randomly shifted from
	// the centre of the world. DefaultMaxOffset if not set, less than 0
	// for no shift.
	MaxOffset int

	// HeatFactor scales heat into the probability of avenues branching.
	// DefaultHeatFactor if not set.
	HeatFactor float64

	// Seed for rng (random number chosen if not set)
	Seed int64

	// Heat configures generating a heat field, only used if New isn't
	// given a HeatField. Defaults to DefaultHeatSettings.
	Heat *HeatSettings

	// StreetSpacing is the distance (in tiles) between parallel streets
	// when drawing the CityMap. Defaults to 4.
	StreetSpacing int

	// Logger receives progress messages, optional.
	Logger *log.Logger
}

// DefaultHeatSettings returns reasonable settings for a heat field; a hot
// centre cooling off well before the edges of the world.
func DefaultHeatSettings() *HeatSettings {
	return &HeatSettings{
		Scale:   7,
		MinHeat: -0.3,
		MaxHeat: 1.3,
	}
}
