package heat

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

var (
	// ErrInvalidSize is returned for non positive map sizes or scales
	ErrInvalidSize = errors.New("invalid heat map size")
)

// Map is a heat value in [0,1] for every tile of a width x height world.
type Map struct {
	width  int
	height int
	values []float64
}

// Generate builds a heat map for a world of the given size.
//
// The heat is first computed with diamond-square over a square of
// 2^scale+1 points, where the borders start at minHeat and the middle at
// maxHeat. It's then clamped to [0,1] & stretched over the world picking
// the nearest square point for each tile.
func Generate(rng *rand.Rand, width, height, scale int, minHeat, maxHeat float64) (*Map, error) {
	if width <= 0 || height <= 0 || scale < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "world %dx%d scale %d", width, height, scale)
	}

	square := diamondSquare(rng, scale, minHeat, maxHeat)
	size := len(square)

	m := &Map{width: width, height: height, values: make([]float64, width*height)}
	for y := 0; y < height; y++ {
		ny := essentials.MinInt(y*size/height, size-1)
		for x := 0; x < width; x++ {
			nx := essentials.MinInt(x*size/width, size-1)
			m.values[y*width+x] = square[ny][nx]
		}
	}

	return m, nil
}

// FromValues wraps precomputed row-major heat values. Values are clamped.
func FromValues(width, height int, values []float64) (*Map, error) {
	if width <= 0 || height <= 0 || len(values) != width*height {
		return nil, errors.Wrapf(ErrInvalidSize, "%d values for %dx%d", len(values), width, height)
	}
	m := &Map{width: width, height: height, values: make([]float64, len(values))}
	for i, v := range values {
		m.values[i] = clamp(v, 0, 1)
	}
	return m, nil
}

// Heat returns the heat at world tile x,y. Tiles outside the world have no heat.
func (m *Map) Heat(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.values[y*m.width+x]
}

// Width of the world in tiles
func (m *Map) Width() int {
	return m.width
}

// Height of the world in tiles
func (m *Map) Height() int {
	return m.height
}

// diamondSquare returns a (2^scale+1) square grid of heat, [y][x].
func diamondSquare(rng *rand.Rand, scale int, minHeat, maxHeat float64) [][]float64 {
	size := int(math.Pow(2, float64(scale))) + 1

	sq := make([][]float64, size)
	for y := range sq {
		sq[y] = make([]float64, size)
		for x := range sq[y] {
			sq[y][x] = minHeat
		}
	}
	middle := (size - 1) / 2
	sq[middle][middle] = maxHeat

	for step := (size - 1) / 2; step > 1; step /= 2 {
		half := step / 2

		// diamond step: centres of each square
		for x := half; x < size; x += step {
			for y := half; y < size; y += step {
				sq[y][x] = interpolate(rng, []float64{
					sq[y-half][x-half],
					sq[y-half][x+half],
					sq[y+half][x+half],
					sq[y+half][x-half],
				})
			}
		}

		// square step: edge midpoints, anything off the grid counts as minHeat
		offset := 0
		for x := 0; x < size; x += half {
			if offset == 0 {
				offset = half
			} else {
				offset = 0
			}
			for y := offset; y < size; y += step {
				heats := []float64{minHeat, minHeat, minHeat, minHeat}
				if x >= half {
					heats[0] = sq[y][x-half]
				}
				if x+half < size {
					heats[1] = sq[y][x+half]
				}
				if y >= half {
					heats[2] = sq[y-half][x]
				}
				if y+half < size {
					heats[3] = sq[y+half][x]
				}
				sq[y][x] = interpolate(rng, heats)
			}
		}
	}

	for y := range sq {
		for x := range sq[y] {
			sq[y][x] = clamp(sq[y][x], 0, 1)
		}
	}

	return sq
}

// interpolate picks a value at random from the lower 80% of the range
// spanned by heats.
func interpolate(rng *rand.Rand, heats []float64) float64 {
	lo, hi := heats[0], heats[0]
	for _, h := range heats[1:] {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	if lo == hi {
		return heats[0]
	}
	hi = lo + 0.8*(hi-lo)
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
