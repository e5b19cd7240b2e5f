package citygrid

import (
	"encoding/json"
	"image"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/voidshard/citygrid/internal/grid"
	"github.com/voidshard/citygrid/internal/heat"
)

var (
	// ErrGridTooSmall implies the world (or given grid) cannot hold a
	// grid of at least 2x2 cells.
	ErrGridTooSmall = errors.New("grid too small")

	// ErrNoHeat is returned if avenues are built without a HeatField
	ErrNoHeat = errors.New("no heat field given")

	// ErrNoRand is returned if avenues are built without a random source
	ErrNoRand = errors.New("no rng given")

	// ErrOutOfBounds is returned when asking about a vertex or cell
	// outside the grid.
	ErrOutOfBounds = grid.ErrOutOfBounds
)

const defaultStreetSpacing = 4

// Citygrid holds the generated avenues & streets for a city.
//
// Intersections are keyed by vertex index & Streets by cell index; in both
// cases y * width + x from the top left, where width counts vertices
// (grid width + 1) or cells (grid width) respectively.
type Citygrid struct {
	cfg  *Config
	rng  *rand.Rand
	heat HeatField

	World         *WorldSettings
	Intersections map[int]*Intersection
	Streets       map[int]StreetsPattern
	Stats         *Stats
	Seed          int64

	avenues *AvenueGrid
	streets *Streets
	cmap    *imageMap
}

// New builds a city with the given config. If h is nil a heat field is
// generated (see Config.Heat).
func New(cfg *Config, h HeatField) (*Citygrid, error) {
	c := &Citygrid{cfg: cfg, heat: h}
	return c, c.build()
}

// JSON returns the citygrid as json.
func (c *Citygrid) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// SaveJSON writes a json file to the given path.
func (c *Citygrid) SaveJSON(fpath string) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Map returns the city drawn over the world.
func (c *Citygrid) Map() CityMap {
	return c.cmap
}

// Avenues returns the underlying avenue grid.
func (c *Citygrid) Avenues() *AvenueGrid {
	return c.avenues
}

// Heat returns the heat field the city was built over
func (c *Citygrid) Heat() HeatField {
	return c.heat
}

// Intersection returns the intersection at grid vertex p, if any.
func (c *Citygrid) Intersection(p image.Point) (*Intersection, bool, error) {
	return c.avenues.Intersection(p)
}

// StreetsPatternAt returns the streets pattern of grid cell p, if any.
func (c *Citygrid) StreetsPatternAt(p image.Point) (StreetsPattern, bool, error) {
	return c.streets.Pattern(p)
}

// build runs the main construction logic. Order matters; each step reads
// what the previous one made.
func (c *Citygrid) build() error {
	err := c.init()
	if err != nil {
		return err
	}

	c.World, err = NewWorldSettings(c.cfg.Width, c.cfg.Height, c.cfg.CellSize, c.cfg.MaxOffset, c.rng)
	if err != nil {
		return err
	}
	c.cfg.Logger.Printf("world size: %dx%d", c.World.Width, c.World.Height)
	c.cfg.Logger.Printf("grid: %dx%d offset %d,%d", c.World.GridWidth, c.World.GridHeight, c.World.Offset.X, c.World.Offset.Y)

	if c.heat == nil {
		hs := c.cfg.Heat
		c.cfg.Logger.Printf("generating heat at scale %d", hs.Scale)
		hm, err := heat.Generate(c.rng, c.cfg.Width, c.cfg.Height, hs.Scale, hs.MinHeat, hs.MaxHeat)
		if err != nil {
			return err
		}
		c.heat = hm
	}

	c.avenues, err = NewAvenueGrid(c.World, c.heat, c.rng, c.cfg.HeatFactor)
	if err != nil {
		return err
	}
	c.avenues.SetLogger(c.cfg.Logger)

	err = c.avenues.Generate()
	if err != nil {
		return err
	}

	c.streets = NewStreets(c.avenues)
	err = c.streets.Generate()
	if err != nil {
		return err
	}

	c.Intersections = c.avenues.Intersections
	c.Streets = c.streets.Patterns

	c.Stats.Intersections = len(c.Intersections)
	c.Stats.BranchPoints = c.avenues.branches
	c.Stats.BuildOrders = c.avenues.processed
	for _, p := range c.Streets {
		c.Stats.StreetsByPattern[p]++
	}
	c.cfg.Logger.Printf("streets: %d blocks", len(c.Streets))

	c.cmap, err = drawMap(c.World, c.heat, c.avenues, c.streets, c.cfg.StreetSpacing)
	return err
}

// init sets up defaults & our rng
func (c *Citygrid) init() error {
	if c.cfg == nil {
		return errors.New("config required")
	}
	if c.cfg.Seed == 0 {
		c.cfg.Seed = time.Now().UnixNano()
	}
	c.Seed = c.cfg.Seed
	c.rng = rand.New(rand.NewSource(c.cfg.Seed))

	if c.cfg.CellSize < 1 {
		c.cfg.CellSize = DefaultCellSize
	}
	if c.cfg.MaxOffset == 0 {
		c.cfg.MaxOffset = DefaultMaxOffset
	}
	if c.cfg.HeatFactor <= 0 {
		c.cfg.HeatFactor = DefaultHeatFactor
	}
	if c.cfg.Heat == nil {
		c.cfg.Heat = DefaultHeatSettings()
	}
	if c.cfg.StreetSpacing < 1 {
		c.cfg.StreetSpacing = defaultStreetSpacing
	}
	if c.cfg.Logger == nil {
		c.cfg.Logger = log.New(ioutil.Discard, "", 0)
	}

	c.Stats = newStats()
	return nil
}
