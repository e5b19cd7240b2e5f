package citygrid

import (
	"image"
	"io/ioutil"
	"log"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/voidshard/citygrid/internal/direction"
	"github.com/voidshard/citygrid/internal/grid"
	"github.com/voidshard/citygrid/internal/line"
)

const (
	// DefaultHeatFactor scales heat into the chance of an avenue branching.
	// Nb. heat over ~0.77 always branches.
	DefaultHeatFactor = 1.3
)

// priorities used to rank directions when growing avenues through cold areas
const (
	priorityHeat = iota + 1
	priorityAvenue
	priorityEdge
)

// AvenueGrid holds the avenues aligned to the grid.
//
// Each grid vertex has an index (row-major from the top left, see
// VertexIndex) and is an intersection if Intersections has an entry for it.
// Intersections are created the first time an avenue touches the vertex &
// their junctions are only ever added to.
type AvenueGrid struct {
	Intersections map[int]*Intersection

	grid     Grid
	heat     HeatField
	rng      *rand.Rand
	factor   float64
	vertices grid.Space
	bounds   image.Rectangle
	logger   *log.Logger

	branches  int
	processed int
}

// NewAvenueGrid prepares an empty avenue grid. Nothing is generated until
// Generate is called.
// A factor <= 0 uses DefaultHeatFactor.
func NewAvenueGrid(g Grid, h HeatField, rng *rand.Rand, factor float64) (*AvenueGrid, error) {
	if h == nil {
		return nil, ErrNoHeat
	}
	if rng == nil {
		return nil, ErrNoRand
	}
	size := g.Size()
	if size.Width < 2 || size.Height < 2 {
		return nil, errors.Wrapf(ErrGridTooSmall, "grid %dx%d", size.Width, size.Height)
	}
	if factor <= 0 {
		factor = DefaultHeatFactor
	}

	vertices := grid.Vertices(size.Width, size.Height)
	return &AvenueGrid{
		Intersections: map[int]*Intersection{},
		grid:          g,
		heat:          h,
		rng:           rng,
		factor:        factor,
		vertices:      vertices,
		bounds:        image.Rect(0, 0, vertices.Width, vertices.Height),
		logger:        log.New(ioutil.Discard, "", 0),
	}, nil
}

// SetLogger sets where progress messages go
func (a *AvenueGrid) SetLogger(l *log.Logger) {
	if l != nil {
		a.logger = l
	}
}

// VertexIndex returns the key in Intersections of grid vertex p
func (a *AvenueGrid) VertexIndex(p image.Point) (int, error) {
	return a.vertices.Index(p)
}

// Intersection returns the intersection at grid vertex p, if any.
func (a *AvenueGrid) Intersection(p image.Point) (*Intersection, bool, error) {
	index, err := a.vertices.Index(p)
	if err != nil {
		return nil, false, err
	}
	i, ok := a.Intersections[index]
	return i, ok, nil
}

// Generate grows the avenues; first the four main avenues from the
// grid centre then every branch off those (& branches of branches).
func (a *AvenueGrid) Generate() error {
	orders, err := a.mainAvenues()
	if err != nil {
		return errors.Wrap(err, "main avenues")
	}
	a.branches = len(orders)

	err = a.secondaryAvenues(orders)
	if err != nil {
		return errors.Wrap(err, "secondary avenues")
	}

	a.logger.Printf("avenues: %d intersections, %d branch points, %d build orders", len(a.Intersections), a.branches, a.processed)
	return nil
}

// centre of the grid (in vertex space)
func (a *AvenueGrid) centre() image.Point {
	size := a.grid.Size()
	return image.Pt(size.Width/2, size.Height/2)
}

// heatAt returns the heat of the world under grid vertex p
func (a *AvenueGrid) heatAt(p image.Point) float64 {
	w := a.grid.GridToWorld(p)
	return a.heat.Heat(w.X, w.Y)
}

// chance is a bernoulli trial with probability p, anything >= 1 always passes
func (a *AvenueGrid) chance(p float64) bool {
	return a.rng.Float64() < p
}

// connect creates or updates the intersection at p, adding a junction
// toward each of the given directions.
func (a *AvenueGrid) connect(p image.Point, toward ...direction.Direction) error {
	index, err := a.vertices.Index(p)
	if err != nil {
		return err
	}

	i, ok := a.Intersections[index]
	if !ok {
		i = &Intersection{}
		a.Intersections[index] = i
	}
	for _, d := range toward {
		i.connect(d)
	}

	return nil
}

// mainAvenues builds the four avenues running from the centre to the edges
// of the grid. Each step may branch left and/or right; we don't follow the
// branches here, instead they're returned as build orders for
// secondaryAvenues.
func (a *AvenueGrid) mainAvenues() ([]*buildOrder, error) {
	centre := a.centre()
	a.logger.Printf("grid centre: %d,%d", centre.X, centre.Y)

	err := a.connect(centre, direction.All()...)
	if err != nil {
		return nil, err
	}

	queue := []*buildOrder{}
	for _, d := range []direction.Direction{direction.Up, direction.Down, direction.Left, direction.Right} {
		queue = append(queue, &buildOrder{at: centre.Add(d.Unit()), dir: d})
	}

	branches := []*buildOrder{}
	for len(queue) > 0 {
		order := queue[0]
		queue = queue[1:]
		a.processed++

		p := order.at
		h := a.heatAt(p)

		// nb. both draws always happen & left is always drawn first
		haveLeft := a.chance(h * a.factor)
		haveRight := a.chance(h * a.factor)

		toward := []direction.Direction{order.dir, order.dir.Reverse()}
		if haveLeft {
			left := order.dir.LeftOf()
			toward = append(toward, left)
			branches = append(branches, &buildOrder{at: p.Add(left.Unit()), dir: left})
		}
		if haveRight {
			right := order.dir.RightOf()
			toward = append(toward, right)
			branches = append(branches, &buildOrder{at: p.Add(right.Unit()), dir: right})
		}

		err = a.connect(p, toward...)
		if err != nil {
			return nil, err
		}

		if !a.vertices.OnEdge(p) { // keep going until we hit the edge
			queue = append(queue, &buildOrder{at: p.Add(order.dir.Unit()), dir: order.dir})
		}
	}

	return branches, nil
}

// secondaryAvenues follows the given build orders until every avenue has
// run into another avenue or off the grid.
//
// Nb. orders are queued without a bounds check; those pointing off the grid
// are dropped when they come off the queue.
func (a *AvenueGrid) secondaryAvenues(queue []*buildOrder) error {
	for len(queue) > 0 {
		order := queue[0]
		queue = queue[1:]
		a.processed++

		p := order.at
		if !a.vertices.Contains(p) {
			continue
		}

		back := order.dir.Reverse()

		_, exists, err := a.Intersection(p)
		if err != nil {
			return err
		}
		if exists {
			// we've joined an existing avenue, link up & stop here
			err = a.connect(p, back)
			if err != nil {
				return err
			}
			continue
		}

		candidates := branchCandidates(order.dir)

		chosen := []direction.Direction{}
		if h := a.heatAt(p); h > 0 {
			for _, c := range candidates {
				if a.chance(h * a.factor) {
					chosen = append(chosen, c)
				}
			}
			if len(chosen) == 0 {
				chosen = append(chosen, candidates[a.rng.Intn(len(candidates))])
			}
		} else {
			best, err := a.bestDirection(p, candidates)
			if err != nil {
				return err
			}
			chosen = append(chosen, best)
		}

		toward := []direction.Direction{back}
		for _, c := range chosen {
			toward = append(toward, c)
			queue = append(queue, &buildOrder{at: p.Add(c.Unit()), dir: c})
		}

		err = a.connect(p, toward...)
		if err != nil {
			return err
		}
	}

	return nil
}

// branchCandidates are the directions an avenue travelling in d may carry on
// in. Never back the way it came.
func branchCandidates(d direction.Direction) []direction.Direction {
	return []direction.Direction{d, d.LeftOf(), d.RightOf()}
}

// rankedDirection is a candidate in bestDirection
type rankedDirection struct {
	dir      direction.Direction
	distance int
	priority int
}

// bestDirection decides which way to grow when there's no heat to go on.
// We look along each candidate for the nearest heat, else the nearest
// avenue, else the edge of the grid; the closest wins. Equal distances
// prefer heat, then avenues, then the edge & finally candidate order.
func (a *AvenueGrid) bestDirection(p image.Point, candidates []direction.Direction) (direction.Direction, error) {
	ranked := make([]*rankedDirection, len(candidates))

	for i, c := range candidates {
		r := &rankedDirection{dir: c, priority: priorityEdge}

		var err error
		dist, hit := line.Walk(p, c.Unit(), a.bounds, func(q image.Point) bool {
			if a.heatAt(q) > 0 {
				r.priority = priorityHeat
				return true
			}
			_, exists, ierr := a.Intersection(q)
			if ierr != nil {
				err = ierr
				return true
			}
			if exists {
				r.priority = priorityAvenue
				return true
			}
			return false
		})
		if err != nil {
			return c, err
		}
		if !hit {
			r.priority = priorityEdge // ran off the grid
		}
		r.distance = dist
		ranked[i] = r
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].priority < ranked[j].priority
	})

	return ranked[0].dir, nil
}

// Segments returns every avenue segment between two vertices, in grid
// space. Each is listed once (from its left / top end).
func (a *AvenueGrid) Segments() ([][2]image.Point, error) {
	keys := make([]int, 0, len(a.Intersections))
	for k := range a.Intersections {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	segs := [][2]image.Point{}
	for _, k := range keys {
		p, err := a.vertices.Coord(k)
		if err != nil {
			return nil, err
		}
		i := a.Intersections[k]
		for _, d := range []direction.Direction{direction.Right, direction.Down} {
			if !i.Junction(d) {
				continue
			}
			q := p.Add(d.Unit())
			if !a.vertices.Contains(q) {
				continue
			}
			segs = append(segs, [2]image.Point{p, q})
		}
	}

	return segs, nil
}
