package citygrid

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"github.com/unixpickle/essentials"
	"golang.org/x/image/colornames"

	"github.com/voidshard/citygrid/internal/encoding"
)

const (
	// bit numbers for our bitmap
	bitAvenue       = 0
	bitIntersection = 1
	bitStreet       = 2
)

// CityMap is a graphical representation of a Citygrid, one pixel per
// world tile.
type CityMap interface {
	// Save as custom file in a format defined by the library
	Save(fpath string) error

	// SaveAdv saves as an image with the given color scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given color scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	IsAvenue(x, y int) bool
	IsIntersection(x, y int) bool
	IsStreet(x, y int) bool

	// Heat returns the heat at x,y (to within 1/65535)
	Heat(x, y int) (float64, error)

	// StreetsPattern returns the pattern of the block x,y sits in, if any
	StreetsPattern(x, y int) (StreetsPattern, bool, error)
}

// imageMap is a particular implementation of CityMap using a RGBA64
type imageMap struct {
	// Map is an RGBA64 image where each pixel of 64 bits is split via
	//
	// R [16 bits] -> heat scaled to 0-65,535
	// G [16 bits] -> unused
	// B [16 bits] -> unused
	// A [16 bits]
	//   16-9 [8 bits] -> streets pattern + 1 (0 means no streets)
	//    8-1 [8 bits] -> bitmap (true if set, false if not)
	//       bit 0 -> isAvenue
	//       bit 1 -> isIntersection
	//       bit 2 -> isStreet
	//       bit 3-7 -> unused
	//
	im *image.RGBA64

	// scratch image we draw avenues / streets on with gg, copied over to
	// im in endDraw()
	ctx *gg.Context
}

// ColourScheme defines how various features in a city should be coloured.
type ColourScheme struct {
	Avenues       color.Color
	Intersections color.Color
	Streets       color.Color

	// heat is shaded from Cold (0) to Hot (1)
	Cold color.Color
	Hot  color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Avenues:       colornames.Black,
		Intersections: colornames.Crimson,
		Streets:       colornames.Dimgray,
		Cold:          colornames.Lightsteelblue,
		Hot:           colornames.Orangered,
	}
}

// drawMap paints the heat, streets & avenues over the world.
func drawMap(w *WorldSettings, h HeatField, avenues *AvenueGrid, streets *Streets, spacing int) (*imageMap, error) {
	bounds := image.Rect(0, 0, w.Width, w.Height)
	c := newMap(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c.setHeat(x, y, h.Heat(x, y))
		}
	}

	for index, pattern := range streets.Patterns {
		cell, err := streets.cells.Coord(index)
		if err != nil {
			return nil, err
		}
		area := w.CellBounds(cell).Intersect(bounds)
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				c.setPattern(x, y, pattern)
			}
		}
		c.drawStreets(w.CellBounds(cell), pattern, spacing)
	}

	segs, err := avenues.Segments()
	if err != nil {
		return nil, err
	}
	for _, seg := range segs {
		c.drawAvenue(w.GridToWorld(seg[0]), w.GridToWorld(seg[1]))
	}

	for index := range avenues.Intersections {
		p, err := avenues.vertices.Coord(index)
		if err != nil {
			return nil, err
		}
		c.drawIntersection(w.GridToWorld(p))
	}

	c.endDraw()
	return c, nil
}

// Save the CityMap as is to disk
func (c *imageMap) Save(fpath string) error {
	return savePNG(fpath, c.im)
}

// CustomImage returns the CityMap coloured with the given Scheme
func (c *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	if scheme == nil {
		return nil, fmt.Errorf("colour scheme required")
	}

	bnds := c.im.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			bm := c.getBM(dx, dy)

			if bm.Get(bitIntersection) {
				im.Set(dx, dy, scheme.Intersections)
				continue
			} else if bm.Get(bitAvenue) {
				im.Set(dx, dy, scheme.Avenues)
				continue
			} else if bm.Get(bitStreet) {
				im.Set(dx, dy, scheme.Streets)
				continue
			}

			h, err := c.Heat(dx, dy)
			if err != nil {
				return nil, err
			}
			im.Set(dx, dy, lerpColour(scheme.Cold, scheme.Hot, h))
		}
	}

	return im, nil
}

// SaveAdv essentially saves the CityMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (c *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := c.CustomImage(scheme)
	if err != nil {
		return err
	}
	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	return ctx.SavePNG(fpath)
}

// Heat returns the heat at x,y
func (c *imageMap) Heat(x, y int) (float64, error) {
	if c.isOutOfBounds(x, y) {
		return 0, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return encoding.HeatFrom16(c.im.RGBA64At(x, y).R), nil
}

// StreetsPattern returns the pattern of the block x,y is in
func (c *imageMap) StreetsPattern(x, y int) (StreetsPattern, bool, error) {
	if c.isOutOfBounds(x, y) {
		return 0, false, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	p, _ := encoding.Split16(c.im.RGBA64At(x, y).A)
	if p == 0 {
		return 0, false, nil
	}
	return StreetsPattern(p - 1), true, nil
}

// IsAvenue returns if there is an avenue at x,y
func (c *imageMap) IsAvenue(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitAvenue)
}

// IsIntersection returns if there is an avenue intersection at x,y
func (c *imageMap) IsIntersection(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitIntersection)
}

// IsStreet returns if there is a street at x,y
func (c *imageMap) IsStreet(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitStreet)
}

// setHeat sets the heat at x,y
func (c *imageMap) setHeat(x, y int, h float64) {
	v := c.im.RGBA64At(x, y)
	v.R = encoding.Heat16(h)
	c.im.SetRGBA64(x, y, v)
}

// setPattern sets the streets pattern at x,y
func (c *imageMap) setPattern(x, y int, p StreetsPattern) {
	v := c.im.RGBA64At(x, y)
	_, bmbits := encoding.Split16(v.A)
	v.A = encoding.Merge8(uint8(p)+1, bmbits)
	c.im.SetRGBA64(x, y, v)
}

// setBM sets the 8 bit bitmap at x,y
func (c *imageMap) setBM(x, y int, bm bitmap.Bitmap) {
	num := encoding.FromBytes8(bm.Data(true))

	current := c.im.RGBA64At(x, y)
	pattern, _ := encoding.Split16(current.A)
	current.A = encoding.Merge8(pattern, num)

	c.im.SetRGBA64(x, y, current)
}

// getBM gets the 8 bit bitmap at x,y
func (c *imageMap) getBM(x, y int) bitmap.Bitmap {
	current := c.im.RGBA64At(x, y)

	_, bmdata := encoding.Split16(current.A)
	return bitmap.Bitmap(encoding.ToBytes8(bmdata))
}

// isOutOfBounds determines if x,y is outside of the image area
func (c *imageMap) isOutOfBounds(x, y int) bool {
	return !image.Pt(x, y).In(c.im.Bounds())
}

// endDraw copies the avenues / streets sketched on our scratch image into
// the bitmap of our proper map.
func (c *imageMap) endDraw() {
	temp := c.ctx.Image()
	bnds := temp.Bounds()

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			r, g, b, _ := temp.At(dx, dy).RGBA()
			if r == 0 && g == 0 && b == 0 {
				continue
			}

			bm := c.getBM(dx, dy)
			if r > 0 {
				bm.Set(bitAvenue, true)
			}
			if b > 0 {
				bm.Set(bitIntersection, true)
			}
			if g > 0 {
				bm.Set(bitStreet, true)
			}
			c.setBM(dx, dy, bm)
		}
	}
}

// drawAvenue (line) on to our scratch image
func (c *imageMap) drawAvenue(a, b image.Point) {
	c.ctx.SetColor(color.RGBA{255, 0, 0, 255})
	c.ctx.SetLineCapSquare()
	c.ctx.SetLineWidth(2)
	c.ctx.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	c.ctx.Stroke()
}

// drawIntersection (small square) on to our scratch image
func (c *imageMap) drawIntersection(p image.Point) {
	c.ctx.SetColor(color.RGBA{0, 0, 255, 255})
	c.ctx.DrawRectangle(float64(p.X-1), float64(p.Y-1), 3, 3)
	c.ctx.Fill()
}

// drawStreets fills a block with streets following the pattern.
// Straight patterns are parallel streets between the two avenues; L
// patterns are nested Ls linking the two avenues around their shared
// corner.
func (c *imageMap) drawStreets(area image.Rectangle, pattern StreetsPattern, spacing int) {
	size := essentials.MinInt(area.Dx(), area.Dy())
	if spacing < 1 || size <= spacing {
		return
	}

	c.ctx.SetColor(color.RGBA{0, 255, 0, 255})
	c.ctx.SetLineWidth(1)
	c.ctx.SetLineCapButt()

	x0, y0 := float64(area.Min.X), float64(area.Min.Y)
	s := float64(size)

	// local u,v in [0,s] -> world, mirroring as required
	flipU := pattern == LLeftTop || pattern == LBottomLeft
	flipV := pattern == LRightBottom || pattern == LBottomLeft
	pt := func(u, v float64) (float64, float64) {
		if flipU {
			u = s - u
		}
		if flipV {
			v = s - v
		}
		return x0 + u, y0 + v
	}

	for k := spacing; k < size; k += spacing {
		fk := float64(k)
		switch pattern {
		case Vertical:
			c.ctx.DrawLine(x0+fk, y0, x0+fk, y0+s)
		case Horizontal:
			c.ctx.DrawLine(x0, y0+fk, x0+s, y0+fk)
		default:
			// drawn as top-right: down from the top avenue, then across
			// to the right avenue
			c.ctx.MoveTo(pt(s-fk, 0))
			c.ctx.LineTo(pt(s-fk, fk))
			c.ctx.LineTo(pt(s, fk))
		}
		c.ctx.Stroke()
	}
}

// lerpColour blends from a to b by t in [0,1]
func lerpColour(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint16 {
		return uint16(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA64{mix(ar, br), mix(ag, bg), mix(ab, bb), mix(aa, ba)}
}

// newMap returns a new map with the given bounds
func newMap(bounds image.Rectangle) *imageMap {
	ctx := gg.NewContextForRGBA(image.NewRGBA(bounds))
	ctx.SetRGBA(0, 0, 0, 0)
	ctx.Clear()

	return &imageMap{
		ctx: ctx,
		im:  image.NewRGBA64(bounds),
	}
}
