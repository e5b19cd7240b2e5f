package citygrid

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// DebugRender rasterises the avenue graph in grid space (one unit per
// cell) to a PNG at fpath; intersections are dots, avenues are lines.
// If fpath is empty we write "avenues.png" to os.TempDir.
func (a *AvenueGrid) DebugRender(fpath string) error {
	if fpath == "" {
		fpath = filepath.Join(os.TempDir(), "avenues.png")
	}

	segs, err := a.Segments()
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return errors.New("no avenues to render")
	}

	mesh := model2d.NewMesh()
	for _, s := range segs {
		mesh.Add(&model2d.Segment{
			model2d.XY(float64(s[0].X), float64(s[0].Y)),
			model2d.XY(float64(s[1].X), float64(s[1].Y)),
		})
	}

	dots := model2d.JoinedSolid{}
	for index := range a.Intersections {
		p, err := a.vertices.Coord(index)
		if err != nil {
			return err
		}
		dots = append(dots, &model2d.Circle{
			Center: model2d.XY(float64(p.X), float64(p.Y)),
			Radius: 0.15,
		})
	}

	size := a.grid.Size()
	bg := model2d.NewRect(model2d.XY(-0.5, -0.5), model2d.XY(float64(size.Width)+0.5, float64(size.Height)+0.5))

	// aim for roughly 1000 pixels across the larger side
	scale := 1000 / math.Max(float64(size.Width), float64(size.Height))

	return model2d.RasterizeColor(fpath, []interface{}{
		bg,
		mesh,
		model2d.IntersectedSolid{dots.Optimize(), bg},
	}, []color.Color{
		color.Gray{Y: 0xff},
		color.Black,
		color.RGBA{R: 0xff, A: 0xff},
	}, scale)
}
