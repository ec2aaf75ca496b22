package velmod

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// sliceGrid adapts a strided sample of the field to plotter.GridXYZ.
// Heat-map columns run along z (depth) and rows along y (lateral
// position); 3-D fields are sliced at a fixed x.
type sliceGrid struct {
	f      *Field
	stride int
	threeD bool
	xSlice float64
}

func (g sliceGrid) Dims() (c, r int) {
	nz := len(g.f.axes[len(g.f.axes)-1])
	ny := len(g.f.axes[0])
	return 1 + (nz-1)/g.stride, 1 + (ny-1)/g.stride
}

func (g sliceGrid) X(c int) float64 { return g.f.axes[len(g.f.axes)-1][c*g.stride] }
func (g sliceGrid) Y(r int) float64 { return g.f.axes[0][r*g.stride] }

func (g sliceGrid) Z(c, r int) float64 {
	if g.threeD {
		return g.f.At(g.Y(r), g.xSlice, g.X(c))
	}
	return g.f.At(g.Y(r), g.X(c))
}

// SavePlot samples the wavespeed field at every stride-th grid node and
// writes a heat map to path; the output format follows the file
// extension (.png, .svg, .pdf). 3-D models are sliced at the middle x
// plane. This is a presentation convenience only; it reads the same
// field and bounding box any external consumer would.
func (m *Model) SavePlot(path string, stride int) error {
	if stride < 1 {
		stride = 1
	}
	g := sliceGrid{f: m.field, stride: stride}
	if m.dim == 3 {
		g.threeD = true
		xs := m.field.axes[1]
		g.xSlice = xs[len(xs)/2]
	}

	p := plot.New()
	p.Title.Text = "Wavespeed"
	p.X.Label.Text = "z (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewHeatMap(g, moreland.SmoothBlueRed().Palette(255)))

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("velmod: saving plot %s: %w", path, err)
	}
	return nil
}
