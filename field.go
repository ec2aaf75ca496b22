package velmod

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Field is a continuous wavespeed field over a structured grid:
// per-axis node coordinates plus flat row-major samples.
// 2-D layout: vals[iy*nz + iz]. 3-D layout: vals[(iy*nx+ix)*nz + iz].
type Field struct {
	axes [][]float64 // (y, z) or (y, x, z) node coordinates
	vals []float64
	bbox [][2]float64
}

// newField checks that the sample count matches the grid and derives
// the bounding box from the realized coordinates rather than from
// origin/spacing arithmetic, so it reflects exactly the grid built.
func newField(axes [][]float64, vals []float64) (*Field, error) {
	nodes := 1
	for _, ax := range axes {
		nodes *= len(ax)
	}
	if nodes != len(vals) {
		return nil, fmt.Errorf("velmod: %d samples for a grid of %d nodes", len(vals), nodes)
	}
	bbox := make([][2]float64, len(axes))
	for a, ax := range axes {
		bbox[a] = [2]float64{floats.Min(ax), floats.Max(ax)}
	}
	return &Field{axes: axes, vals: vals, bbox: bbox}, nil
}

// counts returns the per-axis node counts.
func (f *Field) counts() []int {
	c := make([]int, len(f.axes))
	for a, ax := range f.axes {
		c[a] = len(ax)
	}
	return c
}

// BBox returns a copy of the per-axis [min, max] coordinate extrema.
func (f *Field) BBox() [][2]float64 {
	b := make([][2]float64, len(f.bbox))
	copy(b, f.bbox)
	return b
}

// At evaluates the field by multilinear interpolation: bilinear for
// 2-D fields called as At(y, z), trilinear for 3-D fields called as
// At(y, x, z). At a grid node it returns that node's sample exactly;
// strictly inside a cell it returns the weighted average of the cell's
// corner samples. Points outside the bounding box are clamped to the
// box surface before interpolation, so boundary-adjacent consumers
// (domain-padding mesh generators) see a finite, continuous field.
// At panics if the number of coordinates does not match the field
// dimensionality.
func (f *Field) At(p ...float64) float64 {
	if len(p) != len(f.axes) {
		panic(fmt.Sprintf("velmod: %d coordinates for a %d-D field", len(p), len(f.axes)))
	}

	lo := make([]int, len(f.axes))
	frac := make([]float64, len(f.axes))
	for a, ax := range f.axes {
		lo[a], frac[a] = locate(ax, p[a])
	}

	// Sum over the 2^dim corners of the containing cell; each corner's
	// weight is the product of its per-axis fractional positions.
	var v float64
	for corner := 0; corner < 1<<len(f.axes); corner++ {
		w := 1.0
		idx := 0
		for a, ax := range f.axes {
			i := lo[a]
			if corner&(1<<a) != 0 {
				i++
				w *= frac[a]
			} else {
				w *= 1 - frac[a]
			}
			idx = idx*len(ax) + i
		}
		if w != 0 {
			v += w * f.vals[idx]
		}
	}
	return v
}

// locate returns the lower node index of the cell containing x and the
// fractional position of x within that cell. Coordinates beyond either
// end of the axis clamp to the end cells; a coordinate exactly on a
// node returns a zero (or one) fraction so node queries are exact.
func locate(ax []float64, x float64) (int, float64) {
	n := len(ax)
	if n == 1 || x <= ax[0] {
		return 0, 0
	}
	if x >= ax[n-1] {
		return n - 2, 1
	}
	j := sort.SearchFloat64s(ax, x) // first j with ax[j] >= x
	if ax[j] == x {
		return j, 0
	}
	return j - 1, (x - ax[j-1]) / (ax[j] - ax[j-1])
}
