package velmod

import "gonum.org/v1/gonum/floats"

// buildAxes synthesizes the structured-grid coordinate arrays. Axis a
// holds origin[a] + i*spacing for i in [0, counts[a]), so the full grid
// is the Cartesian product of the returned sequences, each strictly
// increasing. Counts come from the decoded sample array's shape and are
// positive by construction.
func buildAxes(origin []float64, spacing float64, counts []int) [][]float64 {
	axes := make([][]float64, len(counts))
	for a, n := range counts {
		ax := make([]float64, n)
		if n == 1 {
			ax[0] = origin[a]
		} else {
			floats.Span(ax, origin[a], origin[a]+float64(n-1)*spacing)
		}
		axes[a] = ax
	}
	return axes
}
