package velmod

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// vpVariable names the NetCDF variable holding wavespeed in km/s.
const vpVariable = "vp"

// readVp reads the 3-D vp variable from a NetCDF classic file into a
// dense array of shape (ny, nx, nz).
func readVp(path string) (*sparse.DenseArray, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netcdf %s: %w", path, err)
	}
	defer fd.Close()

	f, err := cdf.Open(fd)
	if err != nil {
		return nil, fmt.Errorf("netcdf %s: %v", path, err)
	}
	dims := f.Header.Lengths(vpVariable)
	if len(dims) == 0 {
		return nil, fmt.Errorf("netcdf %s: no variable %q", path, vpVariable)
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("netcdf %s: variable %q has %d dimensions, want 3 (y, x, z)",
			path, vpVariable, len(dims))
	}

	vol := sparse.ZerosDense(dims...)
	buf := make([]float32, len(vol.Elements))
	r := f.Reader(vpVariable, nil, nil)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("netcdf %s: reading %q: %v", path, vpVariable, err)
	}
	for i, v := range buf {
		vol.Elements[i] = float64(v)
	}
	return vol, nil
}
