package velmod_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seisgo/velmod"
)

// writeSEGY writes a minimal IEEE-float SEG-Y file with one column of
// samples per trace.
func writeSEGY(t *testing.T, traces [][]float64) string {
	t.Helper()
	ns := len(traces[0])
	buf := make([]byte, 3600)
	binary.BigEndian.PutUint16(buf[3220:], uint16(ns))
	binary.BigEndian.PutUint16(buf[3224:], 5) // IEEE float
	for _, tr := range traces {
		buf = append(buf, make([]byte, 240)...)
		for _, v := range tr {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
			buf = append(buf, b[:]...)
		}
	}
	path := filepath.Join(t.TempDir(), "line.segy")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

// writeNetCDF writes a NetCDF classic file with a float32 vp variable
// of the given (ny, nx, nz) shape.
func writeNetCDF(t *testing.T, shape []int, vals []float32) string {
	t.Helper()
	h := cdf.NewHeader([]string{"y", "x", "z"}, shape)
	h.AddVariable("vp", []string{"y", "x", "z"}, []float32{0})
	h.Define()

	path := filepath.Join(t.TempDir(), "model.nc")
	fd, err := os.Create(path)
	require.NoError(t, err)
	defer fd.Close()

	f, err := cdf.Create(fd, h)
	require.NoError(t, err)
	end := f.Header.Lengths("vp")
	start := make([]int, len(end))
	w := f.Writer("vp", start, end)
	_, err = w.Write(vals)
	require.NoError(t, err)
	require.NoError(t, cdf.UpdateNumRecs(fd))
	return path
}

// TestLoadConfigErrors verifies bad spacing and dimensionality fail
// with ErrConfig before any file access: the paths here do not exist,
// yet the error is never ErrFileNotFound.
func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		spacing float64
		dim     int
	}{
		{"zero spacing", 0, 2},
		{"negative spacing", -10, 2},
		{"unset config", 0, 0},
		{"dim 0", 10, 0},
		{"dim 1", 10, 1},
		{"dim 4", 10, 4},
		{"negative dim", 10, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := velmod.Load(velmod.Config{
				FilePath:    "does/not/exist.segy",
				GridSpacing: tc.spacing,
				Dim:         tc.dim,
			})
			require.ErrorIs(t, err, velmod.ErrConfig)
			require.NotErrorIs(t, err, velmod.ErrFileNotFound)
		})
	}
}

// TestLoadMissingFile verifies a nonexistent path fails with
// ErrFileNotFound and an error message naming the path.
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.segy")
	_, err := velmod.Load(velmod.Config{FilePath: path, GridSpacing: 10, Dim: 2})
	require.ErrorIs(t, err, velmod.ErrFileNotFound)
	require.ErrorContains(t, err, path)
}

// TestLoad2D loads a two-trace line: the decoder's native 3×2
// (depth sample, trace) matrix must come out transposed as ny=2, nz=3.
func TestLoad2D(t *testing.T) {
	// Trace 0 carries samples 1,3,5 and trace 1 carries 2,4,6, so the
	// native matrix is [[1,2],[3,4],[5,6]].
	path := writeSEGY(t, [][]float64{{1, 3, 5}, {2, 4, 6}})

	m, err := velmod.Load(velmod.Config{FilePath: path, GridSpacing: 10, Dim: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, 10.0, m.GridSpacing())
	assert.Equal(t, []int{2, 3}, m.Counts())
	assert.Equal(t, [][2]float64{{0, 10}, {0, 20}}, m.BBox())

	f := m.Field()
	assert.Equal(t, 1.0, f.At(0, 0))
	assert.Equal(t, 2.0, f.At(10, 0))
	assert.Equal(t, 3.0, f.At(0, 10))
	assert.Equal(t, 5.0, f.At(0, 20))
	assert.Equal(t, 6.0, f.At(10, 20))
	assert.InDelta(t, 1.5, f.At(5, 0), 1e-12) // midway between traces
}

// TestLoad3D loads a constant 2×2×2 vp volume: samples convert from
// km/s to m/s and the field is 2500 everywhere inside the box.
func TestLoad3D(t *testing.T) {
	vals := make([]float32, 8)
	for i := range vals {
		vals[i] = 2.5
	}
	path := writeNetCDF(t, []int{2, 2, 2}, vals)

	m, err := velmod.Load(velmod.Config{FilePath: path, GridSpacing: 5, Dim: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, []int{2, 2, 2}, m.Counts())
	assert.Equal(t, [][2]float64{{0, 5}, {0, 5}, {0, 5}}, m.BBox())

	f := m.Field()
	for _, p := range [][3]float64{
		{0, 0, 0}, {5, 5, 5}, {2.5, 2.5, 2.5}, {1, 4, 3},
	} {
		assert.InDelta(t, 2500.0, f.At(p[0], p[1], p[2]), 1e-9, "at %v", p)
	}
}

// TestLoad3DVaryingVolume checks node exactness against the raw
// samples after unit conversion, with the (y, x, z) axis ordering.
func TestLoad3DVaryingVolume(t *testing.T) {
	vals := make([]float32, 2*3*2)
	for i := range vals {
		vals[i] = float32(i) * 0.1 // km/s
	}
	path := writeNetCDF(t, []int{2, 3, 2}, vals)

	m, err := velmod.Load(velmod.Config{FilePath: path, GridSpacing: 100, Dim: 3})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2}, m.Counts())

	f := m.Field()
	i := 0
	for iy := 0; iy < 2; iy++ {
		for ix := 0; ix < 3; ix++ {
			for iz := 0; iz < 2; iz++ {
				want := float64(vals[i]) * 1000
				got := f.At(float64(iy)*100, float64(ix)*100, float64(iz)*100)
				assert.InDelta(t, want, got, 1e-6, "node (%d,%d,%d)", iy, ix, iz)
				i++
			}
		}
	}
}

// TestLoadIdempotent verifies two loads of the same file and
// configuration agree on box, counts and node values.
func TestLoadIdempotent(t *testing.T) {
	path := writeSEGY(t, [][]float64{{1500, 1800, 2100}, {1600, 1900, 2200}})

	cfg := velmod.Config{FilePath: path, GridSpacing: 25, Dim: 2}
	m1, err := velmod.Load(cfg)
	require.NoError(t, err)
	m2, err := velmod.Load(cfg)
	require.NoError(t, err)

	if diff := cmp.Diff(m1.BBox(), m2.BBox()); diff != "" {
		t.Errorf("bounding boxes differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(m1.Counts(), m2.Counts()); diff != "" {
		t.Errorf("counts differ (-first +second):\n%s", diff)
	}
	for iy := 0; iy < 2; iy++ {
		for iz := 0; iz < 3; iz++ {
			y, z := float64(iy)*25, float64(iz)*25
			assert.Equal(t, m1.Field().At(y, z), m2.Field().At(y, z), "node (%d,%d)", iy, iz)
		}
	}
}

// TestSavePlot renders a small 2-D model to PNG.
func TestSavePlot(t *testing.T) {
	path := writeSEGY(t, [][]float64{{1500, 1800, 2100}, {1600, 1900, 2200}})
	m, err := velmod.Load(velmod.Config{FilePath: path, GridSpacing: 10, Dim: 2})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "field.png")
	require.NoError(t, m.SavePlot(out, 1))
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}
