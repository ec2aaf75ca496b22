// Package velmod loads subsurface wavespeed (velocity) models from
// SEG-Y trace files (2-D) or NetCDF volumetric files (3-D) and exposes
// them as continuous scalar fields over a structured grid, for use by
// downstream meshing and simulation tools.
package velmod

import (
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Config describes how to load a velocity model.
// GridSpacing must be supplied explicitly, in the same physical units
// as the file's native spacing (metres); there is no default.
type Config struct {
	FilePath    string  // SEG-Y file for Dim=2, NetCDF file for Dim=3
	GridSpacing float64 // uniform node spacing in metres, > 0
	Dim         int     // 2 or 3
}

// validate checks spacing and dimensionality. It runs before any I/O.
func (c Config) validate() error {
	if c.GridSpacing <= 0 {
		return fmt.Errorf("%w: grid spacing must be a positive number of metres, got %v",
			ErrConfig, c.GridSpacing)
	}
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("%w: dimensionality must be 2 or 3, got %d", ErrConfig, c.Dim)
	}
	return nil
}

// Model is a velocity model: a wavespeed field over a structured grid
// plus the grid's bounding box. A Model is immutable once constructed
// and safe for concurrent read-only queries.
type Model struct {
	dim     int
	spacing float64
	field   *Field
}

// Load validates cfg, reads the file it names and constructs a Model.
// Construction is all-or-nothing: on any error no Model is returned.
//
// The 2-D path decodes SEG-Y traces and transposes the native
// (depth sample, trace) matrix so that axis order becomes
// (lateral position y, depth z). The 3-D path reads the NetCDF
// variable "vp" with axis order (y, x, z) and converts its samples
// from km/s to m/s. Both paths place the grid origin at zero.
func Load(cfg Config) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.FilePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, cfg.FilePath)
	}

	var field *Field
	var err error
	switch cfg.Dim {
	case 2:
		field, err = loadSEGY(cfg)
	case 3:
		field, err = loadNetCDF(cfg)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("velmod: loaded %d-D velocity model %s (nodes %v, spacing %g m)",
		cfg.Dim, cfg.FilePath, field.counts(), cfg.GridSpacing)
	return &Model{dim: cfg.Dim, spacing: cfg.GridSpacing, field: field}, nil
}

// loadSEGY builds the field for the 2-D path. SEG-Y samples are taken
// as already being in working units; only the 3-D path rescales.
func loadSEGY(cfg Config) (*Field, error) {
	native, err := readSEGY(cfg.FilePath)
	if err != nil {
		return nil, err
	}
	vp := mat.DenseCopyOf(native.T()) // (trace, depth) = (y, z)
	ny, nz := vp.Dims()
	axes := buildAxes([]float64{0, 0}, cfg.GridSpacing, []int{ny, nz})
	return newField(axes, vp.RawMatrix().Data)
}

// loadNetCDF builds the field for the 3-D path. The file's vp variable
// is in km/s; working units are m/s, hence the factor 1000.
func loadNetCDF(cfg Config) (*Field, error) {
	vol, err := readVp(cfg.FilePath)
	if err != nil {
		return nil, err
	}
	for i, v := range vol.Elements {
		vol.Elements[i] = v * 1000
	}
	axes := buildAxes([]float64{0, 0, 0}, cfg.GridSpacing, vol.Shape)
	return newField(axes, vol.Elements)
}

// Dim returns the model dimensionality, 2 or 3.
func (m *Model) Dim() int { return m.dim }

// GridSpacing returns the uniform node spacing in metres.
func (m *Model) GridSpacing() float64 { return m.spacing }

// Counts returns the per-axis node counts: (ny, nz) for a 2-D model,
// (ny, nx, nz) for a 3-D model.
func (m *Model) Counts() []int { return m.field.counts() }

// BBox returns the bounding box as one [min, max] pair per axis,
// computed from the realized grid coordinates.
func (m *Model) BBox() [][2]float64 { return m.field.BBox() }

// Field returns the continuous wavespeed interpolant for repeated
// point queries.
func (m *Model) Field() *Field { return m.field }
