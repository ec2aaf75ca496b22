package velmod

import "errors"

// Construction errors. Decoder failures (malformed SEG-Y or NetCDF
// content) are ordinary descriptive errors and are propagated to the
// caller of Load unchanged.
var (
	// ErrConfig indicates an invalid configuration: a zero, negative or
	// unset grid spacing, or a dimensionality other than 2 or 3.
	// Raised before any file access.
	ErrConfig = errors.New("velmod: invalid configuration")

	// ErrFileNotFound indicates the configured path does not resolve to
	// a readable velocity-model file.
	ErrFileNotFound = errors.New("velmod: velocity model file not found")
)
