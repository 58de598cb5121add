package solver

import "errors"

// ErrInvalidConfig indicates New was called with zero width, zero height,
// or a catalog that is empty after deduplication.
var ErrInvalidConfig = errors.New("solver: width, height, and catalog must all be non-zero")

// ErrEmptySet indicates a cell was left with no candidates, either by a
// collapse that chose a variant absent from the cell or by propagation
// removing the last one. This is the only error a caller should expect to
// see from an unsatisfiable catalog.
var ErrEmptySet = errors.New("solver: candidate set is empty")

// ErrInvalidWeight indicates the candidate set chosen for collapse has
// total weight zero, so no weighted sample can be drawn.
var ErrInvalidWeight = errors.New("solver: total candidate weight is zero")

// ErrMissingSet indicates an internal consistency violation: a grid
// position expected to hold a tileset.Set could not be read. Should be
// unreachable; surfaced rather than panicking so a caller can log and
// retry instead of crashing.
var ErrMissingSet = errors.New("solver: missing candidate set at position")

// ErrMissingTile indicates an internal consistency violation: a collapsed
// cell's singleton candidate could not be read back. Should be
// unreachable.
var ErrMissingTile = errors.New("solver: missing collapsed tile at position")

// ErrNoValidSet indicates observation found no non-collapsed cell while the
// grid was not fully collapsed. Should be unreachable.
var ErrNoValidSet = errors.New("solver: no non-collapsed cell found")
