// Package solver implements the wave function collapse core: Generator
// holds a grid of tileset.Sets and drives it to a fully collapsed grid of
// tile.Variants via minimum-entropy observation, weighted collapse, and
// worklist propagation.
//
// There is no backtracking. A contradiction (a cell left empty by
// propagation) terminates the current Run with ErrEmptySet; the caller may
// construct a fresh Generator with a new seed and retry.
package solver
