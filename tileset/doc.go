// Package tileset provides Set, the per-cell candidate list the solver
// shrinks during propagation: an ordered, never-regrown sequence of
// tile.Variants with the length/adjacency/collapse operations the solver's
// observation and propagation loops need.
package tileset
