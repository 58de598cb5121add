// Package grid provides a generic, rectangular 2D container.
//
// Grid[T] stores exactly width*height elements in row-major order and never
// resizes after construction. It is used by solver (a grid of candidate
// sets) and by render (a grid of solved variants), and is intentionally
// free of any WFC-specific knowledge.
//
// Complexity: Get/Set/InBounds are O(1). Iter/Map/Clone are O(width*height).
package grid
