package socket

import "errors"

// ErrNotAdjacent indicates Relative was called with two positions that do
// not differ by exactly one unit along exactly one axis.
var ErrNotAdjacent = errors.New("socket: positions are not 4-adjacent")
