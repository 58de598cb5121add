// Package tile defines the Base tile and Variant types: a Base carries the
// four untransformed edge sockets plus a layer and weight; a Variant pairs
// a Base with a (Rotation, FlipX, FlipY) transform and knows how to derive
// its own transformed sockets and test adjacency against another Variant.
//
// Transform order is fixed: flip_x, then flip_y, then rotate clockwise (see
// DESIGN.md for why flip-then-rotate was chosen over rotate-then-flip).
package tile
