// Package socket defines the geometric primitives shared by tile and
// solver: the four Sides of a square tile, the four quarter Rotations, and
// the fixed-length Socket symbol sequence compared across adjacent edges.
//
// Side ordering and the Relative convention are pinned here once so every
// other package indexes sockets, rotates, and compares adjacency the same
// way. See DESIGN.md for why Relative uses start <= end rather than
// start > end (both satisfy the opposite(Relative(A,B)) == Relative(B,A)
// law; only one is implemented).
package socket
