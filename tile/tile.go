package tile

import "github.com/katalvlaran/wfc/socket"

// TransformedSockets computes v's four edge sockets after applying its
// Transform to Base.Sockets, in the order: flip_x, flip_y, rotate.
//
// flip_x mirrors across the vertical axis: Left and Right swap places, and
// the Top/Bottom sockets are individually reversed (their content now reads
// right-to-left relative to the original tile).
//
// flip_y mirrors across the horizontal axis: Top and Bottom swap places,
// and Left/Right are individually reversed.
//
// rotate shifts the socket array clockwise by Rotation quarter turns: one
// quarter turn moves what was on Left to Top, Top to Right, Right to
// Bottom, and Bottom to Left (physically, turning the tile clockwise swings
// its left edge up to face the top). Rotation does not reverse socket
// contents.
//
// Complexity: O(P) where P is the socket length (a handful of slice
// reversals and a 4-element cyclic shift).
func (v Variant) TransformedSockets() [4]socket.Socket {
	s := v.Base.Sockets

	if v.Transform.FlipX {
		s[socket.Left], s[socket.Right] = s[socket.Right], s[socket.Left]
		s[socket.Top] = s[socket.Top].Reversed()
		s[socket.Bottom] = s[socket.Bottom].Reversed()
	}
	if v.Transform.FlipY {
		s[socket.Top], s[socket.Bottom] = s[socket.Bottom], s[socket.Top]
		s[socket.Left] = s[socket.Left].Reversed()
		s[socket.Right] = s[socket.Right].Reversed()
	}

	return rotateSockets(s, v.Transform.Rotation.Quarters())
}

// rotateSockets returns a copy of s cyclically shifted by quarters clockwise
// quarter turns. socket.Side's iota order (Top, Right, Bottom, Left) is
// exactly the clockwise cycle, so the socket landing at position p is
// whatever sat at position (p - quarters) before the turn, cyclically.
func rotateSockets(s [4]socket.Socket, quarters int) [4]socket.Socket {
	var out [4]socket.Socket
	for side := 0; side < 4; side++ {
		src := ((side-quarters)%4 + 4) % 4
		out[side] = s[src]
	}

	return out
}

// TransformedSocket returns the single transformed socket on the given
// side, without materializing all four.
//
// Complexity: same as TransformedSockets (the whole array is still derived
// internally; callers needing many sides should call TransformedSockets
// once and index it instead).
func (v Variant) TransformedSocket(side socket.Side) socket.Socket {
	return v.TransformedSockets()[side]
}

// Equal reports whether v and other are interchangeable: same transformed
// socket array, same layer, same weight. Two Variants built from different
// Bases/Transforms that happen to land on the same transformed sockets,
// layer, and weight are equal (this is exactly what catalog dedup relies
// on).
//
// Complexity: O(P) for the socket comparisons.
func (v Variant) Equal(other Variant) bool {
	if v.Layer() != other.Layer() || v.Weight() != other.Weight() {
		return false
	}
	a, b := v.TransformedSockets(), other.TransformedSockets()
	for side := 0; side < 4; side++ {
		if !a[side].Equal(b[side]) {
			return false
		}
	}

	return true
}

// ConnectsTo reports whether v and other are adjacency-compatible across
// side s, where s is the side of v that faces other. Per spec: same layer,
// and v's transformed socket on s equals other's transformed socket on the
// opposite side, compared position-for-position with no mirroring.
//
// Complexity: O(P).
func (v Variant) ConnectsTo(other Variant, s socket.Side) bool {
	if v.Layer() != other.Layer() {
		return false
	}

	return v.TransformedSocket(s).Equal(other.TransformedSocket(s.Opposite()))
}
