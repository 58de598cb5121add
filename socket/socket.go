package socket

import "hash/fnv"

// Symbol is a non-negative integer identifying a compatibility class at one
// position of one tile edge. Symbols carry no geometric meaning; they are
// opaque keys chosen by the tile author.
type Symbol uint32

// Socket is a fixed-length sequence of Symbols describing one edge of a
// tile. Its length (the catalog's precision, "P") is fixed at construction
// via New; every Socket built by the same catalog.Builder shares that
// length.
type Socket []Symbol

// New builds a Socket of exactly p symbols: the first min(p, len(symbols))
// elements of symbols are copied, and any remaining positions are zero.
// Longer inputs are silently truncated, per spec's lenient-padding policy.
//
// Complexity: O(p).
func New(p int, symbols ...Symbol) Socket {
	s := make(Socket, p)
	n := len(symbols)
	if n > p {
		n = p
	}
	copy(s, symbols[:n])

	return s
}

// Reversed returns a new Socket with symbols in reverse order.
//
// Complexity: O(len(s)).
func (s Socket) Reversed() Socket {
	r := make(Socket, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}

	return r
}

// Symmetric reports whether s reads the same forwards and backwards.
//
// Complexity: O(len(s)).
func (s Socket) Symmetric() bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold identical symbols in the same
// order. Sockets of differing length are never equal.
//
// Complexity: O(len(s)).
func (s Socket) Equal(other Socket) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Hash returns a deterministic, order-sensitive hash of s, suitable as a
// map key component when a caller needs to bucket sockets (e.g. grouping
// variants by transformed-socket signature during catalog dedup).
//
// Complexity: O(len(s)).
func (s Socket) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, sym := range s {
		buf[0] = byte(sym)
		buf[1] = byte(sym >> 8)
		buf[2] = byte(sym >> 16)
		buf[3] = byte(sym >> 24)
		_, _ = h.Write(buf)
	}

	return h.Sum64()
}

// Clone returns an independent copy of s.
//
// Complexity: O(len(s)).
func (s Socket) Clone() Socket {
	c := make(Socket, len(s))
	copy(c, s)

	return c
}
