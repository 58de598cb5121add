package tileset

import (
	"github.com/katalvlaran/wfc/socket"
	"github.com/katalvlaran/wfc/tile"
)

// Set is an ordered, never-regrown sequence of tile.Variants: a single
// cell's candidate list. Every solver.Generator cell starts as a clone of
// the full deduplicated catalog and only ever shrinks.
type Set struct {
	variants []tile.Variant
}

// New wraps variants as a Set. The caller is assumed to have already
// deduplicated variants (solver.New does this once for the whole catalog,
// then clones the result into every cell); New itself performs no dedup.
//
// Complexity: O(n) to copy the backing slice.
func New(variants []tile.Variant) Set {
	s := make([]tile.Variant, len(variants))
	copy(s, variants)

	return Set{variants: s}
}

// Len returns the number of candidate variants remaining.
//
// Complexity: O(1).
func (s Set) Len() int { return len(s.variants) }

// Empty reports whether no candidates remain (a contradiction).
//
// Complexity: O(1).
func (s Set) Empty() bool { return len(s.variants) == 0 }

// Collapsed reports whether exactly one candidate remains.
//
// Complexity: O(1).
func (s Set) Collapsed() bool { return len(s.variants) == 1 }

// Variants returns the set's current candidates. The returned slice aliases
// s's backing array; callers must not mutate it.
//
// Complexity: O(1).
func (s Set) Variants() []tile.Variant { return s.variants }

// Single returns the set's one remaining variant and true, or the zero
// Variant and false if the set is not collapsed.
//
// Complexity: O(1).
func (s Set) Single() (tile.Variant, bool) {
	if !s.Collapsed() {
		return tile.Variant{}, false
	}

	return s.variants[0], true
}

// Connects reports whether at least one candidate in s is adjacency-
// compatible with v across side -- the side of s's cell that faces v's
// cell.
//
// Complexity: O(n*P).
func (s Set) Connects(v tile.Variant, side socket.Side) bool {
	for _, candidate := range s.variants {
		if candidate.ConnectsTo(v, side) {
			return true
		}
	}

	return false
}

// Remove deletes every candidate equal to v (tile.Variant.Equal), in place,
// and reports whether anything was actually removed.
//
// Complexity: O(n*P).
func (s *Set) Remove(v tile.Variant) bool {
	kept := s.variants[:0]
	removed := false
	for _, candidate := range s.variants {
		if candidate.Equal(v) {
			removed = true

			continue
		}
		kept = append(kept, candidate)
	}
	s.variants = kept

	return removed
}

// Collapse retains only candidates equal to v. Post-condition: the set is
// either empty (ErrEmptySet: v was not among the candidates) or a singleton
// containing v.
//
// Complexity: O(n*P).
func (s *Set) Collapse(v tile.Variant) error {
	for _, candidate := range s.variants {
		if candidate.Equal(v) {
			s.variants = []tile.Variant{candidate}

			return nil
		}
	}
	s.variants = nil

	return ErrEmptySet
}

// Clone returns an independent copy of s; mutating the clone never affects
// s.
//
// Complexity: O(n).
func (s Set) Clone() Set {
	return New(s.variants)
}
