package catalog

import (
	"github.com/katalvlaran/wfc/socket"
	"github.com/katalvlaran/wfc/tile"
)

// Builder expands source tile artifacts into deduplicated tile.Variants and
// accumulates them into a running catalog. Precision (P) is fixed for the
// lifetime of a Builder: every socket it derives has exactly Precision
// symbols.
type Builder struct {
	Precision int
	nextID    int
	variants  []tile.Variant
}

// NewBuilder returns a Builder with the given socket precision P.
//
// Complexity: O(1).
func NewBuilder(precision int) *Builder {
	return &Builder{Precision: precision}
}

// Generate derives a Base tile from a P x P source grid of symbols (row 0
// is its Top socket left-to-right, row P-1 its Bottom socket left-to-right,
// column 0 its Left socket top-to-bottom, column P-1 its Right socket
// top-to-bottom), emits all 16 (Rotation x FlipX x FlipY) variants sharing
// one fresh Base.ID, deduplicates variants whose transformed sockets and
// layer coincide, appends the survivors to the running catalog, and returns
// them.
//
// Returns ErrEmptySource or ErrNonSquareSource for malformed input,
// ErrPrecisionMismatch if source's side length differs from b.Precision, or
// ErrZeroWeight if weight == 0.
//
// Complexity: O(16*P) time (transform + equality checks per emitted
// variant), O(P) extra space for the derived sockets.
func (b *Builder) Generate(source [][]socket.Symbol, layer int, weight uint32) ([]tile.Variant, error) {
	if len(source) == 0 || len(source[0]) == 0 {
		return nil, ErrEmptySource
	}
	p := len(source)
	for _, row := range source {
		if len(row) != p {
			return nil, ErrNonSquareSource
		}
	}
	if p != b.Precision {
		return nil, ErrPrecisionMismatch
	}
	if weight == 0 {
		return nil, ErrZeroWeight
	}

	base := tile.Base{
		ID:     b.nextID,
		Layer:  layer,
		Weight: weight,
		Sockets: [4]socket.Socket{
			socket.Top:    socket.New(b.Precision, source[0]...),
			socket.Bottom: socket.New(b.Precision, source[p-1]...),
			socket.Left:   column(source, 0, b.Precision),
			socket.Right:  column(source, p-1, b.Precision),
		},
	}
	b.nextID++

	generated := make([]tile.Variant, 0, 16)
	seen := make(map[uint64][]tile.Variant, 16)
	for _, rot := range []socket.Rotation{socket.R0, socket.R90, socket.R180, socket.R270} {
		for _, flipX := range []bool{false, true} {
			for _, flipY := range []bool{false, true} {
				v := tile.Variant{Base: base, Transform: tile.Transform{Rotation: rot, FlipX: flipX, FlipY: flipY}}
				if isDuplicate(seen, v) {
					continue
				}
				key := signature(v)
				seen[key] = append(seen[key], v)
				generated = append(generated, v)
			}
		}
	}

	b.variants = append(b.variants, generated...)

	return generated, nil
}

// Tiles returns the accumulated catalog across every Generate call so far.
// The returned slice is a copy; mutating it does not affect the Builder.
//
// Complexity: O(n).
func (b *Builder) Tiles() []tile.Variant {
	out := make([]tile.Variant, len(b.variants))
	copy(out, b.variants)

	return out
}

// column extracts source's column idx, top-to-bottom, as a socket.Socket of
// length precision (the caller has already verified len(source) ==
// precision == b.Precision, so this always produces a correctly sized
// socket matching Top/Bottom).
func column(source [][]socket.Symbol, idx, precision int) socket.Socket {
	col := make([]socket.Symbol, len(source))
	for y, row := range source {
		col[y] = row[idx]
	}

	return socket.New(precision, col...)
}

// signature buckets a variant by its layer and transformed-socket hashes,
// for the duplicate scan below. Collisions are resolved by isDuplicate's
// full Equal check, so an imperfect bucket only costs a few extra
// comparisons, never a wrong answer.
func signature(v tile.Variant) uint64 {
	h := uint64(v.Layer()) * 1099511628211
	for _, s := range v.TransformedSockets() {
		h ^= s.Hash()
		h *= 1099511628211
	}

	return h
}

func isDuplicate(seen map[uint64][]tile.Variant, v tile.Variant) bool {
	for _, candidate := range seen[signature(v)] {
		if candidate.Equal(v) {
			return true
		}
	}

	return false
}
