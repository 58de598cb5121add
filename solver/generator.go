package solver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/socket"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/tileset"
)

// Generator drives a grid of tileset.Sets to a fully collapsed grid of
// tile.Variants via minimum-entropy observation, weighted collapse, and
// worklist propagation. cycles and propagations are diagnostic-only
// counters; no code branches on their value.
type Generator struct {
	grid         *grid.Grid[tileset.Set]
	rng          *rand.Rand
	logger       zerolog.Logger
	cycles       int
	propagations int
}

// New constructs a Generator over a width x height grid, every cell seeded
// with a clone of catalog after full deduplication (by tile.Variant.Equal,
// ignoring ID -- the same notion of equality catalog.Builder uses within
// one base's 16 transforms, applied here across the whole catalog).
//
// Returns ErrInvalidConfig if width or height is <= 0, or if catalog is
// empty after deduplication.
//
// Complexity: O(|catalog|^2) worst case for the dedup scan (bucketed by
// signature, so typically far below quadratic), plus
// O(width*height*|catalog|) to seed the grid.
func New(width, height int, catalog []tile.Variant, opts ...Option) (*Generator, error) {
	dedup := dedupVariants(catalog)
	if width <= 0 || height <= 0 || len(dedup) == 0 {
		return nil, ErrInvalidConfig
	}

	cfg := newConfig(opts...)

	g, err := grid.New[tileset.Set](width, height, tileset.Set{})
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := g.Set(x, y, tileset.New(dedup)); err != nil {
				return nil, fmt.Errorf("solver: seeding (%d,%d): %w", x, y, err)
			}
		}
	}

	return &Generator{grid: g, rng: cfg.rng, logger: cfg.logger}, nil
}

// dedupVariants removes later variants equal (tile.Variant.Equal) to an
// earlier one, bucketed by a transformed-socket/layer signature -- the
// same technique catalog.Builder.Generate uses within one base's
// transforms, applied here across an arbitrary input catalog.
func dedupVariants(catalog []tile.Variant) []tile.Variant {
	seen := make(map[uint64][]tile.Variant, len(catalog))
	out := make([]tile.Variant, 0, len(catalog))
	for _, v := range catalog {
		key := variantSignature(v)
		if isDuplicateVariant(seen, key, v) {
			continue
		}
		seen[key] = append(seen[key], v)
		out = append(out, v)
	}

	return out
}

func variantSignature(v tile.Variant) uint64 {
	h := uint64(v.Layer()) * 1099511628211
	for _, s := range v.TransformedSockets() {
		h ^= s.Hash()
		h *= 1099511628211
	}

	return h
}

func isDuplicateVariant(seen map[uint64][]tile.Variant, key uint64, v tile.Variant) bool {
	for _, candidate := range seen[key] {
		if candidate.Equal(v) {
			return true
		}
	}

	return false
}

// Entropy returns the sum of Len() over every cell.
//
// Complexity: O(width*height).
func (gen *Generator) Entropy() int {
	total := 0
	gen.grid.Iter(func(_, _ int, s tileset.Set) {
		total += s.Len()
	})

	return total
}

// IsCollapsed reports whether every cell holds exactly one candidate.
//
// Complexity: O(width*height).
func (gen *Generator) IsCollapsed() bool {
	collapsed := true
	gen.grid.Iter(func(_, _ int, s tileset.Set) {
		if !s.Collapsed() {
			collapsed = false
		}
	})

	return collapsed
}

// IsAnyEmpty reports whether any cell holds zero candidates.
//
// Complexity: O(width*height).
func (gen *Generator) IsAnyEmpty() bool {
	empty := false
	gen.grid.Iter(func(_, _ int, s tileset.Set) {
		if s.Empty() {
			empty = true
		}
	})

	return empty
}

type position struct{ x, y int }

// Step performs one observation+propagation iteration and reports whether
// the grid is fully collapsed afterwards. If every cell is already
// collapsed, Step returns (true, nil) without selecting or propagating.
//
// Complexity: O(width*height) to scan for the minimum-entropy tied set,
// plus the cost of the propagation fixpoint (see propagate).
func (gen *Generator) Step() (bool, error) {
	width, height := gen.grid.Size()

	var nonCollapsed []position
	minLen := -1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s, err := gen.grid.Get(x, y)
			if err != nil {
				return false, fmt.Errorf("solver: (%d,%d): %w", x, y, ErrMissingSet)
			}
			if s.Collapsed() {
				continue
			}
			nonCollapsed = append(nonCollapsed, position{x, y})
			if minLen == -1 || s.Len() < minLen {
				minLen = s.Len()
			}
		}
	}
	if len(nonCollapsed) == 0 {
		return true, nil
	}

	var tied []position
	for _, p := range nonCollapsed {
		s, err := gen.grid.Get(p.x, p.y)
		if err != nil {
			return false, fmt.Errorf("solver: (%d,%d): %w", p.x, p.y, ErrMissingSet)
		}
		if s.Len() == minLen {
			tied = append(tied, p)
		}
	}
	if len(tied) == 0 {
		return false, ErrNoValidSet
	}
	chosen := tied[gen.rng.Intn(len(tied))]

	if err := gen.collapseAt(chosen.x, chosen.y); err != nil {
		return false, err
	}
	if err := gen.propagate(chosen.x, chosen.y); err != nil {
		return false, err
	}
	gen.cycles++

	if gen.IsAnyEmpty() {
		return false, fmt.Errorf("solver: cycle %d: %w", gen.cycles, ErrEmptySet)
	}

	return gen.IsCollapsed(), nil
}

// collapseAt samples one variant from the candidate set at (x, y) using
// weighted random choice, and collapses the set to it.
func (gen *Generator) collapseAt(x, y int) error {
	s, err := gen.grid.Get(x, y)
	if err != nil {
		return fmt.Errorf("solver: (%d,%d): %w", x, y, ErrMissingSet)
	}
	if s.Empty() {
		return fmt.Errorf("solver: (%d,%d): %w", x, y, ErrEmptySet)
	}

	chosen, err := weightedChoice(gen.rng, s.Variants())
	if err != nil {
		return err
	}
	if err := s.Collapse(chosen); err != nil {
		return fmt.Errorf("solver: (%d,%d): %w", x, y, err)
	}

	return gen.grid.Set(x, y, s)
}

// weightedChoice samples one variant from candidates proportionally to its
// Weight(). Returns ErrInvalidWeight if the candidates' total weight is 0.
func weightedChoice(rng *rand.Rand, candidates []tile.Variant) (tile.Variant, error) {
	var total uint64
	for _, v := range candidates {
		total += uint64(v.Weight())
	}
	if total == 0 {
		return tile.Variant{}, ErrInvalidWeight
	}

	target := uint64(rng.Int63n(int64(total)))
	var cumulative uint64
	for _, v := range candidates {
		cumulative += uint64(v.Weight())
		if target < cumulative {
			return v, nil
		}
	}

	return candidates[len(candidates)-1], nil
}

// neighborDeltas enumerates the four axis-aligned offsets from a cell to
// its 4-neighbors; the order here only controls the order neighbors are
// examined within one propagation pop, not the LIFO order of the worklist
// itself.
var neighborDeltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// propagate runs the worklist fixpoint starting from the just-collapsed
// cell (startX, startY): popping a cell, snapshotting its candidates, and
// removing from each in-bounds neighbor any candidate with no compatible
// partner in the snapshot, re-pushing a neighbor only if something was
// actually removed from it and it is not already queued.
func (gen *Generator) propagate(startX, startY int) error {
	width, height := gen.grid.Size()

	worklist := []position{{startX, startY}}
	queued := map[position]bool{{startX, startY}: true}

	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		delete(queued, p)

		pSet, err := gen.grid.Get(p.x, p.y)
		if err != nil {
			return fmt.Errorf("solver: (%d,%d): %w", p.x, p.y, ErrMissingSet)
		}
		snapshot := pSet.Clone()

		for _, d := range neighborDeltas {
			qx, qy := p.x+d[0], p.y+d[1]
			if qx < 0 || qx >= width || qy < 0 || qy >= height {
				continue
			}

			side, err := socket.CheckedRelative(socket.Position{X: p.x, Y: p.y}, socket.Position{X: qx, Y: qy})
			if err != nil {
				return fmt.Errorf("solver: %w", err)
			}

			qSet, err := gen.grid.Get(qx, qy)
			if err != nil {
				return fmt.Errorf("solver: (%d,%d): %w", qx, qy, ErrMissingSet)
			}

			// qSet.Remove mutates its backing array in place, so the
			// candidates to test must be copied out first -- ranging
			// directly over qSet.Variants() while removing from it would
			// read already-shifted elements on later iterations.
			candidates := append([]tile.Variant(nil), qSet.Variants()...)
			removedAny := false
			for _, candidate := range candidates {
				if !snapshot.Connects(candidate, side) {
					if qSet.Remove(candidate) {
						removedAny = true
					}
				}
			}
			if !removedAny {
				continue
			}

			if err := gen.grid.Set(qx, qy, qSet); err != nil {
				return fmt.Errorf("solver: (%d,%d): %w", qx, qy, err)
			}

			q := position{qx, qy}
			if !queued[q] {
				worklist = append(worklist, q)
				queued[q] = true
			}
		}

		gen.propagations++
	}

	return nil
}

// Run loops Step until the grid is fully collapsed or an error occurs,
// then returns a grid of the single remaining variant per cell. ctx is
// checked once per iteration, so a caller can cancel a long-running
// solve; cancellation returns ctx.Err() and no partial grid, matching the
// no-partial-results contract of a failed run.
//
// When silent is false, Run logs one structured line per cycle (cycle
// count, propagation count, entropy) via the Logger configured with
// WithLogger, or discards it if none was configured.
func (gen *Generator) Run(ctx context.Context, silent bool) (*grid.Grid[tile.Variant], error) {
	for !gen.IsCollapsed() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		collapsed, err := gen.Step()
		if err != nil {
			return nil, err
		}

		if !silent {
			gen.logger.Info().
				Int("cycle", gen.cycles).
				Int("propagations", gen.propagations).
				Int("entropy", gen.Entropy()).
				Msg("wfc cycle complete")
		}

		if collapsed {
			break
		}
	}

	return gen.materialize()
}

// materialize builds the output grid of single variants once every cell is
// collapsed. Returns ErrMissingTile if a cell that should be collapsed
// cannot yield its singleton (an internal consistency violation).
func (gen *Generator) materialize() (*grid.Grid[tile.Variant], error) {
	width, height := gen.grid.Size()
	out, err := grid.New[tile.Variant](width, height, tile.Variant{})
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s, err := gen.grid.Get(x, y)
			if err != nil {
				return nil, fmt.Errorf("solver: (%d,%d): %w", x, y, ErrMissingSet)
			}
			v, ok := s.Single()
			if !ok {
				return nil, fmt.Errorf("solver: (%d,%d): %w", x, y, ErrMissingTile)
			}
			if err := out.Set(x, y, v); err != nil {
				return nil, fmt.Errorf("solver: %w", err)
			}
		}
	}

	return out, nil
}
