// Package catalog builds a deduplicated set of tile.Variants from source
// artifacts (P x P symbol grids), and provides a namespaced Registry for
// merging tile sources loaded from more than one catalog file.
//
// Builder.Generate is the only place variant expansion happens: it derives
// the four base sockets from a source grid, emits all 16 rotate/flip
// combinations, and removes any later variant whose transformed sockets and
// layer duplicate an earlier one -- a full dedup, not merely an
// adjacent-run dedup (see SPEC_FULL.md on why this differs from the source
// material's Vec::dedup).
package catalog
