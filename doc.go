// Package wfc (github.com/katalvlaran/wfc) is a 2D Wave Function Collapse
// tile generator: feed it a catalog of square tiles with edge sockets, and
// it solves a grid where every pair of neighbors matches along their shared
// edge.
//
// 🧩 What is wfc?
//
//	A small, dependency-light constraint solver built around:
//
//	  • Sockets: fixed-length symbol sequences describing one tile edge
//	  • Variants: a base tile under one of 16 rotate/flip transforms
//	  • A minimum-entropy, weighted-random WFC solver with no backtracking
//
// ✨ Why choose wfc?
//
//   - Deterministic   — same seed, same catalog, same dimensions ⇒ same grid
//   - Honest failure  — a contradiction returns ErrEmptySet, never a bad grid
//   - Pure Go         — no cgo; YAML/CLI/logging are opt-in subpackages
//
// Everything lives under focused subpackages, mirroring how the rest of this
// author's toolkit is organized:
//
//	grid/    — generic rectangular container shared by the solver and renderer
//	socket/  — Side, Rotation, and the fixed-length Socket type
//	tile/    — base tiles, transforms, and the Variant adjacency predicate
//	catalog/ — TileBuilder: expands one source tile into its 16 variants
//	tileset/ — per-cell candidate set (the "superposition")
//	solver/  — the WFC core: Generator, Step, Run
//	wfcio/   — YAML tile-catalog loader
//	render/  — ASCII grid renderer
//	cmd/wfcgen — CLI wiring the above end to end
//
// Quick example:
//
//	b := catalog.NewBuilder(1)
//	variants, _ := b.Generate([][]socket.Symbol{{0}}, 0, 1)
//	gen, _ := solver.New(4, 4, variants, solver.WithSeed(7))
//	result, _ := gen.Run(context.Background(), true)
//
//	go get github.com/katalvlaran/wfc
package wfc
