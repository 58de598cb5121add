package wfcio

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/socket"
)

// TileRecord is one raw tile entry as read from a catalog file: source
// names the artwork this tile renders as (opaque to the solver -- a
// renderer key), layer partitions which tiles may ever be adjacent, weight
// is the sampling weight used during collapse, and nodes is the P x P grid
// of symbols catalog.Builder.Generate derives the four base sockets from.
type TileRecord struct {
	Source string     `yaml:"source"`
	Layer  int        `yaml:"layer"`
	Weight uint32     `yaml:"weight"`
	Nodes  [][]uint32 `yaml:"nodes"`
}

// CatalogFile is the top-level record of a catalog document: an id and
// format version for the caller's own bookkeeping, plus the tile records
// themselves.
type CatalogFile struct {
	ID      int          `yaml:"id"`
	Version int          `yaml:"version"`
	Tiles   []TileRecord `yaml:"tiles"`
}

// Load parses r as a catalog document. Returns ErrMalformedCatalog if the
// YAML is invalid or declares no tiles, or ErrBadNodeCount if any tile's
// nodes grid is not square.
//
// Complexity: O(n) in the size of r, plus O(t*P) to validate t tiles of
// precision P.
func Load(r io.Reader) (*CatalogFile, error) {
	var cf CatalogFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if len(cf.Tiles) == 0 {
		return nil, ErrMalformedCatalog
	}

	for i, t := range cf.Tiles {
		p := len(t.Nodes)
		if p == 0 {
			return nil, fmt.Errorf("wfcio: tile %d: %w", i, ErrBadNodeCount)
		}
		for _, row := range t.Nodes {
			if len(row) != p {
				return nil, fmt.Errorf("wfcio: tile %d: %w", i, ErrBadNodeCount)
			}
		}
	}

	return &cf, nil
}

// LoadedTile is one tile record converted to the symbol type
// catalog.Builder.Generate consumes.
type LoadedTile struct {
	Source string
	Layer  int
	Weight uint32
	Nodes  [][]socket.Symbol
}

// LoadedTiles converts cf's raw tile records into LoadedTiles, in document
// order.
//
// Complexity: O(t*P) for t tiles of precision P.
func (cf *CatalogFile) LoadedTiles() []LoadedTile {
	out := make([]LoadedTile, len(cf.Tiles))
	for i, t := range cf.Tiles {
		out[i] = LoadedTile{Source: t.Source, Layer: t.Layer, Weight: t.Weight, Nodes: convertNodes(t.Nodes)}
	}

	return out
}

// Registry converts cf into a populated catalog.Registry: each tile record
// is registered under catalog.ID{Namespace: strconv.Itoa(cf.ID), Path:
// t.Source}, so that several loaded CatalogFiles (distinct cf.ID values) can
// share one Registry without their source names colliding. Returns a
// wrapped catalog.ErrDuplicateID if cf itself declares the same source
// twice.
//
// Complexity: O(t*P) for t tiles of precision P.
func (cf *CatalogFile) Registry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	namespace := strconv.Itoa(cf.ID)

	for _, t := range cf.Tiles {
		id := catalog.ID{Namespace: namespace, Path: t.Source}
		src := catalog.Source{Nodes: convertNodes(t.Nodes), Layer: t.Layer, Weight: t.Weight}
		if err := reg.Put(id, src); err != nil {
			return nil, fmt.Errorf("wfcio: registering %s: %w", id, err)
		}
	}

	return reg, nil
}

// convertNodes converts a raw YAML-decoded node grid to the symbol type
// catalog.Builder.Generate consumes.
func convertNodes(nodes [][]uint32) [][]socket.Symbol {
	out := make([][]socket.Symbol, len(nodes))
	for y, row := range nodes {
		symRow := make([]socket.Symbol, len(row))
		for x, sym := range row {
			symRow[x] = socket.Symbol(sym)
		}
		out[y] = symRow
	}

	return out
}
