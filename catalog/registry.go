package catalog

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wfc/socket"
	"github.com/katalvlaran/wfc/tile"
)

// ID names a tile source within a Registry: Namespace groups sources from
// one catalog file (or one author), Path names the specific tile within
// it. This mirrors the "source" string in the wfcio catalog file format --
// Registry is what lets several catalog files be merged into one Builder
// without their source names colliding.
type ID struct {
	Namespace string
	Path      string
}

// String renders the ID as "namespace:path".
func (id ID) String() string {
	return fmt.Sprintf("%s:%s", id.Namespace, id.Path)
}

// Source is one raw tile definition as read from a catalog file, prior to
// catalog.Builder expanding it into variants.
type Source struct {
	Nodes  [][]socket.Symbol
	Layer  int
	Weight uint32
}

// Registry is a namespaced store of raw tile Sources, keyed by ID. It is
// not safe for concurrent use.
type Registry struct {
	sources map[ID]Source
}

// NewRegistry returns an empty Registry.
//
// Complexity: O(1).
func NewRegistry() *Registry {
	return &Registry{sources: make(map[ID]Source)}
}

// Len returns the number of registered sources.
func (r *Registry) Len() int { return len(r.sources) }

// Put registers source under id. Returns ErrDuplicateID if id is already
// registered.
//
// Complexity: O(1).
func (r *Registry) Put(id ID, source Source) error {
	if _, exists := r.sources[id]; exists {
		return ErrDuplicateID
	}
	r.sources[id] = source

	return nil
}

// Get returns the Source registered under id, or ErrUnknownID.
//
// Complexity: O(1).
func (r *Registry) Get(id ID) (Source, error) {
	s, ok := r.sources[id]
	if !ok {
		return Source{}, ErrUnknownID
	}

	return s, nil
}

// IDs returns every registered ID, in no particular order.
//
// Complexity: O(n).
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.sources))
	for id := range r.sources {
		ids = append(ids, id)
	}

	return ids
}

// GenerateAll runs b.Generate for every registered source, in ascending
// (Namespace, Path) order, so the same Registry always yields the same
// catalog, and returns the combined, per-source-deduplicated variant list.
//
// Complexity: O(n log n + n * 16 * P).
func (r *Registry) GenerateAll(b *Builder) ([]tile.Variant, error) {
	ids := r.IDs()
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Path < ids[j].Path
	})

	var all []tile.Variant
	for _, id := range ids {
		src := r.sources[id]
		vs, err := b.Generate(src.Nodes, src.Layer, src.Weight)
		if err != nil {
			return nil, fmt.Errorf("catalog: generating %s: %w", id, err)
		}
		all = append(all, vs...)
	}

	return all, nil
}
