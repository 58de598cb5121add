package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/socket"
)

func TestRegistry_PutGetIDs(t *testing.T) {
	r := NewRegistry()
	id := ID{Namespace: "ns", Path: "grass"}
	src := Source{Nodes: grid3(1, 2, 3, 4, 5, 6, 7, 8, 9), Layer: 0, Weight: 1}

	require.NoError(t, r.Put(id, src))
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	assert.Equal(t, []ID{id}, r.IDs())
}

func TestRegistry_PutRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	id := ID{Namespace: "ns", Path: "grass"}
	src := Source{Nodes: grid3(1, 2, 3, 4, 5, 6, 7, 8, 9), Layer: 0, Weight: 1}

	require.NoError(t, r.Put(id, src))
	assert.ErrorIs(t, r.Put(id, src), ErrDuplicateID)
}

func TestRegistry_GetRejectsUnknownID(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(ID{Namespace: "ns", Path: "missing"})
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestID_String(t *testing.T) {
	id := ID{Namespace: "ns", Path: "grass"}
	assert.Equal(t, "ns:grass", id.String())
}

func TestRegistry_GenerateAllCombinesEverySource(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Put(ID{Namespace: "ns", Path: "a"}, Source{
		Nodes: grid3(1, 0, 1, 0, 1, 0, 1, 0, 1), Layer: 0, Weight: 1,
	}))
	require.NoError(t, r.Put(ID{Namespace: "ns", Path: "b"}, Source{
		Nodes: grid3(1, 2, 3, 4, 5, 6, 7, 8, 9), Layer: 0, Weight: 1,
	}))

	b := NewBuilder(3)
	variants, err := r.GenerateAll(b)
	require.NoError(t, err)

	// "a" is fully symmetric (dedups to 1), "b" has no symmetry (keeps more
	// than 1); GenerateAll must combine both source's variants.
	assert.Greater(t, len(variants), 1)
	assert.Equal(t, len(b.Tiles()), len(variants))
}

func TestRegistry_GenerateAllPropagatesBuilderError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Put(ID{Namespace: "ns", Path: "bad"}, Source{
		Nodes: [][]socket.Symbol{{1, 2}, {3}}, Layer: 0, Weight: 1,
	}))

	b := NewBuilder(3)
	_, err := r.GenerateAll(b)
	assert.ErrorIs(t, err, ErrNonSquareSource)
}
