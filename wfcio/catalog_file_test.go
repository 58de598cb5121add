package wfcio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/socket"
)

const validDoc = `
id: 1
version: 1
tiles:
  - source: grass
    layer: 0
    weight: 1
    nodes:
      - [0, 1]
      - [1, 0]
  - source: water
    layer: 0
    weight: 3
    nodes:
      - [2, 2]
      - [2, 2]
`

func TestLoad_ParsesValidDocument(t *testing.T) {
	cf, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)
	assert.Equal(t, 1, cf.ID)
	assert.Equal(t, 1, cf.Version)
	require.Len(t, cf.Tiles, 2)
	assert.Equal(t, "grass", cf.Tiles[0].Source)
	assert.Equal(t, uint32(3), cf.Tiles[1].Weight)
}

func TestLoad_RejectsEmptyTiles(t *testing.T) {
	_, err := Load(strings.NewReader("id: 1\nversion: 1\ntiles: []\n"))
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("{not: valid: yaml::"))
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestLoad_RejectsNonSquareNodes(t *testing.T) {
	doc := `
id: 1
version: 1
tiles:
  - source: bad
    layer: 0
    weight: 1
    nodes:
      - [0, 1, 2]
      - [1, 0]
`
	_, err := Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrBadNodeCount)
}

func TestCatalogFile_LoadedTilesConvertsSymbols(t *testing.T) {
	cf, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)

	loaded := cf.LoadedTiles()
	require.Len(t, loaded, 2)
	assert.Equal(t, "grass", loaded[0].Source)
	assert.Equal(t, [][]socket.Symbol{{0, 1}, {1, 0}}, loaded[0].Nodes)
	assert.Equal(t, uint32(3), loaded[1].Weight)
}

func TestCatalogFile_RegistryNamespacesBySourceAndID(t *testing.T) {
	cf, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)

	reg, err := cf.Registry()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	grass, err := reg.Get(catalog.ID{Namespace: "1", Path: "grass"})
	require.NoError(t, err)
	assert.Equal(t, [][]socket.Symbol{{0, 1}, {1, 0}}, grass.Nodes)
	assert.Equal(t, uint32(1), grass.Weight)
}

func TestCatalogFile_RegistryRejectsDuplicateSource(t *testing.T) {
	doc := `
id: 1
version: 1
tiles:
  - source: grass
    layer: 0
    weight: 1
    nodes:
      - [0, 1]
      - [1, 0]
  - source: grass
    layer: 0
    weight: 2
    nodes:
      - [2, 2]
      - [2, 2]
`
	cf, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = cf.Registry()
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)
}
