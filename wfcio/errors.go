package wfcio

import "errors"

// ErrMalformedCatalog indicates the YAML document could not be parsed into
// a CatalogFile, or is missing its tiles list.
var ErrMalformedCatalog = errors.New("wfcio: malformed catalog document")

// ErrBadNodeCount indicates a tile's nodes field is not a square P x P
// grid (every row must have the same length as the number of rows).
var ErrBadNodeCount = errors.New("wfcio: tile nodes must form a square grid")
