package tileset

import "errors"

// ErrEmptySet indicates Collapse was called against a Set with no matching
// variant, leaving the Set empty.
var ErrEmptySet = errors.New("tileset: set is empty")
