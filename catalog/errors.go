package catalog

import "errors"

// ErrEmptySource indicates Generate received a source grid with no rows or
// no columns.
var ErrEmptySource = errors.New("catalog: source grid must have at least one row and one column")

// ErrNonSquareSource indicates the source grid is not P x P: either its
// rows differ in length, or it is not square.
var ErrNonSquareSource = errors.New("catalog: source grid must be square (P rows of P symbols)")

// ErrZeroWeight indicates Generate received a weight of 0; every variant
// must carry a positive sampling weight.
var ErrZeroWeight = errors.New("catalog: weight must be >= 1")

// ErrPrecisionMismatch indicates Generate received a source grid whose side
// length does not match the Builder's configured Precision.
var ErrPrecisionMismatch = errors.New("catalog: source grid size does not match builder precision")

// ErrDuplicateID indicates Registry.Put was called with an ID that is
// already registered, whatever source it holds.
var ErrDuplicateID = errors.New("catalog: identifier already registered")

// ErrUnknownID indicates Registry.Get was called with an ID that was never
// Put.
var ErrUnknownID = errors.New("catalog: identifier not found")
