// Package render turns a collapsed grid of tile.Variants into a printable
// form. It has no opinion on what a glyph means -- the caller supplies the
// lookup, keyed on Variant.ID(), matching the loader-agnostic stance
// wfcio takes on catalog files.
package render
