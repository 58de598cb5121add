// Package wfcio loads tile catalog files: a YAML document naming a catalog
// id, a format version, and a list of tile records (source key, layer,
// weight, and a P x P grid of symbols), ready to hand to catalog.Builder.
//
// The format is the concrete realization of the loader-agnostic file shape
// described alongside the solver core: the core itself has no opinion on
// how a tile catalog reaches memory.
package wfcio
