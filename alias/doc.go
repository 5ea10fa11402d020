// Package alias implements an ordered mapping from a canonical key to a set
// of reference aliases, with guards against duplicate and ambiguous entries.
//
// It is used throughout ecodyn to let callers refer to interaction kinds
// (trophic, competition, facilitation, interference, refuge) and property
// names (topology/A, intensity/I, functional_form/F, connectance/C,
// number_of_links/L, symmetry/sym) by any of several accepted spellings.
package alias
