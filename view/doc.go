// Package view implements read-only and read/write array-like facades over
// dense and templated (sparse) vectors and matrices.
//
// Every accessor is bounds-checked; labelled accessors additionally resolve
// through a label->index map. Writable facades run an optional write hook
// before committing a value, so a Model can keep derived caches consistent
// (see blueprint.Model's property system).
package view
