// Package generator samples random structural foodwebs: the niche model
// (Williams & Martinez 2000) and the cascade model (Cohen & Newman 1985),
// resampled under a connectance/link-count tolerance until acceptance or
// iter_max is exhausted.
//
// This package defines the Model interface components.FoodwebStructural
// samples through, with niche and cascade as its in-tree implementations; a
// caller may supply any other Model instead.
package generator
