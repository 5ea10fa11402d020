// Package observables computes summary statistics off a simulate.Solution:
// richness, persistence, total biomass, Shannon diversity, and ordered
// extinction-time queries (spec.md §4.9). Every function here is a pure
// reducer over a Solution's trajectory; none mutate it.
package observables
