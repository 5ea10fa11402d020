// Package topology implements a multi-compartment, labelled directed
// multigraph. Node compartments (e.g. "species", "nutrients") and edge
// compartments (e.g. "trophic", "competition", "facilitation",
// "interference", "refuge") each own a contiguous absolute index range.
// Removing a node tombstones it in place: its relative index within its
// compartment, and every other node's absolute index, remain stable.
package topology
