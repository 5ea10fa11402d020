package topology

import "fmt"

// BoolMatrix is a dense boolean adjacency matrix returned by
// Topology.AdjacencyMatrix.
type BoolMatrix struct {
	Rows, Cols int
	// RowOf/ColOf map a matrix row/col back to the absolute node index it
	// represents (meaningful mainly when prune=true compacted out dead rows).
	RowOf, ColOf []int
	data         []bool // row-major, len == Rows*Cols
}

// At reports whether there is an edge from row i to col j.
func (b *BoolMatrix) At(i, j int) bool { return b.data[i*b.Cols+j] }

func (b *BoolMatrix) set(i, j int, v bool) { b.data[i*b.Cols+j] = v }

// AdjacencyMatrix builds the boolean adjacency matrix between srcCompartment
// and dstCompartment induced by edgeCompartmentName.
//
// If prune is true, tombstoned nodes are dropped entirely and the matrix is
// sized to the live node counts; RowOf/ColOf then map back to the absolute
// indices of the surviving nodes. If prune is false, the matrix spans every
// node (live or not) in each compartment, with tombstoned rows/cols all
// false.
//
// If transpose is true, the returned matrix is the plain transpose: rows
// index dstCompartment and columns srcCompartment, and M[i][j] reports the
// edge from src_j to dst_i (edge direction is not reversed).
func (t *Topology) AdjacencyMatrix(srcCompartment, edgeCompartmentName, dstCompartment string, transpose, prune bool) (*BoolMatrix, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	src, ok := t.nodes[srcCompartment]
	if !ok {
		return nil, fmt.Errorf("topology: AdjacencyMatrix: src %q: %w", srcCompartment, ErrUnknownCompartment)
	}
	dst, ok := t.nodes[dstCompartment]
	if !ok {
		return nil, fmt.Errorf("topology: AdjacencyMatrix: dst %q: %w", dstCompartment, ErrUnknownCompartment)
	}
	ec, ok := t.edges[edgeCompartmentName]
	if !ok {
		return nil, fmt.Errorf("topology: AdjacencyMatrix: edge %q: %w", edgeCompartmentName, ErrUnknownCompartment)
	}

	rowOf := compartmentIndices(src, prune)
	colOf := compartmentIndices(dst, prune)

	out := &BoolMatrix{Rows: len(rowOf), Cols: len(colOf), RowOf: rowOf, ColOf: colOf, data: make([]bool, len(rowOf)*len(colOf))}
	for i, rAbs := range rowOf {
		for j, cAbs := range colOf {
			if _, has := ec.out[rAbs][cAbs]; has {
				out.set(i, j, true)
			}
		}
	}
	if transpose {
		out = out.transposed()
	}
	return out, nil
}

func compartmentIndices(c *nodeCompartment, prune bool) []int {
	out := make([]int, 0, c.n())
	for rel := 0; rel < c.n(); rel++ {
		if prune && !c.live[rel] {
			continue
		}
		out = append(out, c.start+rel)
	}
	return out
}

func (b *BoolMatrix) transposed() *BoolMatrix {
	out := &BoolMatrix{Rows: b.Cols, Cols: b.Rows, RowOf: b.ColOf, ColOf: b.RowOf, data: make([]bool, len(b.data))}
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			out.set(j, i, b.At(i, j))
		}
	}
	return out
}
