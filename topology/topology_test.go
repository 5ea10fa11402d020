package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildChain3(t *testing.T) *Topology {
	t.Helper()
	top := New()
	_, err := top.AddNodeCompartment("species", 3)
	require.NoError(t, err)
	// 2 -> 1 -> 0 (predator -> prey)
	require.NoError(t, top.AddEdge("trophic", 2, 1))
	require.NoError(t, top.AddEdge("trophic", 1, 0))
	return top
}

func TestAddAndQuery(t *testing.T) {
	top := buildChain3(t)

	n, err := top.NNodes("species")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	out, err := top.OutgoingIndices(2, "trophic")
	require.NoError(t, err)
	require.Equal(t, []int{1}, out)

	in, err := top.IncomingIndices(1, "trophic")
	require.NoError(t, err)
	require.Equal(t, []int{2}, in)
}

func TestRemoveNodeTombstoneRoundTrip(t *testing.T) {
	top := buildChain3(t)

	require.NoError(t, top.RemoveNode("species", 1))

	live, err := top.IsLive("species", 1)
	require.NoError(t, err)
	require.False(t, live)

	// Absolute indices of the other nodes are stable.
	abs0, err := top.AbsoluteIndex("species", 0)
	require.NoError(t, err)
	require.Equal(t, 0, abs0)
	abs2, err := top.AbsoluteIndex("species", 2)
	require.NoError(t, err)
	require.Equal(t, 2, abs2)

	// Edges touching the tombstoned node are gone.
	out, err := top.OutgoingIndices(2, "trophic")
	require.NoError(t, err)
	require.Empty(t, out)
	in, err := top.IncomingIndices(1, "trophic")
	require.NoError(t, err)
	require.Empty(t, in)

	liveIdx, err := top.LiveNodeIndices("species")
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, liveIdx)
}

func TestAdjacencyMatrixPruneAndTranspose(t *testing.T) {
	top := buildChain3(t)

	m, err := top.AdjacencyMatrix("species", "trophic", "species", false, false)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows)
	require.True(t, m.At(2, 1))
	require.True(t, m.At(1, 0))
	require.False(t, m.At(0, 1))

	mt, err := top.AdjacencyMatrix("species", "trophic", "species", true, false)
	require.NoError(t, err)
	require.True(t, mt.At(1, 2))

	require.NoError(t, top.RemoveNode("species", 1))
	pruned, err := top.AdjacencyMatrix("species", "trophic", "species", false, true)
	require.NoError(t, err)
	require.Equal(t, 2, pruned.Rows)
	require.Equal(t, []int{0, 2}, pruned.RowOf)
}

func TestDisconnectedComponents(t *testing.T) {
	top := New()
	_, err := top.AddNodeCompartment("species", 4)
	require.NoError(t, err)
	require.NoError(t, top.AddEdge("trophic", 1, 0)) // component {0,1}
	// 2 and 3 isolated -> singleton components

	comps := top.DisconnectedComponents()
	require.Len(t, comps, 3)

	sizes := make([]int, 0, len(comps))
	for _, c := range comps {
		live, err := c.LiveNodeIndices("species")
		require.NoError(t, err)
		sizes = append(sizes, len(live))
	}
	require.Contains(t, sizes, 2)
	require.Contains(t, sizes, 1)
}
