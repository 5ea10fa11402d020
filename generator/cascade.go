package generator

import "math/rand"

// CascadeModel is the Cohen & Newman (1985) cascade model: species are
// ranked uniformly at random on [0,1]; species i may consume species j only
// if rank_j < rank_i, each such potential link realized independently with
// probability p = 2 * C * S / (S - 1).
type CascadeModel struct {
	Connectance float64
}

func (m CascadeModel) Sample(rng *rand.Rand, s int) [][]bool {
	c := m.Connectance
	if c <= 0 {
		c = 0.15
	}
	p := 2 * c * float64(s) / float64(s-1)
	if p > 1 {
		p = 1
	}
	rank := make([]float64, s)
	for i := range rank {
		rank[i] = rng.Float64()
	}
	adj := make([][]bool, s)
	for i := range adj {
		adj[i] = make([]bool, s)
	}
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			if rank[j] < rank[i] && rng.Float64() < p {
				adj[i][j] = true
			}
		}
	}
	return adj
}
