package generator

import (
	"math"
	"math/rand"
)

// NicheModel is the Williams & Martinez (2000) niche model: every species
// draws a niche value n_i ~ U(0,1), a feeding-range width r_i skewed toward
// the target connectance via a Beta(1, beta) draw, and a range center c_i
// uniform on [r_i/2, n_i - r_i/2]; species i consumes every species whose
// niche value falls within [c_i - r_i/2, c_i + r_i/2].
type NicheModel struct {
	// Connectance is the target connectance the range widths are scaled
	// to reproduce in expectation (the structural generator's acceptance
	// loop still resamples against the caller's actual Target, but this
	// seeds the distribution close to it so acceptance converges fast).
	Connectance float64
}

func (m NicheModel) Sample(rng *rand.Rand, s int) [][]bool {
	c := m.Connectance
	if c <= 0 {
		c = 0.15
	}
	beta := (1.0 / (2.0 * c)) - 1.0
	if beta < 1e-6 {
		beta = 1e-6
	}

	niche := make([]float64, s)
	lo := make([]float64, s)
	hi := make([]float64, s)
	for i := 0; i < s; i++ {
		niche[i] = rng.Float64()
		rangeWidth := niche[i] * (1 - math.Pow(1-rng.Float64(), 1/beta))
		if rangeWidth > niche[i] {
			rangeWidth = niche[i]
		}
		center := rng.Float64()*(niche[i]-rangeWidth) + rangeWidth/2
		lo[i] = center - rangeWidth/2
		hi[i] = center + rangeWidth/2
	}

	adj := make([][]bool, s)
	for i := range adj {
		adj[i] = make([]bool, s)
		for j := 0; j < s; j++ {
			if niche[j] >= lo[i] && niche[j] <= hi[i] {
				adj[i][j] = true
			}
		}
	}
	return adj
}
