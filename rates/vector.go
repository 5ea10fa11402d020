package rates

import "gonum.org/v1/gonum/floats"

// Total sums a per-species rate vector (e.g. the output of AllometricVector
// or InteractionMatrix's row sums), for callers reporting aggregate demand
// rather than per-species detail.
func Total(rates []float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	return floats.Sum(rates)
}

// InteractionMatrix evaluates Interaction for every (i, j) pair allowed by
// allow, leaving disallowed entries at zero, as a dense [][]float64. No
// other package of this module calls it; the components package builds its
// attack-rate/handling-time defaults entry by entry.
func InteractionMatrix(mass []float64, tempKelvin float64, c ArrheniusCoefficients, allow func(i, j int) bool) [][]float64 {
	n := len(mass)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			if allow(i, j) {
				out[i][j] = Interaction(mass[i], mass[j], tempKelvin, c)
			}
		}
	}
	return out
}
