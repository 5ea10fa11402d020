package observables

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ecodyn/simulate"
)

// Richness counts species with biomass strictly above threshold.
func Richness(biomass []float64, threshold float64) int {
	n := 0
	for _, b := range biomass {
		if b > threshold {
			n++
		}
	}
	return n
}

// Persistence is the surviving fraction of the original species pool:
// Richness(biomass, threshold) / nOriginal.
func Persistence(biomass []float64, threshold float64, nOriginal int) float64 {
	if nOriginal == 0 {
		return 0
	}
	return float64(Richness(biomass, threshold)) / float64(nOriginal)
}

// TotalBiomass sums the biomass vector.
func TotalBiomass(biomass []float64) float64 {
	if len(biomass) == 0 {
		return 0
	}
	return floats.Sum(biomass)
}

// ShannonDiversity returns exp(-sum(p_i*ln(p_i))), p_i = biomass_i/total,
// restricted to species with positive biomass (an extinct species
// contributes neither mass nor information to the distribution). Returns 0
// for an empty or all-extinct community.
func ShannonDiversity(biomass []float64) float64 {
	total := TotalBiomass(biomass)
	if total <= 0 {
		return 0
	}
	p := make([]float64, 0, len(biomass))
	for _, b := range biomass {
		if b > 0 {
			p = append(p, b/total)
		}
	}
	if len(p) == 0 {
		return 0
	}
	return math.Exp(stat.Entropy(p))
}

// ExtinctionRecord pairs a species label with the time it went extinct.
type ExtinctionRecord struct {
	Species string
	Time    float64
}

// ExtinctionTimes returns sol's extinctions in the order they occurred
// (strictly increasing time, ascending index on ties — the order
// simulate.Simulate already records them in).
func ExtinctionTimes(sol *simulate.Solution) []ExtinctionRecord {
	out := make([]ExtinctionRecord, 0, len(sol.ExtinctionOrder))
	for _, i := range sol.ExtinctionOrder {
		out = append(out, ExtinctionRecord{Species: sol.SpeciesLabels[i], Time: sol.ExtinctionTime[i]})
	}
	return out
}

// Survivors returns the labels of species never extinct as of sol's final
// state, sorted for deterministic output.
func Survivors(sol *simulate.Solution) []string {
	extinct := make(map[int]bool, len(sol.ExtinctionOrder))
	for _, i := range sol.ExtinctionOrder {
		extinct[i] = true
	}
	out := make([]string, 0, sol.NSpecies)
	for i, label := range sol.SpeciesLabels {
		if !extinct[i] {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

// Summary bundles the scalar observables for a single trajectory state,
// spec.md §4.9's "richness/persistence/total_biomass/shannon_diversity"
// bundle.
type Summary struct {
	Richness        int
	Persistence     float64
	TotalBiomass    float64
	ShannonDiversity float64
}

// Summarize computes Summary for sol's final state.
func Summarize(sol *simulate.Solution, threshold float64) Summary {
	final := sol.FinalState()
	biomass := sol.Biomass(final)
	return Summary{
		Richness:         Richness(biomass, threshold),
		Persistence:      Persistence(biomass, threshold, sol.NSpecies),
		TotalBiomass:     TotalBiomass(biomass),
		ShannonDiversity: ShannonDiversity(biomass),
	}
}
