package observables_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecodyn/observables"
	"github.com/katalvlaran/ecodyn/simulate"
)

func TestRichnessCountsAboveThreshold(t *testing.T) {
	require.Equal(t, 2, observables.Richness([]float64{0, 1e-9, 1, 2}, 1e-6))
}

func TestPersistenceIsFractionOfOriginalPool(t *testing.T) {
	require.InDelta(t, 0.5, observables.Persistence([]float64{1, 0}, 1e-6, 2), 1e-9)
}

func TestShannonDiversityIsMaximalForEvenCommunity(t *testing.T) {
	even := observables.ShannonDiversity([]float64{1, 1, 1, 1})
	uneven := observables.ShannonDiversity([]float64{10, 0.01, 0.01, 0.01})
	require.InDelta(t, 4.0, even, 1e-9)
	require.Greater(t, even, uneven)
}

func TestShannonDiversityZeroForExtinctCommunity(t *testing.T) {
	require.Equal(t, 0.0, observables.ShannonDiversity([]float64{0, 0, 0}))
}

func TestExtinctionTimesPreservesRecordedOrder(t *testing.T) {
	sol := &simulate.Solution{
		SpeciesLabels:   []string{"a", "b", "c"},
		ExtinctionOrder: []int{2, 0},
		ExtinctionTime:  map[int]float64{2: 1.0, 0: 2.0},
	}
	got := observables.ExtinctionTimes(sol)
	require.Equal(t, []observables.ExtinctionRecord{{Species: "c", Time: 1.0}, {Species: "a", Time: 2.0}}, got)
}

func TestSurvivorsExcludesExtinctSpecies(t *testing.T) {
	sol := &simulate.Solution{
		SpeciesLabels:   []string{"wolf", "deer", "grass"},
		NSpecies:        3,
		ExtinctionOrder: []int{0},
	}
	require.Equal(t, []string{"deer", "grass"}, observables.Survivors(sol))
}

func TestShannonDiversityMatchesManualEntropy(t *testing.T) {
	biomass := []float64{3, 1}
	got := observables.ShannonDiversity(biomass)
	p0, p1 := 0.75, 0.25
	want := math.Exp(-(p0*math.Log(p0) + p1*math.Log(p1)))
	require.InDelta(t, want, got, 1e-9)
}
