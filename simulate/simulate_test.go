package simulate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/components"
	"github.com/katalvlaran/ecodyn/simulate"
)

func newChainModel(t *testing.T) *blueprint.Model {
	t.Helper()
	m := blueprint.NewModel(components.Registry, components.NewValue())
	require.NoError(t, m.Add(&components.SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false},
		{true, false},
	}
	require.NoError(t, m.Add(&components.FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&components.BodyMassPerSpecies{Mass: []float64{1, 10}}))
	require.NoError(t, m.Add(components.MortalityPerSpecies([]float64{0, 0.1})))
	require.NoError(t, m.Add(components.MetabolismPerSpecies([]float64{0, 0.2})))
	require.NoError(t, m.Add(components.GrowthRatePerSpecies([]float64{1, 0})))
	require.NoError(t, m.Add(&components.EfficiencyScalar{E: 0.5}))
	require.NoError(t, m.Add(&components.ProducerGrowthLogistic{Capacity: []float64{10, 0}}))
	require.NoError(t, m.Add(&components.FunctionalResponseLinear{Alpha: []float64{0, 1}}))
	return m
}

func TestSimulateCompletesAndTracksTrajectory(t *testing.T) {
	m := newChainModel(t)
	sol, err := simulate.Simulate(m, []float64{5, 2}, 1.0, simulate.Options{Integrator: simulate.FixedStepRK4{}, InitialStep: 0.01})
	require.NoError(t, err)
	require.Equal(t, simulate.RetcodeCompleted, sol.Retcode)
	require.Equal(t, 5.0, sol.Trajectory[0][0])
	require.InDelta(t, 1.0, sol.Times[len(sol.Times)-1], 1e-9)
}

func TestSimulateRecordsExtinctionInAscendingOrderOnTies(t *testing.T) {
	m := newChainModel(t)
	fired := make([]int, 0)
	opts := simulate.Options{
		Integrator:          simulate.FixedStepRK4{},
		InitialStep:         0.1,
		ExtinctionThreshold: 1.0, // generous threshold so both species trip on the first step
		OnExtinction:        func(i int, t float64, u []float64) { fired = append(fired, i) },
	}
	_, err := simulate.Simulate(m, []float64{0.5, 0.5}, 0.2, opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, fired)
}

func TestSimulateStopsAtSteadyStateWhenCallbackAccepts(t *testing.T) {
	m := newChainModel(t)
	opts := simulate.Options{
		Integrator:    simulate.FixedStepRK4{},
		InitialStep:   0.01,
		AbsTol:        1e6, // trivially always "at steady state"
		OnSteadyState: func(t float64, u []float64) bool { return true },
	}
	sol, err := simulate.Simulate(m, []float64{5, 2}, 10, opts)
	require.NoError(t, err)
	require.Equal(t, simulate.RetcodeSteadyState, sol.Retcode)
}

func TestSimulateRejectsMismatchedStateDimension(t *testing.T) {
	m := newChainModel(t)
	_, err := simulate.Simulate(m, []float64{1}, 1, simulate.Options{})
	require.Error(t, err)
}

func TestSimulateSnapsExtinctBiomassToZero(t *testing.T) {
	m := newChainModel(t)
	opts := simulate.Options{
		Integrator:          simulate.FixedStepRK4{},
		InitialStep:         0.1,
		ExtinctionThreshold: 1.0, // both species trip on the first step
	}
	sol, err := simulate.Simulate(m, []float64{0.5, 0.5}, 0.5, opts)
	require.NoError(t, err)
	require.Contains(t, sol.ExtinctionTime, 0)
	require.Contains(t, sol.ExtinctionTime, 1)
	last := sol.Trajectory[len(sol.Trajectory)-1]
	require.Equal(t, 0.0, last[0])
	require.Equal(t, 0.0, last[1])
}

// newProducerOutlivesPredatorModel builds a two-species chain where the
// consumer's mortality heavily outweighs what it gains from the producer,
// so the consumer goes extinct quickly while the producer's own logistic
// growth keeps it alive.
func newProducerOutlivesPredatorModel(t *testing.T) *blueprint.Model {
	t.Helper()
	m := blueprint.NewModel(components.Registry, components.NewValue())
	require.NoError(t, m.Add(&components.SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false},
		{true, false},
	}
	require.NoError(t, m.Add(&components.FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&components.BodyMassPerSpecies{Mass: []float64{1, 1}}))
	require.NoError(t, m.Add(components.MortalityPerSpecies([]float64{0, 5})))
	require.NoError(t, m.Add(components.MetabolismPerSpecies([]float64{0, 0})))
	require.NoError(t, m.Add(components.GrowthRatePerSpecies([]float64{1, 0})))
	require.NoError(t, m.Add(&components.EfficiencyScalar{E: 0.1}))
	require.NoError(t, m.Add(&components.ProducerGrowthLogistic{Capacity: []float64{10, 0}}))
	require.NoError(t, m.Add(&components.FunctionalResponseLinear{Alpha: []float64{0, 0.1}}))
	return m
}

func TestAdvisoryFlagsProducerWithNoSurvivingPredator(t *testing.T) {
	m := newProducerOutlivesPredatorModel(t)
	opts := simulate.Options{
		Integrator:          simulate.FixedStepRK4{},
		InitialStep:         0.01,
		ExtinctionThreshold: 0.1,
	}
	sol, err := simulate.Simulate(m, []float64{5, 1}, 2, opts)
	require.NoError(t, err)
	require.Contains(t, sol.ExtinctionTime, 1)
	require.NotContains(t, sol.ExtinctionTime, 0)
	found := false
	for _, a := range sol.Advisories {
		if strings.Contains(a, "no surviving predator") {
			found = true
		}
	}
	require.True(t, found, "advisories: %v", sol.Advisories)
}

// newPredatorOutlivesProducerModel builds a two-species chain where the
// consumer only draws down the producer (no growth, no self-maintenance
// cost), so the producer goes extinct while the consumer, having nothing
// left to lose, survives with flat biomass.
func newPredatorOutlivesProducerModel(t *testing.T) *blueprint.Model {
	t.Helper()
	m := blueprint.NewModel(components.Registry, components.NewValue())
	require.NoError(t, m.Add(&components.SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false},
		{true, false},
	}
	require.NoError(t, m.Add(&components.FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&components.BodyMassPerSpecies{Mass: []float64{1, 1}}))
	require.NoError(t, m.Add(components.MortalityPerSpecies([]float64{0, 0})))
	require.NoError(t, m.Add(components.MetabolismPerSpecies([]float64{0, 0})))
	require.NoError(t, m.Add(components.GrowthRatePerSpecies([]float64{0, 0})))
	require.NoError(t, m.Add(&components.EfficiencyScalar{E: 0.5}))
	require.NoError(t, m.Add(&components.ProducerGrowthLogistic{Capacity: []float64{10, 0}}))
	require.NoError(t, m.Add(&components.FunctionalResponseLinear{Alpha: []float64{0, 1}}))
	return m
}

func TestAdvisoryFlagsConsumerWithNoSurvivingPrey(t *testing.T) {
	m := newPredatorOutlivesProducerModel(t)
	opts := simulate.Options{
		Integrator:          simulate.FixedStepRK4{},
		InitialStep:         0.01,
		ExtinctionThreshold: 0.1,
	}
	sol, err := simulate.Simulate(m, []float64{0.2, 5}, 10, opts)
	require.NoError(t, err)
	require.Contains(t, sol.ExtinctionTime, 0)
	require.NotContains(t, sol.ExtinctionTime, 1)
	found := false
	for _, a := range sol.Advisories {
		if strings.Contains(a, "no surviving prey") {
			found = true
		}
	}
	require.True(t, found, "advisories: %v", sol.Advisories)
}
