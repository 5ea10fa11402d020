package dynamics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/components"
	"github.com/katalvlaran/ecodyn/dynamics"
)

func newChainModel(t *testing.T) *blueprint.Model {
	t.Helper()
	m := blueprint.NewModel(components.Registry, components.NewValue())
	require.NoError(t, m.Add(&components.SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0
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

func TestDerivativeProducerOnlyGrowsLogistically(t *testing.T) {
	m := newChainModel(t)
	v := components.From(m)
	u := []float64{5, 0} // consumer extinct, producer at half carrying capacity
	du := dynamics.Derivative(v, 0, u, 1e-6)
	require.InDelta(t, 1*5*(1-5.0/10.0), du[0], 1e-9)
}

func TestDerivativeConsumerGainsFromAssimilation(t *testing.T) {
	m := newChainModel(t)
	v := components.From(m)
	u := []float64{5, 2}
	du := dynamics.Derivative(v, 0, u, 1e-6)
	// F[1][0] = omega(=1, only prey) * alpha(=1) * B_0(=5) = 5
	// assimilation = B_1 * e * F = 2 * 0.5 * 5 = 5
	// maintenance = (x+d)*B_1 = 0.3*2 = 0.6
	require.InDelta(t, 5-0.6, du[1], 1e-9)
}

func TestDerivativeClampsExtinctSpeciesToNonPositive(t *testing.T) {
	m := newChainModel(t)
	v := components.From(m)
	u := []float64{0, 0} // both extinct
	du := dynamics.Derivative(v, 0, u, 1e-6)
	require.LessOrEqual(t, du[0], 0.0)
	require.LessOrEqual(t, du[1], 0.0)
}

func TestDerivativeClassicScalesWholeDenominatorByBodyMass(t *testing.T) {
	m := blueprint.NewModel(components.Registry, components.NewValue())
	require.NoError(t, m.Add(&components.SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0
	}
	require.NoError(t, m.Add(&components.FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&components.BodyMassPerSpecies{Mass: []float64{1, 5}}))
	require.NoError(t, m.Add(&components.EfficiencyScalar{E: 0.5}))
	require.NoError(t, m.Add(&components.FunctionalResponseClassic{
		HillExponent: 1,
		Preference:   [][]float64{{0, 0}, {1, 0}},
		HandlingTime: [][]float64{{0, 0}, {0.5, 0}},
		AttackRate:   [][]float64{{0, 0}, {2, 0}},
	}))
	v := components.From(m)

	u := []float64{5, 2}
	du := dynamics.Derivative(v, 0, u, 1e-6)

	// bracket = 1 + pref*ar*ht*B_0 = 1 + 1*2*0.5*5 = 6
	// denom = BodyMass[1]*bracket = 5*6 = 30
	// F[1][0] = pref*ar*B_0/denom = 1*2*5/30 = 1/3
	// assimilation = e * F[1][0] * B_1 = 0.5 * (1/3) * 2 = 1/3
	require.InDelta(t, 1.0/3.0, du[1], 1e-9)
}

func TestSpecializeMatchesDerivative(t *testing.T) {
	m := newChainModel(t)
	v := components.From(m)
	u := []float64{5, 2}
	want := dynamics.Derivative(v, 0, u, 1e-6)
	got := dynamics.Specialize(v, 1e-6)(0, u)
	require.Equal(t, want, got)
}
