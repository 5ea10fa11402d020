package components

import (
	"testing"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/stretchr/testify/require"
)

func newModel() *blueprint.Model {
	return blueprint.NewModel(Registry, NewValue())
}

func TestSpeciesNumberExpandsLabelsAndSlices(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 3}))
	v := From(m)
	require.Equal(t, []string{"species_0", "species_1", "species_2"}, v.SpeciesLabels)
	require.Len(t, v.BodyMass, 3)

	labels, err := m.Get("species.labels")
	require.NoError(t, err)
	require.Equal(t, v.SpeciesLabels, labels)
}

func TestSpeciesNamesRejectsDuplicates(t *testing.T) {
	m := newModel()
	err := m.Add(&SpeciesNames{Labels: []string{"wolf", "wolf"}})
	require.Error(t, err)
	require.ErrorContains(t, err, "wolf")
}

func TestFoodwebMatrixMarksProducers(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 3}))
	// 0 <- eats nothing (producer), 1 eats 0, 2 eats 1
	adj := [][]bool{
		{false, false, false},
		{true, false, false},
		{false, true, false},
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	v := From(m)
	require.Equal(t, []int{0}, Producers(v))
	require.Equal(t, ClassProducer, v.Class[0])
}

func TestFoodwebMatrixDimensionMismatch(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	err := m.Add(&FoodwebMatrix{Adjacency: [][]bool{{false, false, false}, {false, false, false}, {false, false, false}}})
	require.Error(t, err)
}

func TestBodyMassFromRatioUsesTrophicLevel(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 3}))
	adj := [][]bool{
		{false, false, false},
		{true, false, false},
		{false, true, false},
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&BodyMassFromRatio{Z: 10}))
	v := From(m)
	require.InDelta(t, 1.0, v.BodyMass[0], 1e-9)
	require.InDelta(t, 10.0, v.BodyMass[1], 1e-9)
	require.InDelta(t, 100.0, v.BodyMass[2], 1e-9)
}

func TestFunctionalResponseLinearDefaultsUniformPreference(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 3}))
	adj := [][]bool{
		{false, false, false},
		{true, false, false},
		{false, true, false},
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&FunctionalResponseLinear{Alpha: []float64{0, 1, 1}}))
	v := From(m)
	got, err := v.Preference.Get(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-9) // species 1 has exactly one prey
}

func TestModelAddFailureLeavesModelUntouched(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	err := m.Add(&FoodwebMatrix{Adjacency: [][]bool{{false}}}) // wrong size
	require.Error(t, err)
	require.False(t, m.IsActive(TagFoodweb))
	require.Equal(t, 2, From(m).NSpecies())
}

func TestValueCloneIsIndependent(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	v := From(m)
	clone := v.Clone().(*Value)
	clone.BodyMass[0] = 99
	require.NotEqual(t, clone.BodyMass[0], v.BodyMass[0])
}

func TestNonTrophicCompetitionLayerFromConnectance(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 4}))
	// all four producers, so every pair lies in competition's producer x
	// producer domain and the connectance sampler has something to pick from.
	adj := [][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(NonTrophicCompetitionLayer(LayerTopology{Connectance: 0.5, Seed: 1}, 0.2, nil)))
	v := From(m)
	layer, ok := v.NonTrophic[TagNonTrophicCompetition]
	require.True(t, ok)
	require.NotNil(t, layer.Form)
	require.True(t, layer.Symmetric)
}

func TestNonTrophicCompetitionLayerRejectsEdgeOutsideDomain(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0, so 1 is not a producer
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	matrix := [][]bool{
		{false, true}, // 0->1 is outside producer x producer
		{false, false},
	}
	err := m.Add(NonTrophicCompetitionLayer(LayerTopology{Matrix: matrix}, 0.2, nil))
	require.ErrorIs(t, err, ErrLayerDomainViolation)
}

func TestNonTrophicRefugeLayerRejectsConsumerToProducerEdge(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0, so 0 is prey
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	matrix := [][]bool{
		{false, false},
		{true, false}, // 1 (consumer, not producer) -> 0 (producer) is outside producer->prey
	}
	err := m.Add(NonTrophicRefugeLayer(LayerTopology{Matrix: matrix}, 0.1, nil))
	require.ErrorIs(t, err, ErrLayerDomainViolation)
}

func TestNonTrophicLayerRejectsAmbiguousTopologySource(t *testing.T) {
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	err := m.Add(NonTrophicFacilitationLayer(LayerTopology{Connectance: 0.5, LinkCount: 1}, 0.1, nil))
	require.Error(t, err)
}

func newClassicModelAt(t *testing.T, kelvin float64) *Value {
	t.Helper()
	m := newModel()
	require.NoError(t, m.Add(&SpeciesNumber{N: 2}))
	adj := [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0
	}
	require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: adj}))
	require.NoError(t, m.Add(&BodyMassPerSpecies{Mass: []float64{1, 10}}))
	require.NoError(t, m.Add(&Temperature{Kelvin: kelvin}))
	require.NoError(t, m.Add(&FunctionalResponseClassic{HillExponent: 1}))
	return From(m)
}

// TestFunctionalResponseClassicAttackRateRisesWithTemperature exercises the
// S7 scenario (spec.md §4.6): with a positive activation energy, the attack
// rate should rise monotonically as temperature goes from 273K to 310K.
func TestFunctionalResponseClassicAttackRateRisesWithTemperature(t *testing.T) {
	cold := newClassicModelAt(t, 273)
	warm := newClassicModelAt(t, 310)

	arCold, err := cold.AttackRate.Get(1, 0)
	require.NoError(t, err)
	arWarm, err := warm.AttackRate.Get(1, 0)
	require.NoError(t, err)
	require.Greater(t, arWarm, arCold)

	htCold, err := cold.HandlingTime.Get(1, 0)
	require.NoError(t, err)
	htWarm, err := warm.HandlingTime.Get(1, 0)
	require.NoError(t, err)
	require.Less(t, htWarm, htCold)
}

func TestGrowthRateAllometricUsesArrheniusWhenTemperatureIsSet(t *testing.T) {
	build := func(kelvin float64) *Value {
		m := newModel()
		require.NoError(t, m.Add(&SpeciesNumber{N: 1}))
		require.NoError(t, m.Add(&FoodwebMatrix{Adjacency: [][]bool{{false}}}))
		require.NoError(t, m.Add(&BodyMassPerSpecies{Mass: []float64{1}}))
		require.NoError(t, m.Add(&MetabolicClassBySpecies{Class: []MetabolicClass{ClassProducer}}))
		require.NoError(t, m.Add(&Temperature{Kelvin: kelvin}))
		require.NoError(t, m.Add(GrowthRateAllometric(nil)))
		return From(m)
	}
	cold := build(273)
	warm := build(310)
	require.Greater(t, warm.GrowthRate[0], cold.GrowthRate[0])
}
