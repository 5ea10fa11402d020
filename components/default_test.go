package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chainAdjacency() [][]bool {
	return [][]bool{
		{false, false}, // 0 is a producer
		{true, false},  // 1 consumes 0
	}
}

func TestDefaultModelAssemblesSimulatableModel(t *testing.T) {
	m, err := DefaultModel(chainAdjacency())
	require.NoError(t, err)
	v := From(m)
	require.Equal(t, 2, v.NSpecies())
	require.Equal(t, ClassProducer, v.Class[0])
	require.Equal(t, ClassInvertebrate, v.Class[1])
	require.Positive(t, v.BodyMass[0])
	require.Positive(t, v.BodyMass[1])
	require.Equal(t, FRBioenergetic, v.FR)
	require.Equal(t, GrowthLogistic, v.Growth)
}

func TestDefaultModelOverrideReplacesSameTagDefault(t *testing.T) {
	m, err := DefaultModel(chainAdjacency(), &FunctionalResponseLinear{Alpha: []float64{0, 0.5}})
	require.NoError(t, err)
	v := From(m)
	require.Equal(t, FRLinear, v.FR)
}

func TestDefaultModelOverrideCanReplaceFoodweb(t *testing.T) {
	other := [][]bool{
		{false, false, false},
		{true, false, false},
		{false, true, false},
	}
	m, err := DefaultModel(chainAdjacency(),
		&SpeciesNumber{N: 3},
		&FoodwebMatrix{Adjacency: other},
	)
	require.NoError(t, err)
	v := From(m)
	require.Equal(t, 3, v.NSpecies())
	require.True(t, v.Foodweb.Allows(1, 0))
	require.True(t, v.Foodweb.Allows(2, 1))
}

func TestDefaultModelAddsExtraOverridesNotInDefaultSlots(t *testing.T) {
	m, err := DefaultModel(chainAdjacency(), &HillExponent{H: 3})
	require.NoError(t, err)
	v := From(m)
	require.Equal(t, 3.0, v.HillExponent)
}
