package alias

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	m, err := New(map[string][]string{
		"trophic": {"feeding", "predation"},
	})
	require.NoError(t, err)

	key, err := m.Standardize("predation")
	require.NoError(t, err)
	require.Equal(t, "trophic", key)

	key, err = m.Standardize("trophic")
	require.NoError(t, err)
	require.Equal(t, "trophic", key)

	_, err = m.Standardize("nope")
	require.ErrorIs(t, err, ErrUnknownAlias)
}

func TestReferencesSortedByLengthThenLex(t *testing.T) {
	m, err := New(map[string][]string{
		"trophic": {"feeding", "predation", "consumption"},
	})
	require.NoError(t, err)

	refs := m.References("trophic")
	require.Equal(t, []string{"feeding", "trophic", "predation", "consumption"}, refs)
}

func TestDuplicateAlias(t *testing.T) {
	_, err := New(map[string][]string{
		"trophic": {"feeding", "feeding"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateAlias))
}

func TestAmbiguousAlias(t *testing.T) {
	_, err := New(map[string][]string{
		"trophic":     {"feeding"},
		"competition": {"feeding"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAmbiguousAlias))
}

func TestPackageTablesConstructOK(t *testing.T) {
	require.NotNil(t, Interactions)
	require.NotNil(t, Parameters)

	key, err := Interactions.Standardize("predation")
	require.NoError(t, err)
	require.Equal(t, "trophic", key)

	key, err = Parameters.Standardize("C")
	require.NoError(t, err)
	require.Equal(t, "connectance", key)
}
