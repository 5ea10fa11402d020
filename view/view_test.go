package view

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestVecBoundsAndLabels(t *testing.T) {
	labels := NewLabels([]string{"a", "b", "c"})
	v := NewVec(mat.NewVecDense(3, []float64{1, 2, 3}), labels)

	val, err := v.Get(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, val)

	val, err = v.GetLabel("c")
	require.NoError(t, err)
	require.Equal(t, 3.0, val)

	_, err = v.Get(5)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = v.GetLabel("z")
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestMutVecWriteHookAndReadOnly(t *testing.T) {
	var hookCalls []int
	hook := func(i int, v float64) error {
		hookCalls = append(hookCalls, i)
		return nil
	}
	mv := NewMutVec(mat.NewVecDense(2, []float64{0, 0}), nil, hook)
	require.NoError(t, mv.Set(1, 5))
	require.Equal(t, []int{1}, hookCalls)
	val, _ := mv.Get(1)
	require.Equal(t, 5.0, val)

	ro := mv.ReadOnly()
	_, ok := interface{}(ro).(interface{ Set(int, float64) error })
	require.False(t, ok, "read-only view must not expose Set")
}

func TestMutMatTemplateViolation(t *testing.T) {
	tmpl := NewTemplateFrom(2, 2, func(i, j int) bool { return i != j })
	mm := NewMutMat(mat.NewDense(2, 2, nil), tmpl, nil, nil, nil)

	require.NoError(t, mm.Set(0, 1, 3))
	err := mm.Set(0, 0, 1)
	require.ErrorIs(t, err, ErrTemplateViolation)
}

func TestMutMatOutOfBounds(t *testing.T) {
	mm := NewMutMat(mat.NewDense(2, 2, nil), nil, nil, nil, nil)
	err := mm.Set(5, 0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
