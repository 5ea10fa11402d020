package rates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllometricNullCoefficient(t *testing.T) {
	require.Zero(t, Allometric(10, Coefficients{A: 0, B: 2}))
}

func TestAllometricScaling(t *testing.T) {
	got := Allometric(4, Coefficients{A: 2, B: 0.5})
	require.InDelta(t, 4.0, got, 1e-9) // 2 * 4^0.5 = 2*2 = 4
}

func TestAllometricVector(t *testing.T) {
	mass := []float64{1, 4, 9}
	coeffs := []Coefficients{{A: 1, B: 2}, {A: 1, B: 2}, {A: 1, B: 2}}
	got := AllometricVector(mass, coeffs)
	require.InDeltaSlice(t, []float64{1, 16, 81}, got, 1e-9)
}

func TestInteractionAtReferenceTemperatureMatchesAllometric(t *testing.T) {
	c := ArrheniusCoefficients{A: 50, B: 0.45, C: 0.15, Ea: 0.65}
	got := Interaction(2, 3, TRef, c)
	want := c.A * math.Pow(2, c.B) * math.Pow(3, c.C) // exp(0) == 1 at T == TRef
	require.InDelta(t, want, got, 1e-9)
}

func TestInteractionMonotonicWithTemperatureForPositiveEa(t *testing.T) {
	c := ArrheniusCoefficients{A: 50, B: 0.45, C: 0.15, Ea: 0.65}
	lo := Interaction(1, 1, 273, c)
	hi := Interaction(1, 1, 310, c)
	require.Greater(t, hi, lo)
}

func TestScalarOmitsSecondMassFactor(t *testing.T) {
	c := ArrheniusCoefficients{A: 1, B: 1, C: 99, Ea: 0}
	require.InDelta(t, 5.0, Scalar(5, TRef, c), 1e-9)
}

func TestNullCoefficientDisablesInteractionRate(t *testing.T) {
	c := ArrheniusCoefficients{A: 0, B: 1, C: 1, Ea: 1}
	require.Zero(t, Interaction(10, 10, 300, c))
	require.Zero(t, Scalar(10, 300, c))
}
