package components

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/rates"
	"github.com/katalvlaran/ecodyn/view"
	"gonum.org/v1/gonum/mat"
)

// FunctionalResponseLinear brings the linear functional response
// F_ij = omega_ij * alpha_i * B_j. Alpha is the per-species consumption
// rate; Preference, if nil, defaults to uniform over each consumer's prey.
type FunctionalResponseLinear struct {
	Alpha      []float64
	Preference [][]float64 // nil => uniform
}

func (b *FunctionalResponseLinear) Component() blueprint.Tag { return TagFunctionalResponse }
func (b *FunctionalResponseLinear) EarlyCheck() error         { return nil }
func (b *FunctionalResponseLinear) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb}
}
func (b *FunctionalResponseLinear) Brings() []blueprint.Brought { return nil }

func (b *FunctionalResponseLinear) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	if len(b.Alpha) != n {
		return fmt.Errorf("%w: alpha has %d entries, model has %d species", ErrDimensionMismatch, len(b.Alpha), n)
	}
	return checkOptionalMatrix(b.Preference, n)
}

func (b *FunctionalResponseLinear) Expand(m *blueprint.Model) error {
	v := From(m)
	copy(v.ConsumptionRate, b.Alpha)
	v.FR = FRLinear
	v.Preference = buildInteractionMatrix(v, b.Preference, defaultUniformPreference)
	return nil
}

// FunctionalResponseBioenergetic brings the bioenergetic (Yodzis-Innes)
// functional response. HalfSaturation and Interference, if nil, default to
// 1 and 0 respectively; HillExponent defaults to 2; Preference defaults to
// uniform.
type FunctionalResponseBioenergetic struct {
	HillExponent  float64 // 0 => default 2
	Preference    [][]float64
	Interference  []float64 // nil => all zero
	HalfSaturation []float64 // nil => all one
}

func (b *FunctionalResponseBioenergetic) Component() blueprint.Tag { return TagFunctionalResponse }
func (b *FunctionalResponseBioenergetic) EarlyCheck() error {
	if b.HillExponent != 0 && b.HillExponent < 1 {
		return fmt.Errorf("%w: Hill exponent must be >= 1", ErrInvalidRange)
	}
	return nil
}
func (b *FunctionalResponseBioenergetic) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb}
}
func (b *FunctionalResponseBioenergetic) Brings() []blueprint.Brought { return nil }

func (b *FunctionalResponseBioenergetic) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	if b.Interference != nil && len(b.Interference) != n {
		return fmt.Errorf("%w: interference has %d entries, model has %d species", ErrDimensionMismatch, len(b.Interference), n)
	}
	if b.HalfSaturation != nil && len(b.HalfSaturation) != n {
		return fmt.Errorf("%w: half-saturation has %d entries, model has %d species", ErrDimensionMismatch, len(b.HalfSaturation), n)
	}
	return checkOptionalMatrix(b.Preference, n)
}

func (b *FunctionalResponseBioenergetic) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	v.FR = FRBioenergetic
	v.HillExponent = b.HillExponent
	if v.HillExponent == 0 {
		v.HillExponent = 2
	}
	if b.Interference != nil {
		copy(v.Interference, b.Interference)
	}
	if b.HalfSaturation != nil {
		copy(v.HalfSaturationDensity, b.HalfSaturation)
	} else {
		for i := 0; i < n; i++ {
			v.HalfSaturationDensity[i] = 1
		}
	}
	v.Preference = buildInteractionMatrix(v, b.Preference, defaultUniformPreference)
	return nil
}

// FunctionalResponseClassic brings the classic (Beddington-DeAngelis-style)
// functional response with explicit handling time and attack rate. Any nil
// matrix falls back to the allometric default (handling time
// 0.3*M_i^-0.48*M_j^-0.66; attack rate 50*M_i^0.45*M_j^0.15, with the
// consumer's M_i exponent zeroed when it is a producer, i.e. sessile).
type FunctionalResponseClassic struct {
	HillExponent  float64
	Preference    [][]float64
	Interference  []float64
	HandlingTime  [][]float64
	AttackRate    [][]float64
}

func (b *FunctionalResponseClassic) Component() blueprint.Tag { return TagFunctionalResponse }
func (b *FunctionalResponseClassic) EarlyCheck() error {
	if b.HillExponent != 0 && b.HillExponent < 1 {
		return fmt.Errorf("%w: Hill exponent must be >= 1", ErrInvalidRange)
	}
	return nil
}
func (b *FunctionalResponseClassic) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb, TagBodyMass}
}
func (b *FunctionalResponseClassic) Brings() []blueprint.Brought { return nil }

func (b *FunctionalResponseClassic) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	if b.Interference != nil && len(b.Interference) != n {
		return fmt.Errorf("%w: interference has %d entries, model has %d species", ErrDimensionMismatch, len(b.Interference), n)
	}
	if err := checkOptionalMatrix(b.Preference, n); err != nil {
		return err
	}
	if err := checkOptionalMatrix(b.HandlingTime, n); err != nil {
		return err
	}
	return checkOptionalMatrix(b.AttackRate, n)
}

func (b *FunctionalResponseClassic) Expand(m *blueprint.Model) error {
	v := From(m)
	v.FR = FRClassic
	v.HillExponent = b.HillExponent
	if v.HillExponent == 0 {
		v.HillExponent = 2
	}
	if b.Interference != nil {
		copy(v.Interference, b.Interference)
	}
	v.Preference = buildInteractionMatrix(v, b.Preference, defaultUniformPreference)
	if v.HasTemperature {
		v.HandlingTime = buildInteractionMatrix(v, b.HandlingTime, func(v *Value, i, j int) float64 {
			return rates.Interaction(v.BodyMass[i], v.BodyMass[j], v.Temperature, DefaultHandlingTimeArrhenius)
		})
		v.AttackRate = buildInteractionMatrix(v, b.AttackRate, func(v *Value, i, j int) float64 {
			c := DefaultAttackRateArrhenius
			if v.Class[i] == ClassProducer {
				c.B = 0 // sessile correction
			}
			return rates.Interaction(v.BodyMass[i], v.BodyMass[j], v.Temperature, c)
		})
		return nil
	}
	v.HandlingTime = buildInteractionMatrix(v, b.HandlingTime, func(v *Value, i, j int) float64 {
		return 0.3 * math.Pow(v.BodyMass[i], -0.48) * math.Pow(v.BodyMass[j], -0.66)
	})
	v.AttackRate = buildInteractionMatrix(v, b.AttackRate, func(v *Value, i, j int) float64 {
		exponentI := 0.45
		if v.Class[i] == ClassProducer {
			exponentI = 0 // sessile correction
		}
		return 50 * math.Pow(v.BodyMass[i], exponentI) * math.Pow(v.BodyMass[j], 0.15)
	})
	return nil
}

func checkOptionalMatrix(mat [][]float64, n int) error {
	if mat == nil {
		return nil
	}
	if len(mat) != n {
		return fmt.Errorf("%w: matrix has %d rows, model has %d species", ErrDimensionMismatch, len(mat), n)
	}
	for _, row := range mat {
		if len(row) != n {
			return fmt.Errorf("%w: matrix row has %d entries, model has %d species", ErrDimensionMismatch, len(row), n)
		}
	}
	return nil
}

func defaultUniformPreference(v *Value, i, j int) float64 {
	outdeg := 0
	for k := 0; k < v.NSpecies(); k++ {
		if v.Foodweb.Allows(i, k) {
			outdeg++
		}
	}
	if outdeg == 0 {
		return 0
	}
	return 1 / float64(outdeg)
}

// buildInteractionMatrix sizes a *view.MutMat on the trophic template,
// filling it from explicit (if non-nil) or a per-cell default function.
func buildInteractionMatrix(v *Value, explicit [][]float64, def func(v *Value, i, j int) float64) *view.MutMat {
	n := v.NSpecies()
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !v.Foodweb.Allows(i, j) {
				continue
			}
			val := def(v, i, j)
			if explicit != nil {
				val = explicit[i][j]
			}
			raw.Set(i, j, val)
		}
	}
	return view.NewMutMat(raw, v.Foodweb, nil, nil, nil)
}
