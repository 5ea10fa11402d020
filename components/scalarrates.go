package components

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/rates"
)

// perSpeciesRate is the shape shared by every simple per-species rate
// component: either an explicit vector, allometrically derived from body
// mass via a per-class coefficient table, or — when arrhenius is set and a
// Temperature component was added earlier — the Boltzmann-Arrhenius
// counterpart of that same table (spec.md §4.6).
type perSpeciesRate struct {
	tag         blueprint.Tag
	requireMass bool
	explicit    []float64
	allometric  map[MetabolicClass]rates.Coefficients
	arrhenius   map[MetabolicClass]rates.ArrheniusCoefficients
	assign      func(v *Value, vec []float64)
}

func (b *perSpeciesRate) Component() blueprint.Tag { return b.tag }

func (b *perSpeciesRate) EarlyCheck() error { return nil }

func (b *perSpeciesRate) Requires() []blueprint.Tag {
	req := []blueprint.Tag{TagSpecies}
	if b.allometric != nil || b.requireMass {
		req = append(req, TagBodyMass, TagMetabolicClass)
	}
	return req
}

func (b *perSpeciesRate) Brings() []blueprint.Brought { return nil }

func (b *perSpeciesRate) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	if b.explicit != nil && len(b.explicit) != n {
		return fmt.Errorf("%w: got %d values, model has %d species", ErrDimensionMismatch, len(b.explicit), n)
	}
	return nil
}

func (b *perSpeciesRate) Expand(m *blueprint.Model) error {
	v := From(m)
	var vec []float64
	switch {
	case b.explicit != nil:
		vec = append([]float64(nil), b.explicit...)
	case v.HasTemperature && b.arrhenius != nil:
		vec = make([]float64, v.NSpecies())
		for i, class := range v.Class {
			vec[i] = rates.Scalar(v.BodyMass[i], v.Temperature, b.arrhenius[class])
		}
	default:
		coeffs := coefficientsPerSpecies(v.Class, b.allometric)
		vec = rates.AllometricVector(v.BodyMass, coeffs)
	}
	b.assign(v, vec)
	return nil
}

// MortalityPerSpecies brings an explicit per-species natural mortality rate
// d_i.
func MortalityPerSpecies(d []float64) blueprint.Blueprint {
	return &perSpeciesRate{tag: TagMortality, explicit: d, assign: func(v *Value, vec []float64) { copy(v.Mortality, vec) }}
}

// MortalityAllometric derives d_i = a_class * M_i^b_class from table (or
// DefaultMortalityCoefficients if table is nil).
func MortalityAllometric(table map[MetabolicClass]rates.Coefficients) blueprint.Blueprint {
	if table == nil {
		table = DefaultMortalityCoefficients
	}
	return &perSpeciesRate{tag: TagMortality, allometric: table, assign: func(v *Value, vec []float64) { copy(v.Mortality, vec) }}
}

// MetabolismPerSpecies brings an explicit per-species metabolic rate x_i.
func MetabolismPerSpecies(x []float64) blueprint.Blueprint {
	return &perSpeciesRate{tag: TagMetabolism, explicit: x, assign: func(v *Value, vec []float64) { copy(v.Metabolism, vec) }}
}

// MetabolismAllometric derives x_i allometrically from table (or
// DefaultMetabolismCoefficients if table is nil); when a Temperature
// component was added first, uses DefaultMetabolismArrhenius instead.
func MetabolismAllometric(table map[MetabolicClass]rates.Coefficients) blueprint.Blueprint {
	if table == nil {
		table = DefaultMetabolismCoefficients
	}
	return &perSpeciesRate{tag: TagMetabolism, allometric: table, arrhenius: DefaultMetabolismArrhenius, assign: func(v *Value, vec []float64) { copy(v.Metabolism, vec) }}
}

// MaximumConsumptionPerSpecies brings an explicit per-species max
// consumption rate y_i.
func MaximumConsumptionPerSpecies(y []float64) blueprint.Blueprint {
	return &perSpeciesRate{tag: TagMaximumConsumption, explicit: y, assign: func(v *Value, vec []float64) { copy(v.MaxConsumption, vec) }}
}

// MaximumConsumptionAllometric derives y_i allometrically from table (or
// DefaultMaxConsumptionCoefficients if table is nil).
func MaximumConsumptionAllometric(table map[MetabolicClass]rates.Coefficients) blueprint.Blueprint {
	if table == nil {
		table = DefaultMaxConsumptionCoefficients
	}
	return &perSpeciesRate{tag: TagMaximumConsumption, allometric: table, assign: func(v *Value, vec []float64) { copy(v.MaxConsumption, vec) }}
}

// GrowthRatePerSpecies brings an explicit per-species intrinsic growth rate
// r_i (nonzero only for producers, by convention; no blueprint check
// enforces this — the derivative kernel applies growth to producers only).
func GrowthRatePerSpecies(r []float64) blueprint.Blueprint {
	return &perSpeciesRate{tag: TagGrowthRate, explicit: r, assign: func(v *Value, vec []float64) { copy(v.GrowthRate, vec) }}
}

// GrowthRateAllometric derives r_i allometrically from table (or
// DefaultGrowthRateCoefficients if table is nil); when a Temperature
// component was added first, uses DefaultGrowthRateArrhenius instead.
func GrowthRateAllometric(table map[MetabolicClass]rates.Coefficients) blueprint.Blueprint {
	if table == nil {
		table = DefaultGrowthRateCoefficients
	}
	return &perSpeciesRate{tag: TagGrowthRate, allometric: table, arrhenius: DefaultGrowthRateArrhenius, assign: func(v *Value, vec []float64) { copy(v.GrowthRate, vec) }}
}

// IntraspecificInterference brings an explicit per-species interference
// coefficient c_i.
type IntraspecificInterference struct {
	C []float64
}

func (b *IntraspecificInterference) Component() blueprint.Tag { return TagIntraspecificInterference }
func (b *IntraspecificInterference) EarlyCheck() error        { return nil }
func (b *IntraspecificInterference) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies}
}
func (b *IntraspecificInterference) Brings() []blueprint.Brought { return nil }
func (b *IntraspecificInterference) LateCheck(m *blueprint.Model) error {
	if n := From(m).NSpecies(); len(b.C) != n {
		return fmt.Errorf("%w: got %d values, model has %d species", ErrDimensionMismatch, len(b.C), n)
	}
	return nil
}
func (b *IntraspecificInterference) Expand(m *blueprint.Model) error {
	copy(From(m).Interference, b.C)
	return nil
}

// HalfSaturationDensity brings an explicit per-species half-saturation
// density B0_i (bioenergetic functional response).
type HalfSaturationDensity struct {
	B0 []float64
}

func (b *HalfSaturationDensity) Component() blueprint.Tag { return TagHalfSaturationDensity }
func (b *HalfSaturationDensity) EarlyCheck() error         { return nil }
func (b *HalfSaturationDensity) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }
func (b *HalfSaturationDensity) Brings() []blueprint.Brought { return nil }
func (b *HalfSaturationDensity) LateCheck(m *blueprint.Model) error {
	if n := From(m).NSpecies(); len(b.B0) != n {
		return fmt.Errorf("%w: got %d values, model has %d species", ErrDimensionMismatch, len(b.B0), n)
	}
	return nil
}
func (b *HalfSaturationDensity) Expand(m *blueprint.Model) error {
	copy(From(m).HalfSaturationDensity, b.B0)
	return nil
}

// HillExponent brings the scalar Hill exponent h (h >= 1) shared by every
// functional-response variant.
type HillExponent struct {
	H float64
}

func (b *HillExponent) Component() blueprint.Tag { return TagHillExponent }
func (b *HillExponent) EarlyCheck() error {
	if b.H < 1 {
		return fmt.Errorf("%w: Hill exponent must be >= 1", ErrInvalidRange)
	}
	return nil
}
func (b *HillExponent) Requires() []blueprint.Tag          { return nil }
func (b *HillExponent) Brings() []blueprint.Brought        { return nil }
func (b *HillExponent) LateCheck(m *blueprint.Model) error { return nil }
func (b *HillExponent) Expand(m *blueprint.Model) error {
	From(m).HillExponent = b.H
	return nil
}

// CarryingCapacityPerSpecies brings an explicit per-producer carrying
// capacity K_i (logistic producer growth).
type CarryingCapacityPerSpecies struct {
	K []float64
}

func (b *CarryingCapacityPerSpecies) Component() blueprint.Tag { return TagCarryingCapacity }
func (b *CarryingCapacityPerSpecies) EarlyCheck() error        { return nil }
func (b *CarryingCapacityPerSpecies) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies}
}
func (b *CarryingCapacityPerSpecies) Brings() []blueprint.Brought { return nil }
func (b *CarryingCapacityPerSpecies) LateCheck(m *blueprint.Model) error {
	if n := From(m).NSpecies(); len(b.K) != n {
		return fmt.Errorf("%w: got %d values, model has %d species", ErrDimensionMismatch, len(b.K), n)
	}
	return nil
}
func (b *CarryingCapacityPerSpecies) Expand(m *blueprint.Model) error {
	copy(From(m).CarryingCapacity, b.K)
	return nil
}

// Temperature brings the optional scalar temperature T (Kelvin) that
// toggles Boltzmann-Arrhenius derivations for {r, x, a_r, h_t, K}.
type Temperature struct {
	Kelvin float64
}

func (b *Temperature) Component() blueprint.Tag { return TagTemperature }
func (b *Temperature) EarlyCheck() error {
	if b.Kelvin <= 0 {
		return fmt.Errorf("%w: temperature must be positive Kelvin", ErrInvalidRange)
	}
	return nil
}
func (b *Temperature) Requires() []blueprint.Tag          { return nil }
func (b *Temperature) Brings() []blueprint.Brought        { return nil }
func (b *Temperature) LateCheck(m *blueprint.Model) error { return nil }
func (b *Temperature) Expand(m *blueprint.Model) error {
	v := From(m)
	v.HasTemperature = true
	v.Temperature = b.Kelvin
	return nil
}
