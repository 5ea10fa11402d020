package components

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/rates"
	"github.com/katalvlaran/ecodyn/view"
	"gonum.org/v1/gonum/mat"
)

// Nutrients brings the nutrient node compartment: n nutrient pools, each
// with a turnover rate D_l and supply concentration S_l. Brought by
// NutrientIntake, never added standalone (producer growth is what gives
// nutrients meaning).
type Nutrients struct {
	Turnover []float64
	Supply   []float64
}

func (b *Nutrients) Component() blueprint.Tag { return TagNutrients }
func (b *Nutrients) EarlyCheck() error {
	if len(b.Turnover) == 0 {
		return fmt.Errorf("%w: at least one nutrient pool required", ErrEmptySpecies)
	}
	if len(b.Turnover) != len(b.Supply) {
		return fmt.Errorf("%w: turnover/supply length mismatch", ErrDimensionMismatch)
	}
	return nil
}
func (b *Nutrients) Requires() []blueprint.Tag          { return nil }
func (b *Nutrients) Brings() []blueprint.Brought        { return nil }
func (b *Nutrients) LateCheck(m *blueprint.Model) error { return nil }

func (b *Nutrients) Expand(m *blueprint.Model) error {
	v := From(m)
	if _, err := v.Topo.AddNodeCompartment("nutrients", len(b.Turnover)); err != nil {
		return err
	}
	v.NNutrients = len(b.Turnover)
	v.NutrientTurnover = append([]float64(nil), b.Turnover...)
	v.NutrientSupply = append([]float64(nil), b.Supply...)
	return nil
}

// ProducerGrowthLogistic brings logistic producer growth:
// G_i = r_i*B_i*(1 - sum_j(a_pp[i,j]*B_j)/K_i). Competition, if nil,
// defaults to self-competition only (a_pp = identity restricted to
// producers).
type ProducerGrowthLogistic struct {
	Competition [][]float64 // producer x producer, nil => self-only
	Capacity    []float64   // per-species K_i (ignored for non-producers)
}

func (b *ProducerGrowthLogistic) Component() blueprint.Tag { return TagProducerGrowth }
func (b *ProducerGrowthLogistic) EarlyCheck() error         { return nil }
func (b *ProducerGrowthLogistic) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb, TagGrowthRate}
}
func (b *ProducerGrowthLogistic) Brings() []blueprint.Brought { return nil }

func (b *ProducerGrowthLogistic) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	if b.Capacity != nil && len(b.Capacity) != n {
		return fmt.Errorf("%w: capacity has %d entries, model has %d species", ErrDimensionMismatch, len(b.Capacity), n)
	}
	return checkOptionalMatrix(b.Competition, n)
}

func (b *ProducerGrowthLogistic) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	v.Growth = GrowthLogistic

	producers := make(map[int]bool)
	for _, i := range Producers(v) {
		producers[i] = true
	}

	if b.Capacity != nil {
		copy(v.CarryingCapacity, b.Capacity)
	} else {
		for i := range v.CarryingCapacity {
			if !producers[i] || v.CarryingCapacity[i] != 0 {
				continue
			}
			if v.HasTemperature {
				v.CarryingCapacity[i] = rates.Scalar(v.BodyMass[i], v.Temperature, DefaultCarryingCapacityArrhenius)
			} else {
				v.CarryingCapacity[i] = 1
			}
		}
	}

	template := view.NewTemplateFrom(n, n, func(i, j int) bool { return producers[i] && producers[j] })
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if !producers[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !producers[j] {
				continue
			}
			if b.Competition != nil {
				raw.Set(i, j, b.Competition[i][j])
			} else if i == j {
				raw.Set(i, j, 1)
			}
		}
	}
	v.ProducerCompetition = view.NewMutMat(raw, template, nil, nil, nil)
	return nil
}

// ProducerGrowthNutrientIntake brings nutrient-limited producer growth:
// G_i = r_i*B_i*min_l(N_l/(K_il + N_l)). Brings the Nutrients component
// embedded; Uptake/HalfSaturation are producer x nutrient couplings
// (C_il and K_il), defaulting to 1 where unspecified.
type ProducerGrowthNutrientIntake struct {
	Turnover       []float64
	Supply         []float64
	HalfSaturation [][]float64 // K_il, producer x nutrient, nil => all ones
	Uptake         [][]float64 // C[i,l], stoichiometric coefficient, nil => all ones
}

func (b *ProducerGrowthNutrientIntake) Component() blueprint.Tag { return TagProducerGrowth }
func (b *ProducerGrowthNutrientIntake) EarlyCheck() error {
	if len(b.Turnover) == 0 {
		return fmt.Errorf("%w: at least one nutrient pool required", ErrEmptySpecies)
	}
	return nil
}
func (b *ProducerGrowthNutrientIntake) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb, TagGrowthRate}
}

func (b *ProducerGrowthNutrientIntake) Brings() []blueprint.Brought {
	return []blueprint.Brought{{
		Kind: blueprint.Embedded,
		Tag:  TagNutrients,
		Default: func() blueprint.Blueprint {
			return &Nutrients{Turnover: b.Turnover, Supply: b.Supply}
		},
	}}
}

func (b *ProducerGrowthNutrientIntake) LateCheck(m *blueprint.Model) error {
	v := From(m)
	l := len(b.Turnover)
	if b.HalfSaturation != nil {
		if len(b.HalfSaturation) != v.NSpecies() {
			return fmt.Errorf("%w: half-saturation has %d rows, model has %d species", ErrDimensionMismatch, len(b.HalfSaturation), v.NSpecies())
		}
		for _, row := range b.HalfSaturation {
			if len(row) != l {
				return fmt.Errorf("%w: half-saturation row has %d entries, want %d nutrients", ErrDimensionMismatch, len(row), l)
			}
		}
	}
	return nil
}

func (b *ProducerGrowthNutrientIntake) Expand(m *blueprint.Model) error {
	v := From(m)
	v.Growth = GrowthNutrientIntake
	n, l := v.NSpecies(), len(b.Turnover)

	producers := make(map[int]bool)
	for _, i := range Producers(v) {
		producers[i] = true
	}
	template := view.NewTemplateFrom(n, l, func(i, j int) bool { return producers[i] })
	uptake := mat.NewDense(n, l, nil)
	half := mat.NewDense(n, l, nil)
	for i := 0; i < n; i++ {
		if !producers[i] {
			continue
		}
		for j := 0; j < l; j++ {
			hs, up := 1.0, 1.0
			if b.HalfSaturation != nil {
				hs = b.HalfSaturation[i][j]
			}
			if b.Uptake != nil {
				up = b.Uptake[i][j]
			}
			half.Set(i, j, hs)
			uptake.Set(i, j, up)
		}
	}
	v.NutrientUptake = view.NewMutMat(uptake, template, nil, nil, nil)
	v.NutrientHalfSaturation = view.NewMutMat(half, template, nil, nil, nil)
	return nil
}
