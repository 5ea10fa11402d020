package components

import (
	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/topology"
	"github.com/katalvlaran/ecodyn/view"
	"gonum.org/v1/gonum/mat"
)

// Value is the internal value every ecodyn Model wraps (spec.md §3/§4).
// It is assembled incrementally, one blueprint at a time, by
// blueprint.Model.Add; Value itself never validates cross-component
// invariants — that is each Blueprint's LateCheck's job.
type Value struct {
	Topo *topology.Topology

	SpeciesLabels []string

	Foodweb *view.Template // species x species, Foodweb.Allows(i,j) == species i consumes species j

	Class []MetabolicClass

	BodyMass []float64

	Mortality      []float64
	Metabolism     []float64
	GrowthRate     []float64 // r_i, nonzero only for producers
	MaxConsumption []float64 // y_i

	FR                    FRVariant
	Efficiency            *view.MutMat // e_ij, sparse on Foodweb template
	Preference            *view.MutMat // omega_ij
	HandlingTime          *view.MutMat // h_t,ij
	AttackRate            *view.MutMat // a_r,ij
	Interference          []float64    // c_i
	HalfSaturationDensity []float64    // B0_i
	ConsumptionRate       []float64    // alpha_i, linear FR
	HillExponent          float64      // h >= 1, scalar

	Growth                 GrowthVariant
	CarryingCapacity       []float64    // K_i, producers
	ProducerCompetition    *view.MutMat // a_pp, producers x producers
	NutrientTurnover       []float64    // D_l
	NutrientSupply         []float64    // S_l
	NutrientUptake         *view.MutMat // C[i,l], stoichiometric uptake coefficient, producers x nutrients
	NutrientHalfSaturation *view.MutMat // K_il, producers x nutrients
	NNutrients             int

	HasTemperature bool
	Temperature    float64 // Kelvin

	NonTrophic map[blueprint.Tag]*NonTrophicLayer
}

// NewValue returns an empty Value ready for the Species blueprint to expand
// into.
func NewValue() *Value {
	return &Value{
		Topo:       topology.New(),
		NonTrophic: make(map[blueprint.Tag]*NonTrophicLayer),
	}
}

// NSpecies returns the number of species (including extinct ones — species
// are never removed from the model, only zeroed; see spec.md §3).
func (v *Value) NSpecies() int { return len(v.SpeciesLabels) }

// Clone deep-copies every mutable field, so blueprint.Model.Add can stage an
// assembly attempt without risking v.
func (v *Value) Clone() blueprint.Cloneable {
	out := &Value{
		Topo:                   v.Topo.Clone(),
		SpeciesLabels:          append([]string(nil), v.SpeciesLabels...),
		Class:                  append([]MetabolicClass(nil), v.Class...),
		BodyMass:               append([]float64(nil), v.BodyMass...),
		Mortality:              append([]float64(nil), v.Mortality...),
		Metabolism:             append([]float64(nil), v.Metabolism...),
		GrowthRate:             append([]float64(nil), v.GrowthRate...),
		MaxConsumption:         append([]float64(nil), v.MaxConsumption...),
		FR:                     v.FR,
		Interference:           append([]float64(nil), v.Interference...),
		HalfSaturationDensity:  append([]float64(nil), v.HalfSaturationDensity...),
		ConsumptionRate:        append([]float64(nil), v.ConsumptionRate...),
		HillExponent:           v.HillExponent,
		Growth:                 v.Growth,
		CarryingCapacity:       append([]float64(nil), v.CarryingCapacity...),
		NutrientTurnover:       append([]float64(nil), v.NutrientTurnover...),
		NutrientSupply:         append([]float64(nil), v.NutrientSupply...),
		NNutrients:             v.NNutrients,
		HasTemperature:         v.HasTemperature,
		Temperature:            v.Temperature,
		NonTrophic:             make(map[blueprint.Tag]*NonTrophicLayer, len(v.NonTrophic)),
	}
	out.Foodweb = cloneTemplate(v.Foodweb)
	out.Efficiency = cloneMutMat(v.Efficiency)
	out.Preference = cloneMutMat(v.Preference)
	out.HandlingTime = cloneMutMat(v.HandlingTime)
	out.AttackRate = cloneMutMat(v.AttackRate)
	out.ProducerCompetition = cloneMutMat(v.ProducerCompetition)
	out.NutrientUptake = cloneMutMat(v.NutrientUptake)
	out.NutrientHalfSaturation = cloneMutMat(v.NutrientHalfSaturation)
	for k, layer := range v.NonTrophic {
		cp := *layer
		cp.Adjacency = cloneTemplate(layer.Adjacency)
		out.NonTrophic[k] = &cp
	}
	return out
}

func cloneTemplate(t *view.Template) *view.Template {
	if t == nil {
		return nil
	}
	rows, cols := t.Dims()
	return view.NewTemplateFrom(rows, cols, func(i, j int) bool { return t.Allows(i, j) })
}

func cloneMutMat(m *view.MutMat) *view.MutMat {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.Get(i, j)
			data[i*cols+j] = v
		}
	}
	raw := mat.NewDense(rows, cols, data)
	return view.NewMutMat(raw, cloneTemplate(m.Template()), m.RowLabels(), m.ColLabels(), nil)
}

// From type-asserts a blueprint.Model's internal value back to *Value.
func From(m *blueprint.Model) *Value {
	return m.Value().(*Value)
}
