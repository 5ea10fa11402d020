package dynamics

import (
	"math"

	"github.com/katalvlaran/ecodyn/components"
)

// Derivative evaluates du/dt at state u, time t, for model v. u is laid out
// as [species biomass (NSpecies), nutrient concentration (NNutrients)]; the
// returned slice has the same layout and length. Pure and reentrant, as
// required of a quantity an adaptive integrator may reevaluate for retried
// steps. Rebuilds its trophic edge index from v.Foodweb on every call; a
// caller integrating the same frozen v for many steps should use Specialize
// instead.
func Derivative(v *components.Value, t float64, u []float64, extinctionThreshold float64) []float64 {
	return evaluate(v, buildTrophicIndex(v), t, u, extinctionThreshold)
}

// trophicIndex unrolls v.Foodweb's sparse mask once: prey[i] lists every j
// with i->j (i consumes j), predators[j] lists every i with i->j. Both
// Derivative (rebuilt every call) and Specialize (built once, reused) drive
// the same evaluate() core off this index, so the two can never drift.
type trophicIndex struct {
	prey      [][]int
	predators [][]int
}

func buildTrophicIndex(v *components.Value) *trophicIndex {
	n := v.NSpecies()
	idx := &trophicIndex{prey: make([][]int, n), predators: make([][]int, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v.Foodweb.Allows(i, j) {
				idx.prey[i] = append(idx.prey[i], j)
				idx.predators[j] = append(idx.predators[j], i)
			}
		}
	}
	return idx
}

func evaluate(v *components.Value, idx *trophicIndex, t float64, u []float64, extinctionThreshold float64) []float64 {
	n := v.NSpecies()
	biomass := u[:n]
	nutrients := u[n:]

	fr := functionalResponseMatrix(v, idx, biomass)
	growth := producerGrowth(v, biomass, nutrients)

	du := make([]float64, len(u))
	for i := 0; i < n; i++ {
		assimilation := 0.0
		for _, j := range idx.prey[i] {
			assimilation += efficiencyAt(v, i, j) * fr[i][j]
		}
		assimilation *= biomass[i]

		predationLoss := 0.0
		for _, j := range idx.predators[i] {
			predationLoss += biomass[j] * fr[j][i]
		}

		maintenance := (v.Metabolism[i] + v.Mortality[i]) * biomass[i]

		du[i] = growth[i] + assimilation - predationLoss - maintenance

		if biomass[i] <= extinctionThreshold && du[i] > 0 {
			du[i] = 0
		}
	}

	if v.NNutrients > 0 {
		for l := 0; l < v.NNutrients; l++ {
			uptake := 0.0
			for i := 0; i < n; i++ {
				c, _ := v.NutrientUptake.Get(i, l)
				uptake += c * growth[i] * biomass[i]
			}
			du[n+l] = v.NutrientTurnover[l]*(v.NutrientSupply[l]-nutrients[l]) - uptake
		}
	}

	return du
}

func efficiencyAt(v *components.Value, i, j int) float64 {
	if v.Efficiency == nil {
		return 1
	}
	e, _ := v.Efficiency.Get(i, j)
	return e
}

// functionalResponseMatrix computes F[i][j] for every trophic edge i->j
// (i consumes j), per the model's FRVariant.
func functionalResponseMatrix(v *components.Value, idx *trophicIndex, biomass []float64) [][]float64 {
	n := v.NSpecies()
	f := make([][]float64, n)
	for i := range f {
		f[i] = make([]float64, n)
	}
	if v.FR == components.FRNone {
		return f
	}

	interferenceLayer := v.NonTrophic[components.TagNonTrophicInterference]
	refugeLayer := v.NonTrophic[components.TagNonTrophicRefuge]

	for i := 0; i < n; i++ {
		prey := idx.prey[i]
		switch v.FR {
		case components.FRLinear:
			for _, j := range prey {
				f[i][j] = prefAt(v, i, j) * v.ConsumptionRate[i] * biomass[j]
			}
		case components.FRBioenergetic:
			h := v.HillExponent
			denom := math.Pow(abs(v.HalfSaturationDensity[i]), h) * (1 + v.Interference[i]*biomass[i])
			for _, k := range prey {
				denom += prefAt(v, i, k) * math.Pow(abs(biomass[k]), h)
			}
			if denom == 0 {
				continue
			}
			for _, j := range prey {
				f[i][j] = prefAt(v, i, j) * math.Pow(abs(biomass[j]), h) / denom
			}
		case components.FRClassic:
			h := v.HillExponent
			interference := 0.0
			if interferenceLayer != nil {
				sum := 0.0
				for k := 0; k < n; k++ {
					if interferenceLayer.Adjacency.Allows(i, k) {
						sum += biomass[k]
					}
				}
				interference = interferenceLayer.Intensity * sum
			}
			bracket := 1 + v.Interference[i]*biomass[i] + interference
			for _, k := range prey {
				ar := attackRateAt(v, refugeLayer, i, k, biomass)
				ht, _ := v.HandlingTime.Get(i, k)
				bracket += prefAt(v, i, k) * ar * ht * math.Pow(abs(biomass[k]), h)
			}
			denom := v.BodyMass[i] * bracket
			if denom == 0 {
				continue
			}
			for _, j := range prey {
				ar := attackRateAt(v, refugeLayer, i, j, biomass)
				f[i][j] = prefAt(v, i, j) * ar * math.Pow(abs(biomass[j]), h) / denom
			}
		}
	}
	return f
}

func prefAt(v *components.Value, i, j int) float64 {
	if v.Preference == nil {
		return 0
	}
	p, _ := v.Preference.Get(i, j)
	return p
}

// attackRateAt returns a_r,ij; when a refuge layer is present it is passed
// through the layer's functional form with delta = phi*sum of B_k over every
// producer k holding a refuge edge k->j (the default form divides a_r,ij by
// 1 + delta).
func attackRateAt(v *components.Value, refuge *components.NonTrophicLayer, i, j int, biomass []float64) float64 {
	ar := 0.0
	if v.AttackRate != nil {
		ar, _ = v.AttackRate.Get(i, j)
	}
	if refuge == nil {
		return ar
	}
	sum := 0.0
	n := v.NSpecies()
	for k := 0; k < n; k++ {
		if refuge.Adjacency.Allows(k, j) {
			sum += biomass[k]
		}
	}
	return refuge.Form(ar, refuge.Intensity*sum)
}

func producerGrowth(v *components.Value, biomass, nutrients []float64) []float64 {
	n := v.NSpecies()
	g := make([]float64, n)
	producers := make(map[int]bool)
	for _, i := range components.Producers(v) {
		producers[i] = true
	}

	facilitation := v.NonTrophic[components.TagNonTrophicFacilitation]
	competition := v.NonTrophic[components.TagNonTrophicCompetition]

	for i := 0; i < n; i++ {
		if !producers[i] {
			continue
		}
		r := v.GrowthRate[i]
		if facilitation != nil {
			sum := 0.0
			for k := 0; k < n; k++ {
				// facilitation edges run facilitator k -> producer i
				if facilitation.Adjacency.Allows(k, i) {
					sum += biomass[k]
				}
			}
			r = facilitation.Form(r, facilitation.Intensity*sum)
		}

		var gi float64
		switch v.Growth {
		case components.GrowthLogistic:
			comp := 0.0
			for j := 0; j < n; j++ {
				a, _ := v.ProducerCompetition.Get(i, j)
				if a != 0 {
					comp += a * biomass[j]
				}
			}
			k := v.CarryingCapacity[i]
			if k == 0 {
				k = 1
			}
			gi = r * biomass[i] * (1 - comp/k)
		case components.GrowthNutrientIntake:
			limiting := math.Inf(1)
			for l := 0; l < v.NNutrients; l++ {
				k, _ := v.NutrientHalfSaturation.Get(i, l)
				lim := nutrients[l] / (k + nutrients[l])
				if lim < limiting {
					limiting = lim
				}
			}
			if math.IsInf(limiting, 1) {
				limiting = 0
			}
			gi = r * biomass[i] * limiting
		}

		if competition != nil && gi > 0 {
			sum := 0.0
			for k := 0; k < n; k++ {
				if competition.Adjacency.Allows(i, k) {
					sum += biomass[k]
				}
			}
			gi = competition.Form(gi, competition.Intensity*sum)
		}
		g[i] = gi
	}
	return g
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
