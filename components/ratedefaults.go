package components

import "github.com/katalvlaran/ecodyn/rates"

// Default allometric coefficients, keyed by MetabolicClass, for the rates
// this catalog derives rather than takes as an explicit per-species vector.
// These are reasonable illustrative defaults (loosely in line with
// published consumer-resource allometric-scaling studies), not a literature
// table this repository guarantees to reproduce exactly — callers wanting a
// specific published table supply their own map.
var (
	DefaultMetabolismCoefficients = map[MetabolicClass]rates.Coefficients{
		ClassProducer:            {A: 0, B: 0},
		ClassInvertebrate:        {A: 0.314, B: -0.25},
		ClassEctothermVertebrate: {A: 0.88, B: -0.25},
	}
	DefaultMortalityCoefficients = map[MetabolicClass]rates.Coefficients{
		ClassProducer:            {A: 0.0138, B: -0.25},
		ClassInvertebrate:        {A: 0.0138, B: -0.25},
		ClassEctothermVertebrate: {A: 0.0138, B: -0.25},
	}
	DefaultMaxConsumptionCoefficients = map[MetabolicClass]rates.Coefficients{
		ClassProducer:            {A: 0, B: 0},
		ClassInvertebrate:        {A: 8.0, B: -0.25},
		ClassEctothermVertebrate: {A: 4.0, B: -0.25},
	}
	DefaultGrowthRateCoefficients = map[MetabolicClass]rates.Coefficients{
		ClassProducer:            {A: 1.0, B: -0.25},
		ClassInvertebrate:        {A: 0, B: 0},
		ClassEctothermVertebrate: {A: 0, B: 0},
	}

	// Arrhenius counterparts of the tables above, used in place of the plain
	// allometric formula whenever a Temperature component is active
	// (spec.md §4.6's "{r, x, a_r, h_t, K}" temperature-dependent set). Ea
	// values are illustrative, in the same spirit as the Coefficients tables.
	DefaultMetabolismArrhenius = map[MetabolicClass]rates.ArrheniusCoefficients{
		ClassProducer:            {A: 0},
		ClassInvertebrate:        {A: 0.314, B: -0.25, Ea: 0.65},
		ClassEctothermVertebrate: {A: 0.88, B: -0.25, Ea: 0.65},
	}
	DefaultGrowthRateArrhenius = map[MetabolicClass]rates.ArrheniusCoefficients{
		ClassProducer:            {A: 1.0, B: -0.25, Ea: 0.32},
		ClassInvertebrate:        {A: 0},
		ClassEctothermVertebrate: {A: 0},
	}
	// DefaultAttackRateArrhenius/DefaultHandlingTimeArrhenius replace
	// FunctionalResponseClassic's static allometric defaults when a
	// Temperature component is active; A/B/C match the original allometric
	// exponents so the only change at T == rates.TRef is a no-op.
	DefaultAttackRateArrhenius   = rates.ArrheniusCoefficients{A: 50, B: 0.45, C: 0.15, Ea: 0.65}
	DefaultHandlingTimeArrhenius = rates.ArrheniusCoefficients{A: 0.3, B: -0.48, C: -0.66, Ea: -0.65}
	// DefaultCarryingCapacityArrhenius replaces ProducerGrowthLogistic's K=1
	// default for producers when a Temperature component is active.
	DefaultCarryingCapacityArrhenius = rates.ArrheniusCoefficients{A: 1.0, Ea: -0.32}
)

// coefficientsPerSpecies resolves one Coefficients per species from table,
// keyed by each species' MetabolicClass.
func coefficientsPerSpecies(class []MetabolicClass, table map[MetabolicClass]rates.Coefficients) []rates.Coefficients {
	out := make([]rates.Coefficients, len(class))
	for i, c := range class {
		out[i] = table[c]
	}
	return out
}
