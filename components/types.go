package components

import "github.com/katalvlaran/ecodyn/view"

// MetabolicClass is the per-species metabolic class spec.md §3 requires.
type MetabolicClass int

const (
	// ClassProducer marks a species with no prey (must be all producers).
	ClassProducer MetabolicClass = iota
	ClassInvertebrate
	ClassEctothermVertebrate
)

func (c MetabolicClass) String() string {
	switch c {
	case ClassProducer:
		return "producer"
	case ClassInvertebrate:
		return "invertebrate"
	case ClassEctothermVertebrate:
		return "ectotherm_vertebrate"
	default:
		return "unknown"
	}
}

// FRVariant selects the functional-response formula (spec.md §4.5/§4.7).
type FRVariant int

const (
	FRNone FRVariant = iota
	FRLinear
	FRBioenergetic
	FRClassic
)

// GrowthVariant selects the producer-growth formula (spec.md §4.5/§4.7).
type GrowthVariant int

const (
	GrowthNone GrowthVariant = iota
	GrowthLogistic
	GrowthNutrientIntake
)

// FunctionalForm is the first-class function object a non-trophic layer
// applies to a base rate x given an aggregated neighbor signal delta
// (spec.md §4.5's growth functional forms / §9's "expose as a typed function
// object").
type FunctionalForm func(x, delta float64) float64

// Default functional forms, spec.md §4.5.
var (
	CompetitionForm FunctionalForm = func(x, delta float64) float64 {
		if x < 0 {
			return x
		}
		v := x * (1 - delta)
		if v < 0 {
			return 0
		}
		return v
	}
	FacilitationForm FunctionalForm = func(x, delta float64) float64 {
		return x * (1 + delta)
	}
	RefugeForm FunctionalForm = func(x, delta float64) float64 {
		return x / (1 + delta)
	}
)

// NonTrophicLayer bundles one of the four non-trophic interaction layers:
// a boolean adjacency restricted to its potential-links template, a scalar
// intensity, and (for every layer but interference) a functional form.
type NonTrophicLayer struct {
	Adjacency *view.Template // boolean matrix, sized to the layer's domain
	Intensity float64
	Form      FunctionalForm // nil for interference (additive term instead)
	Symmetric bool
}
