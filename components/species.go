package components

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/blueprint"
)

// SpeciesNumber brings n anonymously-labelled species into the model
// ("species_0".."species_{n-1}"). It is the component every other
// ecological blueprint ultimately Requires.
type SpeciesNumber struct {
	N int
}

func (b *SpeciesNumber) Component() blueprint.Tag { return TagSpecies }

func (b *SpeciesNumber) EarlyCheck() error {
	if b.N <= 0 {
		return ErrEmptySpecies
	}
	return nil
}

func (b *SpeciesNumber) Requires() []blueprint.Tag { return nil }

func (b *SpeciesNumber) Brings() []blueprint.Brought { return nil }

func (b *SpeciesNumber) LateCheck(m *blueprint.Model) error { return nil }

func (b *SpeciesNumber) Expand(m *blueprint.Model) error {
	v := From(m)
	labels := make([]string, b.N)
	for i := range labels {
		labels[i] = fmt.Sprintf("species_%d", i)
	}
	return expandSpecies(m, v, labels)
}

// SpeciesNames brings len(Labels) species into the model under the given
// labels, for callers that want named access into matrices/vectors.
type SpeciesNames struct {
	Labels []string
}

func (b *SpeciesNames) Component() blueprint.Tag { return TagSpecies }

func (b *SpeciesNames) EarlyCheck() error {
	if len(b.Labels) == 0 {
		return ErrEmptySpecies
	}
	seen := make(map[string]struct{}, len(b.Labels))
	for _, l := range b.Labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

func (b *SpeciesNames) Requires() []blueprint.Tag { return nil }

func (b *SpeciesNames) Brings() []blueprint.Brought { return nil }

func (b *SpeciesNames) LateCheck(m *blueprint.Model) error { return nil }

func (b *SpeciesNames) Expand(m *blueprint.Model) error {
	return expandSpecies(m, From(m), append([]string(nil), b.Labels...))
}

// expandSpecies is shared by both Species variants: registers the "species"
// node compartment, allocates every per-species slice at its zero value,
// ready for later blueprints (MetabolicClass, BodyMass, ...) to overwrite,
// and registers the "species.labels" read-only introspection property.
func expandSpecies(m *blueprint.Model, v *Value, labels []string) error {
	n := len(labels)
	if _, err := v.Topo.AddNodeCompartment("species", n); err != nil {
		return err
	}
	v.SpeciesLabels = labels
	v.Class = make([]MetabolicClass, n)
	v.BodyMass = make([]float64, n)
	v.Mortality = make([]float64, n)
	v.Metabolism = make([]float64, n)
	v.GrowthRate = make([]float64, n)
	v.MaxConsumption = make([]float64, n)
	v.Interference = make([]float64, n)
	v.HalfSaturationDensity = make([]float64, n)
	v.ConsumptionRate = make([]float64, n)
	v.CarryingCapacity = make([]float64, n)

	m.RegisterProperty("species.labels", blueprint.Property{
		Component: TagSpecies,
		Read:      func(m *blueprint.Model) (any, error) { return append([]string(nil), From(m).SpeciesLabels...), nil },
	})
	return nil
}
