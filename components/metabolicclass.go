package components

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/blueprint"
)

// MetabolicClassBySpecies overrides the per-species MetabolicClass the
// Foodweb blueprint defaulted every producer to; every non-producer species
// must be classified as either ClassInvertebrate or ClassEctothermVertebrate.
type MetabolicClassBySpecies struct {
	Class []MetabolicClass // indexed by species
}

func (b *MetabolicClassBySpecies) Component() blueprint.Tag { return TagMetabolicClass }

func (b *MetabolicClassBySpecies) EarlyCheck() error { return nil }

func (b *MetabolicClassBySpecies) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb}
}
func (b *MetabolicClassBySpecies) Brings() []blueprint.Brought { return nil }

func (b *MetabolicClassBySpecies) LateCheck(m *blueprint.Model) error {
	v := From(m)
	if len(b.Class) != v.NSpecies() {
		return fmt.Errorf("%w: got %d classes, model has %d species", ErrDimensionMismatch, len(b.Class), v.NSpecies())
	}
	producers := make(map[int]bool)
	for _, i := range Producers(v) {
		producers[i] = true
	}
	for i, c := range b.Class {
		if (c == ClassProducer) != producers[i] {
			return fmt.Errorf("%w: species %d", ErrNotAllProducers, i)
		}
	}
	return nil
}

func (b *MetabolicClassBySpecies) Expand(m *blueprint.Model) error {
	copy(From(m).Class, b.Class)
	return nil
}
