package components

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecodyn/blueprint"
)

// BodyMassScalar assigns the same body mass to every species.
type BodyMassScalar struct {
	Mass float64
}

func (b *BodyMassScalar) Component() blueprint.Tag { return TagBodyMass }

func (b *BodyMassScalar) EarlyCheck() error {
	if b.Mass <= 0 {
		return fmt.Errorf("%w: body mass must be positive", ErrInvalidRange)
	}
	return nil
}

func (b *BodyMassScalar) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }
func (b *BodyMassScalar) Brings() []blueprint.Brought { return nil }
func (b *BodyMassScalar) LateCheck(m *blueprint.Model) error { return nil }

func (b *BodyMassScalar) Expand(m *blueprint.Model) error {
	v := From(m)
	for i := range v.BodyMass {
		v.BodyMass[i] = b.Mass
	}
	registerBodyMassProperty(m)
	return nil
}

// BodyMassPerSpecies assigns an explicit per-species body mass vector.
type BodyMassPerSpecies struct {
	Mass []float64
}

func (b *BodyMassPerSpecies) Component() blueprint.Tag { return TagBodyMass }

func (b *BodyMassPerSpecies) EarlyCheck() error {
	for _, m := range b.Mass {
		if m <= 0 {
			return fmt.Errorf("%w: body mass must be positive", ErrInvalidRange)
		}
	}
	return nil
}

func (b *BodyMassPerSpecies) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }
func (b *BodyMassPerSpecies) Brings() []blueprint.Brought { return nil }

func (b *BodyMassPerSpecies) LateCheck(m *blueprint.Model) error {
	if n := From(m).NSpecies(); len(b.Mass) != n {
		return fmt.Errorf("%w: got %d masses, model has %d species", ErrDimensionMismatch, len(b.Mass), n)
	}
	return nil
}

func (b *BodyMassPerSpecies) Expand(m *blueprint.Model) error {
	copy(From(m).BodyMass, b.Mass)
	registerBodyMassProperty(m)
	return nil
}

// BodyMassFromRatio derives body mass from trophic level via the consumer-
// resource body-mass-ratio model: M_i = Z^(t_i - 1). Requires Foodweb so
// trophic levels are defined.
type BodyMassFromRatio struct {
	Z float64
}

func (b *BodyMassFromRatio) Component() blueprint.Tag { return TagBodyMass }

func (b *BodyMassFromRatio) EarlyCheck() error {
	if b.Z <= 0 {
		return fmt.Errorf("%w: body-mass ratio Z must be positive", ErrInvalidRange)
	}
	return nil
}

func (b *BodyMassFromRatio) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb}
}
func (b *BodyMassFromRatio) Brings() []blueprint.Brought { return nil }
func (b *BodyMassFromRatio) LateCheck(m *blueprint.Model) error { return nil }

func (b *BodyMassFromRatio) Expand(m *blueprint.Model) error {
	v := From(m)
	levels := TrophicLevel(v)
	for i, t := range levels {
		v.BodyMass[i] = math.Pow(b.Z, t-1)
	}
	registerBodyMassProperty(m)
	return nil
}

// registerBodyMassProperty installs the read-only "bodymass.vector"
// introspection property; idempotent across the three BodyMass variants.
func registerBodyMassProperty(m *blueprint.Model) {
	m.RegisterProperty("bodymass.vector", blueprint.Property{
		Component: TagBodyMass,
		Read:      func(m *blueprint.Model) (any, error) { return append([]float64(nil), From(m).BodyMass...), nil },
	})
}
