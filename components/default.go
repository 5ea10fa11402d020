package components

import "github.com/katalvlaran/ecodyn/blueprint"

// defaultSlot is one step of DefaultModel's fixed assembly order: a
// component tag and the blueprint it adds unless overrides supplies its own
// blueprint for that tag. builtin receives the model as assembled by every
// prior slot, since some defaults (MetabolicClassBySpecies) depend on state
// an earlier slot's Expand already wrote.
type defaultSlot struct {
	tag     blueprint.Tag
	builtin func(m *blueprint.Model) blueprint.Blueprint
}

// DefaultModel assembles a ready-to-simulate model from a foodweb adjacency
// alone, per spec.md §6's `Model::default(foodweb, overrides...)`: body mass
// from the Z=10 consumer-resource ratio (the literature default this
// formula is usually quoted with), allometric mortality/metabolism/max-
// consumption/growth-rate, uniform e=0.5 assimilation efficiency, the
// bioenergetic functional response, and logistic producer growth.
//
// overrides replaces any default whose Component() tag matches one of the
// blueprints passed in — e.g. passing a FunctionalResponseClassic skips the
// bioenergetic default and uses the override instead — and adds the rest (a
// NonTrophicLayer, Temperature, ...) after the defaulted core is assembled.
func DefaultModel(adj [][]bool, overrides ...blueprint.Blueprint) (*blueprint.Model, error) {
	n := len(adj)
	m := blueprint.NewModel(Registry, NewValue())

	byTag := make(map[blueprint.Tag]blueprint.Blueprint, len(overrides))
	for _, o := range overrides {
		byTag[o.Component()] = o
	}

	slots := []defaultSlot{
		{TagSpecies, func(m *blueprint.Model) blueprint.Blueprint { return &SpeciesNumber{N: n} }},
		{TagFoodweb, func(m *blueprint.Model) blueprint.Blueprint { return &FoodwebMatrix{Adjacency: adj} }},
		{TagBodyMass, func(m *blueprint.Model) blueprint.Blueprint { return &BodyMassFromRatio{Z: 10} }},
		{TagMetabolicClass, func(m *blueprint.Model) blueprint.Blueprint {
			return &MetabolicClassBySpecies{Class: append([]MetabolicClass(nil), From(m).Class...)}
		}},
		{TagMortality, func(m *blueprint.Model) blueprint.Blueprint { return MortalityAllometric(nil) }},
		{TagMetabolism, func(m *blueprint.Model) blueprint.Blueprint { return MetabolismAllometric(nil) }},
		{TagMaximumConsumption, func(m *blueprint.Model) blueprint.Blueprint { return MaximumConsumptionAllometric(nil) }},
		{TagGrowthRate, func(m *blueprint.Model) blueprint.Blueprint { return GrowthRateAllometric(nil) }},
		{TagEfficiency, func(m *blueprint.Model) blueprint.Blueprint { return &EfficiencyScalar{E: 0.5} }},
		{TagFunctionalResponse, func(m *blueprint.Model) blueprint.Blueprint { return &FunctionalResponseBioenergetic{} }},
		{TagProducerGrowth, func(m *blueprint.Model) blueprint.Blueprint { return &ProducerGrowthLogistic{} }},
	}

	slotted := make(map[blueprint.Tag]bool, len(slots))
	for _, slot := range slots {
		slotted[slot.tag] = true
		bp := slot.builtin(m)
		if override, ok := byTag[slot.tag]; ok {
			bp = override
		}
		if err := m.Add(bp); err != nil {
			return nil, err
		}
	}

	for _, o := range overrides {
		if !slotted[o.Component()] {
			if err := m.Add(o); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
