package components

import "github.com/katalvlaran/ecodyn/blueprint"

// Component tags for every ecological component spec.md §2/§4.5 names.
const (
	TagSpecies                 blueprint.Tag = "species"
	TagFoodweb                 blueprint.Tag = "foodweb"
	TagBodyMass                blueprint.Tag = "bodymass"
	TagMetabolicClass          blueprint.Tag = "metabolicclass"
	TagEfficiency              blueprint.Tag = "efficiency"
	TagMortality                blueprint.Tag = "mortality"
	TagMetabolism               blueprint.Tag = "metabolism"
	TagMaximumConsumption       blueprint.Tag = "maximumconsumption"
	TagFunctionalResponse       blueprint.Tag = "functionalresponse"
	TagIntraspecificInterference blueprint.Tag = "intraspecificinterference"
	TagHalfSaturationDensity    blueprint.Tag = "halfsaturationdensity"
	TagConsumersPreference      blueprint.Tag = "consumerspreference"
	TagHillExponent             blueprint.Tag = "hillexponent"
	TagProducerGrowth           blueprint.Tag = "producergrowth"
	TagCarryingCapacity         blueprint.Tag = "carryingcapacity"
	TagGrowthRate               blueprint.Tag = "growthrate"
	TagTemperature              blueprint.Tag = "temperature"
	TagProducerCompetition      blueprint.Tag = "producercompetition"
	TagNutrients                blueprint.Tag = "nutrients"

	TagNonTrophicCompetition  blueprint.Tag = "nontrophic.competition"
	TagNonTrophicFacilitation blueprint.Tag = "nontrophic.facilitation"
	TagNonTrophicInterference blueprint.Tag = "nontrophic.interference"
	TagNonTrophicRefuge       blueprint.Tag = "nontrophic.refuge"
)

// Registry is the package-level, immutable Component table, built once at
// init time — spec.md §9's "re-express as an immutable configuration table
// owned by the Model builder; no globals" (the table itself is a package
// constant; all mutable state lives on a *blueprint.Model instance).
var Registry = blueprint.NewRegistry(
	blueprint.ComponentMeta{Tag: TagSpecies, DisplayName: "Species"},
	blueprint.ComponentMeta{Tag: TagFoodweb, DisplayName: "Foodweb"},
	blueprint.ComponentMeta{Tag: TagBodyMass, DisplayName: "BodyMass"},
	blueprint.ComponentMeta{Tag: TagMetabolicClass, DisplayName: "MetabolicClass"},
	blueprint.ComponentMeta{Tag: TagEfficiency, DisplayName: "Efficiency"},
	blueprint.ComponentMeta{Tag: TagMortality, DisplayName: "Mortality"},
	blueprint.ComponentMeta{Tag: TagMetabolism, DisplayName: "Metabolism"},
	blueprint.ComponentMeta{Tag: TagMaximumConsumption, DisplayName: "MaximumConsumption"},
	blueprint.ComponentMeta{Tag: TagFunctionalResponse, DisplayName: "FunctionalResponse"},
	blueprint.ComponentMeta{Tag: TagIntraspecificInterference, DisplayName: "IntraspecificInterference"},
	blueprint.ComponentMeta{Tag: TagHalfSaturationDensity, DisplayName: "HalfSaturationDensity"},
	blueprint.ComponentMeta{Tag: TagConsumersPreference, DisplayName: "ConsumersPreference"},
	blueprint.ComponentMeta{Tag: TagHillExponent, DisplayName: "HillExponent"},
	blueprint.ComponentMeta{Tag: TagProducerGrowth, DisplayName: "ProducerGrowth"},
	blueprint.ComponentMeta{Tag: TagCarryingCapacity, DisplayName: "CarryingCapacity"},
	blueprint.ComponentMeta{Tag: TagGrowthRate, DisplayName: "GrowthRate"},
	blueprint.ComponentMeta{Tag: TagTemperature, DisplayName: "Temperature"},
	blueprint.ComponentMeta{Tag: TagProducerCompetition, DisplayName: "ProducerCompetition"},
	blueprint.ComponentMeta{Tag: TagNutrients, DisplayName: "Nutrients"},
	blueprint.ComponentMeta{Tag: TagNonTrophicCompetition, DisplayName: "NonTrophicLayer.Competition"},
	blueprint.ComponentMeta{Tag: TagNonTrophicFacilitation, DisplayName: "NonTrophicLayer.Facilitation"},
	blueprint.ComponentMeta{Tag: TagNonTrophicInterference, DisplayName: "NonTrophicLayer.Interference"},
	blueprint.ComponentMeta{Tag: TagNonTrophicRefuge, DisplayName: "NonTrophicLayer.Refuge"},
)
