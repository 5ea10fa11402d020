// Package components builds the ecological Blueprint/Component catalog on
// top of package blueprint: Species, Foodweb, BodyMass, MetabolicClass,
// the biological and interaction rates, producer-growth and functional-
// response variants, non-trophic layers, and nutrients.
//
// Value is the internal value every ecodyn Model wraps; it is the only type
// in this package that implements blueprint.Cloneable.
package components
