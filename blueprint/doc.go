// Package blueprint implements the component-assembly framework: a registry
// of Components (singleton identities) instantiated from Blueprints (typed
// parameter bundles), and a Model that owns an internal value plus the set
// of active components.
//
// Adding a Blueprint to a Model runs, in order: an early (state-independent)
// check, a conflict/requirement check, recursive expansion of any brought
// (implied or embedded) blueprints, a late check against the assembled
// model, and finally a single atomic expansion step that writes into the
// model's value. A failed Add leaves the Model completely unchanged.
//
// The framework is domain-agnostic: it knows nothing about species or food
// webs. Package components builds the ecological Blueprint/Component
// catalog on top of it.
package blueprint
