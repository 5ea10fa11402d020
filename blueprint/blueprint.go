package blueprint

// Blueprint is a typed parameter bundle that expands into exactly one
// Component. Multiple Blueprint implementations may all target the same
// Component (e.g. components.FoodwebMatrix and components.FoodwebStructural
// both expand into the "foodweb" component), each offering a different
// parameterization.
type Blueprint interface {
	// Component names the single Component this blueprint expands into.
	Component() Tag

	// EarlyCheck performs structural validation independent of model state
	// (e.g. "a preference matrix row must sum to 1", checked before the
	// model is even consulted).
	EarlyCheck() error

	// Requires lists components that must already be present on the model
	// (or satisfied via Implies/Embeds in the same Add batch) before this
	// blueprint can expand.
	Requires() []Tag

	// Brings lists the blueprints this one wants to bring along: each is
	// either Embedded (mandatory; erroring if its component is already
	// present) or Implied (optional; constructed via its default only if
	// that component is not yet active when this blueprint is reached).
	Brings() []Brought

	// LateCheck validates against the model as it stands immediately before
	// this blueprint's own expansion (after all brought blueprints have
	// already expanded). It may inspect dimensions, templates, and
	// cross-component state.
	LateCheck(m *Model) error

	// Expand deterministically writes this blueprint's data into the
	// model's internal value. Must not fail — all failure modes belong in
	// EarlyCheck/LateCheck.
	Expand(m *Model) error
}

// BroughtKind distinguishes mandatory from optional brought blueprints.
type BroughtKind int

const (
	// Embedded blueprints are mandatory: Add errors if their component is
	// already present on the model (the parent blueprint owns them).
	Embedded BroughtKind = iota
	// Implied blueprints are optional: they are constructed from Default
	// only if their component is not yet active when the parent blueprint
	// is reached, and skipped entirely otherwise. Later blueprints in the
	// same Add batch are not looked ahead at: one for the same component
	// listed after the parent fails with a ComponentConflictError.
	Implied
)

// Brought describes one blueprint a parent blueprint wants to bring along.
// For Embedded, Default is invoked unconditionally. For Implied, Default is
// invoked lazily, only if needed — matching spec.md §9's
// "{Embedded(bp), Implied(default_fn), Unbrought}" tagged-variant model.
type Brought struct {
	Kind    BroughtKind
	Tag     Tag
	Default func() Blueprint
}
