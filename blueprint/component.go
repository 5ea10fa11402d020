package blueprint

import "sort"

// Tag is a Component's singleton identity — a short symbolic name such as
// "species", "foodweb", or "nontrophic.facilitation". At most one Component
// per Tag is ever active on a given Model.
type Tag string

// ComponentMeta describes a registered Component: its display name and the
// other components it structurally conflicts with (e.g. the two producer-
// growth variants, logistic vs nutrient-intake, conflict with each other).
type ComponentMeta struct {
	Tag         Tag
	DisplayName string
	Conflicts   []Tag
}

// Registry is the central table of known Components, built at init time by
// package components. It is immutable after construction (no global mutable
// state, per spec.md §9's "re-express as an immutable configuration table").
type Registry struct {
	byTag map[Tag]ComponentMeta
	order []Tag
}

// NewRegistry builds a Registry from a list of component metadata. Panics on
// a duplicate tag: this runs once, at package init, over a hand-authored
// table, so a duplicate is a programming error to be caught immediately.
func NewRegistry(metas ...ComponentMeta) *Registry {
	r := &Registry{byTag: make(map[Tag]ComponentMeta, len(metas))}
	for _, m := range metas {
		if _, dup := r.byTag[m.Tag]; dup {
			panic("blueprint: duplicate component tag " + string(m.Tag))
		}
		r.byTag[m.Tag] = m
		r.order = append(r.order, m.Tag)
	}
	return r
}

// Lookup returns the metadata registered for tag, and whether it was found.
func (r *Registry) Lookup(tag Tag) (ComponentMeta, bool) {
	m, ok := r.byTag[tag]
	return m, ok
}

// Tags returns every registered component tag, sorted for deterministic
// iteration (components(model) in spec.md §6).
func (r *Registry) Tags() []Tag {
	out := append([]Tag(nil), r.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// conflictsWith reports whether tag conflicts with other, consulting
// whichever of the two declares the conflict (conflicts are intended to be
// declared symmetrically, but a lookup only needs one side to say so).
func (r *Registry) conflictsWith(tag, other Tag) bool {
	if meta, ok := r.byTag[tag]; ok {
		for _, c := range meta.Conflicts {
			if c == other {
				return true
			}
		}
	}
	if meta, ok := r.byTag[other]; ok {
		for _, c := range meta.Conflicts {
			if c == tag {
				return true
			}
		}
	}
	return false
}
