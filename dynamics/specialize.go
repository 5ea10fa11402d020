package dynamics

import "github.com/katalvlaran/ecodyn/components"

// Specialize freezes v's trophic structure into a closure equivalent to
// Derivative(v, t, u, extinctionThreshold), but builds its trophicIndex once
// instead of rescanning v.Foodweb.Allows(i, j) on every call. Opt-in: a
// caller assembling a model once and integrating it for thousands of steps
// (the common case) benefits; a caller that mutates v's Foodweb between
// calls must not reuse a stale Specialize closure, since it captures the
// index at the moment Specialize was called, not v itself.
func Specialize(v *components.Value, extinctionThreshold float64) func(t float64, u []float64) []float64 {
	idx := buildTrophicIndex(v)
	return func(t float64, u []float64) []float64 {
		return evaluate(v, idx, t, u, extinctionThreshold)
	}
}
