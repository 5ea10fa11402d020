// Package simulate drives an assembled ecological model forward in time:
// it wraps dynamics.Derivative with an Integrator, watches the trajectory
// for extinctions and steady state, and returns a Solution carrying the
// final topology and any advisories a caller should see before trusting
// the numbers (spec.md §4.8).
package simulate
