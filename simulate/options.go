package simulate

import "context"

// ExtinctionFunc is invoked once per species the instant its biomass first
// crosses the extinction threshold, in strictly increasing simulation time;
// ties (two species crossing in the same accepted step) break by ascending
// species index.
type ExtinctionFunc func(speciesIndex int, t float64, biomass []float64)

// SteadyStateFunc is invoked after the extinction callback within the same
// step once ||du/u||_inf < AbsTol + RelTol*||u||_inf (entries with u_i == 0
// are left out of ||du/u||_inf). Returning true stops the simulation early
// with RetcodeSteadyState.
type SteadyStateFunc func(t float64, u []float64) (stop bool)

// Options configures Simulate. The zero value is usable: it selects
// RosenbrockStiff with standard tolerances and no callbacks.
type Options struct {
	Integrator Integrator

	InitialStep float64
	MinStep     float64
	MaxStep     float64
	AbsTol      float64
	RelTol      float64

	// ExtinctionThreshold is the biomass floor below which a species'
	// du/dt is clamped to min(0, du/dt) and OnExtinction fires.
	ExtinctionThreshold float64

	OnExtinction  ExtinctionFunc
	OnSteadyState SteadyStateFunc

	// Context allows cooperative cancellation; a cancelled context
	// truncates the trajectory and returns RetcodeCancelled instead of
	// an error.
	Context context.Context
}

func (o Options) withDefaults() Options {
	if o.Integrator == nil {
		o.Integrator = &RosenbrockStiff{AbsTol: o.AbsTol, RelTol: o.RelTol, MinStep: o.MinStep, MaxStep: o.MaxStep}
	}
	if o.InitialStep == 0 {
		o.InitialStep = 0.01
	}
	if o.MinStep == 0 {
		o.MinStep = 1e-8
	}
	if o.MaxStep == 0 {
		o.MaxStep = 10
	}
	if o.AbsTol == 0 {
		o.AbsTol = 1e-6
	}
	if o.RelTol == 0 {
		o.RelTol = 1e-3
	}
	if o.ExtinctionThreshold == 0 {
		o.ExtinctionThreshold = 1e-6
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}
