package simulate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/components"
	"github.com/katalvlaran/ecodyn/dynamics"
	"github.com/katalvlaran/ecodyn/internal/xlog"
)

// Simulate advances m's assembled model from u0 out to tMax, reporting
// extinctions and steady state as they're detected, and returns the
// trajectory together with a Solution describing how the run ended.
//
// m is never mutated: Simulate clones its internal Value once at the start
// and tombstones species out of that clone's topology as they go extinct.
func Simulate(m *blueprint.Model, u0 []float64, tMax float64, opts Options) (*Solution, error) {
	opts = opts.withDefaults()
	v := components.From(m).Clone().(*components.Value)
	n := v.NSpecies()
	if len(u0) != n+v.NNutrients {
		return nil, fmt.Errorf("%w: got %d, want %d species + %d nutrients", ErrInvalidState, len(u0), n, v.NNutrients)
	}

	sol := &Solution{
		SpeciesLabels:  append([]string(nil), v.SpeciesLabels...),
		NSpecies:       n,
		NNutrients:     v.NNutrients,
		ExtinctionTime: make(map[int]float64),
	}

	deriv := func(t float64, u []float64) []float64 {
		return dynamics.Derivative(v, t, u, opts.ExtinctionThreshold)
	}

	u := append([]float64(nil), u0...)
	t := 0.0
	h := opts.InitialStep
	extinct := make([]bool, n)

	sol.Times = append(sol.Times, t)
	sol.Trajectory = append(sol.Trajectory, append([]float64(nil), u...))

	for t < tMax {
		select {
		case <-opts.Context.Done():
			sol.Retcode = RetcodeCancelled
			return finish(sol, v)
		default:
		}

		if t+h > tMax {
			h = tMax - t
		}

		uNext, hUsed, hNext, err := opts.Integrator.Step(deriv, t, h, u)
		if err != nil {
			sol.Retcode = RetcodeFailed
			return finish(sol, v)
		}
		t += hUsed
		u = uNext
		h = hNext

		sol.Times = append(sol.Times, t)
		sol.Trajectory = append(sol.Trajectory, append([]float64(nil), u...))

		newlyExtinct := make([]int, 0)
		for i := 0; i < n; i++ {
			if !extinct[i] && u[i] <= opts.ExtinctionThreshold {
				newlyExtinct = append(newlyExtinct, i)
			}
		}
		sort.Ints(newlyExtinct)
		for _, i := range newlyExtinct {
			extinct[i] = true
			u[i] = 0
			sol.ExtinctionOrder = append(sol.ExtinctionOrder, i)
			sol.ExtinctionTime[i] = t
			_ = v.Topo.RemoveNode("species", i)
			xlog.Logger.Info().Str("species", v.SpeciesLabels[i]).Float64("t", t).Msg("extinction")
			if opts.OnExtinction != nil {
				opts.OnExtinction(i, t, u)
			}
		}
		if len(newlyExtinct) > 0 {
			sol.Trajectory[len(sol.Trajectory)-1] = append([]float64(nil), u...)
			opts.Integrator.Reinit()
		}

		if reachedSteadyState(deriv, t, u, opts) {
			stop := true
			if opts.OnSteadyState != nil {
				stop = opts.OnSteadyState(t, u)
			}
			if stop {
				sol.Retcode = RetcodeSteadyState
				return finish(sol, v)
			}
		}
	}

	sol.Retcode = RetcodeCompleted
	return finish(sol, v)
}

func reachedSteadyState(deriv Deriv, t float64, u []float64, opts Options) bool {
	du := deriv(t, u)
	var maxU, maxRel float64
	for i := range u {
		if a := math.Abs(u[i]); a > maxU {
			maxU = a
		}
		if u[i] == 0 {
			continue
		}
		if a := math.Abs(du[i] / u[i]); a > maxRel {
			maxRel = a
		}
	}
	return maxRel < opts.AbsTol+opts.RelTol*maxU
}

func finish(sol *Solution, v *components.Value) (*Solution, error) {
	sol.Topology = v.Topo
	sol.Advisories = advisories(v)
	for _, a := range sol.Advisories {
		xlog.Logger.Warn().Str("retcode", sol.Retcode.String()).Msg("advisory: " + a)
	}
	return sol, nil
}
