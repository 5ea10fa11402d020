package simulate

import "github.com/katalvlaran/ecodyn/topology"

// Retcode classifies how a Simulate run ended.
type Retcode int

const (
	// RetcodeCompleted reached TMax without hitting steady state.
	RetcodeCompleted Retcode = iota
	// RetcodeSteadyState stopped early at steady state, because
	// OnSteadyState returned true or was not set.
	RetcodeSteadyState
	// RetcodeCancelled stopped early because Options.Context was cancelled;
	// the trajectory up to the last accepted step is still returned.
	RetcodeCancelled
	// RetcodeFailed stopped because the integrator could not take a valid
	// step (e.g. step size collapsed below MinStep).
	RetcodeFailed
)

func (r Retcode) String() string {
	switch r {
	case RetcodeCompleted:
		return "completed"
	case RetcodeSteadyState:
		return "steady_state"
	case RetcodeCancelled:
		return "cancelled"
	case RetcodeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Solution is Simulate's result: the full accepted-step trajectory, a
// record of every extinction in order, the post-simulation topology (with
// extinct species tombstoned out), and structural advisories about it.
type Solution struct {
	Retcode Retcode

	Times      []float64
	Trajectory [][]float64 // Trajectory[k] is the state at Times[k]

	SpeciesLabels []string
	NSpecies      int
	NNutrients    int

	// ExtinctionOrder lists species indices in the order (strictly
	// increasing time, then ascending index on ties) they crossed the
	// extinction threshold.
	ExtinctionOrder []int
	ExtinctionTime  map[int]float64

	Topology *topology.Topology

	// Advisories are human-readable post-hoc topology observations:
	// isolated producers, starving consumers, disconnected components.
	// They never fail the run; they flag results worth a second look.
	Advisories []string
}

// FinalState returns the last accepted state, or nil if none were recorded.
func (s *Solution) FinalState() []float64 {
	if len(s.Trajectory) == 0 {
		return nil
	}
	return s.Trajectory[len(s.Trajectory)-1]
}

// Biomass splits a full state vector into its species-biomass prefix.
func (s *Solution) Biomass(u []float64) []float64 { return u[:s.NSpecies] }

// Nutrients splits a full state vector into its nutrient-concentration
// suffix.
func (s *Solution) Nutrients(u []float64) []float64 { return u[s.NSpecies:] }
