package simulate

// Deriv is the right-hand side of the ODE system: du/dt at time t, state u.
type Deriv func(t float64, u []float64) []float64

// Integrator advances one step of an ODE system. Implementations own their
// own step-size policy: a fixed-step method ignores hSuggested and always
// returns it unchanged; an adaptive method may shrink hNext below hSuggested
// (after an internal retry) or grow it when the local error is comfortably
// within tolerance.
type Integrator interface {
	// Step advances u from t to t+hUsed, returning the new state, the
	// step actually taken (hUsed, <= hSuggested), and the step size the
	// caller should try next.
	Step(f Deriv, t, hSuggested float64, u []float64) (uNext []float64, hUsed, hNext float64, err error)

	// Reinit signals that the caller mutated the state vector outside of
	// Step — an extinct species' biomass snapped to zero — and any
	// internal state the integrator cached from the trajectory up to
	// that point (a Jacobian, an error history) should be discarded
	// before the next Step.
	Reinit()
}

// FixedStepRK4 is the classic four-stage Runge-Kutta method at a constant
// step size. It never rejects or resizes a step; reach for it when the
// dynamics are known non-stiff, or for deterministic regression tests where
// an adaptive integrator's step sequence would otherwise vary with
// tolerances.
type FixedStepRK4 struct{}

func (FixedStepRK4) Step(f Deriv, t, h float64, u []float64) ([]float64, float64, float64, error) {
	n := len(u)
	k1 := f(t, u)
	u2 := addScaled(u, k1, h/2)
	k2 := f(t+h/2, u2)
	u3 := addScaled(u, k2, h/2)
	k3 := f(t+h/2, u3)
	u4 := addScaled(u, k3, h)
	k4 := f(t+h, u4)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = u[i] + (h/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out, h, h, nil
}

// Reinit is a no-op: FixedStepRK4 carries no state across Step calls.
func (FixedStepRK4) Reinit() {}

func addScaled(u, k []float64, h float64) []float64 {
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] + h*k[i]
	}
	return out
}
