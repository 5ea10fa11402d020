package simulate

import "errors"

var (
	// ErrInvalidState is returned when u0's length doesn't match the
	// model's species + nutrient count.
	ErrInvalidState = errors.New("simulate: initial state dimension mismatch")
	// ErrStepRejected is returned by an Integrator when a step cannot be
	// shrunk below MinStep and still fails its local-error tolerance.
	ErrStepRejected = errors.New("simulate: step size collapsed below minimum")
)
