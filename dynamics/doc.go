// Package dynamics implements the derivative kernel: given a biomass/
// nutrient state vector, time, and an assembled ecological model, compute
// du/dt. Derivative computes the generic kernel directly from the model's
// components on every call; Specialize (opt-in) compiles a frozen model
// into a closure that unrolls the sparse trophic loops once, ahead of time.
package dynamics
