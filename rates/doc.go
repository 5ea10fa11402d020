// Package rates derives biological and interaction rates from body mass and
// (optionally) temperature: allometric scaling R = a*M^b with per-class
// coefficient tables, and the Boltzmann-Arrhenius temperature correction
// R = a*M_i^b*M_j^c*exp(E_a*(T-T_ref)/(k_B*T_ref*T)).
package rates
