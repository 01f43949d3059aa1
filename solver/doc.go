// SPDX-License-Identifier: MIT

// Package solver advances fuel states in time and applies reprocessing
// transforms between steps.
//
// Two operators:
//   - Reactor wraps one exported generator Q and implements continuous
//     time advance: Evolve computes the propagator exp(Q·Δt) and
//     applies it to the state's current vector, appending the result.
//     Δt = 0 is the exact identity; the propagator route handles decay
//     constants spanning twenty-plus orders of magnitude, which rules
//     out truncated series and eigendecomposition shortcuts.
//   - Scheme is an instantaneous affine remap (add vector, multiply
//     matrix, optional renormalization) modeling fuel-cycle material
//     moves. Apply consumes no simulated time and may interleave with
//     Evolve arbitrarily.
//
// Both operators append through the fuel.State contract: exactly one
// history row per successful call. When the matrix exponential degrades
// (matrix.ErrNumericalInstability), Evolve still appends the
// best-effort vector and returns the error as a warning, so the run can
// continue and the caller stays informed.
//
// See also: package bateman (produces Q), package fuel (the state).
package solver
