// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.

package solver

import "errors"

var (
	// ErrNilState indicates a nil *fuel.State argument.
	ErrNilState = errors.New("solver: nil fuel state")

	// ErrNegativeTime indicates Δt < 0. Time only moves forward here;
	// inverting a propagator is not supported.
	ErrNegativeTime = errors.New("solver: negative time step")

	// ErrTypeMismatch indicates a fuel state whose isotope count does
	// not match the operator's dimension.
	ErrTypeMismatch = errors.New("solver: state size does not match operator")

	// ErrInvalidScheme indicates an unusable reprocessing scheme: nil or
	// non-square mult, or an add vector of mismatched length.
	ErrInvalidScheme = errors.New("solver: invalid reprocessing scheme")

	// ErrDegenerateState indicates renormalization against a vector
	// summing to zero.
	ErrDegenerateState = errors.New("solver: zero-sum state cannot be renormalized")
)
