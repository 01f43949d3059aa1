// SPDX-License-Identifier: MIT
// Package bateman: sentinel error set.

package bateman

import "errors"

var (
	// ErrInvalidConfiguration indicates an unusable tracked set: empty,
	// or containing duplicate isotope codes.
	ErrInvalidConfiguration = errors.New("bateman: invalid configuration")

	// ErrSourceApplied indicates a second application of the same rate
	// source to one builder. Each of AddDecay, AddFissionYields and
	// AddTransmutations is single-use; re-application would double-count
	// every rate it contributes.
	ErrSourceApplied = errors.New("bateman: rate source already applied")

	// ErrUntrackedProduct is returned in strict mode when a reaction or
	// fission product falls outside the tracked set. In the default
	// permissive mode the same condition is a recorded gap instead.
	ErrUntrackedProduct = errors.New("bateman: product isotope not tracked")

	// ErrNilSource indicates a nil provider argument.
	ErrNilSource = errors.New("bateman: nil rate source")
)
