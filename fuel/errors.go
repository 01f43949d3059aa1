// SPDX-License-Identifier: MIT
// Package fuel: sentinel error set.

package fuel

import "errors"

var (
	// ErrInvalidState indicates an unusable construction: no isotopes,
	// duplicate isotopes, or an initial vector of the wrong length.
	ErrInvalidState = errors.New("fuel: invalid state construction")

	// ErrLengthMismatch indicates an appended vector whose length does
	// not match the isotope count. The call fails and history is left
	// untouched.
	ErrLengthMismatch = errors.New("fuel: vector length mismatch")
)
